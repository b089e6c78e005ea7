package psa

import "fmt"

// Status is the numeric status code the host expects from every driver
// callback. The values are part of the host ABI and must match the PSA
// Crypto API exactly; a wrong code can make the host retry, corrupt its
// key store bookkeeping, or misreport to its caller.
type Status int32

const (
	// Success is the distinguished success value.
	Success Status = 0

	ErrorGenericError         Status = -132
	ErrorNotPermitted         Status = -133
	ErrorNotSupported         Status = -134
	ErrorInvalidArgument      Status = -135
	ErrorInvalidHandle        Status = -136
	ErrorBadState             Status = -137
	ErrorBufferTooSmall       Status = -138
	ErrorAlreadyExists        Status = -139
	ErrorDoesNotExist         Status = -140
	ErrorInsufficientMemory   Status = -141
	ErrorInsufficientStorage  Status = -142
	ErrorInsufficientData     Status = -143
	ErrorCommunicationFailure Status = -145
	ErrorStorageFailure       Status = -146
	ErrorHardwareFailure      Status = -147
	ErrorInsufficientEntropy  Status = -148
	ErrorInvalidSignature     Status = -149
	ErrorInvalidPadding       Status = -150
	ErrorCorruptionDetected   Status = -151
	ErrorDataCorrupt          Status = -152
	ErrorDataInvalid          Status = -153
)

// String returns the PSA macro name for the status.
func (s Status) String() string {
	switch s {
	case Success:
		return "PSA_SUCCESS"
	case ErrorGenericError:
		return "PSA_ERROR_GENERIC_ERROR"
	case ErrorNotPermitted:
		return "PSA_ERROR_NOT_PERMITTED"
	case ErrorNotSupported:
		return "PSA_ERROR_NOT_SUPPORTED"
	case ErrorInvalidArgument:
		return "PSA_ERROR_INVALID_ARGUMENT"
	case ErrorInvalidHandle:
		return "PSA_ERROR_INVALID_HANDLE"
	case ErrorBadState:
		return "PSA_ERROR_BAD_STATE"
	case ErrorBufferTooSmall:
		return "PSA_ERROR_BUFFER_TOO_SMALL"
	case ErrorAlreadyExists:
		return "PSA_ERROR_ALREADY_EXISTS"
	case ErrorDoesNotExist:
		return "PSA_ERROR_DOES_NOT_EXIST"
	case ErrorInsufficientMemory:
		return "PSA_ERROR_INSUFFICIENT_MEMORY"
	case ErrorInsufficientStorage:
		return "PSA_ERROR_INSUFFICIENT_STORAGE"
	case ErrorInsufficientData:
		return "PSA_ERROR_INSUFFICIENT_DATA"
	case ErrorCommunicationFailure:
		return "PSA_ERROR_COMMUNICATION_FAILURE"
	case ErrorStorageFailure:
		return "PSA_ERROR_STORAGE_FAILURE"
	case ErrorHardwareFailure:
		return "PSA_ERROR_HARDWARE_FAILURE"
	case ErrorInsufficientEntropy:
		return "PSA_ERROR_INSUFFICIENT_ENTROPY"
	case ErrorInvalidSignature:
		return "PSA_ERROR_INVALID_SIGNATURE"
	case ErrorInvalidPadding:
		return "PSA_ERROR_INVALID_PADDING"
	case ErrorCorruptionDetected:
		return "PSA_ERROR_CORRUPTION_DETECTED"
	case ErrorDataCorrupt:
		return "PSA_ERROR_DATA_CORRUPT"
	case ErrorDataInvalid:
		return "PSA_ERROR_DATA_INVALID"
	default:
		return fmt.Sprintf("PSA_STATUS(%d)", int32(s))
	}
}
