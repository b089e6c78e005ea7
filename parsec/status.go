package parsec

import "fmt"

// ResponseStatus is the status carried in every response from the remote
// service. Codes below 1000 are service-level conditions; codes at
// 1000+|n| mirror the PSA status -n reported by the executing provider.
type ResponseStatus uint16

const (
	Success                         ResponseStatus = 0
	WrongProviderID                 ResponseStatus = 1
	ContentTypeNotSupported         ResponseStatus = 2
	AcceptTypeNotSupported          ResponseStatus = 3
	WireProtocolVersionNotSupported ResponseStatus = 4
	ProviderNotRegistered           ResponseStatus = 5
	ProviderDoesNotExist            ResponseStatus = 6
	DeserializingBodyFailed         ResponseStatus = 7
	SerializingBodyFailed           ResponseStatus = 8
	OpcodeDoesNotExist              ResponseStatus = 9
	ResponseTooLarge                ResponseStatus = 10
	AuthenticationError             ResponseStatus = 11
	AuthorizationError              ResponseStatus = 12
	InternalError                   ResponseStatus = 13
	InvalidEncoding                 ResponseStatus = 14
	InvalidName                     ResponseStatus = 15
	KeyInfoManagerError             ResponseStatus = 16
	ConnectionError                 ResponseStatus = 17
)

const (
	PsaErrorGenericError         ResponseStatus = 1132
	PsaErrorNotPermitted         ResponseStatus = 1133
	PsaErrorNotSupported         ResponseStatus = 1134
	PsaErrorInvalidArgument      ResponseStatus = 1135
	PsaErrorInvalidHandle        ResponseStatus = 1136
	PsaErrorBadState             ResponseStatus = 1137
	PsaErrorBufferTooSmall       ResponseStatus = 1138
	PsaErrorAlreadyExists        ResponseStatus = 1139
	PsaErrorDoesNotExist         ResponseStatus = 1140
	PsaErrorInsufficientMemory   ResponseStatus = 1141
	PsaErrorInsufficientStorage  ResponseStatus = 1142
	PsaErrorInsufficientData     ResponseStatus = 1143
	PsaErrorCommunicationFailure ResponseStatus = 1145
	PsaErrorStorageFailure       ResponseStatus = 1146
	PsaErrorHardwareFailure      ResponseStatus = 1147
	PsaErrorInsufficientEntropy  ResponseStatus = 1148
	PsaErrorInvalidSignature     ResponseStatus = 1149
	PsaErrorInvalidPadding       ResponseStatus = 1150
	PsaErrorCorruptionDetected   ResponseStatus = 1151
	PsaErrorDataCorrupt          ResponseStatus = 1152
	PsaErrorDataInvalid          ResponseStatus = 1153
)

var responseStatusNames = map[ResponseStatus]string{
	Success:                         "Success",
	WrongProviderID:                 "WrongProviderID",
	ContentTypeNotSupported:         "ContentTypeNotSupported",
	AcceptTypeNotSupported:          "AcceptTypeNotSupported",
	WireProtocolVersionNotSupported: "WireProtocolVersionNotSupported",
	ProviderNotRegistered:           "ProviderNotRegistered",
	ProviderDoesNotExist:            "ProviderDoesNotExist",
	DeserializingBodyFailed:         "DeserializingBodyFailed",
	SerializingBodyFailed:           "SerializingBodyFailed",
	OpcodeDoesNotExist:              "OpcodeDoesNotExist",
	ResponseTooLarge:                "ResponseTooLarge",
	AuthenticationError:             "AuthenticationError",
	AuthorizationError:              "AuthorizationError",
	InternalError:                   "InternalError",
	InvalidEncoding:                 "InvalidEncoding",
	InvalidName:                     "InvalidName",
	KeyInfoManagerError:             "KeyInfoManagerError",
	ConnectionError:                 "ConnectionError",
	PsaErrorGenericError:            "PsaErrorGenericError",
	PsaErrorNotPermitted:            "PsaErrorNotPermitted",
	PsaErrorNotSupported:            "PsaErrorNotSupported",
	PsaErrorInvalidArgument:         "PsaErrorInvalidArgument",
	PsaErrorInvalidHandle:           "PsaErrorInvalidHandle",
	PsaErrorBadState:                "PsaErrorBadState",
	PsaErrorBufferTooSmall:          "PsaErrorBufferTooSmall",
	PsaErrorAlreadyExists:           "PsaErrorAlreadyExists",
	PsaErrorDoesNotExist:            "PsaErrorDoesNotExist",
	PsaErrorInsufficientMemory:      "PsaErrorInsufficientMemory",
	PsaErrorInsufficientStorage:     "PsaErrorInsufficientStorage",
	PsaErrorInsufficientData:        "PsaErrorInsufficientData",
	PsaErrorCommunicationFailure:    "PsaErrorCommunicationFailure",
	PsaErrorStorageFailure:          "PsaErrorStorageFailure",
	PsaErrorHardwareFailure:         "PsaErrorHardwareFailure",
	PsaErrorInsufficientEntropy:     "PsaErrorInsufficientEntropy",
	PsaErrorInvalidSignature:        "PsaErrorInvalidSignature",
	PsaErrorInvalidPadding:          "PsaErrorInvalidPadding",
	PsaErrorCorruptionDetected:      "PsaErrorCorruptionDetected",
	PsaErrorDataCorrupt:             "PsaErrorDataCorrupt",
	PsaErrorDataInvalid:             "PsaErrorDataInvalid",
}

// String returns the symbolic name of the status.
func (s ResponseStatus) String() string {
	if name, ok := responseStatusNames[s]; ok {
		return name
	}
	return fmt.Sprintf("ResponseStatus(%d)", uint16(s))
}
