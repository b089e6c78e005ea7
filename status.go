package sedriver

import (
	"errors"
	"log/slog"

	"github.com/ionut-arm/parsec-se-driver/parsec"
	"github.com/ionut-arm/parsec-se-driver/psa"
)

// statusFromError translates a remote outcome into the host status space.
// The table is order-insensitive but must stay exhaustive over the
// service statuses the host can represent: anything else collapses to the
// generic error after a logged diagnostic, because the numeric collapse
// loses the information otherwise. Adding a new service status means
// making an explicit decision here, not relying on the fallback.
func statusFromError(err error) psa.Status {
	if err == nil {
		return psa.Success
	}

	var serviceErr *parsec.ServiceError
	if !errors.As(err, &serviceErr) {
		// Transport or protocol failure from the client itself.
		slog.Error("client error collapsed to generic error", "error", err)
		RecordStatusFallback()
		return psa.ErrorGenericError
	}

	switch serviceErr.Status {
	case parsec.Success:
		return psa.Success
	case parsec.PsaErrorGenericError:
		return psa.ErrorGenericError
	case parsec.PsaErrorNotSupported:
		return psa.ErrorNotSupported
	case parsec.PsaErrorNotPermitted:
		return psa.ErrorNotPermitted
	case parsec.PsaErrorBufferTooSmall:
		return psa.ErrorBufferTooSmall
	case parsec.PsaErrorAlreadyExists:
		return psa.ErrorAlreadyExists
	case parsec.PsaErrorDoesNotExist:
		return psa.ErrorDoesNotExist
	case parsec.PsaErrorBadState:
		return psa.ErrorBadState
	case parsec.PsaErrorInvalidArgument:
		return psa.ErrorInvalidArgument
	case parsec.PsaErrorInsufficientMemory:
		return psa.ErrorInsufficientMemory
	case parsec.PsaErrorInsufficientStorage:
		return psa.ErrorInsufficientStorage
	case parsec.PsaErrorCommunicationFailure:
		return psa.ErrorCommunicationFailure
	case parsec.PsaErrorStorageFailure:
		return psa.ErrorStorageFailure
	case parsec.PsaErrorHardwareFailure:
		return psa.ErrorHardwareFailure
	case parsec.PsaErrorInsufficientEntropy:
		return psa.ErrorInsufficientEntropy
	case parsec.PsaErrorInvalidSignature:
		return psa.ErrorInvalidSignature
	case parsec.PsaErrorInvalidPadding:
		return psa.ErrorInvalidPadding
	case parsec.PsaErrorInsufficientData:
		return psa.ErrorInsufficientData
	case parsec.PsaErrorInvalidHandle:
		return psa.ErrorInvalidHandle
	default:
		slog.Error("unmapped service status collapsed to generic error",
			"status", serviceErr.Status)
		RecordStatusFallback()
		return psa.ErrorGenericError
	}
}
