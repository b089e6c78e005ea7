package parsec

import "fmt"

// ServiceError is an error outcome reported by the remote service itself,
// as opposed to a transport or protocol failure, which surfaces as a
// plain error from the client implementation.
type ServiceError struct {
	Status ResponseStatus
}

// NewServiceError wraps a response status in a ServiceError.
func NewServiceError(status ResponseStatus) *ServiceError {
	return &ServiceError{Status: status}
}

func (e *ServiceError) Error() string {
	return fmt.Sprintf("service error: %s", e.Status)
}
