package datasource

import "errors"

// ErrorKind classifies a failed backend call.
type ErrorKind string

const (
	// The server responded with an error status.
	KindServerError ErrorKind = "server_error"
	// The request went out but no response came back.
	KindNetworkError ErrorKind = "network_error"
	// Anything else.
	KindUnknownError ErrorKind = "unknown_error"
)

// TransportError is the only error shape a backend failure is allowed to
// reach the store as. Raw http/net errors are converted at this boundary.
type TransportError struct {
	Kind    ErrorKind
	Message string
	Status  int // HTTP status, 0 when there was no response
}

func (e *TransportError) Error() string {
	return string(e.Kind) + ": " + e.Message
}

func serverError(status int, message string) *TransportError {
	return &TransportError{Kind: KindServerError, Message: message, Status: status}
}

func networkError(message string) *TransportError {
	return &TransportError{Kind: KindNetworkError, Message: message}
}

func unknownError(message string) *TransportError {
	return &TransportError{Kind: KindUnknownError, Message: message}
}

// ErrNotFound is returned when a mutation references an id the data source
// does not hold. The store treats it as a benign race and swallows it.
var ErrNotFound = errors.New("not found")
