package adapter

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("not found")
	ErrConflict            = errors.New("conflict")
	ErrTooManyRequests     = errors.New("too many requests")
	ErrInternalServerError = errors.New("internal server error")
	ErrBadGateway          = errors.New("bad gateway")
	ErrServiceUnavailable  = errors.New("service unavailable")
	ErrUnexpectedStatus    = errors.New("unexpected status")

	// ErrTransport marks failures where no response was received.
	ErrTransport = errors.New("transport failure")
	// ErrDecode marks 2xx responses whose body could not be decoded.
	ErrDecode = errors.New("decode failure")
)

// RemoteError is a non-2xx response of the remote data source.
type RemoteError struct {
	StatusCode int
	// Message is the human-readable text taken from the response body, if
	// the server sent one.
	Message string
	// Err is the sentinel matching StatusCode.
	Err error
}

func (e *RemoteError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("http %d: %s", e.StatusCode, http.StatusText(e.StatusCode))
}

func (e *RemoteError) Unwrap() error {
	return e.Err
}
