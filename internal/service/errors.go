package service

import (
	"context"
	"errors"

	"github.com/MKhiriev/intern-match/internal/adapter"
)

// DefaultErrorMessage is surfaced when a failure carries no text.
const DefaultErrorMessage = "Failed to fetch data"

var (
	ErrEmptyDraftKey  = errors.New("empty draft key")
	ErrDraftNotObject = errors.New("draft value must encode to a JSON object")
	ErrNoOwner        = errors.New("scope is not bound to an owner")
	ErrEmptyStateKey  = errors.New("empty state key")
)

// ErrorKind classifies why a fetch failed.
type ErrorKind int

const (
	KindUnknown ErrorKind = iota
	// KindTransport: no response was received (network failure, timeout).
	KindTransport
	// KindRemote: the remote source answered with an error status.
	KindRemote
	// KindDecode: the response could not be decoded.
	KindDecode
)

func (k ErrorKind) String() string {
	switch k {
	case KindTransport:
		return "transport"
	case KindRemote:
		return "remote"
	case KindDecode:
		return "decode"
	default:
		return "unknown"
	}
}

// SyncError is the terminal failure of a fetch chain. Message is the string
// exposed through [SyncSnapshot.Error].
type SyncError struct {
	Kind    ErrorKind
	Message string
	Err     error
}

func (e *SyncError) Error() string {
	return e.Message
}

func (e *SyncError) Unwrap() error {
	return e.Err
}

// newSyncError classifies err. The message is the remote source's own text
// when it sent one, else err.Error(), else [DefaultErrorMessage].
func newSyncError(err error) *SyncError {
	se := &SyncError{Kind: KindUnknown, Err: err}

	var remoteErr *adapter.RemoteError
	switch {
	case errors.As(err, &remoteErr):
		se.Kind = KindRemote
		se.Message = remoteErr.Message
	case errors.Is(err, adapter.ErrDecode):
		se.Kind = KindDecode
	case errors.Is(err, adapter.ErrTransport), errors.Is(err, context.DeadlineExceeded):
		se.Kind = KindTransport
	}

	if se.Message == "" && err != nil {
		se.Message = err.Error()
	}
	if se.Message == "" {
		se.Message = DefaultErrorMessage
	}
	return se
}
