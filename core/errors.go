package core

import (
	"errors"
	"io"
	"syscall"
)

var (
	// ErrWriteFailed is the kind of errors returned by the underlying write
	ErrWriteFailed = errors.New("write failed")
	// ErrInitFailed is the kind of errors raised while acquiring a std stream
	ErrInitFailed = errors.New("stream init failed")
	// ErrClosed is the cause reported for writes submitted to a closed handle
	ErrClosed = errors.New("handle closed")
)

// Error is returned by every failing write or stream acquisition
type Error struct {
	Kind   error
	Stream Stream
	Err    error
}

// Error implements the error interface
func (e *Error) Error() string {
	msg := "aprint: " + e.Stream.String() + ": " + e.Kind.Error()
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

// Unwrap exposes both the kind and the cause to errors.Is and errors.As
func (e *Error) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Err}
}

// WriteError wraps err as an ErrWriteFailed on stream s
func WriteError(s Stream, err error) error {
	return &Error{Kind: ErrWriteFailed, Stream: s, Err: err}
}

// InitError wraps err as an ErrInitFailed on stream s
func InitError(s Stream, err error) error {
	return &Error{Kind: ErrInitFailed, Stream: s, Err: err}
}

// IsBrokenPipe reports whether an error is a broken pipe / closed pipe.
// Useful when downstream consumers (like `head`) close early.
func IsBrokenPipe(err error) bool {
	return err != nil && (errors.Is(err, syscall.EPIPE) || errors.Is(err, io.ErrClosedPipe))
}
