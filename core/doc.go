// Package core defines the shared types used across aprint.
//
// It provides the Stream type that tags which OS standard stream a write
// targets, the Request type that carries one rendered print call to a
// stream handle, and the error kinds surfaced at the library boundary.
//
// A Request is transient: it is created by a single print call, consumed
// by exactly one write on the handle's writer goroutine and then dropped.
// Its completion channel has a single slot so the writer never blocks on
// a caller that stopped waiting.
//
// Errors are returned as values. Every failure is an *Error whose Kind is
// one of ErrWriteFailed or ErrInitFailed, so callers can match either the
// kind or the underlying cause with errors.Is.
package core
