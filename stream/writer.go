package stream

import (
	"errors"
	"io"
	"os"
	"syscall"

	"go.uber.org/zap/zapcore"
)

// isConcurrentSafeWriter returns true if the writer is known to be safe for
// concurrent Write and Sync calls, allowing the handle to skip locking.
func isConcurrentSafeWriter(w io.Writer) bool {
	if w == io.Discard {
		return true
	}
	_, ok := w.(*os.File)
	return ok
}

// toWriteSyncer adapts w for the handle. Only the writer goroutine calls
// Write, but Sync may come from any goroutine, so writers that are not
// known to be safe get a lock around both.
func toWriteSyncer(w io.Writer, concurrent bool) zapcore.WriteSyncer {
	ws := zapcore.AddSync(w)
	if concurrent || isConcurrentSafeWriter(w) {
		return ws
	}
	return zapcore.Lock(ws)
}

// syncIgnorable reports whether a Sync error only means the descriptor
// cannot be flushed, as with terminals and pipes.
func syncIgnorable(err error) bool {
	return errors.Is(err, syscall.EINVAL) || errors.Is(err, syscall.ENOTSUP) || errors.Is(err, os.ErrInvalid)
}
