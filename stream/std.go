package stream

import (
	"sync"

	"github.com/philipp01105/aprint/core"
)

var (
	stdout = &lazyHandle{stream: core.Stdout, open: openStd}
	stderr = &lazyHandle{stream: core.Stderr, open: openStd}
)

// lazyHandle constructs a handle on first use. Concurrent first callers
// all observe the same handle, or the same error; it is never replaced.
type lazyHandle struct {
	stream core.Stream
	open   func(core.Stream) (*Handle, error)

	once sync.Once
	h    *Handle
	err  error
}

func (l *lazyHandle) get() (*Handle, error) {
	l.once.Do(func() {
		l.h, l.err = l.open(l.stream)
	})
	return l.h, l.err
}

// openStd acquires the process' descriptor for s. A closed or missing
// descriptor is reported as core.ErrInitFailed.
func openStd(s core.Stream) (*Handle, error) {
	f := s.File()
	if f == nil {
		return nil, core.InitError(s, errNoDescriptor)
	}
	if _, err := f.Stat(); err != nil {
		return nil, core.InitError(s, err)
	}
	return New(Config{
		Stream:     s,
		Writer:     f,
		persistent: true,
	})
}

// Stdout returns the process-wide handle for standard output, creating it
// on first use.
func Stdout() (*Handle, error) {
	return stdout.get()
}

// Stderr returns the process-wide handle for standard error, creating it
// on first use.
func Stderr() (*Handle, error) {
	return stderr.get()
}

// For returns the process-wide handle for s
func For(s core.Stream) (*Handle, error) {
	switch s {
	case core.Stdout:
		return Stdout()
	case core.Stderr:
		return Stderr()
	default:
		return nil, core.InitError(s, errUnknownStream)
	}
}
