package printer

import (
	"context"
	"sync"

	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/philipp01105/aprint/stream"
)

var (
	defaultPrinter = NewBuilder().Build()
	defaultMu      sync.RWMutex
)

// Default returns the default printer
func Default() *Printer {
	defaultMu.RLock()
	defer defaultMu.RUnlock()
	return defaultPrinter
}

// SetDefault sets the default printer used by the package-level functions
func SetDefault(p *Printer) {
	defaultMu.Lock()
	defer defaultMu.Unlock()
	defaultPrinter = p
}

// SetLogger installs l on the process-wide stdout and stderr handles,
// creating them if needed. Write failures are logged there at warn level
// in addition to being returned.
func SetLogger(l *zap.Logger) error {
	out, err := stream.Stdout()
	if err == nil {
		out.SetLogger(l)
	}
	errH, err2 := stream.Stderr()
	if err2 == nil {
		errH.SetLogger(l)
	}
	return multierr.Append(err, err2)
}

// Package-level functions using the default printer

// Print writes a to stdout. The first argument, when it is a string, is
// the template for the rest.
func Print(ctx context.Context, a ...any) error {
	return Default().Print(ctx, a...)
}

// Println writes a followed by a newline to stdout
func Println(ctx context.Context, a ...any) error {
	return Default().Println(ctx, a...)
}

// Eprint writes a to stderr
func Eprint(ctx context.Context, a ...any) error {
	return Default().Eprint(ctx, a...)
}

// Eprintln writes a followed by a newline to stderr
func Eprintln(ctx context.Context, a ...any) error {
	return Default().Eprintln(ctx, a...)
}

// Printf writes a formatted string to stdout
func Printf(ctx context.Context, format string, args ...any) error {
	return Default().Printf(ctx, format, args...)
}

// Eprintf writes a formatted string to stderr
func Eprintf(ctx context.Context, format string, args ...any) error {
	return Default().Eprintf(ctx, format, args...)
}

// WriteStdout writes s to stdout verbatim
func WriteStdout(ctx context.Context, s string) error {
	return Default().WriteStdout(ctx, s)
}

// WriteStderr writes s to stderr verbatim
func WriteStderr(ctx context.Context, s string) error {
	return Default().WriteStderr(ctx, s)
}

// Sync flushes the default printer's writers
func Sync() error {
	return Default().Sync()
}
