package printer

import (
	"context"
	"io"

	"go.uber.org/multierr"

	"github.com/philipp01105/aprint/core"
	"github.com/philipp01105/aprint/formatter"
)

// AsyncWriter writes a whole byte slice to one stream and waits for the
// outcome. *stream.Handle implements it.
type AsyncWriter interface {
	WriteAll(ctx context.Context, p []byte) error
}

// submitter is implemented by writers that can take ownership of a
// rendered request, sparing WriteAll's defensive copy.
type submitter interface {
	Submit(req *core.Request) error
}

// Printer renders print calls and dispatches them to its writers (immutable)
type Printer struct {
	stdout AsyncWriter
	stderr AsyncWriter
}

// Builder provides a fluent API for building Printer instances
type Builder struct {
	stdout AsyncWriter
	stderr AsyncWriter
}

// NewBuilder creates a new printer builder bound to the process-wide
// stdout and stderr handles
func NewBuilder() *Builder {
	return &Builder{
		stdout: stdWriter(core.Stdout),
		stderr: stdWriter(core.Stderr),
	}
}

// WithStdout sets the writer used by Print and Println
func (b *Builder) WithStdout(w AsyncWriter) *Builder {
	b.stdout = w
	return b
}

// WithStderr sets the writer used by Eprint and Eprintln
func (b *Builder) WithStderr(w AsyncWriter) *Builder {
	b.stderr = w
	return b
}

// Build creates the Printer instance
func (b *Builder) Build() *Printer {
	return &Printer{
		stdout: b.stdout,
		stderr: b.stderr,
	}
}

// Print writes a to stdout
func (p *Printer) Print(ctx context.Context, a ...any) error {
	return p.print(ctx, core.Stdout, a, false)
}

// Println writes a followed by a newline to stdout
func (p *Printer) Println(ctx context.Context, a ...any) error {
	return p.print(ctx, core.Stdout, a, true)
}

// Eprint writes a to stderr
func (p *Printer) Eprint(ctx context.Context, a ...any) error {
	return p.print(ctx, core.Stderr, a, false)
}

// Eprintln writes a followed by a newline to stderr
func (p *Printer) Eprintln(ctx context.Context, a ...any) error {
	return p.print(ctx, core.Stderr, a, true)
}

// Printf is Print with an explicit template
func (p *Printer) Printf(ctx context.Context, format string, args ...any) error {
	return p.print(ctx, core.Stdout, withTemplate(format, args), false)
}

// Eprintf is Eprint with an explicit template
func (p *Printer) Eprintf(ctx context.Context, format string, args ...any) error {
	return p.print(ctx, core.Stderr, withTemplate(format, args), false)
}

// WriteStdout writes s to stdout verbatim
func (p *Printer) WriteStdout(ctx context.Context, s string) error {
	return p.write(ctx, core.Stdout, []byte(s))
}

// WriteStderr writes s to stderr verbatim
func (p *Printer) WriteStderr(ctx context.Context, s string) error {
	return p.write(ctx, core.Stderr, []byte(s))
}

// print renders a on the caller's goroutine and writes the result once.
// Print and Eprint without output return before touching the stream.
func (p *Printer) print(ctx context.Context, s core.Stream, a []any, newline bool) error {
	if !newline && formatter.Empty(a) {
		return nil
	}
	return p.write(ctx, s, formatter.Render(a, newline))
}

// write hands data, which it owns, to the writer for s
func (p *Printer) write(ctx context.Context, s core.Stream, data []byte) error {
	w := p.writer(s)
	if len(data) == 0 {
		return nil
	}
	if sub, ok := w.(submitter); ok {
		return sub.Submit(core.NewRequest(ctx, s, data))
	}
	return w.WriteAll(ctx, data)
}

func (p *Printer) writer(s core.Stream) AsyncWriter {
	if s == core.Stderr {
		return p.stderr
	}
	return p.stdout
}

// Sync flushes both writers when they support it
func (p *Printer) Sync() error {
	var err error
	for _, w := range []AsyncWriter{p.stdout, p.stderr} {
		if s, ok := w.(interface{ Sync() error }); ok {
			err = multierr.Append(err, s.Sync())
		}
	}
	return err
}

// Close closes both writers when they support it. The process-wide
// handles are only synced.
func (p *Printer) Close() error {
	var err error
	for _, w := range []AsyncWriter{p.stdout, p.stderr} {
		if c, ok := w.(io.Closer); ok {
			err = multierr.Append(err, c.Close())
		}
	}
	return err
}

func withTemplate(format string, args []any) []any {
	a := make([]any, 0, len(args)+1)
	a = append(a, format)
	return append(a, args...)
}
