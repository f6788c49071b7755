package printer

import (
	"context"

	"github.com/philipp01105/aprint/core"
	"github.com/philipp01105/aprint/stream"
)

// stdWriter resolves the process-wide handle for a stream on every call,
// so the handle is only created once something is actually written.
type stdWriter core.Stream

func (w stdWriter) handle() (*stream.Handle, error) {
	return stream.For(core.Stream(w))
}

func (w stdWriter) WriteAll(ctx context.Context, p []byte) error {
	h, err := w.handle()
	if err != nil {
		return err
	}
	return h.WriteAll(ctx, p)
}

func (w stdWriter) Submit(req *core.Request) error {
	h, err := w.handle()
	if err != nil {
		return err
	}
	return h.Submit(req)
}

func (w stdWriter) Sync() error {
	h, err := w.handle()
	if err != nil {
		return err
	}
	return h.Sync()
}

func (w stdWriter) Close() error {
	h, err := w.handle()
	if err != nil {
		return err
	}
	return h.Close()
}
