package stream

import (
	"context"
	"errors"
	"io"
	"sync"
	"sync/atomic"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/philipp01105/aprint/core"
)

var (
	errUnknownStream = errors.New("unknown stream")
	errNoDescriptor  = errors.New("no file descriptor")
)

// Handle is an asynchronous writer over one output stream. It is safe for
// concurrent use; all writes are performed by a single writer goroutine.
type Handle struct {
	stream     core.Stream
	ws         zapcore.WriteSyncer
	logger     atomic.Pointer[zap.Logger]
	stats      *Stats
	persistent bool

	queue     chan *core.Request
	closing   chan struct{}
	stopped   chan struct{}
	closeOnce sync.Once
}

// New creates a handle for cfg and starts its writer goroutine.
// The goroutine runs until Close is called.
func New(cfg Config) (*Handle, error) {
	if err := applyDefaults(&cfg); err != nil {
		return nil, err
	}

	h := &Handle{
		stream:     cfg.Stream,
		ws:         toWriteSyncer(cfg.Writer, cfg.ConcurrentWriter),
		stats:      NewStats(),
		persistent: cfg.persistent,
		queue:      make(chan *core.Request, cfg.QueueSize),
		closing:    make(chan struct{}),
		stopped:    make(chan struct{}),
	}
	h.logger.Store(cfg.Logger)

	go h.process()

	return h, nil
}

// Stream returns the stream the handle is bound to
func (h *Handle) Stream() core.Stream {
	return h.stream
}

// Stats returns a snapshot of the current statistics
func (h *Handle) Stats() Snapshot {
	return h.stats.GetSnapshot()
}

// SetLogger replaces the logger that receives write failures. A nil
// logger disables logging.
func (h *Handle) SetLogger(l *zap.Logger) {
	if l == nil {
		l = zap.NewNop()
	}
	h.logger.Store(l)
}

// WriteAll writes all of p to the stream in a single underlying write and
// waits for the outcome. p is copied, so the caller may reuse it as soon
// as WriteAll returns, even when it returns early because ctx is done.
// An empty p returns nil without touching the stream.
func (h *Handle) WriteAll(ctx context.Context, p []byte) error {
	if len(p) == 0 {
		return nil
	}
	if err := ctx.Err(); err != nil {
		h.stats.IncrementCancelled()
		return err
	}
	data := make([]byte, len(p))
	copy(data, p)
	return h.Submit(core.NewRequest(ctx, h.stream, data))
}

// WriteString is like WriteAll for a string
func (h *Handle) WriteString(ctx context.Context, s string) error {
	if s == "" {
		return nil
	}
	return h.Submit(core.NewRequest(ctx, h.stream, []byte(s)))
}

// Submit hands req to the writer goroutine and waits for its outcome or
// for req's context. The handle takes ownership of req.Data; it must not
// be modified afterwards.
func (h *Handle) Submit(req *core.Request) error {
	ctx := req.Context()
	if err := ctx.Err(); err != nil {
		h.stats.IncrementCancelled()
		return err
	}

	select {
	case <-h.closing:
		return core.WriteError(h.stream, core.ErrClosed)
	default:
	}

	select {
	case h.queue <- req:
	case <-ctx.Done():
		h.stats.IncrementCancelled()
		return ctx.Err()
	case <-h.closing:
		return core.WriteError(h.stream, core.ErrClosed)
	}

	select {
	case err := <-req.Done():
		return err
	case <-ctx.Done():
		// Prefer a completion that raced with the cancellation.
		select {
		case err := <-req.Done():
			return err
		default:
			return ctx.Err()
		}
	case <-h.stopped:
		// The writer drains the queue before stopping, so a missing
		// completion means the request arrived after the drain.
		select {
		case err := <-req.Done():
			return err
		default:
			return core.WriteError(h.stream, core.ErrClosed)
		}
	}
}

// process is the writer goroutine
func (h *Handle) process() {
	defer close(h.stopped)

	for {
		select {
		case req := <-h.queue:
			h.write(req)
		case <-h.closing:
			// Drain writes that were accepted before Close
			for {
				select {
				case req := <-h.queue:
					h.write(req)
				default:
					h.logger.Load().Debug("stream handle stopped", zap.Stringer("stream", h.stream))
					return
				}
			}
		}
	}
}

// write performs a single request. Requests whose caller gave up before
// the write started are skipped.
func (h *Handle) write(req *core.Request) {
	if err := req.Context().Err(); err != nil {
		h.stats.IncrementCancelled()
		req.Complete(err)
		return
	}

	n, err := h.ws.Write(req.Data)
	h.stats.AddBytes(n)
	if err == nil && n < len(req.Data) {
		err = io.ErrShortWrite
	}
	if err != nil {
		h.stats.IncrementFailed()
		h.logger.Load().Warn("write failed",
			zap.Stringer("stream", h.stream),
			zap.Int("size", len(req.Data)),
			zap.Int("written", n),
			zap.Error(err),
		)
		req.Complete(core.WriteError(h.stream, err))
		return
	}

	h.stats.IncrementWrites()
	req.Complete(nil)
}

// Sync flushes the underlying writer if it supports flushing. Errors that
// only mean the stream cannot be flushed, as for terminals and pipes, are
// ignored.
func (h *Handle) Sync() error {
	if err := h.ws.Sync(); err != nil && !syncIgnorable(err) {
		return core.WriteError(h.stream, err)
	}
	return nil
}

// Close drains pending writes, stops the writer goroutine and syncs the
// writer. It never closes the underlying writer. The process-wide handles
// are never stopped; closing one only syncs it.
func (h *Handle) Close() error {
	if h.persistent {
		return h.Sync()
	}

	h.closeOnce.Do(func() {
		close(h.closing)
	})
	<-h.stopped

	return h.Sync()
}
