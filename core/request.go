package core

import (
	"context"
)

// Request is a rendered byte sequence bound for one stream
type Request struct {
	Stream Stream
	Data   []byte

	ctx  context.Context
	done chan error
}

// NewRequest creates a request for data on stream s. The request is
// abandoned by the writer if ctx is done before the write starts.
func NewRequest(ctx context.Context, s Stream, data []byte) *Request {
	return &Request{
		Stream: s,
		Data:   data,
		ctx:    ctx,
		done:   make(chan error, 1),
	}
}

// Context returns the context of the originating call
func (r *Request) Context() context.Context {
	if r.ctx == nil {
		return context.Background()
	}
	return r.ctx
}

// Complete reports the outcome of the write. It must be called exactly once.
func (r *Request) Complete(err error) {
	r.done <- err
}

// Done returns the channel that receives the outcome of the write
func (r *Request) Done() <-chan error {
	return r.done
}
