// Package stream provides asynchronous writers bound to the OS standard
// streams.
//
// A Handle owns one io.Writer and a dedicated writer goroutine. Callers
// submit writes from any goroutine; each submission is queued, written
// by the writer goroutine in a single Write call, and its outcome is
// delivered back to the caller, which waits for it or for its context.
//
// Stdout and Stderr return process-wide handles that are created on
// first use and live until the process exits. Concurrent first callers
// all receive the same handle:
//
//	h, err := stream.Stdout()
//	if err != nil {
//	    return err
//	}
//	err = h.WriteString(ctx, "ready\n")
//
// The bytes of one write reach the stream contiguously. Writes from
// different goroutines are emitted in queue order; writes from one
// goroutine are emitted in program order because each call waits for
// its own completion.
//
// A write whose context is done before the writer goroutine picks it up
// is skipped and nothing is written. A write already in progress is not
// interrupted; the caller simply stops waiting for it.
package stream
