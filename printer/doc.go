// Package printer is the public API of aprint. Most users only need to
// import this package.
//
// Print, Println, Eprint and Eprintln are the asynchronous counterparts
// of the classic print routines. The first argument, when it is a
// string, is a template in Go's fmt grammar; the rest are substituted
// into it:
//
//	if err := printer.Println(ctx, "listening on %s", addr); err != nil {
//	    return err
//	}
//
// Each call renders its text on the calling goroutine, hands the bytes
// to the process-wide stdout or stderr handle in a single write and
// returns once that write has resolved or ctx is done. The line
// variants append the newline before the write, so a whole line is
// never split into two writes.
//
// Errors are returned, never panicked: a failed write yields an error
// matching core.ErrWriteFailed, a standard stream that could not be
// acquired yields core.ErrInitFailed. Broken pipes can be recognised
// with core.IsBrokenPipe.
//
// A Printer built with the Builder writes to any pair of AsyncWriters,
// which is how tests capture output:
//
//	p := printer.NewBuilder().
//	    WithStdout(outHandle).
//	    WithStderr(errHandle).
//	    Build()
package printer
