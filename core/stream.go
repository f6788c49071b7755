package core

import (
	"os"
)

// Stream identifies one of the OS standard output streams
type Stream int8

const (
	// Stdout is the standard output stream (fd 1)
	Stdout Stream = iota + 1
	// Stderr is the standard error stream (fd 2)
	Stderr
)

// String returns the string representation of the stream
func (s Stream) String() string {
	switch s {
	case Stdout:
		return "stdout"
	case Stderr:
		return "stderr"
	default:
		return "unknown"
	}
}

// Valid reports whether s names a known stream
func (s Stream) Valid() bool {
	return s == Stdout || s == Stderr
}

// FD returns the platform file descriptor number of the stream, or -1.
func (s Stream) FD() int {
	if !s.Valid() {
		return -1
	}
	return int(s)
}

// File returns the process' *os.File for the stream. It may be nil when
// the stream is unknown or the runtime has no such descriptor.
func (s Stream) File() *os.File {
	switch s {
	case Stdout:
		return os.Stdout
	case Stderr:
		return os.Stderr
	default:
		return nil
	}
}
