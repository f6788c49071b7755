package stream

import (
	"io"

	"go.uber.org/zap"

	"github.com/philipp01105/aprint/core"
)

// Config holds configuration for a Handle
type Config struct {
	// Stream the handle is bound to (default: core.Stdout)
	Stream core.Stream
	// Writer to write to (default: the process' file for Stream)
	Writer io.Writer
	// QueueSize is the number of writes that may wait for the writer
	// goroutine before submitters block (default: 64)
	QueueSize int
	// ConcurrentWriter indicates the Writer supports concurrent Write and
	// Sync calls. Automatically detected for io.Discard and *os.File.
	ConcurrentWriter bool
	// Logger receives write failures and lifecycle events (default: nop)
	Logger *zap.Logger

	// persistent marks the process-wide handles, which are never closed
	persistent bool
}

const defaultQueueSize = 64

// applyDefaults fills in zero-value fields with defaults. It fails when no
// writer can be resolved for the stream.
func applyDefaults(cfg *Config) error {
	if cfg.Stream == 0 {
		cfg.Stream = core.Stdout
	}
	if !cfg.Stream.Valid() {
		return core.InitError(cfg.Stream, errUnknownStream)
	}
	if cfg.Writer == nil {
		f := cfg.Stream.File()
		if f == nil {
			return core.InitError(cfg.Stream, errNoDescriptor)
		}
		cfg.Writer = f
	}
	if cfg.QueueSize <= 0 {
		cfg.QueueSize = defaultQueueSize
	}
	if cfg.Logger == nil {
		cfg.Logger = zap.NewNop()
	}
	return nil
}
