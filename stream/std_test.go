package stream

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"

	"github.com/philipp01105/aprint/core"
)

func TestLazyHandle_ConstructedOnce(t *testing.T) {
	var opens atomic.Int32
	l := &lazyHandle{
		stream: core.Stdout,
		open: func(s core.Stream) (*Handle, error) {
			opens.Add(1)
			return New(Config{Stream: s, Writer: io.Discard})
		},
	}

	const racers = 64
	handles := make([]*Handle, racers)
	start := make(chan struct{})

	var g errgroup.Group
	for i := 0; i < racers; i++ {
		i := i
		g.Go(func() error {
			<-start
			h, err := l.get()
			handles[i] = h
			return err
		})
	}
	close(start)
	require.NoError(t, g.Wait())

	assert.Equal(t, int32(1), opens.Load())
	for _, h := range handles {
		assert.Same(t, handles[0], h)
	}
	require.NoError(t, handles[0].Close())
}

func TestLazyHandle_InitErrorIsSticky(t *testing.T) {
	var opens atomic.Int32
	cause := errors.New("no console")
	l := &lazyHandle{
		stream: core.Stderr,
		open: func(s core.Stream) (*Handle, error) {
			opens.Add(1)
			return nil, core.InitError(s, cause)
		},
	}

	for i := 0; i < 3; i++ {
		h, err := l.get()
		assert.Nil(t, h)
		assert.ErrorIs(t, err, core.ErrInitFailed)
		assert.ErrorIs(t, err, cause)
	}
	assert.Equal(t, int32(1), opens.Load())
}

func TestStdHandles(t *testing.T) {
	out1, err := Stdout()
	require.NoError(t, err)
	out2, err := For(core.Stdout)
	require.NoError(t, err)
	assert.Same(t, out1, out2)
	assert.Equal(t, core.Stdout, out1.Stream())

	errH, err := Stderr()
	require.NoError(t, err)
	assert.Equal(t, core.Stderr, errH.Stream())
	assert.NotSame(t, out1, errH)

	// Process-wide handles survive Close.
	_ = out1.Close()
	select {
	case <-out1.stopped:
		t.Fatal("Close stopped the process-wide stdout handle")
	default:
	}
}

func TestFor_UnknownStream(t *testing.T) {
	h, err := For(core.Stream(0))
	assert.Nil(t, h)
	assert.ErrorIs(t, err, core.ErrInitFailed)
}

func TestOpenStd_ClosedDescriptor(t *testing.T) {
	f, err := os.Create(filepath.Join(t.TempDir(), "stdout"))
	require.NoError(t, err)
	require.NoError(t, f.Close())

	saved := os.Stdout
	os.Stdout = f
	defer func() { os.Stdout = saved }()

	h, err := openStd(core.Stdout)
	assert.Nil(t, h)
	assert.ErrorIs(t, err, core.ErrInitFailed)
}
