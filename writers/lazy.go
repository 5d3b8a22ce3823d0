package writers

import (
	"io"
)

// LazyWriteCloser delays initialization until the writer is written to, so
// an output file is only created once there is something to put in it.
type LazyWriteCloser struct {
	init   func() (io.WriteCloser, error)
	writer io.WriteCloser
	err    error
}

// NewLazyWriteCloser creates a new LazyWriteCloser. init is called once, on
// the first Write. A failed init is remembered and returned by every later
// Write.
func NewLazyWriteCloser(init func() (io.WriteCloser, error)) *LazyWriteCloser {
	return &LazyWriteCloser{init: init}
}

func (f *LazyWriteCloser) Write(p []byte) (int, error) {
	if f.writer == nil {
		if f.err != nil {
			return 0, f.err
		}
		f.writer, f.err = f.init()
		if f.err != nil {
			return 0, f.err
		}
	}

	return f.writer.Write(p)
}

// Opened reports whether the underlying writer was created.
func (f *LazyWriteCloser) Opened() bool {
	return f.writer != nil
}

func (f *LazyWriteCloser) Close() error {
	if f.writer != nil {
		return f.writer.Close()
	}
	return nil
}
