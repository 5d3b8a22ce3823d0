package writers

import (
	"fmt"
	"io"
	"os"
)

// Stdout is the output location that means standard output.
const Stdout = "-"

type nopCloser struct {
	io.Writer
}

func (nopCloser) Close() error { return nil }

// Open resolves an output location: Stdout, or a file path that is created
// or truncated on the first write. Closing the stdout writer leaves stdout
// open.
func Open(location string) (io.WriteCloser, error) {
	if location == "" {
		return nil, fmt.Errorf("output not set")
	}
	if location == Stdout {
		return nopCloser{os.Stdout}, nil
	}
	return NewLazyWriteCloser(func() (io.WriteCloser, error) {
		return os.OpenFile(location, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0644)
	}), nil
}
