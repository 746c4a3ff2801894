package shell

import (
	"errors"
	"io"
)

// ErrInterrupted is returned by ReadLine when an interrupt abandoned the line.
var ErrInterrupted = errors.New("interrupted")

type readResult struct {
	b   byte
	n   int
	err error
}

// LineReader reads lines one byte per Read call so nothing past the newline
// is consumed. The blocking Read happens on a helper goroutine which lets an
// interrupt abandon the line while a byte is still outstanding; that byte
// is delivered to the next ReadLine.
type LineReader struct {
	src  io.Reader
	out  io.Writer
	size int
	intr *InterruptFlag

	requests chan struct{}
	results  chan readResult
	started  bool
	pending  bool
	closed   bool
	err      error
}

// NewLineReader reads lines of at most size-1 bytes from src. The newline
// that acknowledges an interrupt is written to out.
func NewLineReader(src io.Reader, out io.Writer, size int, intr *InterruptFlag) *LineReader {
	if intr == nil {
		intr = NewInterruptFlag()
	}

	return &LineReader{
		src:      src,
		out:      out,
		size:     size,
		intr:     intr,
		requests: make(chan struct{}),
		results:  make(chan readResult, 1),
	}
}

func (r *LineReader) pump() {
	buf := make([]byte, 1)
	for range r.requests {
		n, err := r.src.Read(buf)
		r.results <- readResult{b: buf[0], n: n, err: err}
		if err != nil {
			return
		}
	}
}

// Close stops the helper goroutine once any outstanding Read returns. Later
// calls to ReadLine report io.EOF.
func (r *LineReader) Close() error {
	if r.err == nil {
		r.err = io.EOF
	}
	r.stop()
	return nil
}

func (r *LineReader) stop() {
	if !r.closed {
		r.closed = true
		close(r.requests)
	}
}

func (r *LineReader) interrupted() error {
	io.WriteString(r.out, "\n")
	r.intr.Clear()
	return ErrInterrupted
}

// ReadLine returns the next line without its trailing newline. It returns
// io.EOF once the input is exhausted and ErrInterrupted if the interrupt
// flag was raised before the line was complete. A line that fills the buffer
// is returned without waiting for the newline, the rest of it comes back
// from the next call.
func (r *LineReader) ReadLine() (string, error) {
	if r.err != nil {
		return "", r.err
	}
	if !r.started {
		r.started = true
		go r.pump()
	}

	var line []byte
	for len(line) < r.size-1 {
		if r.intr.IsSet() {
			return "", r.interrupted()
		}

		if !r.pending {
			r.requests <- struct{}{}
			r.pending = true
		}

		select {
		case res := <-r.results:
			r.pending = false
			if res.n > 0 {
				line = append(line, res.b)
				if res.b == '\n' {
					return string(line[:len(line)-1]), nil
				}
			}

			if res.err != nil {
				r.err = res.err
				r.stop()
				if errors.Is(res.err, io.EOF) {
					r.err = io.EOF
				}
				if len(line) == 0 {
					return "", r.err
				}
				return string(line), nil
			}

		case <-r.intr.C():
			if r.intr.IsSet() {
				return "", r.interrupted()
			}
		}
	}

	return string(line), nil
}
