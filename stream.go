package bashnul

import (
	"errors"
	"fmt"
	"io"
	"syscall"

	"golang.org/x/text/transform"
)

// Stream moves data from a source through a [Codec] into a sink, one chunk at
// a time. Each chunk is fully written before the next one is read.
type Stream struct {
	src  io.Reader
	sink io.Writer

	chunkSize  int
	retryLimit int

	in, out []byte
	written int64
}

// NewStream returns a [Stream] reading from src and writing to sink.
func NewStream(src io.Reader, sink io.Writer, opts ...Option) *Stream {
	s := &Stream{
		src:        src,
		sink:       sink,
		chunkSize:  DefaultChunkSize,
		retryLimit: DefaultRetryLimit,
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Run transcodes the source until it reports io.EOF, then finalises c. It
// returns the number of bytes written to the sink.
func (s *Stream) Run(c Codec) (int64, error) {
	c.Reset()
	s.written = 0
	if len(s.in) != s.chunkSize {
		s.in = make([]byte, s.chunkSize)
	}
	if size := c.MaxOutputLength(s.chunkSize); len(s.out) < size {
		s.out = make([]byte, size)
	}

	for {
		n, eof, err := s.read(s.in)
		if err != nil {
			return s.written, err
		}

		if err := s.transform(c, s.in[:n], eof); err != nil {
			return s.written, err
		}
		if eof {
			return s.written, nil
		}
	}
}

func (s *Stream) transform(c Codec, chunk []byte, atEOF bool) error {
	nDst, nSrc, err := c.Transform(s.out, chunk, atEOF)
	if errors.Is(err, transform.ErrShortDst) || errors.Is(err, transform.ErrShortSrc) || (err == nil && nSrc != len(chunk)) {
		return fmt.Errorf("%w: %d bytes in, %d bytes out", ErrShortBuffer, len(chunk), len(s.out))
	}
	if err != nil {
		return err
	}
	return s.write(s.out[:nDst])
}

// temporary reports whether err is an interruption that did not lose data and
// is worth retrying.
func temporary(err error) bool {
	return errors.Is(err, syscall.EINTR) || errors.Is(err, syscall.EAGAIN)
}

// read returns the next chunk, or eof once the source is exhausted.
func (s *Stream) read(p []byte) (n int, eof bool, err error) {
	for loop := 0; ; {
		n, err = s.src.Read(p)
		switch {
		case n > 0 && (err == nil || errors.Is(err, io.EOF) || temporary(err)):
			// Leave EOF to be reported by the next, empty, read.
			return n, false, nil
		case n > 0:
			return 0, false, fmt.Errorf("%w: %w", ErrRead, err)
		case errors.Is(err, io.EOF):
			return 0, true, nil
		case err != nil && !temporary(err):
			return 0, false, fmt.Errorf("%w: %w", ErrRead, err)
		}

		if loop++; loop >= s.retryLimit {
			return 0, false, fmt.Errorf("read: %w after %d attempts", ErrStuckStream, loop)
		}
	}
}

// write hands all of p to the sink, resuming after partial writes.
func (s *Stream) write(p []byte) error {
	for loop := 0; len(p) > 0; {
		n, err := s.sink.Write(p)
		if n > 0 {
			p = p[n:]
			s.written += int64(n)
			loop = 0
		}

		switch {
		case err == nil && n == 0:
			return ErrSinkClosed
		case err == nil:
			continue
		case errors.Is(err, syscall.EPIPE), errors.Is(err, io.ErrClosedPipe):
			return fmt.Errorf("%w: %w", ErrSinkClosed, err)
		case !temporary(err) && !errors.Is(err, io.ErrShortWrite):
			return fmt.Errorf("%w: %w", ErrWrite, err)
		}

		if n == 0 {
			if loop++; loop >= s.retryLimit {
				return fmt.Errorf("write: %w after %d attempts", ErrStuckStream, loop)
			}
		}
	}
	return nil
}
