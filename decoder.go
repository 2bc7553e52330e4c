package bashnul

import (
	"io"

	"golang.org/x/text/transform"
)

// Decoder reverses [Encoder]. Input may be split anywhere, including between
// the two bytes of an escape sequence: a chunk ending in [EscapeByte] leaves
// the decoder pending until the next chunk supplies the second byte.
//
// Every error is final. Once Transform has failed it keeps returning the same
// error until Reset is called.
type Decoder struct {
	pending bool  // previous chunk ended with an unmatched EscapeByte
	offset  int64 // number of encoded bytes consumed so far
	err     error
}

var _ Codec = (*Decoder)(nil)

// NewDecoder returns a new [Decoder].
func NewDecoder() *Decoder {
	return &Decoder{}
}

// Reset discards the [Decoder] d's state, so that it can decode a new stream.
func (d *Decoder) Reset() {
	d.pending = false
	d.offset = 0
	d.err = nil
}

func (d *Decoder) fail(err *SyntaxError) error {
	d.err = err
	return err
}

// Transform decodes src into dst. When atEOF is set, a trailing unmatched
// EscapeByte is reported as [ErrTruncatedEscape]; otherwise it is consumed
// and resolved by the next call.
func (d *Decoder) Transform(dst, src []byte, atEOF bool) (nDst, nSrc int, err error) {
	if d.err != nil {
		return 0, 0, d.err
	}
	defer func() { d.offset += int64(nSrc) }()

	if d.pending {
		if len(src) == 0 {
			if atEOF {
				return 0, 0, d.fail(&SyntaxError{Offset: d.offset - 1, Byte: EscapeByte, Err: ErrTruncatedEscape})
			}
			return 0, 0, nil
		}
		u := unescapeLUT[src[0]]
		if u == 0 {
			return 0, 0, d.fail(&SyntaxError{Offset: d.offset, Byte: src[0], Err: ErrInvalidEscape})
		}
		if len(dst) == 0 {
			return 0, 0, transform.ErrShortDst
		}
		dst[0] = byte(u)
		nDst, nSrc = 1, 1
		d.pending = false
	}

	start := nSrc
	flush := func(end int) bool {
		n := copy(dst[nDst:], src[start:end])
		nDst += n
		nSrc = start + n
		return nSrc == end
	}

	for i := start; i < len(src); {
		c := src[i]
		if c > EscapeByte {
			i++
			continue
		}
		if !flush(i) {
			return nDst, nSrc, transform.ErrShortDst
		}

		if c == 0x00 {
			return nDst, nSrc, d.fail(&SyntaxError{Offset: d.offset + int64(i), Err: ErrUnescapedNul})
		}

		if i+1 == len(src) {
			if atEOF {
				return nDst, nSrc, d.fail(&SyntaxError{Offset: d.offset + int64(i), Byte: EscapeByte, Err: ErrTruncatedEscape})
			}
			d.pending = true
			return nDst, i + 1, nil
		}

		next := src[i+1]
		u := unescapeLUT[next]
		if u == 0 {
			return nDst, nSrc, d.fail(&SyntaxError{Offset: d.offset + int64(i+1), Byte: next, Err: ErrInvalidEscape})
		}
		if nDst == len(dst) {
			return nDst, nSrc, transform.ErrShortDst
		}
		dst[nDst] = byte(u)
		nDst++
		i += 2
		start, nSrc = i, i
	}

	if !flush(len(src)) {
		return nDst, nSrc, transform.ErrShortDst
	}
	return nDst, nSrc, nil
}

// Finish reports whether the stream ended cleanly, that is without an
// unmatched EscapeByte.
func (d *Decoder) Finish() error {
	_, _, err := d.Transform(nil, nil, true)
	return err
}

// MaxOutputLength returns the largest number of bytes n encoded bytes can
// decode to.
func (*Decoder) MaxOutputLength(n int) int {
	return MaxDecodedLength(n)
}

// NewDecodeReader returns a reader that yields the decoded contents of r.
// A truncated or malformed stream surfaces as a [*SyntaxError] from Read.
func NewDecodeReader(r io.Reader) io.Reader {
	return transform.NewReader(r, NewDecoder())
}

// NewDecodeWriter returns a writer that decodes everything written to it and
// passes the result on to w. Close reports [ErrTruncatedEscape] when the
// written stream ended on an unmatched EscapeByte.
func NewDecodeWriter(w io.Writer) io.WriteCloser {
	return transform.NewWriter(w, NewDecoder())
}
