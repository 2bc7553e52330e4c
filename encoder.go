package bashnul

import (
	"io"

	"golang.org/x/text/transform"
)

// Encoder escapes 00 into 01 02 and 01 into 01 03. It keeps no state between
// calls to Transform, so the zero value is ready to use.
type Encoder struct{ transform.NopResetter }

var _ Codec = Encoder{}

// NewEncoder returns a new [Encoder].
func NewEncoder() Encoder {
	return Encoder{}
}

// Transform writes the escaped form of src to dst. Runs of bytes that need no
// escaping are copied in one piece. An escape sequence is never split: if dst
// cannot hold both of its bytes, the escaped byte is left unconsumed and
// [transform.ErrShortDst] is returned.
func (Encoder) Transform(dst, src []byte, atEOF bool) (nDst, nSrc int, err error) {
	start := 0
	for i, c := range src {
		e := escapeLUT[c]
		if e == 0 {
			continue
		}

		if len(dst)-nDst < i-start+2 {
			n := copy(dst[nDst:], src[start:i])
			return nDst + n, start + n, transform.ErrShortDst
		}
		nDst += copy(dst[nDst:], src[start:i])
		dst[nDst] = EscapeByte
		dst[nDst+1] = e
		nDst += 2
		start = i + 1
	}

	n := copy(dst[nDst:], src[start:])
	nDst += n
	nSrc = start + n
	if nSrc < len(src) {
		err = transform.ErrShortDst
	}
	return nDst, nSrc, err
}

// MaxOutputLength returns the worst case encoded length of n bytes.
func (Encoder) MaxOutputLength(n int) int {
	return MaxEncodedLength(n)
}

// NewEncodeWriter returns a writer that escapes everything written to it and
// passes the result on to w. The writer must be closed to flush its output.
func NewEncodeWriter(w io.Writer) io.WriteCloser {
	return transform.NewWriter(w, Encoder{})
}

// NewEncodeReader returns a reader that yields the escaped contents of r.
func NewEncodeReader(r io.Reader) io.Reader {
	return transform.NewReader(r, Encoder{})
}
