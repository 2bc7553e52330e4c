package bashnul

import (
	"slices"

	"golang.org/x/text/encoding"
	"golang.org/x/text/transform"
)

// Codec is one direction of the transcoder. MaxOutputLength bounds the output
// of a single Transform call so that callers can size their buffers up front.
type Codec interface {
	transform.Transformer
	MaxOutputLength(n int) int
}

// Encoding exposes the transcoder as an [encoding.Encoding], for callers that
// already deal in x/text encoders and decoders.
var Encoding encoding.Encoding = nulEncoding{}

type nulEncoding struct{}

func (nulEncoding) NewDecoder() *encoding.Decoder {
	return &encoding.Decoder{Transformer: NewDecoder()}
}

func (nulEncoding) NewEncoder() *encoding.Encoder {
	return &encoding.Encoder{Transformer: NewEncoder()}
}

func (nulEncoding) String() string {
	return "bashnul"
}

// AppendEncode appends the encoded form of src to dst and returns the
// extended buffer.
func AppendEncode(dst, src []byte) []byte {
	dst = slices.Grow(dst, MaxEncodedLength(len(src)))
	n, _, _ := Encoder{}.Transform(dst[len(dst):cap(dst)], src, true)
	return dst[:len(dst)+n]
}

// Encode returns the encoded form of src.
func Encode(src []byte) []byte {
	return AppendEncode(nil, src)
}

// Decode decodes a complete encoded stream held in memory. It is faster than
// wrapping src in a reader because the output is sized once and no partial
// escapes need to be carried between reads.
func Decode(src []byte) ([]byte, error) {
	dst := make([]byte, MaxDecodedLength(len(src)))
	n, _, err := NewDecoder().Transform(dst, src, true)
	if err != nil {
		return nil, err
	}
	return dst[:n], nil
}
