package bashnul

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEncoding(t *testing.T) {
	encoded, err := Encoding.NewEncoder().Bytes([]byte("\x41\x00\x42"))
	require.NoError(t, err)
	require.Equal(t, []byte("\x41\x01\x02\x42"), encoded)

	decoded, err := Encoding.NewDecoder().Bytes(encoded)
	require.NoError(t, err)
	require.Equal(t, []byte("\x41\x00\x42"), decoded)

	_, err = Encoding.NewDecoder().String("\x41\x01")
	require.ErrorIs(t, err, ErrTruncatedEscape)
}

func TestEscapeTables(t *testing.T) {
	for i := 0; i < 256; i++ {
		c := byte(i)
		e, ok := escape(c)
		require.Equal(t, c <= EscapeByte, ok)
		require.Equal(t, e, escapeLUT[c])
		if ok {
			u, ok := unescape(e)
			require.True(t, ok)
			require.Equal(t, c, u)
		}

		_, ok = unescape(c)
		require.Equal(t, ok, unescapeLUT[c] != 0)
	}
}
