package bashnul

// EscapeByte introduces every escape sequence in an encoded stream. It never
// appears on its own in valid encoded data.
const EscapeByte = 0x01

// Escaped forms of the two values that need escaping.
const (
	escapedNul    = 0x02 // 00 => 01 02
	escapedEscape = 0x03 // 01 => 01 03
)

// escapeOffset maps an escaped value to the byte following EscapeByte.
const escapeOffset = escapedNul - 0x00

func escape(c byte) (byte, bool) {
	if c == 0x00 || c == EscapeByte {
		return c + escapeOffset, true
	}
	return 0, false
}

func unescape(c byte) (byte, bool) {
	if c == escapedNul || c == escapedEscape {
		return c - escapeOffset, true
	}
	return 0, false
}

func init() {
	for i := 0; i < 256; i++ {
		if e, ok := escape(byte(i)); ok {
			escapeLUT[i] = e
		}
		if u, ok := unescape(byte(i)); ok {
			unescapeLUT[i] = uint16(u) | unescapeValid
		}
	}
}

// unescapeValid marks populated unescapeLUT entries, since 0x00 is itself a
// decoded value.
const unescapeValid = 0x100

// escapeLUT holds the second byte of the escape sequence for bytes that need
// escaping, and 0 for bytes that pass through unchanged.
var escapeLUT [256]byte
var unescapeLUT [256]uint16
