package bashnul

// MaxEncodedLength returns the maximum possible length of the encoded output
// for length bytes of input, reached when every byte needs escaping.
func MaxEncodedLength(length int) int {
	return length * 2
}

// MaxDecodedLength returns the maximum possible length of the decoded output
// for length bytes of encoded input. Decoding never grows its input.
func MaxDecodedLength(length int) int {
	return length
}
