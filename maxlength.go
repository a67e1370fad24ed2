package transcode

// MaxEncodedLen returns the maximum possible length of the encoding of n
// scalars with c.
func MaxEncodedLen(c Codec, n int) int {
	return n * c.MaxLen()
}

// MaxConvertedLen returns the maximum possible length of the output of
// converting length bytes from one encoding to another.
func MaxConvertedLen(from, to Codec, length int) int {
	// every scalar at its shortest in the source and longest in the target
	return (length / from.MinLen()) * to.MaxLen()
}
