package transcode

func decodeASCII(src []byte) (Scalar, int, error) {
	if len(src) < 1 {
		return 0, 0, ErrIncomplete
	}
	if src[0] >= 0x80 {
		return 0, 0, ErrMalformed
	}
	return Scalar(src[0]), 1, nil
}

func encodeASCII(dst []byte, s Scalar) (int, error) {
	if s >= 0x80 {
		return 0, ErrOutOfRange
	}
	if len(dst) < 1 {
		return 0, ErrShortBuffer
	}
	dst[0] = byte(s)
	return 1, nil
}
