package transcode

// Encode encodes text with c. It stops at the first scalar c cannot encode and
// returns the bytes produced so far together with the number of scalars left
// unprocessed. The error is nil exactly when the remainder is 0.
func Encode(text Text, c Codec) (Bytes, int, error) {
	if len(text) == 0 {
		return Bytes{}, 0, nil
	}

	buf := make([]byte, MaxEncodedLen(c, len(text)))
	write := 0
	for i, s := range text {
		n, err := c.EncodeOne(buf[write:], s)
		if err != nil {
			return Bytes(buf[:write]), len(text) - i, newError(OpEncode, c, i, err)
		}
		write += n
	}
	return Bytes(buf[:write]), 0, nil
}

// Decode decodes src with c. It stops at the first invalid or truncated
// sequence and returns the text decoded so far together with the number of
// bytes left unconsumed. The error is nil exactly when the remainder is 0.
func Decode(src Bytes, c Codec) (Text, int, error) {
	if len(src) == 0 {
		return Text{}, 0, nil
	}

	text := make(Text, 0, len(src)/c.MinLen())
	pos := 0
	for pos < len(src) {
		s, n, err := c.DecodeOne(src[pos:])
		if err != nil {
			return text, len(src) - pos, newError(OpDecode, c, pos, err)
		}
		text = append(text, s)
		pos += n
	}
	return text, 0, nil
}

// Convert re-encodes src from one encoding to another one scalar at a time,
// without building an intermediate Text. It stops at the first sequence that
// cannot be decoded or whose scalar cannot be encoded; the returned remainder
// counts the source bytes not consumed, including those of the failing scalar.
func Convert(src Bytes, from, to Codec) (Bytes, int, error) {
	if len(src) == 0 {
		return Bytes{}, 0, nil
	}

	buf := make([]byte, MaxConvertedLen(from, to, len(src)))
	pos, write, err := convert(buf, src, from, to)
	if err != nil {
		return Bytes(buf[:write]), len(src) - pos, err
	}
	return Bytes(buf[:write]), 0, nil
}

// convert is the shared loop of Convert and Transformer. It returns the number
// of source bytes consumed and destination bytes written; err is non-nil when
// it stopped before the end of src.
func convert(dst, src []byte, from, to Codec) (nSrc, nDst int, err error) {
	for nSrc < len(src) {
		s, n, derr := from.DecodeOne(src[nSrc:])
		if derr != nil {
			return nSrc, nDst, newError(OpConvert, from, nSrc, derr)
		}
		m, eerr := to.EncodeOne(dst[nDst:], s)
		if eerr != nil {
			return nSrc, nDst, newError(OpConvert, to, nSrc, eerr)
		}
		nSrc += n
		nDst += m
	}
	return nSrc, nDst, nil
}
