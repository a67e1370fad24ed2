package transcode

// The lead byte selects the sequence length:
//
//	Byte-0    Byte-1    Byte-2    Byte-3    Value
//	0xxxxxxx                                0000 0000 0000 0xxx xxxx
//	110yyyyy  10xxxxxx                      0000 0000 0yyy yyxx xxxx
//	1110zzzz  10yyyyyy  10xxxxxx            0000 zzzz yyyy yyxx xxxx
//	11110uuu  10uuzzzz  10yyyyyy  10xxxxxx  uuuu zzzz yyyy yyxx xxxx
const (
	tx = 0b10000000
	t2 = 0b11000000
	t3 = 0b11100000
	t4 = 0b11110000
	t5 = 0b11111000

	maskx = 0b00111111
	mask2 = 0b00011111
	mask3 = 0b00001111
	mask4 = 0b00000111

	rune1Max = 1<<7 - 1
	rune2Max = 1<<11 - 1
	rune3Max = 1<<16 - 1
)

// utf8Seq describes a lead byte: the sequence length and the accepted range
// of the second byte. Narrowing the second byte rejects overlong forms,
// encoded surrogates and values above MaxScalar before the whole sequence
// has arrived, so a truncated prefix is never mistaken for a valid one.
type utf8Seq struct {
	size   int
	lo, hi byte
}

func utf8Lead(b byte) (utf8Seq, bool) {
	switch {
	case b < tx:
		return utf8Seq{size: 1}, true
	case b < 0xC2: // continuation byte, or overlong 2-byte lead C0/C1
		return utf8Seq{}, false
	case b < t3:
		return utf8Seq{2, 0x80, 0xBF}, true
	case b == 0xE0:
		return utf8Seq{3, 0xA0, 0xBF}, true
	case b == 0xED:
		return utf8Seq{3, 0x80, 0x9F}, true
	case b < t4:
		return utf8Seq{3, 0x80, 0xBF}, true
	case b == 0xF0:
		return utf8Seq{4, 0x90, 0xBF}, true
	case b < 0xF4:
		return utf8Seq{4, 0x80, 0xBF}, true
	case b == 0xF4:
		return utf8Seq{4, 0x80, 0x8F}, true
	}
	// F5..F7 lead values above MaxScalar; F8 and up are never leads.
	return utf8Seq{}, false
}

func isContinuation(b byte) bool {
	return b&t2 == tx
}

func decodeUTF8(src []byte) (Scalar, int, error) {
	if len(src) < 1 {
		return 0, 0, ErrIncomplete
	}
	b0 := src[0]
	seq, ok := utf8Lead(b0)
	if !ok {
		if 0xF5 <= b0 && b0 < t5 {
			return 0, 0, ErrOutOfRange
		}
		return 0, 0, ErrMalformed
	}
	if seq.size == 1 {
		return Scalar(b0), 1, nil
	}

	// Check every byte that is present before deciding the input is merely
	// short.
	n := min(len(src), seq.size)
	if n > 1 {
		if b1 := src[1]; b1 < seq.lo || b1 > seq.hi {
			switch {
			case !isContinuation(b1):
				return 0, 0, ErrMalformed
			case b0 == 0xED:
				return 0, 0, ErrOutOfRange // encoded surrogate
			case b0 == 0xF4:
				return 0, 0, ErrOutOfRange
			}
			return 0, 0, ErrMalformed // overlong
		}
	}
	for i := 2; i < n; i++ {
		if !isContinuation(src[i]) {
			return 0, 0, ErrMalformed
		}
	}
	if n < seq.size {
		return 0, 0, ErrIncomplete
	}

	switch seq.size {
	case 2:
		return Scalar(b0&mask2)<<6 | Scalar(src[1]&maskx), 2, nil
	case 3:
		return Scalar(b0&mask3)<<12 | Scalar(src[1]&maskx)<<6 | Scalar(src[2]&maskx), 3, nil
	}
	return Scalar(b0&mask4)<<18 | Scalar(src[1]&maskx)<<12 | Scalar(src[2]&maskx)<<6 | Scalar(src[3]&maskx), 4, nil
}

func utf8Len(s Scalar) int {
	switch {
	case s <= rune1Max:
		return 1
	case s <= rune2Max:
		return 2
	case s <= rune3Max:
		return 3
	}
	return 4
}

func encodeUTF8(dst []byte, s Scalar) (int, error) {
	if !s.Valid() {
		return 0, ErrOutOfRange
	}
	n := utf8Len(s)
	if len(dst) < n {
		return 0, ErrShortBuffer
	}
	switch n {
	case 1:
		dst[0] = byte(s)
	case 2:
		dst[0] = t2 | byte(s>>6)
		dst[1] = tx | byte(s)&maskx
	case 3:
		dst[0] = t3 | byte(s>>12)
		dst[1] = tx | byte(s>>6)&maskx
		dst[2] = tx | byte(s)&maskx
	default:
		dst[0] = t4 | byte(s>>18)
		dst[1] = tx | byte(s>>12)&maskx
		dst[2] = tx | byte(s>>6)&maskx
		dst[3] = tx | byte(s)&maskx
	}
	return n, nil
}
