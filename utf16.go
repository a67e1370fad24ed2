package transcode

import "encoding/binary"

func decodeUTF16(src []byte, order binary.ByteOrder) (Scalar, int, error) {
	if len(src) < 2 {
		return 0, 0, ErrIncomplete
	}
	r1 := uint32(order.Uint16(src))
	switch {
	case !IsSurrogate(r1):
		return Scalar(r1), 2, nil
	case IsSurrogateLow(r1):
		return 0, 0, ErrUnpairedSurrogate
	}

	if len(src) < 4 {
		return 0, 0, ErrIncomplete
	}
	r2 := uint32(order.Uint16(src[2:]))
	if !IsSurrogateLow(r2) {
		return 0, 0, ErrUnpairedSurrogate
	}
	return CombineSurrogates(r1, r2), 4, nil
}

func encodeUTF16(dst []byte, s Scalar, order binary.ByteOrder) (int, error) {
	switch {
	case s < surrSelf && !IsSurrogate(uint32(s)):
		if len(dst) < 2 {
			return 0, ErrShortBuffer
		}
		order.PutUint16(dst, uint16(s))
		return 2, nil

	case surrSelf <= s && s <= MaxScalar:
		if len(dst) < 4 {
			return 0, ErrShortBuffer
		}
		r1, r2 := SplitScalar(s)
		order.PutUint16(dst, uint16(r1))
		order.PutUint16(dst[2:], uint16(r2))
		return 4, nil
	}
	return 0, ErrOutOfRange
}
