package transcode

import "encoding/binary"

func decodeUTF32(src []byte, order binary.ByteOrder) (Scalar, int, error) {
	if len(src) < 4 {
		return 0, 0, ErrIncomplete
	}
	v := order.Uint32(src)
	if !IsValid(v) {
		return 0, 0, ErrOutOfRange
	}
	return Scalar(v), 4, nil
}

func encodeUTF32(dst []byte, s Scalar, order binary.ByteOrder) (int, error) {
	if !s.Valid() {
		return 0, ErrOutOfRange
	}
	if len(dst) < 4 {
		return 0, ErrShortBuffer
	}
	order.PutUint32(dst, uint32(s))
	return 4, nil
}
