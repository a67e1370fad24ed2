package transcode

import "encoding/binary"

// Codec converts single scalars to and from their encoded form.
//
// Implementations are stateless and safe for concurrent use.
type Codec interface {
	// Name returns the encoding name, e.g. "utf16le".
	Name() string

	// MinLen returns the smallest number of bytes one scalar can occupy.
	MinLen() int

	// MaxLen returns the largest number of bytes one scalar can occupy.
	MaxLen() int

	// DecodeOne decodes the scalar at the start of src and returns it with the
	// number of bytes it occupies. It returns ErrIncomplete when src is a
	// truncated prefix of a valid sequence (including an empty src), and an
	// error matching ErrInvalid when no further bytes could make it valid.
	DecodeOne(src []byte) (Scalar, int, error)

	// EncodeOne writes s to the start of dst and returns the number of bytes
	// written. It returns ErrShortBuffer when dst is too small and
	// ErrOutOfRange when s cannot be represented.
	EncodeOne(dst []byte, s Scalar) (int, error)
}

var _ Codec = UTF8

func (e Encoding) Name() string {
	return e.String()
}

func (e Encoding) MinLen() int {
	switch e {
	case UTF16LE, UTF16BE:
		return 2
	case UTF32LE, UTF32BE:
		return 4
	}
	return 1
}

func (e Encoding) MaxLen() int {
	switch e {
	case ASCII:
		return 1
	case UTF8, UTF16LE, UTF16BE, UTF32LE, UTF32BE:
		return 4
	}
	return 1
}

func (e Encoding) DecodeOne(src []byte) (Scalar, int, error) {
	switch e {
	case ASCII:
		return decodeASCII(src)
	case UTF8:
		return decodeUTF8(src)
	case UTF16LE:
		return decodeUTF16(src, binary.LittleEndian)
	case UTF16BE:
		return decodeUTF16(src, binary.BigEndian)
	case UTF32LE:
		return decodeUTF32(src, binary.LittleEndian)
	case UTF32BE:
		return decodeUTF32(src, binary.BigEndian)
	}
	return 0, 0, ErrUnknownEncoding
}

func (e Encoding) EncodeOne(dst []byte, s Scalar) (int, error) {
	switch e {
	case ASCII:
		return encodeASCII(dst, s)
	case UTF8:
		return encodeUTF8(dst, s)
	case UTF16LE:
		return encodeUTF16(dst, s, binary.LittleEndian)
	case UTF16BE:
		return encodeUTF16(dst, s, binary.BigEndian)
	case UTF32LE:
		return encodeUTF32(dst, s, binary.LittleEndian)
	case UTF32BE:
		return encodeUTF32(dst, s, binary.BigEndian)
	}
	return 0, ErrUnknownEncoding
}
