package transcode

import (
	"fmt"
	"strconv"
	"strings"

	"fortio.org/safecast"
)

// Scalar is a single Unicode code point. Constructing one with Scalar(v) does
// not validate it; the codecs only ever produce valid scalars on decode and
// reject invalid ones on encode.
type Scalar uint32

const (
	// MaxScalar is the largest valid Unicode code point.
	MaxScalar Scalar = 0x10FFFF

	surrHighMin = 0xD800
	surrLowMin  = 0xDC00
	surrLowMax  = 0xDFFF
	surrSelf    = 0x10000
)

// ScalarFromRune converts r to a Scalar. Negative runes are rejected; other
// values are passed through unvalidated.
func ScalarFromRune(r rune) (Scalar, error) {
	v, err := safecast.Conv[uint32](r)
	if err != nil {
		return 0, fmt.Errorf("[transcode] rune %d: %w", r, ErrOutOfRange)
	}
	return Scalar(v), nil
}

// ParseScalar parses a code point written as "U+1F600", "0x1F600" or bare hex
// digits. Surrogates and values above MaxScalar are rejected with
// ErrOutOfRange; anything that is not hex is ErrMalformed.
func ParseScalar(s string) (Scalar, error) {
	digits := strings.TrimSpace(s)
	for _, prefix := range []string{"U+", "u+", "0x", "0X"} {
		if rest, ok := strings.CutPrefix(digits, prefix); ok {
			digits = rest
			break
		}
	}
	v, err := strconv.ParseInt(digits, 16, 64)
	if err != nil {
		return 0, fmt.Errorf("[transcode] code point %q: %w", s, ErrMalformed)
	}
	r, err := safecast.Conv[rune](v)
	if err != nil {
		return 0, fmt.Errorf("[transcode] code point %q: %w", s, ErrOutOfRange)
	}
	sc, err := ScalarFromRune(r)
	if err != nil {
		return 0, err
	}
	if !sc.Valid() {
		return 0, fmt.Errorf("[transcode] code point %q: %w", s, ErrOutOfRange)
	}
	return sc, nil
}

// IsSurrogateHigh reports whether v is in 0xD800..0xDBFF.
func IsSurrogateHigh(v uint32) bool {
	return surrHighMin <= v && v < surrLowMin
}

// IsSurrogateLow reports whether v is in 0xDC00..0xDFFF.
func IsSurrogateLow(v uint32) bool {
	return surrLowMin <= v && v <= surrLowMax
}

// IsSurrogate reports whether v is in 0xD800..0xDFFF.
func IsSurrogate(v uint32) bool {
	return surrHighMin <= v && v <= surrLowMax
}

// IsValid reports whether v is a Unicode scalar value.
func IsValid(v uint32) bool {
	return v <= uint32(MaxScalar) && !IsSurrogate(v)
}

// CombineSurrogates joins a UTF-16 surrogate pair into the scalar it encodes.
func CombineSurrogates(high, low uint32) Scalar {
	return Scalar(surrSelf + ((high&0x3FF)<<10 | (low & 0x3FF)))
}

// SplitScalar is the inverse of CombineSurrogates for s in 0x10000..0x10FFFF.
func SplitScalar(s Scalar) (high, low uint32) {
	v := uint32(s) - surrSelf
	return surrHighMin | (v>>10)&0x3FF, surrLowMin | v&0x3FF
}

// Valid reports whether s is a Unicode scalar value.
func (s Scalar) Valid() bool {
	return IsValid(uint32(s))
}

func (s Scalar) String() string {
	return fmt.Sprintf("U+%04X", uint32(s))
}
