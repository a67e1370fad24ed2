package transcode

import (
	"bytes"
	"math/rand/v2"
)

// newRand returns a deterministic generator.
func newRand(seed byte) *rand.Rand {
	return rand.New(rand.NewChaCha8([32]byte(bytes.Repeat([]byte{0xBA, 0xAD, 0xF0, seed}, 8))))
}

// randomText returns n scalars drawn uniformly from all valid scalar values.
func randomText(r *rand.Rand, n int) Text {
	text := make(Text, 0, n)
	for len(text) < n {
		v := r.Uint32N(uint32(MaxScalar) + 1)
		if !IsSurrogate(v) {
			text = append(text, Scalar(v))
		}
	}
	return text
}

// randomASCII returns n scalars below 0x80.
func randomASCII(r *rand.Rand, n int) Text {
	text := make(Text, n)
	for i := range text {
		text[i] = Scalar(r.Uint32N(0x80))
	}
	return text
}

// textFor returns random text every encoding in encs can represent.
func textFor(r *rand.Rand, n int, encs ...Encoding) Text {
	for _, e := range encs {
		if e == ASCII {
			return randomASCII(r, n)
		}
	}
	return randomText(r, n)
}

// chunks splits b at random points into pieces of 1 to size bytes.
func chunks(r *rand.Rand, b []byte, size int) [][]byte {
	var out [][]byte
	for len(b) > 0 {
		n := min(1+r.IntN(size), len(b))
		out = append(out, b[:n])
		b = b[n:]
	}
	return out
}
