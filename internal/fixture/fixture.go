// Package fixture generates random text and writes it to disk in every
// encoding, for cross-checking conversions between files.
package fixture

import (
	"encoding/binary"
	"fmt"
	"math/rand/v2"
	"os"
	"path/filepath"

	"github.com/mnightingale/transcode"
)

// Encodings are the encodings written by Write. ASCII is left out because
// random text is almost never representable in it.
var Encodings = []transcode.Encoding{
	transcode.UTF8,
	transcode.UTF16LE,
	transcode.UTF16BE,
	transcode.UTF32LE,
	transcode.UTF32BE,
}

// NewRand returns a deterministic generator for seed.
func NewRand(seed uint64) *rand.Rand {
	var key [32]byte
	for i := 0; i < len(key); i += 8 {
		binary.LittleEndian.PutUint64(key[i:], seed)
	}
	return rand.New(rand.NewChaCha8(key))
}

// RandomScalar returns a uniformly distributed scalar value, never a surrogate.
func RandomScalar(r *rand.Rand) transcode.Scalar {
	for {
		v := r.Uint32N(uint32(transcode.MaxScalar) + 1)
		if !transcode.IsSurrogate(v) {
			return transcode.Scalar(v)
		}
	}
}

// RandomText returns n random scalars.
func RandomText(r *rand.Rand, n int) transcode.Text {
	text := make(transcode.Text, n)
	for i := range text {
		text[i] = RandomScalar(r)
	}
	return text
}

// FileName returns the fixture file name for enc, e.g. "utf16le.txt".
func FileName(enc transcode.Encoding) string {
	return enc.String() + ".txt"
}

// Write encodes text with each encoding into dir and returns the paths
// written.
func Write(dir string, text transcode.Text, encs ...transcode.Encoding) ([]string, error) {
	if len(encs) == 0 {
		encs = Encodings
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}

	paths := make([]string, 0, len(encs))
	for _, enc := range encs {
		b, rem, err := transcode.Encode(text, enc)
		if rem != 0 {
			return paths, fmt.Errorf("encode %s: %w", enc, err)
		}
		path := filepath.Join(dir, FileName(enc))
		if err := os.WriteFile(path, b, 0o644); err != nil {
			return paths, err
		}
		paths = append(paths, path)
	}
	return paths, nil
}

// Load reads the fixture for enc from dir.
func Load(dir string, enc transcode.Encoding) (transcode.Bytes, error) {
	b, err := os.ReadFile(filepath.Join(dir, FileName(enc)))
	if err != nil {
		return nil, err
	}
	return transcode.Bytes(b), nil
}
