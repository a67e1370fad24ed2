package transcode

import (
	"encoding/hex"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func unhex(t testing.TB, s string) []byte {
	t.Helper()
	b, err := hex.DecodeString(strings.ReplaceAll(s, " ", ""))
	require.NoError(t, err)
	return b
}

type decodeCase struct {
	name   string
	enc    Encoding
	input  string // hex
	scalar Scalar
	size   int
	err    error
}

func TestDecodeOne(t *testing.T) {
	cases := []decodeCase{
		{"ascii A", ASCII, "41 42", 'A', 1, nil},
		{"ascii high bit", ASCII, "80", 0, 0, ErrMalformed},
		{"ascii empty", ASCII, "", 0, 0, ErrIncomplete},

		{"utf8 1", UTF8, "41", 'A', 1, nil},
		{"utf8 2", UTF8, "c3 a9", 0xE9, 2, nil},
		{"utf8 3", UTF8, "e2 82 ac", 0x20AC, 3, nil},
		{"utf8 4", UTF8, "f0 9f 98 80", 0x1F600, 4, nil},
		{"utf8 max", UTF8, "f4 8f bf bf", MaxScalar, 4, nil},
		{"utf8 trailing bytes ignored", UTF8, "c3 a9 41", 0xE9, 2, nil},
		{"utf8 FF", UTF8, "ff", 0, 0, ErrMalformed},
		{"utf8 FF padded", UTF8, "ff 80 80 80", 0, 0, ErrMalformed},
		{"utf8 stray continuation", UTF8, "80", 0, 0, ErrMalformed},
		{"utf8 overlong C0", UTF8, "c0 80", 0, 0, ErrMalformed},
		{"utf8 overlong C1", UTF8, "c1 bf", 0, 0, ErrMalformed},
		{"utf8 overlong E0", UTF8, "e0 80 80", 0, 0, ErrMalformed},
		{"utf8 overlong F0", UTF8, "f0 8f bf bf", 0, 0, ErrMalformed},
		{"utf8 surrogate", UTF8, "ed a0 80", 0, 0, ErrOutOfRange},
		{"utf8 above max", UTF8, "f4 90 80 80", 0, 0, ErrOutOfRange},
		{"utf8 F5 lead", UTF8, "f5 80 80 80", 0, 0, ErrOutOfRange},
		{"utf8 F8 lead", UTF8, "f8 88 80 80 80", 0, 0, ErrMalformed},
		{"utf8 bad second byte", UTF8, "c3 41", 0, 0, ErrMalformed},
		{"utf8 bad third byte", UTF8, "e2 82 41", 0, 0, ErrMalformed},
		{"utf8 bad fourth byte", UTF8, "f0 9f 98 41", 0, 0, ErrMalformed},
		{"utf8 empty", UTF8, "", 0, 0, ErrIncomplete},
		{"utf8 short 2", UTF8, "c3", 0, 0, ErrIncomplete},
		{"utf8 short 3", UTF8, "e2 82", 0, 0, ErrIncomplete},
		{"utf8 short 4", UTF8, "f0 9f 98", 0, 0, ErrIncomplete},
		{"utf8 short lead only", UTF8, "f0", 0, 0, ErrIncomplete},
		{"utf8 short bad prefix", UTF8, "e2 41", 0, 0, ErrMalformed},
		{"utf8 short overlong prefix", UTF8, "e0 9f", 0, 0, ErrMalformed},

		{"utf16le bmp", UTF16LE, "41 00", 'A', 2, nil},
		{"utf16le euro", UTF16LE, "ac 20", 0x20AC, 2, nil},
		{"utf16le pair", UTF16LE, "3d d8 00 de", 0x1F600, 4, nil},
		{"utf16le lone low", UTF16LE, "00 dc 41 00", 0, 0, ErrUnpairedSurrogate},
		{"utf16le high then bmp", UTF16LE, "3d d8 41 00", 0, 0, ErrUnpairedSurrogate},
		{"utf16le high then high", UTF16LE, "3d d8 3d d8", 0, 0, ErrUnpairedSurrogate},
		{"utf16le high only", UTF16LE, "3d d8", 0, 0, ErrIncomplete},
		{"utf16le high and a byte", UTF16LE, "3d d8 00", 0, 0, ErrIncomplete},
		{"utf16le one byte", UTF16LE, "41", 0, 0, ErrIncomplete},

		{"utf16be bmp", UTF16BE, "00 41", 'A', 2, nil},
		{"utf16be pair", UTF16BE, "d8 3d de 00", 0x1F600, 4, nil},
		{"utf16be lone low", UTF16BE, "dc 00", 0, 0, ErrUnpairedSurrogate},
		{"utf16be high only", UTF16BE, "d8 3d", 0, 0, ErrIncomplete},

		{"utf32le", UTF32LE, "00 f6 01 00", 0x1F600, 4, nil},
		{"utf32le surrogate", UTF32LE, "00 d8 00 00", 0, 0, ErrOutOfRange},
		{"utf32le above max", UTF32LE, "00 00 11 00", 0, 0, ErrOutOfRange},
		{"utf32le short", UTF32LE, "00 f6 01", 0, 0, ErrIncomplete},

		{"utf32be", UTF32BE, "00 01 f6 00", 0x1F600, 4, nil},
		{"utf32be max", UTF32BE, "00 10 ff ff", MaxScalar, 4, nil},
		{"utf32be above max", UTF32BE, "ff ff ff ff", 0, 0, ErrOutOfRange},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s, n, err := tc.enc.DecodeOne(unhex(t, tc.input))
			if tc.err != nil {
				require.ErrorIs(t, err, tc.err)
				require.Zero(t, n)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tc.scalar, s)
			require.Equal(t, tc.size, n)
		})
	}
}

func TestErrorKinds(t *testing.T) {
	for _, err := range []error{ErrMalformed, ErrUnpairedSurrogate, ErrOutOfRange} {
		require.ErrorIs(t, err, ErrInvalid)
	}
	for _, err := range []error{ErrIncomplete, ErrShortBuffer} {
		require.NotErrorIs(t, err, ErrInvalid)
	}
}

type encodeCase struct {
	enc      Encoding
	scalar   Scalar
	expected string // hex
	err      error
}

func TestEncodeOne(t *testing.T) {
	cases := []encodeCase{
		{ASCII, 'A', "41", nil},
		{ASCII, 0x7F, "7f", nil},
		{ASCII, 0x80, "", ErrOutOfRange},
		{UTF8, 0x7F, "7f", nil},
		{UTF8, 0x80, "c2 80", nil},
		{UTF8, 0x7FF, "df bf", nil},
		{UTF8, 0x800, "e0 a0 80", nil},
		{UTF8, 0xFFFF, "ef bf bf", nil},
		{UTF8, 0x10000, "f0 90 80 80", nil},
		{UTF8, MaxScalar, "f4 8f bf bf", nil},
		{UTF8, 0x110000, "", ErrOutOfRange},
		{UTF16LE, 0xE9, "e9 00", nil},
		{UTF16LE, 0x1F600, "3d d8 00 de", nil},
		{UTF16LE, 0x110000, "", ErrOutOfRange},
		{UTF16BE, 0xE9, "00 e9", nil},
		{UTF16BE, 0x1F600, "d8 3d de 00", nil},
		{UTF32LE, 0x1F600, "00 f6 01 00", nil},
		{UTF32BE, 0x1F600, "00 01 f6 00", nil},
		{UTF32BE, 0x110000, "", ErrOutOfRange},
	}

	for _, tc := range cases {
		t.Run(tc.enc.String()+" "+tc.scalar.String(), func(t *testing.T) {
			dst := make([]byte, 8)
			n, err := tc.enc.EncodeOne(dst, tc.scalar)
			if tc.err != nil {
				require.ErrorIs(t, err, tc.err)
				return
			}
			require.NoError(t, err)
			require.Equal(t, unhex(t, tc.expected), dst[:n])
		})
	}
}

func TestEncodeOneSurrogate(t *testing.T) {
	for _, enc := range Encodings {
		for _, v := range []Scalar{0xD800, 0xDBFF, 0xDC00, 0xDFFF} {
			_, err := enc.EncodeOne(make([]byte, 8), v)
			require.ErrorIs(t, err, ErrOutOfRange, "%s %s", enc, v)
		}
	}
}

func TestEncodeOneShortBuffer(t *testing.T) {
	cases := []struct {
		enc    Encoding
		scalar Scalar
		size   int
	}{
		{ASCII, 'A', 0},
		{UTF8, 0xE9, 1},
		{UTF8, 0x20AC, 2},
		{UTF8, 0x1F600, 3},
		{UTF16LE, 'A', 1},
		{UTF16BE, 0x1F600, 3},
		{UTF32LE, 'A', 3},
	}

	for _, tc := range cases {
		t.Run(tc.enc.String(), func(t *testing.T) {
			_, err := tc.enc.EncodeOne(make([]byte, tc.size), tc.scalar)
			require.ErrorIs(t, err, ErrShortBuffer)
		})
	}
}

// Every valid scalar survives a round trip through every encoding that can
// hold it.
func TestCodecExhaustive(t *testing.T) {
	dst := make([]byte, 4)
	for _, enc := range Encodings {
		limit := MaxScalar
		if enc == ASCII {
			limit = 0x7F
		}
		for v := Scalar(0); v <= limit; v++ {
			if !v.Valid() {
				continue
			}
			n, err := enc.EncodeOne(dst, v)
			if err != nil {
				t.Fatalf("%s encode %s: %v", enc, v, err)
			}
			got, m, err := enc.DecodeOne(dst[:n])
			if err != nil || got != v || m != n {
				t.Fatalf("%s decode %s: got %s size %d err %v", enc, v, got, m, err)
			}
			// every proper prefix is reported as incomplete, never invalid
			for k := 0; k < n; k++ {
				if _, _, err := enc.DecodeOne(dst[:k]); err != ErrIncomplete {
					t.Fatalf("%s decode prefix %x of %s: %v", enc, dst[:k], v, err)
				}
			}
		}
	}
}

func TestParseEncoding(t *testing.T) {
	cases := []struct {
		name     string
		expected Encoding
	}{
		{"ascii", ASCII},
		{"US-ASCII", ASCII},
		{"utf8", UTF8},
		{"UTF-8", UTF8},
		{"utf-16le", UTF16LE},
		{"UTF16BE", UTF16BE},
		{" utf32le ", UTF32LE},
		{"utf-32be", UTF32BE},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			enc, err := ParseEncoding(tc.name)
			require.NoError(t, err)
			require.Equal(t, tc.expected, enc)
		})
	}

	_, err := ParseEncoding("latin1")
	require.ErrorIs(t, err, ErrUnknownEncoding)
}

func TestEncodingString(t *testing.T) {
	require.Equal(t, "utf16le", UTF16LE.String())
	require.Equal(t, "Encoding(42)", Encoding(42).String())
	_, _, err := Encoding(42).DecodeOne([]byte{0})
	require.ErrorIs(t, err, ErrUnknownEncoding)
}
