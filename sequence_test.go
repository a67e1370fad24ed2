package transcode

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNormalize(t *testing.T) {
	require.Equal(t, 0, Normalize(0, 5))
	require.Equal(t, 4, Normalize(-1, 5))
	require.Equal(t, 0, Normalize(-5, 5))
	require.Equal(t, -1, Normalize(-6, 5))
	require.Equal(t, 7, Normalize(7, 5))
}

func TestSequenceAt(t *testing.T) {
	text := TextFromString("héllo")
	require.Equal(t, 5, text.Len())
	require.Equal(t, Scalar('h'), text.At(0))
	require.Equal(t, Scalar(0xE9), text.At(1))
	require.Equal(t, Scalar('o'), text.At(-1))
	require.Equal(t, Scalar('h'), text.At(-5))
	require.Panics(t, func() { text.At(5) })
	require.Panics(t, func() { text.At(-6) })
}

func TestNewSequenceCopies(t *testing.T) {
	raw := []byte("abc")
	b := NewSequence(raw)
	raw[0] = 'x'
	require.Equal(t, Bytes("abc"), b)
	require.True(t, b.Equal(Bytes{'a', 'b', 'c'}))
	require.False(t, b.Equal(Bytes{'a', 'b'}))
}

func TestFind(t *testing.T) {
	b := Bytes("abcabc")
	cases := []struct {
		name        string
		v           byte
		start, stop int
		find, rfind int
	}{
		{"whole", 'b', 0, 6, 1, 4},
		{"negative stop", 'c', 0, -1, 2, 2},
		{"negative start", 'a', -3, 6, 3, 3},
		{"both negative", 'b', -5, -1, 1, 4},
		{"missing", 'z', 0, 6, -1, -1},
		{"empty range", 'a', 3, 3, -1, -1},
		{"reversed range", 'a', 4, 1, -1, -1},
		{"clamped", 'c', -100, 100, 2, 5},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.find, b.Find(tc.v, tc.start, tc.stop))
			require.Equal(t, tc.rfind, b.RFind(tc.v, tc.start, tc.stop))
		})
	}
}

func TestSubrange(t *testing.T) {
	text := TextFromString("abcdef")
	require.Equal(t, TextFromString("bcd"), text.Subrange(1, 4))
	require.Equal(t, TextFromString("ef"), text.Subrange(-2, 6))
	require.Equal(t, TextFromString("bcde"), text.Subrange(1, -1))
	require.Equal(t, Text{}, text.Subrange(4, 1))
	require.Equal(t, Text{}, text.Subrange(-1, -2))
	require.Equal(t, text, text.Subrange(-100, 100))

	sub := text.Subrange(0, 2)
	sub[0] = 'z'
	require.Equal(t, Scalar('a'), text.At(0))
}

func TestRunes(t *testing.T) {
	s := "a€😀"
	require.Equal(t, s, string(Runes(TextFromString(s))))
	require.Equal(t, Scalar(0xFFFD), TextFromString("\xff").At(0))
}
