package transcode

import "slices"

// Sequence is an owned, ordered buffer used as codec input and output.
type Sequence[T comparable] []T

// Bytes is an encoded byte buffer.
type Bytes = Sequence[byte]

// Text is a sequence of scalar values in character order.
type Text = Sequence[Scalar]

// NewSequence returns a copy of p.
func NewSequence[T comparable](p []T) Sequence[T] {
	return Sequence[T](slices.Clone(p))
}

// TextFromString decodes s as Go (UTF-8) text. Invalid bytes become U+FFFD.
func TextFromString(s string) Text {
	t := make(Text, 0, len(s))
	for _, r := range s {
		t = append(t, Scalar(r))
	}
	return t
}

// Normalize maps a negative index to one counted from the end of a sequence of
// length n. Non-negative indices are returned unchanged.
func Normalize(idx, n int) int {
	if idx < 0 {
		return idx + n
	}
	return idx
}

func (s Sequence[T]) Len() int {
	return len(s)
}

// Equal reports whether s and o hold the same elements in the same order.
func (s Sequence[T]) Equal(o Sequence[T]) bool {
	return slices.Equal(s, o)
}

// At returns the element at idx, which may be negative. It panics when the
// normalized index is out of range, like a slice index.
func (s Sequence[T]) At(idx int) T {
	return s[Normalize(idx, len(s))]
}

// bounds normalizes start and stop and clamps them to [0, len(s)].
func (s Sequence[T]) bounds(start, stop int) (int, int) {
	n := len(s)
	start = min(max(Normalize(start, n), 0), n)
	stop = min(max(Normalize(stop, n), 0), n)
	return start, stop
}

// Find returns the index of the first v in s[start:stop], or -1.
func (s Sequence[T]) Find(v T, start, stop int) int {
	start, stop = s.bounds(start, stop)
	for i := start; i < stop; i++ {
		if s[i] == v {
			return i
		}
	}
	return -1
}

// RFind returns the index of the last v in s[start:stop], or -1.
func (s Sequence[T]) RFind(v T, start, stop int) int {
	start, stop = s.bounds(start, stop)
	for i := stop - 1; i >= start; i-- {
		if s[i] == v {
			return i
		}
	}
	return -1
}

// Subrange returns a copy of s[start:stop]. The result is empty when start >=
// stop after normalization.
func (s Sequence[T]) Subrange(start, stop int) Sequence[T] {
	start, stop = s.bounds(start, stop)
	if start >= stop {
		return Sequence[T]{}
	}
	return NewSequence(s[start:stop])
}

// Runes returns the text as a Go rune slice.
func Runes(t Text) []rune {
	rs := make([]rune, len(t))
	for i, s := range t {
		rs[i] = rune(s)
	}
	return rs
}
