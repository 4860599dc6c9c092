package stream

import "unicode/utf8"

// Text is a stream of the runes of a string.
// Invalid UTF-8 decodes to utf8.RuneError, one byte at a time.
type Text string

func (t Text) Uncons() (rune, Stream[rune], bool) {
	if len(t) == 0 {
		return 0, nil, false
	}
	r, size := utf8.DecodeRuneInString(string(t))
	return r, t[size:], true
}

// Len returns the number of bytes left.
func (t Text) Len() int {
	return len(t)
}

func (t Text) String() string {
	return string(t)
}

// Slice is a stream over the elements of a slice. Splitting shares the
// backing array.
type Slice[T any] []T

func (s Slice[T]) Uncons() (T, Stream[T], bool) {
	if len(s) == 0 {
		var zero T
		return zero, nil, false
	}
	return s[0], s[1:], true
}

func (s Slice[T]) Len() int {
	return len(s)
}

// Refs is like Slice but yields pointers into the backing array instead of
// copies.
type Refs[T any] []T

func (s Refs[T]) Uncons() (*T, Stream[*T], bool) {
	if len(s) == 0 {
		return nil, nil, false
	}
	return &s[0], s[1:], true
}

func (s Refs[T]) Len() int {
	return len(s)
}
