package parse

import (
	"unicode"

	"github.com/dhamidi/combi/stream"
)

// Satisfy matches one item for which pred returns true.
func Satisfy[T any](pred func(T) bool) Func[T, T] {
	return func(in stream.Stream[T]) (T, stream.Stream[T], error) {
		item, rest, ok := in.Uncons()
		if !ok || !pred(item) {
			return fail[T, T]()
		}
		return item, rest, nil
	}
}

// Item matches any one item.
func Item[T any]() Func[T, T] {
	return func(in stream.Stream[T]) (T, stream.Stream[T], error) {
		item, rest, ok := in.Uncons()
		if !ok {
			return fail[T, T]()
		}
		return item, rest, nil
	}
}

// Char matches any one character.
func Char() Func[rune, rune] {
	return Item[rune]()
}

// Rune matches the character r.
func Rune(r rune) Func[rune, rune] {
	return Satisfy(func(c rune) bool { return c == r })
}

// Digit matches one decimal digit, '0' through '9'.
func Digit() Func[rune, rune] {
	return Satisfy(isDigit)
}

// Space matches one white space character as defined by unicode.IsSpace.
func Space() Func[rune, rune] {
	return Satisfy(unicode.IsSpace)
}

// String matches lit character by character and returns lit.
func String(lit string) Func[rune, string] {
	return func(in stream.Stream[rune]) (string, stream.Stream[rune], error) {
		for _, want := range lit {
			got, rest, ok := in.Uncons()
			if !ok || got != want {
				return fail[rune, string]()
			}
			in = rest
		}
		return lit, in, nil
	}
}

func isDigit(r rune) bool {
	return '0' <= r && r <= '9'
}
