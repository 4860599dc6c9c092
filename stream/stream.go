// Package stream provides the input side of the combinator engine: immutable
// cursors over the remaining, unconsumed input.
package stream

// Stream is the remaining input of a parse.
//
// Uncons splits off the next item and returns it together with a stream
// holding the rest. When the input is exhausted it returns ok == false.
//
// Implementations must not mutate the receiver: a stream value that has been
// split can be split again and yields the same item. Copying a stream value is
// how parsers take a snapshot before a speculative attempt.
type Stream[T any] interface {
	Uncons() (item T, rest Stream[T], ok bool)
}

type sized interface {
	Len() int
}

type offsetter interface {
	Offset() int
}

// Consumed reports whether after lies strictly beyond before. Streams take
// part by implementing Len (remaining items) or Offset (items consumed so
// far). When neither stream can tell, Consumed assumes progress was made.
func Consumed[T any](before, after Stream[T]) bool {
	if b, ok := before.(sized); ok {
		if a, ok := after.(sized); ok {
			return a.Len() < b.Len()
		}
	}
	if b, ok := before.(offsetter); ok {
		if a, ok := after.(offsetter); ok {
			return a.Offset() > b.Offset()
		}
	}
	return true
}

// Drain splits s until it is exhausted and returns every item.
func Drain[T any](s Stream[T]) []T {
	var items []T
	for s != nil {
		item, rest, ok := s.Uncons()
		if !ok {
			break
		}
		items = append(items, item)
		s = rest
	}
	return items
}
