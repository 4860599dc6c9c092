package stream

import (
	"bufio"
	"errors"
	"io"
	"iter"
)

// Cursor is a position in a forward-only source such as an iterator or a
// reader.
//
// The source is pulled lazily, at most once per position: the first Uncons on
// a cursor pulls one item and remembers it along with the successor cursor,
// so every later Uncons on the same cursor answers from memory. That makes old
// cursors revisitable and copying a cursor free, at the price of keeping
// pulled items alive for as long as an earlier cursor is reachable.
//
// A Cursor is not safe for concurrent use.
type Cursor[T any] struct {
	src    *source[T]
	offset int
	pulled bool
	ok     bool
	item   T
	next   *Cursor[T]
}

type source[T any] struct {
	next func() (T, bool)
	done func()
}

// Iterate returns a cursor at the start of the items produced by next. next
// reports false once the source is exhausted and is not called again after
// that.
func Iterate[T any](next func() (T, bool)) *Cursor[T] {
	return &Cursor[T]{src: &source[T]{next: next}}
}

// Pull returns a cursor over seq. The returned stop function releases the
// iterator early; it is called automatically once seq is exhausted.
func Pull[T any](seq iter.Seq[T]) (*Cursor[T], func()) {
	next, stop := iter.Pull(seq)
	c := &Cursor[T]{src: &source[T]{next: next, done: stop}}
	return c, stop
}

// Runes returns a cursor over the runes read from r. A read error ends the
// stream; the returned function reports it, ignoring io.EOF.
func Runes(r io.Reader) (*Cursor[rune], func() error) {
	br, ok := r.(io.RuneReader)
	if !ok {
		br = bufio.NewReader(r)
	}
	var readErr error
	next := func() (rune, bool) {
		ch, _, err := br.ReadRune()
		if err != nil {
			if !errors.Is(err, io.EOF) {
				readErr = err
			}
			return 0, false
		}
		return ch, true
	}
	return Iterate(next), func() error { return readErr }
}

func (c *Cursor[T]) Uncons() (T, Stream[T], bool) {
	if !c.pulled {
		c.pull()
	}
	if !c.ok {
		var zero T
		return zero, nil, false
	}
	return c.item, c.next, true
}

func (c *Cursor[T]) pull() {
	c.pulled = true
	if c.src.next == nil {
		return
	}
	c.item, c.ok = c.src.next()
	if !c.ok {
		c.src.next = nil
		if c.src.done != nil {
			c.src.done()
		}
		return
	}
	c.next = &Cursor[T]{src: c.src, offset: c.offset + 1}
}

// Offset returns the number of items before this cursor.
func (c *Cursor[T]) Offset() int {
	return c.offset
}
