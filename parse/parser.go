package parse

import (
	"errors"
	"fmt"

	"github.com/dhamidi/combi/stream"
)

// ErrNoMatch is the only failure a parser reports.
var ErrNoMatch = errors.New("no match")

// ErrTrailing is returned by Run when the parser matched but left input
// behind.
var ErrTrailing = fmt.Errorf("trailing input: %w", ErrNoMatch)

// Parser turns a prefix of its input into an output of type O.
//
// On success Parse returns the output and the input left after the prefix.
// On failure it returns ErrNoMatch and a nil stream.
type Parser[T, O any] interface {
	Parse(in stream.Stream[T]) (O, stream.Stream[T], error)
}

// Func adapts an ordinary function or closure to Parser.
type Func[T, O any] func(in stream.Stream[T]) (O, stream.Stream[T], error)

func (f Func[T, O]) Parse(in stream.Stream[T]) (O, stream.Stream[T], error) {
	return f(in)
}

// Ref returns a parser that behaves as whatever *p holds at the time it is
// called. It lets a grammar refer to a rule before the rule is assigned.
func Ref[T, O any](p *Parser[T, O]) Func[T, O] {
	return func(in stream.Stream[T]) (O, stream.Stream[T], error) {
		return (*p).Parse(in)
	}
}

// Run parses in with p and requires the whole input to be consumed.
func Run[T, O any](p Parser[T, O], in stream.Stream[T]) (O, error) {
	out, rest, err := p.Parse(in)
	if err != nil {
		var zero O
		return zero, err
	}
	if _, _, more := rest.Uncons(); more {
		var zero O
		return zero, ErrTrailing
	}
	return out, nil
}

func fail[T, O any]() (O, stream.Stream[T], error) {
	var zero O
	return zero, nil, ErrNoMatch
}
