package parse

import "github.com/dhamidi/combi/stream"

// Env threads one input through a sequence of parsers.
//
// With runs a parser on the held input and keeps what it leaves; Result ends
// the sequence. Env does no backtracking of its own.
type Env[T any] struct {
	input stream.Stream[T]
}

func NewEnv[T any](in stream.Stream[T]) *Env[T] {
	return &Env[T]{input: in}
}

// Input returns the input currently held.
func (e *Env[T]) Input() stream.Stream[T] {
	return e.input
}

// With runs p on the held input. On success the held input advances past
// what p consumed; on failure it is left alone and the failure is returned.
func With[T, O any](e *Env[T], p Parser[T, O]) (O, error) {
	out, rest, err := p.Parse(e.input)
	if err != nil {
		var zero O
		return zero, err
	}
	e.input = rest
	return out, nil
}

// Result pairs v with the held input as a successful parse.
func Result[T, O any](e *Env[T], v O) (O, stream.Stream[T], error) {
	return v, e.input, nil
}
