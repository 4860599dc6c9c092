package parse

import (
	"golang.org/x/exp/constraints"

	"github.com/dhamidi/combi/stream"
)

// Pair holds the outputs of AndThen.
type Pair[A, B any] struct {
	First  A
	Second B
}

// Maybe is the output of Optional. Ok reports whether Value was parsed.
type Maybe[O any] struct {
	Value O
	Ok    bool
}

// Get returns the value and whether it is present.
func (m Maybe[O]) Get() (O, bool) {
	return m.Value, m.Ok
}

// AndThen runs p1 and then p2 on what p1 left.
// It fails as soon as either fails.
func AndThen[T, A, B any](p1 Parser[T, A], p2 Parser[T, B]) Func[T, Pair[A, B]] {
	return func(in stream.Stream[T]) (Pair[A, B], stream.Stream[T], error) {
		a, rest, err := p1.Parse(in)
		if err != nil {
			return fail[T, Pair[A, B]]()
		}
		b, rest, err := p2.Parse(rest)
		if err != nil {
			return fail[T, Pair[A, B]]()
		}
		return Pair[A, B]{a, b}, rest, nil
	}
}

// Optional tries p. If p fails, Optional succeeds with an empty Maybe and the
// input exactly as it was.
func Optional[T, O any](p Parser[T, O]) Func[T, Maybe[O]] {
	return func(in stream.Stream[T]) (Maybe[O], stream.Stream[T], error) {
		out, rest, err := p.Parse(in)
		if err != nil {
			return Maybe[O]{}, in, nil
		}
		return Maybe[O]{Value: out, Ok: true}, rest, nil
	}
}

// ManyAppend runs p as often as it matches, appending every output to *dst.
// It never fails; the input is left where the last match ended.
func ManyAppend[T, O any](p Parser[T, O], dst *[]O) Func[T, struct{}] {
	return func(in stream.Stream[T]) (struct{}, stream.Stream[T], error) {
		return struct{}{}, repeat(p, in, dst), nil
	}
}

// Many runs p as often as it matches and returns the outputs. It never
// fails; if p does not match at all the result is empty and the input is
// unchanged.
func Many[T, O any](p Parser[T, O]) Func[T, []O] {
	return func(in stream.Stream[T]) ([]O, stream.Stream[T], error) {
		var outs []O
		rest := repeat(p, in, &outs)
		return outs, rest, nil
	}
}

// Many1 is like Many but fails if p does not match at least once.
func Many1[T, O any](p Parser[T, O]) Func[T, []O] {
	return func(in stream.Stream[T]) ([]O, stream.Stream[T], error) {
		first, rest, err := p.Parse(in)
		if err != nil {
			return fail[T, []O]()
		}
		outs := []O{first}
		rest = repeat(p, rest, &outs)
		return outs, rest, nil
	}
}

// SepBy matches zero or more p separated by sep and returns the outputs of
// p. A trailing separator that is not followed by p is left unconsumed.
// SepBy never fails.
func SepBy[T, O, S any](p Parser[T, O], sep Parser[T, S]) Func[T, []O] {
	next := Func[T, O](func(in stream.Stream[T]) (O, stream.Stream[T], error) {
		env := NewEnv(in)
		if _, err := With(env, sep); err != nil {
			return fail[T, O]()
		}
		out, err := With(env, p)
		if err != nil {
			return fail[T, O]()
		}
		return Result(env, out)
	})
	return func(in stream.Stream[T]) ([]O, stream.Stream[T], error) {
		first, rest, err := p.Parse(in)
		if err != nil {
			return nil, in, nil
		}
		outs := []O{first}
		rest = repeat[T, O](next, rest, &outs)
		return outs, rest, nil
	}
}

// Map applies f to the output of p.
func Map[T, O, R any](p Parser[T, O], f func(O) R) Func[T, R] {
	return func(in stream.Stream[T]) (R, stream.Stream[T], error) {
		out, rest, err := p.Parse(in)
		if err != nil {
			return fail[T, R]()
		}
		return f(out), rest, nil
	}
}

// Integer matches one or more decimal digits and returns their value. It
// fails if the value does not fit in N.
func Integer[N constraints.Integer]() Func[rune, N] {
	digits := Many1(Digit())
	return func(in stream.Stream[rune]) (N, stream.Stream[rune], error) {
		env := NewEnv(in)
		ds, err := With(env, digits)
		if err != nil {
			return fail[rune, N]()
		}
		var n N
		for _, c := range ds {
			d := N(c - '0')
			next := n*10 + d
			if (next-d)/10 != n || next < n {
				return fail[rune, N]()
			}
			n = next
		}
		return Result(env, n)
	}
}

// repeat is the loop shared by the repetition combinators. in is never
// modified by a failed attempt, so it doubles as the snapshot to return to.
func repeat[T, O any](p Parser[T, O], in stream.Stream[T], dst *[]O) stream.Stream[T] {
	for {
		out, rest, err := p.Parse(in)
		if err != nil {
			return in
		}
		*dst = append(*dst, out)
		in = rest
	}
}
