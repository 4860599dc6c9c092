// Package parse provides composable parsers over the streams of package
// stream.
//
// # Overview
//
// A parser is any value with a Parse method taking the remaining input and
// returning an output together with the input left after it:
//
//	type Parser[T, O any] interface {
//	    Parse(in stream.Stream[T]) (O, stream.Stream[T], error)
//	}
//
// Parsers are built once, out of primitives and combinators, and then run
// against as many inputs as needed:
//
//	word := parse.Many(parse.Satisfy(unicode.IsLetter))
//	decl := parse.AndThen(word, parse.AndThen(parse.Rune(':'), word))
//	out, rest, err := decl.Parse(stream.Text("x:int"))
//
// # Failure
//
// Every failure is reported as ErrNoMatch. It carries no position and no
// cause, and the stream returned alongside it is nil. Because streams are
// immutable values, the caller still holds the stream it passed in and can
// retry from there.
//
// Optional, Many, Many1, ManyAppend and SepBy catch failures of the parsers
// they wrap, dropping whatever the failed attempt consumed. Every other
// combinator, and the sequencing helper Env, passes the first failure
// straight up.
//
// # Repetition
//
// A parser repeated by Many, Many1, ManyAppend or SepBy must not succeed
// without consuming input, or the repetition never ends. Wrap it in Guard
// while developing a grammar to turn that mistake into a panic.
//
// # Sequencing
//
// Env threads the input through several parsers with different output types
// without nesting pairs:
//
//	func field(in stream.Stream[rune]) (Field, stream.Stream[rune], error) {
//	    env := parse.NewEnv(in)
//	    name, err := parse.With(env, word)
//	    if err != nil {
//	        return Field{}, nil, err
//	    }
//	    if _, err := parse.With(env, parse.Rune(':')); err != nil {
//	        return Field{}, nil, err
//	    }
//	    typ, err := parse.With(env, word)
//	    if err != nil {
//	        return Field{}, nil, err
//	    }
//	    return parse.Result(env, Field{name, typ})
//	}
//
// # Thread Safety
//
// The parsers in this package keep no state between calls and may be shared.
// Parsers wrapping user functions are as safe as those functions are; a
// stream.Cursor must not be split from several goroutines.
package parse
