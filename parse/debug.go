package parse

import (
	"errors"

	"github.com/tliron/commonlog"

	"github.com/dhamidi/combi/stream"
)

// ErrNoProgress is the panic value of a guarded parser that matched without
// consuming input.
var ErrNoProgress = errors.New("parser matched without consuming input")

// Guard returns p unchanged except that it panics with ErrNoProgress when p
// succeeds without consuming anything. Progress is measured with
// stream.Consumed.
func Guard[T, O any](p Parser[T, O]) Func[T, O] {
	return func(in stream.Stream[T]) (O, stream.Stream[T], error) {
		out, rest, err := p.Parse(in)
		if err == nil && !stream.Consumed(in, rest) {
			panic(ErrNoProgress)
		}
		return out, rest, err
	}
}

// Trace logs every call to p at debug level under name.
func Trace[T, O any](name string, p Parser[T, O]) Func[T, O] {
	log := commonlog.GetLogger("combi.parse")
	return func(in stream.Stream[T]) (O, stream.Stream[T], error) {
		out, rest, err := p.Parse(in)
		if err != nil {
			log.Debugf("%s: no match", name)
		} else {
			log.Debugf("%s: matched %v", name, out)
		}
		return out, rest, err
	}
}
