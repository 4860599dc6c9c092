// Package decl reads declaration files: one "name: type" pair per line, with
// blank lines and '#' comments ignored.
//
//	# a user record
//	name: string
//	age:  int    # years
//
// The grammar is written entirely with package parse.
package decl

import (
	"fmt"
	"io"
	"unicode"

	"github.com/dhamidi/combi/parse"
	"github.com/dhamidi/combi/stream"
)

// Field is one declaration.
type Field struct {
	Name string `json:"name"`
	Type string `json:"type"`
	Line int    `json:"line"`
}

// Problem describes a line that could not be used.
type Problem struct {
	Line    int    `json:"line"`
	Text    string `json:"text"`
	Message string `json:"message"`
}

func (p Problem) Error() string {
	return fmt.Sprintf("line %d: %s", p.Line, p.Message)
}

// File is the result of parsing a declaration file.
type File struct {
	Fields   []Field   `json:"fields"`
	Problems []Problem `json:"problems,omitempty"`
}

// Types returns the type of every field in order of appearance.
func (f *File) Types() []string {
	types := make([]string, 0, len(f.Fields))
	for _, fld := range f.Fields {
		types = append(types, fld.Type)
	}
	return types
}

func isHSpace(r rune) bool {
	return r != '\n' && unicode.IsSpace(r)
}

func isIdent(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
}

func runesToString(rs []rune) string {
	return string(rs)
}

var (
	hspace  = parse.Many(parse.Satisfy(isHSpace))
	ident   = parse.Map(parse.Many1(parse.Satisfy(isIdent)), runesToString)
	comment = parse.AndThen(parse.Rune('#'), parse.Many(parse.Char()))
	blank   = parse.AndThen(hspace, parse.Optional(comment))
	line    = parse.Map(parse.Many(parse.Satisfy(func(r rune) bool { return r != '\n' })), runesToString)
	newline = parse.Optional(parse.String("\n"))
)

var fieldParser parse.Func[rune, Field] = func(in stream.Stream[rune]) (Field, stream.Stream[rune], error) {
	env := parse.NewEnv(in)
	if _, err := parse.With(env, hspace); err != nil {
		return Field{}, nil, err
	}
	name, err := parse.With(env, ident)
	if err != nil {
		return Field{}, nil, err
	}
	if _, err := parse.With(env, parse.AndThen(hspace, parse.Rune(':'))); err != nil {
		return Field{}, nil, err
	}
	if _, err := parse.With(env, hspace); err != nil {
		return Field{}, nil, err
	}
	typ, err := parse.With(env, ident)
	if err != nil {
		return Field{}, nil, err
	}
	if _, err := parse.With(env, blank); err != nil {
		return Field{}, nil, err
	}
	return parse.Result(env, Field{Name: name, Type: typ})
}

// ParseField parses a single declaration line.
func ParseField(text string) (Field, error) {
	return parse.Run[rune, Field](fieldParser, stream.Text(text))
}

// Parse reads a declaration file from r. Lines that are not declarations end
// up in Problems; the error is only set when reading r fails.
func Parse(r io.Reader) (*File, error) {
	cur, readErr := stream.Runes(r)

	var in stream.Stream[rune] = cur
	f := &File{}
	seen := make(map[string]int)
	for n := 1; ; n++ {
		if _, _, more := in.Uncons(); !more {
			break
		}
		text, rest, _ := line.Parse(in)
		_, rest, _ = newline.Parse(rest)
		in = rest

		if _, err := parse.Run[rune](blank, stream.Text(text)); err == nil {
			continue
		}
		fld, err := ParseField(text)
		if err != nil {
			f.Problems = append(f.Problems, Problem{Line: n, Text: text, Message: "expected \"name: type\""})
			continue
		}
		if first, dup := seen[fld.Name]; dup {
			f.Problems = append(f.Problems, Problem{
				Line:    n,
				Text:    text,
				Message: fmt.Sprintf("field %q already declared on line %d", fld.Name, first),
			})
			continue
		}
		seen[fld.Name] = n
		fld.Line = n
		f.Fields = append(f.Fields, fld)
	}

	if err := readErr(); err != nil {
		return nil, fmt.Errorf("read declarations: %w", err)
	}
	return f, nil
}

var intList = parse.SepBy(
	parse.Func[rune, int64](func(in stream.Stream[rune]) (int64, stream.Stream[rune], error) {
		env := parse.NewEnv(in)
		if _, err := parse.With(env, hspace); err != nil {
			return 0, nil, err
		}
		n, err := parse.With(env, parse.Integer[int64]())
		if err != nil {
			return 0, nil, err
		}
		if _, err := parse.With(env, hspace); err != nil {
			return 0, nil, err
		}
		return parse.Result(env, n)
	}),
	parse.Rune(','),
)

// ParseInts parses a comma separated list of non-negative integers such as
// "123, 4,56".
func ParseInts(text string) ([]int64, error) {
	ns, err := parse.Run[rune, []int64](intList, stream.Text(text))
	if err != nil {
		return nil, fmt.Errorf("parse integer list %q: %w", text, err)
	}
	return ns, nil
}
