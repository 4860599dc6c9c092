package decl

import (
	"strings"
	"testing"
	"testing/iotest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dhamidi/combi/parse"
)

func TestParseField(t *testing.T) {
	tests := []struct {
		input string
		want  Field
		ok    bool
	}{
		{"x: int", Field{Name: "x", Type: "int"}, true},
		{"x:int", Field{Name: "x", Type: "int"}, true},
		{"  user_id :  uuid  ", Field{Name: "user_id", Type: "uuid"}, true},
		{"age: int # years", Field{Name: "age", Type: "int"}, true},
		{"größe: zahl", Field{Name: "größe", Type: "zahl"}, true},
		{"x int", Field{}, false},
		{"x:", Field{}, false},
		{": int", Field{}, false},
		{"x: int extra", Field{}, false},
		{"", Field{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseField(tt.input)
			if !tt.ok {
				assert.ErrorIs(t, err, parse.ErrNoMatch)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParse(t *testing.T) {
	src := strings.Join([]string{
		"# a user record",
		"name: string",
		"",
		"age:  int    # years\r",
		"broken line",
		"name: text",
		"   ",
		"tags: list",
	}, "\n") + "\n"

	f, err := Parse(strings.NewReader(src))
	require.NoError(t, err)

	assert.Equal(t, []Field{
		{Name: "name", Type: "string", Line: 2},
		{Name: "age", Type: "int", Line: 4},
		{Name: "tags", Type: "list", Line: 8},
	}, f.Fields)
	assert.Equal(t, []string{"string", "int", "list"}, f.Types())

	require.Len(t, f.Problems, 2)
	assert.Equal(t, 5, f.Problems[0].Line)
	assert.Equal(t, "broken line", f.Problems[0].Text)
	assert.Equal(t, 6, f.Problems[1].Line)
	assert.Contains(t, f.Problems[1].Message, "already declared on line 2")
	assert.EqualError(t, f.Problems[0], `line 5: expected "name: type"`)
}

func TestParseEmpty(t *testing.T) {
	f, err := Parse(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, f.Fields)
	assert.Empty(t, f.Problems)
}

func TestParseNoTrailingNewline(t *testing.T) {
	f, err := Parse(strings.NewReader("a: b\nc: d"))
	require.NoError(t, err)
	require.Len(t, f.Fields, 2)
	assert.Equal(t, Field{Name: "c", Type: "d", Line: 2}, f.Fields[1])
}

func TestParseReadError(t *testing.T) {
	_, err := Parse(iotest.ErrReader(iotest.ErrTimeout))
	assert.ErrorIs(t, err, iotest.ErrTimeout)
}

func TestParseInts(t *testing.T) {
	tests := []struct {
		input string
		want  []int64
		ok    bool
	}{
		{"123,4,56", []int64{123, 4, 56}, true},
		{" 1 , 2 ,3 ", []int64{1, 2, 3}, true},
		{"7", []int64{7}, true},
		{"", nil, true},
		{"1,", nil, false},
		{"1;2", nil, false},
		{"-1", nil, false},
		{"99999999999999999999", nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseInts(tt.input)
			if !tt.ok {
				assert.ErrorIs(t, err, parse.ErrNoMatch)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
