package stream

import (
	"slices"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestText(t *testing.T) {
	tests := []struct {
		input string
		head  rune
		rest  string
	}{
		{"abc", 'a', "bc"},
		{"a", 'a', ""},
		{"éx", 'é', "x"},
		{"日本", '日', "本"},
		{"\xffz", '�', "z"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			s := Text(tt.input)
			head, rest, ok := s.Uncons()
			require.True(t, ok)
			assert.Equal(t, tt.head, head)
			assert.Equal(t, Text(tt.rest), rest)

			// The split value is untouched.
			again, _, ok := s.Uncons()
			require.True(t, ok)
			assert.Equal(t, tt.head, again)
		})
	}
}

func TestTextEmpty(t *testing.T) {
	_, rest, ok := Text("").Uncons()
	assert.False(t, ok)
	assert.Nil(t, rest)
}

func TestSlice(t *testing.T) {
	s := Slice[int]{1, 2, 3}
	assert.Equal(t, []int{1, 2, 3}, Drain[int](s))
	assert.Equal(t, 3, s.Len())

	_, rest, ok := s.Uncons()
	require.True(t, ok)
	assert.Equal(t, Slice[int]{2, 3}, rest)

	_, _, ok = Slice[int]{}.Uncons()
	assert.False(t, ok)
}

func TestRefs(t *testing.T) {
	backing := []string{"x", "y"}
	first, rest, ok := Refs[string](backing).Uncons()
	require.True(t, ok)
	assert.Same(t, &backing[0], first)

	second, rest, ok := rest.Uncons()
	require.True(t, ok)
	assert.Same(t, &backing[1], second)

	_, _, ok = rest.Uncons()
	assert.False(t, ok)
}

func TestCursorMemoises(t *testing.T) {
	calls := 0
	items := []rune("ab")
	c := Iterate(func() (rune, bool) {
		if calls >= len(items) {
			calls++
			return 0, false
		}
		r := items[calls]
		calls++
		return r, true
	})

	a, rest, ok := c.Uncons()
	require.True(t, ok)
	assert.Equal(t, 'a', a)

	// Revisiting the first cursor does not pull again.
	a2, rest2, ok := c.Uncons()
	require.True(t, ok)
	assert.Equal(t, 'a', a2)
	assert.Same(t, rest, rest2)
	assert.Equal(t, 1, calls)

	b, end, ok := rest.Uncons()
	require.True(t, ok)
	assert.Equal(t, 'b', b)
	assert.Equal(t, 2, end.(*Cursor[rune]).Offset())

	_, _, ok = end.Uncons()
	assert.False(t, ok)
	_, _, ok = end.Uncons()
	assert.False(t, ok)
	assert.Equal(t, 3, calls, "exhausted source must not be pulled again")
}

func TestPull(t *testing.T) {
	c, stop := Pull(slices.Values([]string{"x", "y", "z"}))
	defer stop()
	assert.Equal(t, []string{"x", "y", "z"}, Drain[string](c))
	// Draining twice replays the memoised items.
	assert.Equal(t, []string{"x", "y", "z"}, Drain[string](c))
}

func TestRunes(t *testing.T) {
	c, errFn := Runes(strings.NewReader("héllo"))
	assert.Equal(t, []rune("héllo"), Drain[rune](c))
	assert.NoError(t, errFn())
}

func TestRunesReadError(t *testing.T) {
	c, errFn := Runes(iotest.TimeoutReader(strings.NewReader("ab")))
	assert.Equal(t, []rune("ab"), Drain[rune](c))
	assert.ErrorIs(t, errFn(), iotest.ErrTimeout)
}

func TestConsumed(t *testing.T) {
	tests := []struct {
		name          string
		before, after Stream[rune]
		want          bool
	}{
		{"text advanced", Text("abc"), Text("bc"), true},
		{"text same", Text("abc"), Text("abc"), false},
		{"slice advanced", Slice[rune]{'a', 'b'}, Slice[rune]{'b'}, true},
		{"slice same", Slice[rune]{'a'}, Slice[rune]{'a'}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Consumed(tt.before, tt.after))
		})
	}

	c := Iterate(func() (rune, bool) { return 'x', true })
	_, next, _ := c.Uncons()
	assert.True(t, Consumed[rune](c, next))
	assert.False(t, Consumed[rune](c, c))
}
