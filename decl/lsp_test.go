package decl

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	protocol "github.com/tliron/glsp/protocol_3_16"
)

func TestDiagnostics(t *testing.T) {
	f, err := Parse(strings.NewReader("a: int\nnot a field\n"))
	require.NoError(t, err)

	diags := diagnostics(f)
	require.Len(t, diags, 1)
	d := diags[0]
	assert.Equal(t, protocol.UInteger(1), d.Range.Start.Line)
	assert.Equal(t, protocol.UInteger(0), d.Range.Start.Character)
	assert.Equal(t, protocol.UInteger(len("not a field")), d.Range.End.Character)
	require.NotNil(t, d.Severity)
	assert.Equal(t, protocol.DiagnosticSeverity(protocol.DiagnosticSeverityError), *d.Severity)
	assert.Equal(t, `expected "name: type"`, d.Message)
}

func TestDiagnosticsClean(t *testing.T) {
	f, err := Parse(strings.NewReader("a: int\n"))
	require.NoError(t, err)
	assert.NotNil(t, diagnostics(f))
	assert.Empty(t, diagnostics(f))
}

func TestTypePrefix(t *testing.T) {
	content := []byte("name: str\nage\n# x: y\n")

	tests := []struct {
		name   string
		line   int
		col    int
		prefix string
		ok     bool
	}{
		{"after colon", 0, 5, "", true},
		{"partial type", 0, 9, "str", true},
		{"column past end", 0, 40, "str", true},
		{"before colon", 0, 2, "", false},
		{"no colon", 1, 3, "", false},
		{"comment", 2, 6, "", false},
		{"line out of range", 9, 0, "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			prefix, ok := typePrefix(content, tt.line, tt.col)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.prefix, prefix)
		})
	}
}

func TestCompletions(t *testing.T) {
	items := completions([]string{"int", "int64", "string"}, "in")
	var labels []string
	for _, item := range items {
		labels = append(labels, item.Label)
	}
	assert.Equal(t, []string{"int", "int64"}, labels)
	assert.Empty(t, completions([]string{"int"}, "x"))
}

func TestURIToPath(t *testing.T) {
	path, err := uriToPath("file:///tmp/a%20b/x.decl")
	require.NoError(t, err)
	assert.Equal(t, "/tmp/a b/x.decl", path)

	path, err = uriToPath("relative.decl")
	require.NoError(t, err)
	assert.Equal(t, "relative.decl", path)
}
