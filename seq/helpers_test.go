package seq

import (
	"testing"

	"github.com/npillmayer/seqgen/lex"
	"github.com/npillmayer/seqgen/tt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func assertStream(t *testing.T, expected string, got tt.Stream) {
	t.Helper()
	want := lex.MustParse(expected)
	assert.True(t, tt.Equal(want, got), "expected\n   %s\ngot\n   %s", want, got)
}

func mustExpand(t *testing.T, x *Expander, src string) tt.Stream {
	t.Helper()
	out, err := x.Expand(lex.MustParse(src))
	require.NoError(t, err)
	require.NotNil(t, out)
	return out
}

func spec(name string, start, stop uint64, inclusive bool) Spec {
	return Spec{Var: tt.Ident{Name: name}, Start: start, Stop: stop, Inclusive: inclusive}
}
