package seq

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/seqgen"
	"github.com/npillmayer/seqgen/lex"
	"github.com/npillmayer/seqgen/tt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSubstitute(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "seqgen.seq")
	defer teardown()
	//
	x := New()
	tests := []struct {
		name, body, want string
	}{
		{"bare variable", "a N b", "a 7 b"},
		{"other identifiers untouched", "Nx xN n", "Nx xN n"},
		{"nested groups", "f(N, [N, {N}])", "f(7, [7, {7}])"},
		{"paste", "foo~N", "foo7"},
		{"paste chain", "get~N~_mut()", "get7_mut()"},
		{"paste non-variable", "a~b~N~c", "ab7c"},
		{"variable starts chain", "N~x", "Nx"},
		{"paste inside group", "fn f~N() -> u8 { N }", "fn f7() -> u8 { 7 }"},
		{"trailing paste operator", "foo~", "foo~"},
		{"paste before group", "foo~(N)", "foo~(7)"},
		{"paste before literal", "foo~1", "foo~1"},
		{"chain broken by literal", "a~b~1", "ab~1"},
		{"leading paste operator", "~N", "~7"},
		{"literals untouched", `"N" 'N' 1.5`, `"N" 'N' 1.5`},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			got := x.Substitute(lex.MustParse(test.body), "N", 7)
			assertStream(t, test.want, got)
		})
	}
}

func TestSubstituteLiteralKind(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "seqgen.seq")
	defer teardown()
	//
	got := New().Substitute(lex.MustParse("N"), "N", 42)
	require.Len(t, got, 1)
	lit, ok := got[0].(tt.Literal)
	require.True(t, ok)
	assert.Equal(t, tt.IntLit, lit.Kind)
	assert.Equal(t, "42", lit.Raw)
}

func TestSubstitutePreservesSpans(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "seqgen.seq")
	defer teardown()
	//
	body := lex.MustParse("x { foo~N~bar N }")
	got := New().Substitute(body, "N", 3)
	require.Len(t, got, 2)
	g := got[1].(tt.Group)
	assert.Equal(t, seqgen.Span{2, 17}, g.At)
	require.Len(t, g.Children, 2)
	pasted := g.Children[0].(tt.Ident)
	assert.Equal(t, "foo3bar", pasted.Name)
	assert.Equal(t, seqgen.Span{4, 7}, pasted.At, "pasted identifier should be placed at its first token")
	assert.Equal(t, seqgen.Span{14, 15}, g.Children[1].Span())
}

func TestSubstituteDoesNotModifyBody(t *testing.T) {
	body := lex.MustParse("a~N { N }")
	before := tt.Format(body)
	New().Substitute(body, "N", 1)
	New().Substitute(body, "N", 2)
	assert.Equal(t, before, tt.Format(body))
}

func TestSubstitutePasteOperatorOption(t *testing.T) {
	x := New(WithPasteOperator('^'))
	assertStream(t, "x5 a~5", x.Substitute(lex.MustParse("x^N a~N"), "N", 5))
}
