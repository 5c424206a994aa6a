package seq

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/seqgen/lex"
	"github.com/npillmayer/seqgen/tt"
	"github.com/stretchr/testify/assert"
)

func TestScanMarker(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "seqgen.seq")
	defer teardown()
	//
	x := New()
	tests := []struct {
		name, body string
		found      bool
		want       string
	}{
		{"top level", "a #( b~N, )* c", true, "a b0, b1, b2, c"},
		{"unmarked parts verbatim", "N #( x~N )* N", true, "N x0 x1 x2 N"},
		{"inside group", "enum E { #( V~N, )* }", true, "enum E { V0, V1, V2, }"},
		{"two groups deep", "mod m { fn f() { #( N; )* } }", true, "mod m { fn f() { 0; 1; 2; } }"},
		{"two markers", "#(a~N)* - #(b~N)*", true, "a0 a1 a2 - b0 b1 b2"},
		{"no continuation", "#(N) x", false, "#(N) x"},
		{"other continuation", "#(N)+", false, "#(N)+"},
		{"bracket group", "#[N]*", false, "#[N]*"},
		{"marker at end", "a #", false, "a #"},
		{"incomplete marker at end", "a #(N)", false, "a #(N)"},
		{"nested inside broken marker", "#( #(c~N)* ) x", true, "#( c0 c1 c2 ) x"},
		{"empty marker", "a #()* b", true, "a b"},
		{"no marker", "a b (c [d])", false, "a b (c [d])"},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			got, found := x.Scan(lex.MustParse(test.body), spec("N", 0, 3, false))
			assert.Equal(t, test.found, found)
			assertStream(t, test.want, got)
		})
	}
}

func TestScanEmptyRange(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "seqgen.seq")
	defer teardown()
	//
	got, found := New().Scan(lex.MustParse("a { #( b )* } c"), spec("N", 4, 4, false))
	assert.True(t, found)
	assertStream(t, "a {} c", got)
}

func TestScanMarkerOption(t *testing.T) {
	x := New(WithMarker('$', '+'))
	got, found := x.Scan(lex.MustParse("#(a)* $(b~N)+"), spec("N", 1, 2, true))
	assert.True(t, found)
	assertStream(t, "#(a)* b1 b2", got)
}

func TestScanPreservesGroups(t *testing.T) {
	body := lex.MustParse("f(x) [y] { #(N)* }")
	got, _ := New().Scan(body, spec("N", 0, 1, false))
	for i, d := range []tt.Delimiter{tt.Paren, tt.Bracket, tt.Brace} {
		g, ok := got[i+1].(tt.Group)
		if assert.True(t, ok, "node %d", i+1) {
			assert.Equal(t, d, g.Delim)
			assert.Equal(t, body[i+1].Span(), g.At)
		}
	}
}

// Streams without loop variable, paste operator or marker pass both
// passes unchanged.
func TestNonParticipatingNodes(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "seqgen.seq")
	defer teardown()
	//
	x := New()
	inputs := []string{
		"fn main() { let a = [1, 2, 3]; println!(\"{}\", a[0]); }",
		"impl<'a> Trait for S<'a> where T: Copy {}",
		"#[derive(Debug)] struct Point { x: f64, y: f64 }",
		"",
	}
	for _, input := range inputs {
		body := lex.MustParse(input)
		for _, sp := range []Spec{spec("N", 0, 0, false), spec("N", 0, 5, false), spec("N", 9, 2, true)} {
			sp.Each(func(v uint64) {
				assert.True(t, tt.Equal(body, x.Substitute(body, "N", v)), "substitute changed %q", input)
			})
			got, found := x.Scan(body, sp)
			assert.False(t, found)
			assert.True(t, tt.Equal(body, got), "scan changed %q", input)
		}
	}
}
