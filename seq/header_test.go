package seq

import (
	"math"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/seqgen"
	"github.com/npillmayer/seqgen/lex"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseHeader(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "seqgen.seq")
	defer teardown()
	//
	tests := []struct {
		header string
		want   Spec
	}{
		{"N in 0..4", spec("N", 0, 4, false)},
		{"N in 0..=4", spec("N", 0, 4, true)},
		{"N in 0 ..= 4", spec("N", 0, 4, true)},
		{"idx in 16..1", spec("idx", 16, 1, false)},
		{"N in 0x10..0b11", spec("N", 16, 3, false)},
		{"N in 1_000..0o17", spec("N", 1000, 15, false)},
		{"N in 007..8u64", spec("N", 7, 8, false)},
		{"N in 0..18446744073709551615", spec("N", 0, math.MaxUint64, false)},
	}
	for _, test := range tests {
		t.Run(test.header, func(t *testing.T) {
			got, err := ParseHeader(lex.MustParse(test.header), seqgen.Span{})
			require.NoError(t, err)
			assert.Equal(t, test.want.Var.Name, got.Var.Name)
			assert.Equal(t, test.want.Start, got.Start)
			assert.Equal(t, test.want.Stop, got.Stop)
			assert.Equal(t, test.want.Inclusive, got.Inclusive)
		})
	}
}

func TestParseHeaderErrors(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "seqgen.seq")
	defer teardown()
	//
	end := seqgen.Span{100, 120}
	tests := []struct {
		header string
		code   seqgen.ErrorCode
		at     seqgen.Span
		msg    string
	}{
		{"N 0..5", seqgen.HeaderSyntax, seqgen.Span{2, 3}, "expected `in`, found `0`"},
		{"", seqgen.HeaderSyntax, end, "expected identifier, found end of header"},
		{"5 in 0..5", seqgen.HeaderSyntax, seqgen.Span{0, 1}, "expected identifier, found `5`"},
		{"N in 0..", seqgen.HeaderSyntax, end, "expected integer literal, found end of header"},
		{"N in 0...5", seqgen.HeaderSyntax, seqgen.Span{8, 9}, "expected integer literal, found `.`"},
		{"N in 0.5..5", seqgen.HeaderSyntax, seqgen.Span{5, 8}, "expected integer literal, found `0.5`"},
		{"N in -1..5", seqgen.HeaderSyntax, seqgen.Span{5, 6}, "expected integer literal, found `-`"},
		{`N in "0"..5`, seqgen.HeaderSyntax, seqgen.Span{5, 8}, "expected integer literal, found `\"0\"`"},
		{"N in 0 5", seqgen.HeaderSyntax, seqgen.Span{7, 8}, "expected `..`, found `5`"},
		{"N in 0 . . 3", seqgen.HeaderSyntax, seqgen.Span{7, 8}, "expected `..`, found `.`"},
		{"N in 0. .3", seqgen.HeaderSyntax, seqgen.Span{6, 7}, "expected `..`, found `.`"},
		{"N in 0.. =4", seqgen.HeaderSyntax, seqgen.Span{9, 10}, "expected integer literal, found `=`"},
		{"N in 0..5 x", seqgen.HeaderSyntax, seqgen.Span{10, 11}, "unexpected token `x` after range"},
		{"N in 0..18446744073709551616", seqgen.RangeConversion, seqgen.Span{8, 28},
			"cannot convert `18446744073709551616` to an unsigned 64-bit integer"},
		{"N in 0xffffffffffffffffff..1", seqgen.RangeConversion, seqgen.Span{5, 25},
			"cannot convert `0xffffffffffffffffff` to an unsigned 64-bit integer"},
	}
	for _, test := range tests {
		t.Run(test.header, func(t *testing.T) {
			_, err := ParseHeader(lex.MustParse(test.header), end)
			require.Error(t, err)
			assert.Equal(t, test.code, seqgen.CodeOf(err))
			var diag *seqgen.Error
			require.ErrorAs(t, err, &diag)
			assert.Equal(t, test.at, diag.Span)
			assert.Equal(t, test.msg, diag.Msg)
		})
	}
}

func TestSpecRange(t *testing.T) {
	tests := []struct {
		spec Spec
		want []uint64
	}{
		{spec("N", 3, 6, false), []uint64{3, 4, 5}},
		{spec("N", 3, 6, true), []uint64{3, 4, 5, 6}},
		{spec("N", 3, 3, false), nil},
		{spec("N", 3, 3, true), []uint64{3}},
		{spec("N", 6, 3, false), nil},
		{spec("N", 6, 3, true), nil},
		{spec("N", math.MaxUint64-1, math.MaxUint64, true), []uint64{math.MaxUint64 - 1, math.MaxUint64}},
		{spec("N", math.MaxUint64-1, math.MaxUint64, false), []uint64{math.MaxUint64 - 1}},
	}
	for _, test := range tests {
		t.Run(test.spec.String(), func(t *testing.T) {
			var got []uint64
			test.spec.Each(func(v uint64) {
				got = append(got, v)
			})
			assert.Equal(t, test.want, got)
			assert.Equal(t, uint64(len(test.want)), test.spec.Len())
		})
	}
	assert.Equal(t, uint64(math.MaxUint64), spec("N", 0, math.MaxUint64, true).Len())
	assert.Equal(t, "N in 0..=3", spec("N", 0, 3, true).String())
}
