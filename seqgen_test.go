package seqgen

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSpanExtend(t *testing.T) {
	s := Span{4, 7}
	assert.Equal(t, Span{2, 7}, s.Extend(Span{2, 5}))
	assert.Equal(t, Span{4, 9}, s.Extend(Span{8, 9}))
	assert.Equal(t, Span{8, 9}, Span{}.Extend(Span{8, 9}))
	assert.Equal(t, uint64(3), s.Len())
	assert.Equal(t, "(4…7)", s.String())
}

func TestSpanPosition(t *testing.T) {
	src := "seq!(N in 0..3 {\n  x~N\n})"
	tests := []struct {
		offset    uint64
		line, col int
	}{
		{0, 1, 1},
		{5, 1, 6},
		{19, 2, 3},
		{uint64(len(src) + 10), 3, 3},
	}
	for _, tt := range tests {
		t.Run(fmt.Sprintf("offset %d", tt.offset), func(t *testing.T) {
			line, col := Span{tt.offset, tt.offset}.Position(src)
			assert.Equal(t, tt.line, line)
			assert.Equal(t, tt.col, col)
		})
	}
}

func TestErrorCodes(t *testing.T) {
	err := Errorf(HeaderSyntax, Span{3, 4}, "expected `%s`, found `%s`", "in", "0")
	assert.Equal(t, HeaderSyntax, CodeOf(err))
	assert.Equal(t, "HeaderSyntax at (3…4): expected `in`, found `0`", err.Error())
	span, ok := SpanOf(err)
	assert.True(t, ok)
	assert.Equal(t, Span{3, 4}, span)
	//
	wrapped := fmt.Errorf("while expanding: %w", err)
	assert.Equal(t, HeaderSyntax, CodeOf(wrapped))
	assert.Equal(t, NoError, CodeOf(errors.New("plain")))
	assert.Equal(t, NoError, CodeOf(nil))
	//
	base := errors.New("value out of range")
	conv := Wrap(RangeConversion, Span{0, 20}, "cannot convert range literal", base)
	assert.True(t, errors.Is(conv, base))
	assert.Equal(t, "ErrorCode(42)", ErrorCode(42).String())
}
