package seqgen

import (
	"fmt"
	"strings"
)

//go:generate go tool stringer -type=ErrorCode

// --- Spans ------------------------------------------------------------

// Span is a small type for capturing the provenance of a token or a tree node.
// A span denotes the byte offset of the start position in the source text and
// the offset just behind the end.
//
// Spans travel with every node of a token tree, but never take part in
// comparisons of tree structure.
type Span [2]uint64 // (x…y)

// From returns the start value of a span.
func (s Span) From() uint64 {
	return s[0]
}

// To returns the end value of a span.
func (s Span) To() uint64 {
	return s[1]
}

// Len returns the length of (x…y)
func (s Span) Len() uint64 {
	return s[1] - s[0]
}

func (s Span) IsNull() bool {
	return s == Span{}
}

func (s Span) Extend(other Span) Span {
	if s.IsNull() {
		return other
	}
	if other[0] < s[0] {
		s[0] = other[0]
	}
	if other[1] > s[1] {
		s[1] = other[1]
	}
	return s
}

func (s Span) String() string {
	return fmt.Sprintf("(%d…%d)", s[0], s[1])
}

// Position returns the 1-based line and column of the start of s within src.
// Columns count runes, not bytes. Offsets beyond the end of src are clipped.
func (s Span) Position(src string) (line int, col int) {
	off := int(s[0])
	if off > len(src) {
		off = len(src)
	}
	head := src[:off]
	line = strings.Count(head, "\n") + 1
	if nl := strings.LastIndexByte(head, '\n'); nl >= 0 {
		head = head[nl+1:]
	}
	col = len([]rune(head)) + 1
	return
}
