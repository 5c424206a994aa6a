package seq

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/npillmayer/seqgen"
	"github.com/npillmayer/seqgen/tt"
)

// Spec is the parsed header of an invocation: a loop variable and an integer range.
type Spec struct {
	Var       tt.Ident // bound loop variable
	Start     uint64   // first value of the range
	Stop      uint64   // end of the range, exclusive unless Inclusive is set
	Inclusive bool     // range has been given as `start..=stop`
}

// Each calls f for every value of the range, in ascending order.
// Ranges with start > effective stop are empty.
func (s Spec) Each(f func(uint64)) {
	if s.Start > s.Stop || (s.Start == s.Stop && !s.Inclusive) {
		return
	}
	for v := s.Start; ; v++ {
		if v == s.Stop { // no v+1 here, Stop may be MaxUint64
			if s.Inclusive {
				f(v)
			}
			return
		}
		f(v)
	}
}

// Len returns the number of values in the range. It saturates for the single
// range which does not fit, 0..=MaxUint64.
func (s Spec) Len() uint64 {
	if s.Start > s.Stop {
		return 0
	}
	n := s.Stop - s.Start
	if s.Inclusive && n < math.MaxUint64 {
		n++
	}
	return n
}

func (s Spec) String() string {
	eq := ""
	if s.Inclusive {
		eq = "="
	}
	return fmt.Sprintf("%s in %d..%s%d", s.Var.Name, s.Start, eq, s.Stop)
}

// --- Header parser ---------------------------------------------------------

// ParseHeader parses a header of the form
//
//     ident in int .. int
//     ident in int ..= int
//
// Errors have code HeaderSyntax for unexpected tokens and code RangeConversion for
// integer literals which do not fit into 64 bits. Missing tokens at the end of the
// header are reported at position end, usually the span of the body.
func ParseHeader(header tt.Stream, end seqgen.Span) (Spec, error) {
	c := &cursor{nodes: header, end: end}
	var spec Spec
	var err error
	if spec.Var, err = c.ident(); err != nil {
		return spec, err
	}
	if err = c.keyword("in"); err != nil {
		return spec, err
	}
	if spec.Start, err = c.integer(); err != nil {
		return spec, err
	}
	if spec.Inclusive, err = c.rangeOp(); err != nil {
		return spec, err
	}
	if spec.Stop, err = c.integer(); err != nil {
		return spec, err
	}
	if n := c.peek(); n != nil {
		return spec, seqgen.Errorf(seqgen.HeaderSyntax, n.Span(),
			"unexpected token `%s` after range", n)
	}
	tracer().Debugf("header: %s", spec)
	return spec, nil
}

// cursor moves over the nodes of a header, with one node of lookahead.
type cursor struct {
	nodes tt.Stream
	pos   int
	end   seqgen.Span
}

func (c *cursor) peek() tt.Node {
	if c.pos >= len(c.nodes) {
		return nil
	}
	return c.nodes[c.pos]
}

func (c *cursor) next() tt.Node {
	n := c.peek()
	if n != nil {
		c.pos++
	}
	return n
}

func (c *cursor) fail(expected string) error {
	n := c.peek()
	if n == nil {
		return seqgen.Errorf(seqgen.HeaderSyntax, c.end, "expected %s, found end of header", expected)
	}
	return seqgen.Errorf(seqgen.HeaderSyntax, n.Span(), "expected %s, found `%s`", expected, n)
}

func (c *cursor) ident() (tt.Ident, error) {
	id, ok := c.peek().(tt.Ident)
	if !ok {
		return tt.Ident{}, c.fail("identifier")
	}
	c.next()
	return id, nil
}

func (c *cursor) keyword(kw string) error {
	if !tt.IsIdent(c.peek(), kw) {
		return c.fail("`" + kw + "`")
	}
	c.next()
	return nil
}

// rangeOp reads `..` or `..=`, written without blanks in between, and tells
// whether the range is inclusive.
func (c *cursor) rangeOp() (bool, error) {
	dot, ok := c.peek().(tt.Punct)
	if !ok || dot.Char != '.' {
		return false, c.fail("`..`")
	}
	c.next()
	if dot.Spacing != tt.Joint || !tt.IsPunct(c.peek(), '.') {
		return false, seqgen.Errorf(seqgen.HeaderSyntax, dot.At, "expected `..`, found `.`")
	}
	second := c.next().(tt.Punct)
	if second.Spacing == tt.Joint && tt.IsPunct(c.peek(), '=') {
		c.next()
		return true, nil
	}
	return false, nil
}

func (c *cursor) integer() (uint64, error) {
	lit, ok := c.peek().(tt.Literal)
	if !ok || lit.Kind != tt.IntLit {
		return 0, c.fail("integer literal")
	}
	c.next()
	v, err := parseUint(lit.Raw)
	if err != nil {
		return 0, seqgen.Wrap(seqgen.RangeConversion, lit.At,
			fmt.Sprintf("cannot convert `%s` to an unsigned 64-bit integer", lit.Raw), err)
	}
	return v, nil
}

// Longer suffixes first, "u8" is a suffix of "u128".
var intSuffixes = []string{"u128", "i128", "usize", "isize",
	"u16", "u32", "u64", "i16", "i32", "i64", "u8", "i8"}

// parseUint converts the raw text of an integer literal. It accepts `_` separators,
// the prefixes 0x, 0o and 0b, and a trailing integer type suffix. A leading zero
// does not switch to octal.
func parseUint(raw string) (uint64, error) {
	s := raw
	for _, suffix := range intSuffixes {
		if strings.HasSuffix(s, suffix) {
			s = strings.TrimSuffix(s, suffix)
			break
		}
	}
	s = strings.ReplaceAll(s, "_", "")
	base := 10
	if len(s) > 2 && s[0] == '0' {
		switch s[1] {
		case 'x':
			base = 16
		case 'o':
			base = 8
		case 'b':
			base = 2
		}
		if base != 10 {
			s = s[2:]
		}
	}
	return strconv.ParseUint(s, base, 64)
}
