package seq

import (
	"github.com/davecgh/go-spew/spew"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/seqgen"
	"github.com/npillmayer/seqgen/tt"
)

// Expander is the structural repetition expander. It holds no state besides its
// syntax configuration and may be shared between goroutines.
// Create one with New.
type Expander struct {
	marker       rune // starts a repeat marker, default '#'
	continuation rune // ends a repeat marker, default '*'
	pasteOp      rune // concatenates identifiers, default '~'
}

// Option configures an expander.
type Option func(x *Expander)

// WithMarker sets the characters of the repeat marker, which by default is
// `#( … )*`.
func WithMarker(marker, continuation rune) Option {
	return func(x *Expander) {
		x.marker = marker
		x.continuation = continuation
	}
}

// WithPasteOperator sets the character concatenating identifiers, default '~'.
func WithPasteOperator(op rune) Option {
	return func(x *Expander) {
		x.pasteOp = op
	}
}

// New creates an expander.
func New(opts ...Option) *Expander {
	x := &Expander{
		marker:       '#',
		continuation: '*',
		pasteOp:      '~',
	}
	for _, opt := range opts {
		opt(x)
	}
	return x
}

// Expand expands an invocation, given as a header followed by a brace-delimited
// body. If the body contains repeat markers, the marked sections are repeated and
// the rest of the body appears once. Otherwise the whole body is repeated.
//
// Expansion either fully succeeds or returns an error of type *seqgen.Error and
// no output.
func (x *Expander) Expand(input tt.Stream) (tt.Stream, error) {
	header, body, err := Split(input)
	if err != nil {
		return nil, err
	}
	spec, err := ParseHeader(header, body.At)
	if err != nil {
		return nil, err
	}
	if tracer().GetTraceLevel() == tracing.LevelDebug {
		tracer().Debugf("expanding %s", spew.Sdump(spec))
	}
	out, found := x.Scan(body.Children, spec)
	if found {
		tracer().Debugf("repeat marker found, %s repeats marked sections only", spec)
		return out, nil
	}
	out = make(tt.Stream, 0, len(body.Children)*int(min(spec.Len(), 64)))
	spec.Each(func(v uint64) {
		out = append(out, x.Substitute(body.Children, spec.Var.Name, v)...)
	})
	tracer().Debugf("%s repeats whole body, %d nodes", spec, len(out))
	return out, nil
}

// Generate makes an expander usable as a generator for invocations of the form
// `seq!(N in 0..4 { … })`.
func (x *Expander) Generate(input tt.Stream) (tt.Stream, error) {
	return x.Expand(input)
}

// Split separates invocation input into header and body. The body is the first
// brace-delimited group at top level, everything before it is the header.
// Nodes following the body are an error.
func Split(input tt.Stream) (tt.Stream, tt.Group, error) {
	for i, n := range input {
		body, ok := tt.AsGroup(n, tt.Brace)
		if !ok {
			continue
		}
		if i+1 < len(input) {
			extra := input[i+1]
			return nil, tt.Group{}, seqgen.Errorf(seqgen.HeaderSyntax, extra.Span(),
				"unexpected token `%s` after body", extra)
		}
		return input[:i], body, nil
	}
	return nil, tt.Group{}, seqgen.Errorf(seqgen.MissingBody, input.Span(),
		"expected a body delimited by braces `{ … }`")
}
