package tt

import (
	"strconv"

	"github.com/npillmayer/seqgen"
)

//go:generate go tool stringer -type=Delimiter
//go:generate go tool stringer -type=LitKind

// Node is a unit of a token tree, either one of the leaf types Ident, Literal
// and Punct, or a Group.
type Node interface {
	Span() seqgen.Span
	String() string
	isNode() // seals the set of node types
}

// Stream is an ordered sequence of nodes. Ordering is significant.
type Stream []Node

// --- Leafs -----------------------------------------------------------------

// Ident is an identifier leaf.
type Ident struct {
	Name string
	At   seqgen.Span
}

// LitKind classifies literals.
type LitKind int8

// Kinds of literals.
const (
	IntLit LitKind = iota
	FloatLit
	StrLit
	CharLit
)

// Literal is a literal leaf. Raw holds the literal as it appeared in the source,
// including quotes, prefixes and suffixes.
type Literal struct {
	Kind LitKind
	Raw  string
	At   seqgen.Span
}

// Spacing tells whether a punctuation character is immediately followed by
// another punctuation character, as in `..` or `->`.
type Spacing int8

// Spacing hints.
const (
	Alone Spacing = iota
	Joint
)

// Punct is a single punctuation character.
type Punct struct {
	Char    rune
	Spacing Spacing
	At      seqgen.Span
}

// IntLiteral creates an unsuffixed decimal integer literal.
func IntLiteral(v uint64, at seqgen.Span) Literal {
	return Literal{Kind: IntLit, Raw: strconv.FormatUint(v, 10), At: at}
}

func (id Ident) Span() seqgen.Span   { return id.At }
func (lit Literal) Span() seqgen.Span { return lit.At }
func (p Punct) Span() seqgen.Span     { return p.At }

func (id Ident) String() string   { return id.Name }
func (lit Literal) String() string { return lit.Raw }
func (p Punct) String() string     { return string(p.Char) }

func (Ident) isNode()   {}
func (Literal) isNode() {}
func (Punct) isNode()   {}

// --- Groups ----------------------------------------------------------------

// Delimiter is the kind of bracket pair wrapping a group.
type Delimiter int8

// Delimiters.
const (
	Paren   Delimiter = iota // ( … )
	Brace                    // { … }
	Bracket                  // [ … ]
)

// Open returns the opening character of a delimiter.
func (d Delimiter) Open() rune {
	return [...]rune{'(', '{', '['}[d]
}

// Close returns the closing character of a delimiter.
func (d Delimiter) Close() rune {
	return [...]rune{')', '}', ']'}[d]
}

// Group wraps a (possibly empty) sequence of children with a delimiter.
// The span of a group covers both delimiter characters.
type Group struct {
	Delim    Delimiter
	Children Stream
	At       seqgen.Span
}

func (g Group) Span() seqgen.Span { return g.At }
func (g Group) String() string    { return Format(Stream{g}) }
func (Group) isNode()             {}

// --- Predicates ------------------------------------------------------------

// IsPunct is a predicate for a punctuation node with character ch.
func IsPunct(n Node, ch rune) bool {
	p, ok := n.(Punct)
	return ok && p.Char == ch
}

// IsIdent is a predicate for an identifier node with a given name.
func IsIdent(n Node, name string) bool {
	id, ok := n.(Ident)
	return ok && id.Name == name
}

// AsGroup returns n as a group, if n is a group with delimiter d.
func AsGroup(n Node, d Delimiter) (Group, bool) {
	g, ok := n.(Group)
	if !ok || g.Delim != d {
		return Group{}, false
	}
	return g, true
}

// String formats the stream as source text.
func (s Stream) String() string {
	return Format(s)
}

// Span returns the span covering all nodes of s.
func (s Stream) Span() seqgen.Span {
	var span seqgen.Span
	for _, n := range s {
		span = span.Extend(n.Span())
	}
	return span
}
