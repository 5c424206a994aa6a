package tt

import (
	"github.com/cnf/structhash"
)

// Equal compares two streams structurally. Spans are ignored, as are spacing
// hints of punctuation which is not followed by another punctuation character.
func Equal(a, b Stream) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !NodeEqual(a[i], b[i]) {
			return false
		}
	}
	return true
}

// NodeEqual compares two nodes structurally, ignoring spans.
func NodeEqual(a, b Node) bool {
	switch x := a.(type) {
	case Ident:
		y, ok := b.(Ident)
		return ok && x.Name == y.Name
	case Literal:
		y, ok := b.(Literal)
		return ok && x.Kind == y.Kind && x.Raw == y.Raw
	case Punct:
		y, ok := b.(Punct)
		return ok && x.Char == y.Char
	case Group:
		y, ok := b.(Group)
		return ok && x.Delim == y.Delim && Equal(x.Children, y.Children)
	}
	return false
}

// --- Fingerprints ----------------------------------------------------------

// shape is the span-free image of a node, suitable for structural hashing.
type shape struct {
	Kind string
	Text string
	Kids []shape
}

func shapeOf(s Stream) []shape {
	shapes := make([]shape, 0, len(s))
	for _, n := range s {
		switch x := n.(type) {
		case Ident:
			shapes = append(shapes, shape{Kind: "ident", Text: x.Name})
		case Literal:
			shapes = append(shapes, shape{Kind: "lit", Text: x.Raw})
		case Punct:
			shapes = append(shapes, shape{Kind: "punct", Text: string(x.Char)})
		case Group:
			shapes = append(shapes, shape{Kind: x.Delim.String(), Kids: shapeOf(x.Children)})
		}
	}
	return shapes
}

// Fingerprint returns a structural hash of a stream. Two streams which are Equal
// have the same fingerprint, regardless of where their tokens came from.
func Fingerprint(s Stream) (string, error) {
	return structhash.Hash(struct{ Nodes []shape }{shapeOf(s)}, 1)
}
