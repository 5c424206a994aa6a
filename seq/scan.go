package seq

import (
	"github.com/npillmayer/seqgen/tt"
)

// Scan walks body looking for repeat markers `#( … )*`. Every marker is replaced
// in place by the concatenated substitutions of its inner group, one for every
// value of the range. Scan descends into all groups. The second return value
// tells whether a marker has been found anywhere in the tree.
//
// Nodes outside of markers are copied once, without substitution. A marker
// character followed by a parenthesized group, but not by the continuation
// character, is no marker: both are copied, and the group is scanned like any
// other group.
func (x *Expander) Scan(body tt.Stream, spec Spec) (tt.Stream, bool) {
	out := make(tt.Stream, 0, len(body))
	found := false
	for i := 0; i < len(body); i++ {
		if inner, ok := x.markerAt(body, i); ok {
			found = true
			spec.Each(func(v uint64) {
				out = append(out, x.Substitute(inner.Children, spec.Var.Name, v)...)
			})
			i += 2 // skip group and continuation
			continue
		}
		if g, ok := body[i].(tt.Group); ok {
			children, foundInGroup := x.Scan(g.Children, spec)
			found = found || foundInGroup
			out = append(out, tt.Group{Delim: g.Delim, Children: children, At: g.At})
			continue
		}
		out = append(out, body[i])
	}
	return out, found
}

// markerAt checks for the 3-node marker pattern at position i: marker character,
// parenthesized group, continuation character. It returns the group.
func (x *Expander) markerAt(body tt.Stream, i int) (tt.Group, bool) {
	if i+2 >= len(body) || !tt.IsPunct(body[i], x.marker) {
		return tt.Group{}, false
	}
	g, ok := tt.AsGroup(body[i+1], tt.Paren)
	if !ok || !tt.IsPunct(body[i+2], x.continuation) {
		return tt.Group{}, false
	}
	return g, true
}
