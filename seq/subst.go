package seq

import (
	"strconv"

	"github.com/npillmayer/seqgen/tt"
)

// Substitute returns a copy of body for a single value of the loop variable.
//
// A bare occurrence of variable is replaced by an unsuffixed integer literal. An
// identifier followed by a chain of paste operators and identifiers, as in
// `get~N~_mut`, is concatenated into a single identifier, where occurrences of
// variable contribute the decimal form of value. The chain starts with the literal
// name of its first identifier, even if that is the variable itself.
// Groups are copied with delimiter and span preserved; all other nodes are copied
// unchanged. A paste operator which is not followed by an identifier is left in
// place.
func (x *Expander) Substitute(body tt.Stream, variable string, value uint64) tt.Stream {
	out := make(tt.Stream, 0, len(body))
	for i := 0; i < len(body); i++ {
		switch n := body[i].(type) {
		case tt.Group:
			out = append(out, tt.Group{
				Delim:    n.Delim,
				Children: x.Substitute(n.Children, variable, value),
				At:       n.At,
			})
		case tt.Ident:
			if name, consumed := x.pasteChain(body[i+1:], n.Name, variable, value); consumed > 0 {
				out = append(out, tt.Ident{Name: name, At: n.At})
				i += consumed
			} else if n.Name == variable {
				out = append(out, tt.IntLiteral(value, n.At))
			} else {
				out = append(out, n)
			}
		default:
			out = append(out, n)
		}
	}
	return out
}

// pasteChain follows `~ ident` pairs at the start of rest, appending each
// identifier to name. It returns the concatenated name and the number of nodes
// of rest it consumed.
func (x *Expander) pasteChain(rest tt.Stream, name, variable string, value uint64) (string, int) {
	consumed := 0
	for consumed+1 < len(rest) && tt.IsPunct(rest[consumed], x.pasteOp) {
		next, ok := rest[consumed+1].(tt.Ident)
		if !ok {
			break
		}
		if next.Name == variable {
			name += strconv.FormatUint(value, 10)
		} else {
			name += next.Name
		}
		consumed += 2
	}
	return name, consumed
}
