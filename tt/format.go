package tt

import (
	"strings"
)

// Format prints a stream as source text. Output is normalized: tokens are
// separated by single blanks, with the exceptions a reader would expect, e.g.
// no blank in front of `;` or between a function name and its parameter list.
// Non-empty brace groups are padded with blanks, other groups are not.
//
//     fn f() {} struct S0; const C: u32 = 1;
//
func Format(s Stream) string {
	var b strings.Builder
	writeStream(&b, s)
	return b.String()
}

func writeStream(b *strings.Builder, s Stream) {
	var prev Node
	for _, n := range s {
		if prev != nil && blankBetween(prev, n) {
			b.WriteByte(' ')
		}
		writeNode(b, n)
		prev = n
	}
}

func writeNode(b *strings.Builder, n Node) {
	g, ok := n.(Group)
	if !ok {
		b.WriteString(n.String())
		return
	}
	b.WriteRune(g.Delim.Open())
	if g.Delim == Brace && len(g.Children) > 0 {
		b.WriteByte(' ')
		writeStream(b, g.Children)
		b.WriteByte(' ')
	} else {
		writeStream(b, g.Children)
	}
	b.WriteRune(g.Delim.Close())
}

func blankBetween(prev, next Node) bool {
	if p, ok := prev.(Punct); ok {
		if p.Spacing == Joint {
			return false
		}
		switch p.Char {
		case '.', '\'':
			return false
		case '!', '#':
			if _, ok := next.(Group); ok { // macro invocations and attributes
				return false
			}
		}
	}
	switch n := next.(type) {
	case Punct:
		switch n.Char {
		case ';', ',', '.', ':', '?':
			return false
		}
	case Group:
		if _, ok := prev.(Ident); ok && n.Delim != Brace {
			return false
		}
	}
	return true
}
