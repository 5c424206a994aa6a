package main

import (
	"fmt"
	"io"

	"github.com/npillmayer/seqgen/tt"
	"github.com/pterm/pterm"
)

// renderTree writes a token stream as a tree to w.
func renderTree(w io.Writer, label string, s tt.Stream) error {
	fmt.Fprintln(w, label)
	if len(s) == 0 {
		fmt.Fprintln(w, "(empty)")
		return nil
	}
	ll := leveledStream(s, pterm.LeveledList{}, 0)
	tracer().Debugf("|ll| = %d", len(ll))
	root := pterm.NewTreeFromLeveledList(ll)
	tree, err := pterm.DefaultTree.WithRoot(root).Srender()
	if err != nil {
		return err
	}
	fmt.Fprint(w, tree)
	return nil
}

func leveledStream(s tt.Stream, ll pterm.LeveledList, level int) pterm.LeveledList {
	for _, n := range s {
		ll = append(ll, pterm.LeveledListItem{
			Level: level,
			Text:  nodeLabel(n),
		})
		if g, ok := n.(tt.Group); ok {
			ll = leveledStream(g.Children, ll, level+1)
		}
	}
	return ll
}

func nodeLabel(n tt.Node) string {
	switch n := n.(type) {
	case tt.Ident:
		return fmt.Sprintf("ident %s", n.Name)
	case tt.Literal:
		return fmt.Sprintf("literal %s (%s)", n.Raw, n.Kind)
	case tt.Punct:
		if n.Spacing == tt.Joint {
			return fmt.Sprintf("punct %c (joint)", n.Char)
		}
		return fmt.Sprintf("punct %c", n.Char)
	case tt.Group:
		return fmt.Sprintf("group %c…%c", n.Delim.Open(), n.Delim.Close())
	}
	return n.String()
}
