package lex

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2021–2026 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"github.com/emirpasic/gods/stacks/arraystack"
	"github.com/npillmayer/seqgen"
	"github.com/npillmayer/seqgen/tt"
)

// Parse scans a source text and returns its token tree.
//
// Errors are of type *seqgen.Error, with code Lexical for input the tokenizer
// cannot match and code Delimiter for unbalanced delimiters.
func Parse(src string) (tt.Stream, error) {
	lm, err := Lexer()
	if err != nil {
		return nil, err
	}
	scan, err := lm.Scanner(src)
	if err != nil {
		return nil, seqgen.Wrap(seqgen.Lexical, seqgen.Span{}, "cannot create scanner", err)
	}
	return Build(scan)
}

// MustParse is like Parse, but panics on error. Intended for tests and for
// fragments known to be well-formed.
func MustParse(src string) tt.Stream {
	s, err := Parse(src)
	if err != nil {
		panic(err)
	}
	return s
}

// frame is an open delimiter waiting for its closing counterpart.
type frame struct {
	delim    tt.Delimiter
	open     seqgen.Span
	children tt.Stream
}

// Build reads tokens until EOF and folds them into a token tree.
// Build installs its own error handler on the tokenizer.
func Build(tokens Tokenizer) (tt.Stream, error) {
	var scanErr error
	tokens.SetErrorHandler(func(e error) {
		if scanErr == nil {
			scanErr = e
		}
	})
	root := &frame{}
	stack := arraystack.New()
	stack.Push(root)
	for tok := tokens.NextToken(); tok.Kind != EOF; tok = tokens.NextToken() {
		top := peek(stack)
		switch tok.Kind {
		case '(', '[', '{':
			stack.Push(&frame{delim: delimiterFor(tok.Kind), open: tok.Span})
		case ')', ']', '}':
			if stack.Size() == 1 {
				return nil, seqgen.Errorf(seqgen.Delimiter, tok.Span,
					"unexpected closing delimiter `%s`", tok.Lexeme)
			}
			if d := delimiterFor(tok.Kind); d != top.delim {
				return nil, seqgen.Errorf(seqgen.Delimiter, tok.Span,
					"mismatched closing delimiter: expected `%c`, found `%s`", top.delim.Close(), tok.Lexeme)
			}
			stack.Pop()
			group := tt.Group{
				Delim:    top.delim,
				Children: top.children,
				At:       top.open.Extend(tok.Span),
			}
			parent := peek(stack)
			parent.children = append(parent.children, group)
		default:
			top.children = append(top.children, leaf(tok, top.children))
		}
	}
	if scanErr != nil {
		return nil, scanErr
	}
	if stack.Size() > 1 {
		top := peek(stack)
		return nil, seqgen.Errorf(seqgen.Delimiter, top.open,
			"unclosed delimiter `%c`", top.delim.Open())
	}
	tracer().Debugf("token tree has %d top-level nodes", len(root.children))
	return root.children, nil
}

func peek(stack *arraystack.Stack) *frame {
	f, _ := stack.Peek()
	return f.(*frame)
}

func delimiterFor(kind TokKind) tt.Delimiter {
	switch kind {
	case '(', ')':
		return tt.Paren
	case '[', ']':
		return tt.Bracket
	}
	return tt.Brace
}

// leaf converts a token into a leaf node. If tok is a punctuation character
// immediately following another punctuation character, the predecessor in
// siblings is marked as Joint.
func leaf(tok Token, siblings tt.Stream) tt.Node {
	switch tok.Kind {
	case Ident:
		return tt.Ident{Name: tok.Lexeme, At: tok.Span}
	case Int:
		return tt.Literal{Kind: tt.IntLit, Raw: tok.Lexeme, At: tok.Span}
	case Float:
		return tt.Literal{Kind: tt.FloatLit, Raw: tok.Lexeme, At: tok.Span}
	case String:
		return tt.Literal{Kind: tt.StrLit, Raw: tok.Lexeme, At: tok.Span}
	case Char:
		return tt.Literal{Kind: tt.CharLit, Raw: tok.Lexeme, At: tok.Span}
	}
	if n := len(siblings); n > 0 {
		if prev, ok := siblings[n-1].(tt.Punct); ok && prev.At.To() == tok.Span.From() {
			prev.Spacing = tt.Joint
			siblings[n-1] = prev
		}
	}
	return tt.Punct{Char: rune(tok.Kind), Spacing: tt.Alone, At: tok.Span}
}
