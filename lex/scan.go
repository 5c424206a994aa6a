package lex

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2021–2026 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"fmt"
	"strings"
	"sync"

	"github.com/npillmayer/seqgen"
	"github.com/timtadh/lexmachine"
	"github.com/timtadh/lexmachine/machines"
)

// TokKind is a category type for tokens. Punctuation and delimiter tokens use
// their character as kind, all other categories are negative.
type TokKind int

// Token categories which are not single characters.
const (
	EOF    TokKind = -1
	Ident  TokKind = -2
	Int    TokKind = -3
	Float  TokKind = -4
	String TokKind = -5
	Char   TokKind = -6
)

// Token is a flat input token, as produced by a Tokenizer.
type Token struct {
	Kind   TokKind
	Lexeme string
	Span   seqgen.Span
}

func (t Token) String() string {
	return fmt.Sprintf("%q%s", t.Lexeme, t.Span)
}

// Tokenizer is a scanner interface.
type Tokenizer interface {
	NextToken() Token
	SetErrorHandler(func(error))
}

// --- Token setup -----------------------------------------------------------

// The tokens representing single-character lexemes
var puncts = []string{"~", "!", "@", "#", "$", "%", "^", "&", "*", "-", "+", "=",
	"|", "\\", ":", ";", ",", ".", "<", ">", "/", "?", "'"}
var delimiters = []string{"(", ")", "[", "]", "{", "}"}

// tokenIds will be set in initTokens()
var tokenIds map[string]int // A map from the token names to their token types

var initOnce sync.Once // monitors one-time initialization
func initTokens() {
	initOnce.Do(func() {
		tokenIds = make(map[string]int)
		tokenIds["IDENT"] = int(Ident)
		tokenIds["INT"] = int(Int)
		tokenIds["FLOAT"] = int(Float)
		tokenIds["STRING"] = int(String)
		tokenIds["CHAR"] = int(Char)
		for _, lit := range append(puncts, delimiters...) {
			tokenIds[lit] = int([]rune(lit)[0])
		}
	})
}

// utf8Seq matches a single multi-byte UTF-8 encoded character. The DFA works on
// bytes, so character classes cannot hold non-ASCII runes.
const utf8Seq = "[\xc2-\xdf][\x80-\xbf]|" +
	"[\xe0-\xef][\x80-\xbf][\x80-\xbf]|" +
	"[\xf0-\xf4][\x80-\xbf][\x80-\xbf][\x80-\xbf]"

const intSuffix = `(u8|u16|u32|u64|u128|usize|i8|i16|i32|i64|i128|isize)`

var adapter *LMAdapter
var adapterErr error
var lexerOnce sync.Once // monitors one-time compilation of the DFA

// Lexer returns the lexmachine adapter for token tree sources. The DFA is
// compiled on first use.
func Lexer() (*LMAdapter, error) {
	lexerOnce.Do(func() {
		initTokens()
		init := func(lexer *lexmachine.Lexer) {
			lexer.Add([]byte(`//[^\n]*\n?`), Skip) // skip comments
			lexer.Add([]byte(`/\*([^*]|\*+[^*/])*\*+/`), Skip)
			lexer.Add([]byte(`( |\t|\n|\r)+`), Skip)
			lexer.Add([]byte(`\"([^"\\]|\\.)*\"`), makeToken("STRING"))
			lexer.Add([]byte(`'([^'\\`+"\x80-\xff"+`]|\\.|`+utf8Seq+`)'`), makeToken("CHAR"))
			lexer.Add([]byte(`([a-z]|[A-Z]|_)([a-z]|[A-Z]|[0-9]|_)*`), makeToken("IDENT"))
			lexer.Add([]byte(`[0-9]([0-9]|_)*`+intSuffix+`?`), makeToken("INT"))
			lexer.Add([]byte(`0x([0-9]|[a-f]|[A-F]|_)+`+intSuffix+`?`), makeToken("INT"))
			lexer.Add([]byte(`0o([0-7]|_)+`+intSuffix+`?`), makeToken("INT"))
			lexer.Add([]byte(`0b(0|1|_)+`+intSuffix+`?`), makeToken("INT"))
			lexer.Add([]byte(`[0-9]([0-9]|_)*\.[0-9]([0-9]|_)*((e|E)(\+|\-)?[0-9]+)?(f32|f64)?`), makeToken("FLOAT"))
		}
		adapter, adapterErr = NewLMAdapter(init, append(puncts, delimiters...), tokenIds)
	})
	return adapter, adapterErr
}

func makeToken(s string) lexmachine.Action {
	id, ok := tokenIds[s]
	if !ok {
		panic(fmt.Errorf("unknown token: %s", s))
	}
	return MakeToken(s, id)
}

// --- lexmachine adapter ----------------------------------------------------

// LMAdapter is a lexmachine adapter to use lexmachine as a scanner.
type LMAdapter struct {
	Lexer *lexmachine.Lexer
}

// NewLMAdapter creates a new lexmachine adapter. It receives a list of
// literals ('[', ';', …) and a map for translating token strings to their values.
// Keywords are not registered: `in` and friends are ordinary identifiers.
//
// NewLMAdapter will return an error if compiling the DFA failed.
func NewLMAdapter(init func(*lexmachine.Lexer), literals []string, tokenIds map[string]int) (*LMAdapter, error) {
	adapter := &LMAdapter{}
	adapter.Lexer = lexmachine.NewLexer()
	init(adapter.Lexer)
	for _, lit := range literals {
		r := "\\" + strings.Join(strings.Split(lit, ""), "\\")
		adapter.Lexer.Add([]byte(r), MakeToken(lit, tokenIds[lit]))
	}
	if err := adapter.Lexer.Compile(); err != nil {
		tracer().Errorf("Error compiling DFA: %v", err)
		return nil, err
	}
	return adapter, nil
}

// Scanner creates a scanner for a given input. The scanner will implement the
// Tokenizer interface.
func (lm *LMAdapter) Scanner(input string) (*LMScanner, error) {
	s, err := lm.Lexer.Scanner([]byte(input))
	if err != nil {
		return &LMScanner{}, err
	}
	return &LMScanner{scanner: s, Error: logError}, nil
}

// LMScanner is a scanner type for lexmachine scanners, implementing the
// Tokenizer interface.
type LMScanner struct {
	scanner *lexmachine.Scanner
	failed  bool
	Error   func(error)
}

var _ Tokenizer = (*LMScanner)(nil)

// SetErrorHandler sets an error handler for the scanner.
func (lms *LMScanner) SetErrorHandler(h func(error)) {
	if h == nil {
		lms.Error = logError
		return
	}
	lms.Error = h
}

// Default error reporting function for lexmachine-based scanners
func logError(e error) {
	tracer().Errorf("scanner error: " + e.Error())
}

// NextToken is part of the Tokenizer interface.
//
// The first scanning error is reported to the error handler, after which the
// scanner behaves as if the end of input has been reached.
func (lms *LMScanner) NextToken() Token {
	if lms.failed || lms.scanner == nil {
		return Token{Kind: EOF}
	}
	tok, err, eof := lms.scanner.Next()
	if err != nil {
		lms.failed = true
		span := seqgen.Span{uint64(lms.scanner.TC), uint64(lms.scanner.TC + 1)}
		if ui, is := err.(*machines.UnconsumedInput); is {
			span = seqgen.Span{uint64(ui.StartTC), uint64(ui.FailTC + 1)}
		}
		lms.Error(seqgen.Wrap(seqgen.Lexical, span, "cannot scan input", err))
		return Token{Kind: EOF, Span: span}
	}
	if eof {
		return Token{Kind: EOF}
	}
	tracer().Debugf("tok is %T | %v", tok, tok)
	token := tok.(*lexmachine.Token)
	return Token{
		Kind:   TokKind(token.Type),
		Lexeme: string(token.Lexeme),
		Span:   seqgen.Span{uint64(token.TC), uint64(token.TC + len(token.Lexeme))},
	}
}

// ---------------------------------------------------------------------------

// Skip is a pre-defined action which ignores the scanned match.
func Skip(*lexmachine.Scanner, *machines.Match) (interface{}, error) {
	return nil, nil
}

// MakeToken is a pre-defined action which wraps a scanned match into a token.
func MakeToken(name string, id int) lexmachine.Action {
	return func(s *lexmachine.Scanner, m *machines.Match) (interface{}, error) {
		return s.Token(id, string(m.Bytes), m), nil
	}
}
