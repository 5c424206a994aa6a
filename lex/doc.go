/*
Package lex creates token trees from source text.

Scanning is done in two steps. A tokenizer, generated with the lexmachine scanner
generator, splits the input into identifiers, literals and single punctuation
characters, skipping whitespace and `//` comments. The tree builder then folds
delimiter pairs ( ) [ ] { } into groups and computes the spacing hints of
punctuation.

    stream, err := lex.Parse(`seq!(N in 0..4 { struct S~N; })`)
    if err != nil {
        // err is a *seqgen.Error with code Lexical or Delimiter
    }

Clients who want to feed tokens from a different source may implement the
Tokenizer interface and call Build directly.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2021–2026 Norbert Pillmayer <norbert@pillmayer.com>

*/
package lex

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'seqgen.lex'.
func tracer() tracing.Trace {
	return tracing.Select("seqgen.lex")
}
