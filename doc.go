/*
Package seqgen is a toolbox for source-to-source generators working on token trees.

Generators consume a fragment of structured syntax and produce a new fragment.
Fragments are not handled as flat text, but as homogenous trees of tokens, where
delimiters like parentheses and braces wrap nested sequences of tokens.
Package structure is as follows:

■ tt: Package tt implements the token tree, the shared representation of all fragments.

■ lex: Package lex creates token trees from source text.

■ seq: Package seq implements the structural repetition expander, which repeats a
block of tokens for every integer of a range, substituting a loop variable.

■ splice: Package splice finds generator invocations within a token tree and splices
the generated fragments back into place.

The base package contains the types which are used throughout all the other packages:
spans for source provenance and an error type carrying diagnostics.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2021–2026 Norbert Pillmayer <norbert@pillmayer.com>

*/
package seqgen
