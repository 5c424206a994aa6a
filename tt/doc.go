/*
Package tt implements token trees, the homogenous syntax representation shared by
all generators of this module.

A token tree is a sequence of nodes. Every node is either a leaf or a group:

    Ident     an identifier, e.g. `foo`, `in`, `struct`
    Literal   a number, string or character literal, kept as raw source text
    Punct     a single punctuation character, with a spacing hint
    Group     a delimiter ( ) [ ] or { } wrapping a nested sequence of nodes

The set of node types is closed. Clients switch over the concrete types

    switch n := node.(type) {
    case tt.Ident:   …
    case tt.Literal: …
    case tt.Punct:   …
    case tt.Group:   …
    }

and may rely on these four cases being exhaustive.

Every node carries a span for diagnostics. Spans never take part in comparisons of
tree structure, see Equal and Fingerprint.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2021–2026 Norbert Pillmayer <norbert@pillmayer.com>

*/
package tt
