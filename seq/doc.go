/*
Package seq implements the structural repetition expander.

An invocation consists of a header and a brace-delimited body:

    N in 0..4 {
        struct Register~N { value: u32 }
    }

The header binds a loop variable to an integer range. The expander produces one
copy of the body for every integer of the range, substituting the loop variable.
A bare occurrence of the variable becomes an integer literal; an identifier chained
to the variable with the paste operator `~` becomes a single identifier:

    struct Register0 { value: u32 } struct Register1 { value: u32 } …

Ranges are half-open (`0..4`) or inclusive (`0..=3`). Empty ranges are legal and
produce empty output.

Repeat Markers

If the body contains a repeat marker `#( … )*` anywhere, possibly nested deep
inside groups, only the marked sections are repeated and the rest of the body is
emitted exactly once, without substitution:

    N in 0..3 {
        enum Interrupt { #( Irq~N, )* }
    }

expands to

    enum Interrupt { Irq0, Irq1, Irq2, }

Expansion works on token trees (package tt), never on text. Delimiters, nesting and
source spans of the body are preserved.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2021–2026 Norbert Pillmayer <norbert@pillmayer.com>

*/
package seq

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'seqgen.seq'.
func tracer() tracing.Trace {
	return tracing.Select("seqgen.seq")
}
