/*
Package splice expands generator invocations within a token tree.

An invocation is an identifier naming a generator, an exclamation mark and a
delimited group holding the generator's input:

    seq!(N in 0..4 { … });
    seq! { N in 0..4 { … } }

The Splicer replaces every invocation of a registered generator by the
generator's output and expands invocations appearing in that output, too.
Invocations of unknown names are left untouched, they may belong to someone else.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2021–2026 Norbert Pillmayer <norbert@pillmayer.com>

*/
package splice

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'seqgen.splice'.
func tracer() tracing.Trace {
	return tracing.Select("seqgen.splice")
}
