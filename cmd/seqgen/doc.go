/*
Command seqgen expands structural repetitions in token trees.

	seqgen expand [file|-]     expand a single invocation "N in 0..4 { … }"
	seqgen splice [file|-]     expand all seq!(…) invocations within a source file
	seqgen repl                interactive mode, one invocation per line
	seqgen version

Settings are read from an optional YAML file (default ".seqgen.yaml"), flags
take precedence:

	trace: Info          # trace level [Debug|Info|Error]
	macro: seq           # name of invocations to splice
	marker: "#"          # repeat marker #( … )*
	continuation: "*"
	paste: "~"           # paste operator f~N
	maxDepth: 64         # nesting limit for invocations

Diagnostics are printed as "file:line:col: code: message", and the exit code
is 1 on any error.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2021–2026 Norbert Pillmayer <norbert@pillmayer.com>

*/
package main

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'seqgen.cli'
func tracer() tracing.Trace {
	return tracing.Select("seqgen.cli")
}
