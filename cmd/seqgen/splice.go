package main

import (
	"fmt"

	"github.com/npillmayer/seqgen/lex"
	"github.com/npillmayer/seqgen/tt"
	"github.com/spf13/cobra"
)

func (a *app) spliceCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "splice [file|-]",
		Short: "Expand all invocations within a source file",
		Long: `Splice reads a source file and replaces every invocation of the macro,
e.g. seq!(N in 0..4 { … }), by its expansion. Invocations produced by an
expansion are expanded as well. The result is printed as a token stream.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name, src, err := readInput(cmd, args)
			if err != nil {
				return err
			}
			input, err := lex.Parse(src)
			if err != nil {
				return diagnose(name, src, err)
			}
			out, err := a.cfg.Splicer().Splice(input)
			if err != nil {
				return diagnose(name, src, err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), tt.Format(out))
			return nil
		},
	}
}
