package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/npillmayer/seqgen"
	"github.com/npillmayer/seqgen/lex"
	"github.com/npillmayer/seqgen/tt"
	"github.com/spf13/cobra"
)

func (a *app) expandCmd() *cobra.Command {
	var tree, fingerprint bool
	cmd := &cobra.Command{
		Use:   "expand [file|-]",
		Short: "Expand a single invocation",
		Long: `Expand reads one invocation, i.e. a header and a body in braces like

    N in 0..4 { fn f~N() -> u64 { N * 2 } }

and prints the expanded token stream. Input is read from stdin if no file
or "-" is given.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name, src, err := readInput(cmd, args)
			if err != nil {
				return err
			}
			out, err := expandSource(a.cfg, src)
			if err != nil {
				return diagnose(name, src, err)
			}
			w := cmd.OutOrStdout()
			if tree {
				if err := renderTree(w, name, out); err != nil {
					return err
				}
			} else {
				fmt.Fprintln(w, tt.Format(out))
			}
			if fingerprint {
				fp, err := tt.Fingerprint(out)
				if err != nil {
					return err
				}
				fmt.Fprintf(w, "fingerprint %s\n", fp)
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&tree, "tree", false, "render the output as a tree")
	cmd.Flags().BoolVar(&fingerprint, "fingerprint", false, "print a structural hash of the output")
	return cmd
}

func expandSource(cfg Config, src string) (tt.Stream, error) {
	input, err := lex.Parse(src)
	if err != nil {
		return nil, err
	}
	return cfg.Expander().Expand(input)
}

// readInput reads the file named by the first argument, or stdin.
func readInput(cmd *cobra.Command, args []string) (name string, src string, err error) {
	var data []byte
	if len(args) == 0 || args[0] == "-" {
		name = "<stdin>"
		data, err = io.ReadAll(cmd.InOrStdin())
	} else {
		name = args[0]
		data, err = os.ReadFile(name)
	}
	if err != nil {
		return name, "", err
	}
	tracer().Debugf("read %d bytes from %s", len(data), name)
	return name, string(data), nil
}

// --- Diagnostics -----------------------------------------------------------

// diagnosticError presents an error together with its position in the input.
type diagnosticError struct {
	text string
	err  error
}

func (d *diagnosticError) Error() string { return d.text }
func (d *diagnosticError) Unwrap() error { return d.err }

// diagnose formats err as "file:line:col: code: message" if it carries a position.
func diagnose(name, src string, err error) error {
	var e *seqgen.Error
	if !errors.As(err, &e) {
		return &diagnosticError{text: fmt.Sprintf("%s: %v", name, err), err: err}
	}
	line, col := e.Span.Position(src)
	msg := e.Msg
	if e.Err != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.Err)
	}
	return &diagnosticError{
		text: fmt.Sprintf("%s:%d:%d: %s: %s", name, line, col, e.Code, msg),
		err:  err,
	}
}
