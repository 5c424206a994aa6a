package main

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/chzyer/readline"
	"github.com/npillmayer/seqgen/lex"
	"github.com/npillmayer/seqgen/tt"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

func (a *app) replCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "repl",
		Short: "Expand invocations interactively",
		Long: `Repl reads one invocation per line and prints its expansion.

    :tree <invocation>     render the expansion as a tree
    :splice <source>       expand all macro invocations within a line of source
    :quit                  leave (or <ctrl>D)`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			repl, err := readline.New("seqgen> ")
			if err != nil {
				return err
			}
			defer repl.Close()
			pterm.Info.Println("Welcome to seqgen")
			tracer().Infof("Quit with <ctrl>D")
			intp := &Intp{cfg: a.cfg, repl: repl, out: cmd.OutOrStdout()}
			intp.REPL()
			return nil
		},
	}
}

// Intp is our interpreter object.
type Intp struct {
	cfg  Config
	repl *readline.Instance
	out  io.Writer
}

// REPL starts interactive mode.
func (intp *Intp) REPL() {
	for {
		line, err := intp.repl.Readline()
		if err != nil { // io.EOF or interrupt
			break
		}
		if line = strings.TrimSpace(line); line == "" {
			continue
		}
		quit, err := intp.Eval(line)
		if err != nil {
			pterm.Error.Println(err.Error())
			continue
		}
		if quit {
			break
		}
	}
	fmt.Fprintln(intp.out, "Good bye!")
}

var errUnknownCommand = errors.New("unknown command")

// Eval executes a command or expands an invocation, given on a line by itself.
// It returns true if the user asked to quit.
func (intp *Intp) Eval(line string) (bool, error) {
	if !strings.HasPrefix(line, ":") {
		out, err := expandSource(intp.cfg, line)
		if err != nil {
			return false, diagnose("<repl>", line, err)
		}
		fmt.Fprintln(intp.out, tt.Format(out))
		return false, nil
	}
	cmd, arg, _ := strings.Cut(line[1:], " ")
	arg = strings.TrimSpace(arg)
	switch cmd {
	case "quit", "q":
		return true, nil
	case "tree":
		out, err := expandSource(intp.cfg, arg)
		if err != nil {
			return false, diagnose("<repl>", arg, err)
		}
		if err := renderTree(intp.out, arg, out); err != nil {
			return false, err
		}
	case "splice":
		input, err := lex.Parse(arg)
		if err != nil {
			return false, diagnose("<repl>", arg, err)
		}
		out, err := intp.cfg.Splicer().Splice(input)
		if err != nil {
			return false, diagnose("<repl>", arg, err)
		}
		fmt.Fprintln(intp.out, tt.Format(out))
	default:
		return false, fmt.Errorf("%w :%s", errUnknownCommand, cmd)
	}
	return false, nil
}
