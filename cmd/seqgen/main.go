package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

// Version is set by the release build.
var Version = "v0.1.0-dev"

var traceKeys = []string{"seqgen.cli", "seqgen.lex", "seqgen.seq", "seqgen.splice"}

func main() {
	initDisplay()
	gtrace.SyntaxTracer = gologadapter.New()
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// We use pterm for moderately fancy output.
func initDisplay() {
	pterm.Info.Prefix = pterm.Prefix{
		Text:  "  >>",
		Style: pterm.NewStyle(pterm.BgCyan, pterm.FgBlack),
	}
	pterm.Error.Prefix = pterm.Prefix{
		Text:  "  Error",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}
}

// app carries the settings shared by all sub-commands.
type app struct {
	configPath string
	flags      Config // raw flag values, applied only if set on the command line
	cfg        Config // effective settings
}

func newRootCmd() *cobra.Command {
	a := &app{cfg: DefaultConfig()}
	root := &cobra.Command{
		Use:   "seqgen",
		Short: "Structural repetition expander for token trees",
		Long: `seqgen expands invocations like

    seq!(N in 0..4 { fn f~N() -> u64 { N * 2 } });

into one copy of the body per value of N, with N replaced by the value and
f~N pasted to a single identifier. Sections marked with #( … )* are repeated
in place instead of the whole body.`,
		SilenceErrors:     true,
		SilenceUsage:      true,
		PersistentPreRunE: a.configure,
	}
	pf := root.PersistentFlags()
	pf.StringVar(&a.configPath, "config", DefaultConfigFile, "config file")
	pf.StringVar(&a.flags.Trace, "trace", "", "trace level [Debug|Info|Error]")
	pf.StringVar(&a.flags.Macro, "macro", "", "name of invocations to expand")
	pf.StringVar(&a.flags.Marker, "marker", "", "repeat marker character")
	pf.StringVar(&a.flags.Continuation, "continuation", "", "repeat continuation character")
	pf.StringVar(&a.flags.Paste, "paste", "", "paste operator character")
	pf.IntVar(&a.flags.MaxDepth, "max-depth", 0, "nesting limit for invocations")
	root.AddCommand(
		a.expandCmd(),
		a.spliceCmd(),
		a.replCmd(),
		versionCmd(),
	)
	return root
}

// configure loads the config file, lets flags override it and sets up tracing.
func (a *app) configure(cmd *cobra.Command, args []string) error {
	flags := cmd.Flags()
	cfg, err := LoadConfig(a.configPath, flags.Changed("config"))
	if err != nil {
		return err
	}
	if flags.Changed("trace") {
		cfg.Trace = a.flags.Trace
	}
	if flags.Changed("macro") {
		cfg.Macro = a.flags.Macro
	}
	if flags.Changed("marker") {
		cfg.Marker = a.flags.Marker
	}
	if flags.Changed("continuation") {
		cfg.Continuation = a.flags.Continuation
	}
	if flags.Changed("paste") {
		cfg.Paste = a.flags.Paste
	}
	if flags.Changed("max-depth") {
		cfg.MaxDepth = a.flags.MaxDepth
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	a.cfg = cfg
	level := traceLevel(cfg.Trace)
	for _, key := range traceKeys {
		tracing.Select(key).SetTraceLevel(level)
	}
	tracer().Infof("Trace level is %s", cfg.Trace)
	return nil
}

// traceLevel accepts level names in any letter case.
func traceLevel(l string) tracing.TraceLevel {
	if l == "" {
		return tracing.LevelError
	}
	return tracing.TraceLevelFromString(strings.ToUpper(l[:1]) + strings.ToLower(l[1:]))
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "seqgen %s\n", Version)
		},
	}
}
