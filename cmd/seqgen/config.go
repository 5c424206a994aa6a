package main

import (
	"errors"
	"io/fs"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/npillmayer/seqgen"
	"github.com/npillmayer/seqgen/lex"
	"github.com/npillmayer/seqgen/seq"
	"github.com/npillmayer/seqgen/splice"
	"github.com/npillmayer/seqgen/tt"
	"gopkg.in/yaml.v3"
)

// DefaultConfigFile is read if present and no other file is given.
const DefaultConfigFile = ".seqgen.yaml"

// Config holds the settings of the command line tool.
type Config struct {
	Trace        string `yaml:"trace"`
	Macro        string `yaml:"macro"`
	Marker       string `yaml:"marker"`
	Continuation string `yaml:"continuation"`
	Paste        string `yaml:"paste"`
	MaxDepth     int    `yaml:"maxDepth"`
}

// DefaultConfig returns the settings used when neither a config file nor flags
// say otherwise.
func DefaultConfig() Config {
	return Config{
		Trace:        "Error",
		Macro:        "seq",
		Marker:       "#",
		Continuation: "*",
		Paste:        "~",
		MaxDepth:     splice.DefaultMaxDepth,
	}
}

// LoadConfig reads a config file. A missing file is not an error unless required
// is set; the defaults are returned instead.
func LoadConfig(path string, required bool) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) && !required {
			tracer().Debugf("no config file %s, using defaults", path)
			return DefaultConfig(), nil
		}
		return Config{}, seqgen.Wrap(seqgen.Config, seqgen.Span{}, "cannot read config file "+path, err)
	}
	return ParseConfig(data)
}

// ParseConfig decodes YAML settings on top of the defaults and validates them.
func ParseConfig(data []byte) (Config, error) {
	c := DefaultConfig()
	if err := yaml.Unmarshal(data, &c); err != nil {
		return Config{}, seqgen.Wrap(seqgen.Config, seqgen.Span{}, "malformed config", err)
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// Validate checks that every setting is usable.
func (c Config) Validate() error {
	switch strings.ToLower(c.Trace) {
	case "debug", "info", "error":
	default:
		return seqgen.Errorf(seqgen.Config, seqgen.Span{},
			"trace level must be one of Debug, Info, Error; is %q", c.Trace)
	}
	for _, field := range []struct{ name, value string }{
		{"marker", c.Marker},
		{"continuation", c.Continuation},
		{"paste", c.Paste},
	} {
		if utf8.RuneCountInString(field.value) != 1 {
			return seqgen.Errorf(seqgen.Config, seqgen.Span{},
				"%s must be a single character, is %q", field.name, field.value)
		}
	}
	if c.MaxDepth <= 0 {
		return seqgen.Errorf(seqgen.Config, seqgen.Span{}, "maxDepth must be positive, is %d", c.MaxDepth)
	}
	if s, err := lex.Parse(c.Macro); err != nil || len(s) != 1 || !tt.IsIdent(s[0], c.Macro) {
		return seqgen.Errorf(seqgen.Config, seqgen.Span{}, "macro must be an identifier, is %q", c.Macro)
	}
	return nil
}

func firstRune(s string) rune {
	r, _ := utf8.DecodeRuneInString(s)
	return r
}

// Expander creates an expander for the configured marker and paste operator.
// c must be valid.
func (c Config) Expander() *seq.Expander {
	return seq.New(
		seq.WithMarker(firstRune(c.Marker), firstRune(c.Continuation)),
		seq.WithPasteOperator(firstRune(c.Paste)),
	)
}

// Splicer creates a splicer expanding invocations of the configured macro name.
// c must be valid.
func (c Config) Splicer() *splice.Splicer {
	return splice.New(
		splice.WithGenerator(c.Macro, c.Expander()),
		splice.WithMaxDepth(c.MaxDepth),
	)
}
