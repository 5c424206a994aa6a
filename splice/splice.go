package splice

import (
	"github.com/npillmayer/seqgen"
	"github.com/npillmayer/seqgen/tt"
)

// Generator is the interface shared by all generators: a transformation from an
// input fragment to an output fragment. Errors should be of type *seqgen.Error,
// carrying the position of the offending construct.
type Generator interface {
	Generate(input tt.Stream) (tt.Stream, error)
}

// GeneratorFunc adapts a function to the Generator interface.
type GeneratorFunc func(tt.Stream) (tt.Stream, error)

// Generate calls f(input).
func (f GeneratorFunc) Generate(input tt.Stream) (tt.Stream, error) {
	return f(input)
}

// DefaultMaxDepth limits the nesting of invocations.
const DefaultMaxDepth = 64

// Splicer finds and expands invocations. Create one with New.
type Splicer struct {
	generators map[string]Generator
	maxDepth   int
}

// Option configures a splicer.
type Option func(s *Splicer)

// WithGenerator registers a generator for invocations with a given name.
func WithGenerator(name string, g Generator) Option {
	return func(s *Splicer) {
		s.generators[name] = g
	}
}

// WithMaxDepth sets the maximum nesting depth of invocations, i.e. how often the
// output of an expansion may again contain invocations.
func WithMaxDepth(depth int) Option {
	return func(s *Splicer) {
		s.maxDepth = depth
	}
}

// New creates a splicer.
func New(opts ...Option) *Splicer {
	s := &Splicer{
		generators: make(map[string]Generator),
		maxDepth:   DefaultMaxDepth,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Generator returns the generator registered for name.
func (s *Splicer) Generator(name string) (Generator, error) {
	if g, ok := s.generators[name]; ok {
		return g, nil
	}
	return nil, seqgen.Errorf(seqgen.UnknownGenerator, seqgen.Span{}, "no generator named `%s`", name)
}

// Splice returns a copy of stream with all invocations of registered generators
// replaced by their output. A `;` directly following an invocation with
// parentheses or brackets belongs to the invocation and is removed as well.
//
// Splicing is atomic: on error no output is returned.
func (s *Splicer) Splice(stream tt.Stream) (tt.Stream, error) {
	return s.splice(stream, 0)
}

func (s *Splicer) splice(stream tt.Stream, depth int) (tt.Stream, error) {
	out := make(tt.Stream, 0, len(stream))
	for i := 0; i < len(stream); i++ {
		if name, args, ok := s.invocationAt(stream, i); ok {
			if depth >= s.maxDepth {
				return nil, seqgen.Errorf(seqgen.ExpansionDepth, stream[i].Span().Extend(args.At),
					"invocations nested deeper than %d levels", s.maxDepth)
			}
			tracer().Debugf("expanding %s! at %s", name, args.At)
			generated, err := s.generators[name].Generate(args.Children)
			if err != nil {
				tracer().Infof("%s! at %s failed: %v", name, args.At, err)
				return nil, err
			}
			expanded, err := s.splice(generated, depth+1)
			if err != nil {
				return nil, err
			}
			out = append(out, expanded...)
			i += 2
			if args.Delim != tt.Brace && i+1 < len(stream) && tt.IsPunct(stream[i+1], ';') {
				i++
			}
			continue
		}
		if g, ok := stream[i].(tt.Group); ok {
			children, err := s.splice(g.Children, depth)
			if err != nil {
				return nil, err
			}
			out = append(out, tt.Group{Delim: g.Delim, Children: children, At: g.At})
			continue
		}
		out = append(out, stream[i])
	}
	return out, nil
}

// invocationAt checks for `name ! group` at position i, with name registered.
func (s *Splicer) invocationAt(stream tt.Stream, i int) (string, tt.Group, bool) {
	if i+2 >= len(stream) {
		return "", tt.Group{}, false
	}
	id, ok := stream[i].(tt.Ident)
	if !ok || !tt.IsPunct(stream[i+1], '!') {
		return "", tt.Group{}, false
	}
	if _, registered := s.generators[id.Name]; !registered {
		return "", tt.Group{}, false
	}
	args, ok := stream[i+2].(tt.Group)
	return id.Name, args, ok
}
