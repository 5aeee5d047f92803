package compiler

import (
	"fmt"
	"strings"

	"github.com/roach88/pavsca/internal/ir"
)

// Compiler holds the category registry and tokenizer settings for one
// rule file. It is not safe for concurrent use.
type Compiler struct {
	registry  *Registry
	modifiers []rune // characters fused onto a preceding literal
}

// Option configures a Compiler.
type Option func(*Compiler)

// WithLengthFusion makes literals in rule notation absorb a trailing length
// mark, so "aː" tokenizes as one phoneme as it does in word text.
// Default: only aspiration fuses.
func WithLengthFusion(enabled bool) Option {
	return func(c *Compiler) {
		if enabled {
			c.modifiers = []rune{ir.Aspiration, ir.Length}
		} else {
			c.modifiers = []rune{ir.Aspiration}
		}
	}
}

// WithRegistry makes the compiler resolve categories through r.
func WithRegistry(r *Registry) Option {
	return func(c *Compiler) {
		c.registry = r
	}
}

// New creates a Compiler with an empty registry.
func New(opts ...Option) *Compiler {
	c := &Compiler{
		registry:  NewRegistry(),
		modifiers: []rune{ir.Aspiration},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Registry returns the compiler's category registry.
func (c *Compiler) Registry() *Registry {
	return c.registry
}

// Define adds a category definition to the registry.
func (c *Compiler) Define(command string) error {
	return c.registry.Define(command)
}

// CompileRule compiles "TARGET/REPLACEMENT/ENVIRONMENT" text.
func (c *Compiler) CompileRule(text string) (*ir.Rule, error) {
	segments := strings.Split(text, "/")
	if len(segments) != 3 {
		return nil, &CompileError{
			Code:    ErrCodeMalformedRule,
			Command: text,
			Message: fmt.Sprintf("expected TARGET/REPLACEMENT/ENVIRONMENT, got %d segment(s)", len(segments)),
		}
	}

	var parts [3][]ir.PhonemeSet
	for i, seg := range segments {
		sets, err := c.Tokenize(strings.TrimSpace(seg))
		if err != nil {
			return nil, withSource(err, 0, text)
		}
		parts[i] = sets
	}

	pairs, err := Compile(parts[0], parts[1], parts[2])
	if err != nil {
		return nil, withSource(err, 0, text)
	}
	return &ir.Rule{Source: text, Pairs: pairs}, nil
}

// Compile aligns target and replacement and splices them into environment
// at its insertion point.
//
// The shorter of target/replacement is padded with trailing empty sets.
// Exactly one insertion point must be present in environment.
// The input slices are not modified.
func Compile(target, replacement, environment []ir.PhonemeSet) ([]ir.Pair, error) {
	target = pad(target, len(replacement))
	replacement = pad(replacement, len(target))

	at := -1
	for i, set := range environment {
		if !set.IsInsertionPoint() {
			continue
		}
		if at >= 0 {
			return nil, &CompileError{
				Code:    ErrCodeMultipleInsertionPoints,
				Message: fmt.Sprintf("environment has more than one %q", ir.InsertionPoint),
			}
		}
		at = i
	}
	if at < 0 {
		return nil, &CompileError{
			Code:    ErrCodeMissingInsertionPoint,
			Message: fmt.Sprintf("environment has no %q", ir.InsertionPoint),
		}
	}

	from := splice(environment, at, target)
	to := splice(environment, at, replacement)

	pairs := make([]ir.Pair, len(from))
	for i := range from {
		pairs[i] = ir.Pair{From: from[i], To: to[i]}
	}
	return pairs, nil
}

// pad returns sets extended with empty sets up to length n.
func pad(sets []ir.PhonemeSet, n int) []ir.PhonemeSet {
	if len(sets) >= n {
		return sets
	}
	out := make([]ir.PhonemeSet, n)
	copy(out, sets)
	return out
}

// splice returns env with the element at index at replaced by insert.
func splice(env []ir.PhonemeSet, at int, insert []ir.PhonemeSet) []ir.PhonemeSet {
	out := make([]ir.PhonemeSet, 0, len(env)-1+len(insert))
	out = append(out, env[:at]...)
	out = append(out, insert...)
	out = append(out, env[at+1:]...)
	return out
}
