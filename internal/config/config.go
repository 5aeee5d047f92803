package config

import (
	"github.com/roach88/pavsca/internal/compiler"
	"github.com/roach88/pavsca/internal/engine"
	"github.com/roach88/pavsca/internal/word"
)

// Substitution is one raw-text replacement applied to word input.
type Substitution struct {
	From string `json:"from" yaml:"from"`
	To   string `json:"to" yaml:"to"`
}

// Config holds the effective settings for a run.
type Config struct {
	Scan            string         `json:"scan" yaml:"scan"`
	FuseLength      bool           `json:"fuse_length" yaml:"fuse_length"`
	Nucleus         []string       `json:"nucleus" yaml:"nucleus"`
	MaxApplications int            `json:"max_applications" yaml:"max_applications"`
	Separator       string         `json:"separator" yaml:"separator"`
	Substitutions   []Substitution `json:"substitutions" yaml:"substitutions"`
}

// Default returns the built-in settings. They match the schema defaults.
func Default() Config {
	subs := make([]Substitution, len(word.DefaultSubstitutions))
	for i, s := range word.DefaultSubstitutions {
		subs[i] = Substitution{From: s.From, To: s.To}
	}
	return Config{
		Scan:            string(engine.ScanStale),
		FuseLength:      false,
		Nucleus:         append([]string(nil), word.DefaultVowels...),
		MaxApplications: engine.DefaultMaxApplications,
		Separator:       "",
		Substitutions:   subs,
	}
}

// ScanPolicy returns the configured scan policy.
func (c Config) ScanPolicy() (engine.ScanPolicy, error) {
	return engine.ParseScanPolicy(c.Scan)
}

// NucleusSet builds the repair nucleus from the configured vowels.
func (c Config) NucleusSet() word.Nucleus {
	return word.NewNucleus(c.Nucleus...)
}

// WordSubstitutions converts the configured substitutions for word parsing.
func (c Config) WordSubstitutions() []word.Substitution {
	subs := make([]word.Substitution, len(c.Substitutions))
	for i, s := range c.Substitutions {
		subs[i] = word.Substitution{From: s.From, To: s.To}
	}
	return subs
}

// CompilerOptions returns the compiler options implied by c.
func (c Config) CompilerOptions() []compiler.Option {
	return []compiler.Option{compiler.WithLengthFusion(c.FuseLength)}
}

// EngineOptions returns the engine options implied by c.
func (c Config) EngineOptions() ([]engine.Option, error) {
	scan, err := c.ScanPolicy()
	if err != nil {
		return nil, err
	}
	return []engine.Option{
		engine.WithScanPolicy(scan),
		engine.WithNucleus(c.NucleusSet()),
		engine.WithMaxApplications(c.MaxApplications),
	}, nil
}
