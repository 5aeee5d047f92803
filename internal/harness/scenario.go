package harness

import (
	"bytes"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/roach88/pavsca/internal/engine"
)

// Scenario defines a conformance test scenario: a rule file applied to a
// word list, with the expected output or the expected failure.
type Scenario struct {
	// Name uniquely identifies this scenario. Also names its golden file.
	Name string `yaml:"name"`

	// Description explains what this scenario validates.
	Description string `yaml:"description"`

	// Rules is the rule file text: definitions, rules, and // comments.
	Rules string `yaml:"rules"`

	// Words is the input word list, one word per entry.
	Words []string `yaml:"words"`

	// Expect is the rendered output, one entry per word.
	// Mutually exclusive with Error.
	Expect []string `yaml:"expect,omitempty"`

	// Applications is the expected total number of rule applications.
	// Unchecked when omitted.
	Applications *int `yaml:"applications,omitempty"`

	// Error is the expected compile or runtime error code
	// (e.g., "UNDEFINED_CATEGORY", "APPLICATION_LIMIT_EXCEEDED").
	Error string `yaml:"error,omitempty"`

	// Scan is the scan bound policy: "stale" (default) or "recompute".
	Scan string `yaml:"scan,omitempty"`

	// FuseLength makes the rule tokenizer fuse the length mark.
	FuseLength bool `yaml:"fuse_length,omitempty"`

	// MaxApplications overrides the per-rule, per-word quota when positive.
	MaxApplications int `yaml:"max_applications,omitempty"`
}

// LoadScenario reads and parses a scenario YAML file.
// Returns an error if the file doesn't exist, is malformed,
// contains unknown fields (typos), or is missing required fields.
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scenario file: %w", err)
	}

	// Strict field validation catches typos like "expected:" vs "expect:".
	var scenario Scenario
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&scenario); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := validateScenario(&scenario); err != nil {
		return nil, fmt.Errorf("invalid scenario: %w", err)
	}

	return &scenario, nil
}

// validateScenario checks that required fields are present and valid.
func validateScenario(s *Scenario) error {
	if s.Name == "" {
		return fmt.Errorf("name is required")
	}

	if s.Description == "" {
		return fmt.Errorf("description is required")
	}

	if strings.TrimSpace(s.Rules) == "" {
		return fmt.Errorf("rules are required and must be non-empty")
	}

	if len(s.Words) == 0 {
		return fmt.Errorf("words list is required and must be non-empty")
	}
	for i, w := range s.Words {
		if strings.TrimSpace(w) == "" {
			return fmt.Errorf("words[%d]: word must be non-blank", i)
		}
	}

	switch {
	case s.Error != "" && s.Expect != nil:
		return fmt.Errorf("expect and error are mutually exclusive")
	case s.Error == "" && s.Expect == nil:
		return fmt.Errorf("one of expect or error is required")
	case s.Expect != nil && len(s.Expect) != len(s.Words):
		return fmt.Errorf("expect has %d entries, words has %d", len(s.Expect), len(s.Words))
	}

	if s.Applications != nil && *s.Applications < 0 {
		return fmt.Errorf("applications must be non-negative")
	}

	if s.MaxApplications < 0 {
		return fmt.Errorf("max_applications must be non-negative")
	}

	if s.Scan != "" {
		if _, err := engine.ParseScanPolicy(s.Scan); err != nil {
			return err
		}
	}

	return nil
}
