package harness

import (
	"fmt"
	"os"
	"path/filepath"
)

// Discover loads every scenario file (.yaml or .yml) in dir, in file name
// order. When filter is non-empty only scenarios whose name matches the
// glob are returned.
func Discover(dir, filter string) ([]*Scenario, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read scenarios directory: %w", err)
	}

	var scenarios []*Scenario
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		ext := filepath.Ext(entry.Name())
		if ext != ".yaml" && ext != ".yml" {
			continue
		}

		path := filepath.Join(dir, entry.Name())
		s, err := LoadScenario(path)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}

		if filter != "" {
			ok, err := filepath.Match(filter, s.Name)
			if err != nil {
				return nil, fmt.Errorf("invalid filter %q: %w", filter, err)
			}
			if !ok {
				continue
			}
		}
		scenarios = append(scenarios, s)
	}

	return scenarios, nil
}
