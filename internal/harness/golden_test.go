package harness

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScenarios_Golden(t *testing.T) {
	scenarios, err := Discover(filepath.Join("testdata", "scenarios"), "")
	require.NoError(t, err)
	require.NotEmpty(t, scenarios)

	for _, s := range scenarios {
		t.Run(s.Name, func(t *testing.T) {
			result, err := RunWithGolden(t, s)
			require.NoError(t, err)
			assert.True(t, result.Pass, "errors: %v", result.Errors)
		})
	}
}

func TestTraceSnapshot_Marshal(t *testing.T) {
	snapshot := TraceSnapshot{
		ScenarioName: "ipa",
		Output:       []string{"a<θ>"},
		Trace:        []TraceEvent{},
	}

	data, err := snapshot.marshal()
	require.NoError(t, err)

	want := "{\n  \"scenario_name\": \"ipa\",\n  \"output\": [\n    \"a<θ>\"\n  ],\n  \"trace\": []\n}\n"
	assert.Equal(t, want, string(data))
}
