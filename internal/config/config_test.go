package config

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/pavsca/internal/engine"
	"github.com/roach88/pavsca/internal/ir"
)

func TestSchemaDefaultsMatchDefault(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadFile(t *testing.T) {
	cfg, err := Load(filepath.Join("testdata", "recompute.cue"))
	require.NoError(t, err)

	assert.Equal(t, "recompute", cfg.Scan)
	assert.True(t, cfg.FuseLength)
	assert.Equal(t, 50, cfg.MaxApplications)
	assert.Equal(t, " ", cfg.Separator)
	assert.Equal(t, []string{"a", "i", "u"}, cfg.Nucleus)
	// Omitted fields keep their defaults.
	assert.Equal(t, Default().Substitutions, cfg.Substitutions)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.cue"))
	assert.ErrorContains(t, err, "read config")
}

func TestParseRejects(t *testing.T) {
	tests := []struct {
		name string
		src  string
	}{
		{"unknown field", `colour: "blue"`},
		{"bad scan policy", `scan: "sometimes"`},
		{"non-positive limit", `max_applications: 0`},
		{"empty nucleus symbol", `nucleus: ["a", ""]`},
		{"empty substitution source", `substitutions: [{from: "", to: "x"}]`},
		{"wrong type", `fuse_length: "yes"`},
		{"syntax error", `scan: `},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.src), "test.cue")
			require.Error(t, err)

			var cfgErr *Error
			assert.ErrorAs(t, err, &cfgErr)
		})
	}
}

func TestParseEmptySubstitutions(t *testing.T) {
	cfg, err := Parse([]byte(`substitutions: []`), "test.cue")
	require.NoError(t, err)
	assert.Empty(t, cfg.Substitutions)
	assert.Empty(t, cfg.WordSubstitutions())
}

func TestConversions(t *testing.T) {
	cfg := Default()
	cfg.Scan = "recompute"
	cfg.Nucleus = []string{"a"}

	scan, err := cfg.ScanPolicy()
	require.NoError(t, err)
	assert.Equal(t, engine.ScanRecompute, scan)

	n := cfg.NucleusSet()
	assert.True(t, n.Contains(ir.Phoneme("a")))
	assert.True(t, n.Contains(ir.Phoneme("aː")))
	assert.False(t, n.Contains(ir.Phoneme("e")))

	opts, err := cfg.EngineOptions()
	require.NoError(t, err)
	assert.Len(t, opts, 3)
	assert.Len(t, cfg.CompilerOptions(), 1)

	subs := cfg.WordSubstitutions()
	require.Len(t, subs, 2)
	assert.Equal(t, ":", subs[0].From)
}

func TestEngineOptionsInvalidScan(t *testing.T) {
	cfg := Default()
	cfg.Scan = "bogus"

	_, err := cfg.EngineOptions()
	assert.Error(t, err)
}

func TestFormatParses(t *testing.T) {
	cfg := Default()
	cfg.Scan = "recompute"
	cfg.Separator = "\n"
	cfg.MaxApplications = 7

	src, err := Format(cfg)
	require.NoError(t, err)
	assert.Contains(t, string(src), `scan:`)

	got, err := Parse(src, "formatted.cue")
	require.NoError(t, err)
	assert.Equal(t, cfg, got)
}
