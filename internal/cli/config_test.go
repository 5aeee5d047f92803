package cli

import (
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/roach88/pavsca/internal/config"
)

func TestConfigShow_Defaults(t *testing.T) {
	stdout, stderr, err := execute(t, "config", "show")
	require.NoError(t, err)
	assert.Contains(t, stderr, "using defaults")

	var got config.Config
	require.NoError(t, yaml.Unmarshal([]byte(stdout), &got))
	assert.Equal(t, config.Default(), got)
}

func TestConfigShow_FileJSON(t *testing.T) {
	cfg := writeFile(t, t.TempDir(), "pavsca.cue", "scan: \"recompute\"\nnucleus: [\"a\", \"ə\"]\n")

	stdout, _, err := execute(t, "--format", "json", "--config", cfg, "config", "show")
	require.NoError(t, err)

	var resp struct {
		Status string        `json:"status"`
		Data   config.Config `json:"data"`
	}
	require.NoError(t, json.Unmarshal([]byte(stdout), &resp))
	assert.Equal(t, "recompute", resp.Data.Scan)
	assert.Equal(t, []string{"a", "ə"}, resp.Data.Nucleus)
	assert.Equal(t, config.Default().MaxApplications, resp.Data.MaxApplications)
}

func TestConfigShow_InvalidFile(t *testing.T) {
	cfg := writeFile(t, t.TempDir(), "pavsca.cue", "max_applications: 0\n")

	_, stderr, err := execute(t, "--config", cfg, "config", "show")
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
	assert.Contains(t, stderr, "Error [INVALID_CONFIG]")
}

func TestConfigInit(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pavsca.cue")

	stdout, _, err := execute(t, "config", "init", path)
	require.NoError(t, err)
	assert.Contains(t, stdout, "Created default configuration")

	// The written file loads back to the defaults.
	got, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, config.Default(), got)

	_, stderr, err := execute(t, "config", "init", path)
	require.Error(t, err)
	assert.Contains(t, stderr, "config file already exists")
}
