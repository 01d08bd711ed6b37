package searcher

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadConfigMissingFilesUsesDefaults(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "config.json5"))
	require.NoError(t, err)
	require.Equal(t, DefaultConfig(), cfg)
}

func TestLoadConfigOverrides(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.json5")
	err := os.WriteFile(path, []byte(`{
		// single-division setup
		url: "https://example.test/lookup",
		results_per_page: "25",
		party_types: ["Plaintiff"],
	}`), 0o644)
	require.NoError(t, err)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	require.Equal(t, "https://example.test/lookup", cfg.URL)
	require.Equal(t, "25", cfg.ResultsPerPage)
	require.Equal(t, []string{"Plaintiff"}, cfg.PartyTypes)
	// untouched fields keep their defaults
	require.Equal(t, DefaultConfig().CourtDepartments, cfg.CourtDepartments)
	require.Equal(t, DefaultConfig().TimeoutSec, cfg.TimeoutSec)
}

func TestLoadConfigLocalOverrideWins(t *testing.T) {
	dir := t.TempDir()
	base := filepath.Join(dir, "config.json5")
	require.NoError(t, os.WriteFile(base, []byte(`{url: "https://base.test"}`), 0o644))
	local := filepath.Join(dir, "config.local.json5")
	require.NoError(t, os.WriteFile(local, []byte(`{url: "https://local.test"}`), 0o644))

	cfg, err := LoadConfig(base)
	require.NoError(t, err)
	require.Equal(t, "https://local.test", cfg.URL)
}

func TestLoadConfigNormalizesNegativeJitter(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.json5")
	require.NoError(t, os.WriteFile(path, []byte(`{jitter_factor: -2}`), 0o644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	require.Equal(t, 2.0, cfg.JitterFactor)
}

func TestLoadConfigRejectsMalformedFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.json5")
	require.NoError(t, os.WriteFile(path, []byte(`{url: }`), 0o644))

	_, err := LoadConfig(path)
	require.Error(t, err)
}
