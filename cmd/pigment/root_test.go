package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"pigment/internal/config"
)

func TestSelectDefinitionsDefaultsToEveryVariant(t *testing.T) {
	t.Parallel()

	defs, err := selectDefinitions(config.Default(), nil)
	require.NoError(t, err)
	require.Len(t, defs, 3)
	require.Equal(t, "abyss", defs[0].ID)
	require.Equal(t, "dusk", defs[1].ID)
	require.Equal(t, "dawn", defs[2].ID)
}

func TestSelectDefinitionsHonoursConfiguredSelection(t *testing.T) {
	t.Parallel()

	cfg := config.Default()
	cfg.Variants = []string{"dawn"}

	defs, err := selectDefinitions(cfg, nil)
	require.NoError(t, err)
	require.Len(t, defs, 1)
	require.Equal(t, "dawn", defs[0].ID)
}

func TestSelectDefinitionsFlagOverridesConfiguration(t *testing.T) {
	t.Parallel()

	cfg := config.Default()
	cfg.Variants = []string{"dawn"}

	defs, err := selectDefinitions(cfg, []string{"dusk", "abyss"})
	require.NoError(t, err)
	require.Len(t, defs, 2)
	require.Equal(t, "dusk", defs[0].ID)
	require.Equal(t, "abyss", defs[1].ID)
}

func TestSelectDefinitionsRejectsUnknownVariant(t *testing.T) {
	t.Parallel()

	_, err := selectDefinitions(config.Default(), []string{"noir"})
	require.Error(t, err)
	require.Contains(t, err.Error(), `unknown variant "noir"`)
	require.Contains(t, err.Error(), "abyss")
}

func TestLoadConfigFallsBackToDefaults(t *testing.T) {
	t.Parallel()

	cfg, err := loadConfig(filepath.Join(t.TempDir(), "pigment.yaml"), false)
	require.NoError(t, err)
	require.Equal(t, config.Default(), cfg)
}

func TestLoadConfigRequiresExplicitFile(t *testing.T) {
	t.Parallel()

	_, err := loadConfig(filepath.Join(t.TempDir(), "pigment.yaml"), true)
	require.Error(t, err)
}

func TestLoadConfigReadsFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "pigment.yaml")
	body := `version: "1.0"
output_dir: out
renderers:
  - alacritty
variants:
  - dusk
`
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	cfg, err := loadConfig(path, false)
	require.NoError(t, err)
	require.Equal(t, "out", cfg.OutputDir)
	require.Equal(t, []string{"alacritty"}, cfg.Renderers)
	require.Equal(t, []string{"dusk"}, cfg.Variants)
}
