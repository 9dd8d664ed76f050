package writer

import (
	"path/filepath"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"

	"pigment/internal/logger"
)

func TestWriteCreatesDirectories(t *testing.T) {
	t.Parallel()

	fs := afero.NewMemMapFs()
	w := New(fs, logger.Nop())

	data := []byte("{\"name\": \"Pigment Abyss\"}\n")
	path, err := w.Write(filepath.Join("themes", "vscode"), "pigment-abyss-color-theme.json", data)
	require.NoError(t, err)
	require.Equal(t, filepath.Join("themes", "vscode", "pigment-abyss-color-theme.json"), path)

	stored, err := afero.ReadFile(fs, path)
	require.NoError(t, err)
	require.Equal(t, data, stored)
}

func TestWriteOverwritesExistingArtifact(t *testing.T) {
	t.Parallel()

	fs := afero.NewMemMapFs()
	w := New(fs, logger.Nop())

	_, err := w.Write("themes", "pigment-dusk.toml", []byte("old\n"))
	require.NoError(t, err)
	path, err := w.Write("themes", "pigment-dusk.toml", []byte("new\n"))
	require.NoError(t, err)

	stored, err := afero.ReadFile(fs, path)
	require.NoError(t, err)
	require.Equal(t, []byte("new\n"), stored)
}

func TestCompareReportsNoDriftForIdenticalContent(t *testing.T) {
	t.Parallel()

	fs := afero.NewMemMapFs()
	w := New(fs, logger.Nop())

	data := []byte("colors\n")
	_, err := w.Write("themes", "pigment-dawn.toml", data)
	require.NoError(t, err)

	d, err := w.Compare("themes", "pigment-dawn.toml", data)
	require.NoError(t, err)
	require.Empty(t, d)
}

func TestCompareShowsDrift(t *testing.T) {
	t.Parallel()

	fs := afero.NewMemMapFs()
	w := New(fs, logger.Nop())

	_, err := w.Write("themes", "pigment-abyss.toml", []byte("background = \"#0e1116\"\n"))
	require.NoError(t, err)

	d, err := w.Compare("themes", "pigment-abyss.toml", []byte("background = \"#101521\"\n"))
	require.NoError(t, err)
	require.Contains(t, d, "-background = \"#0e1116\"")
	require.Contains(t, d, "+background = \"#101521\"")
	require.Contains(t, d, "(on-disk)")
	require.Contains(t, d, "(generated)")
}

func TestCompareTreatsMissingFileAsEmpty(t *testing.T) {
	t.Parallel()

	w := New(afero.NewMemMapFs(), logger.Nop())

	d, err := w.Compare("themes", "pigment-abyss.toml", []byte("fresh\n"))
	require.NoError(t, err)
	require.Contains(t, d, "+fresh")
}
