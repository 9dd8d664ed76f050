package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCheckCommandPassesAfterGenerate(t *testing.T) {
	cfgPath, _ := writeTestConfig(t, "")

	_, err := executeCommand(t, "generate", "--config", cfgPath)
	require.NoError(t, err)

	output, err := executeCommand(t, "check", "--config", cfgPath)
	require.NoError(t, err)
	require.Contains(t, output, "2 artifacts up to date")
}

func TestCheckCommandFlagsStaleArtifacts(t *testing.T) {
	cfgPath, outDir := writeTestConfig(t, "")

	_, err := executeCommand(t, "generate", "--config", cfgPath)
	require.NoError(t, err)

	artifact := filepath.Join(outDir, "vscode", "pigment-abyss-color-theme.json")
	require.NoError(t, os.WriteFile(artifact, []byte("{}\n"), 0o644))

	output, err := executeCommand(t, "check", "--config", cfgPath)
	require.Error(t, err)
	require.Contains(t, err.Error(), "1 of 2 artifacts are stale")
	require.Contains(t, output, artifact)
	require.Contains(t, output, "+")
}

func TestCheckCommandTreatsMissingArtifactsAsStale(t *testing.T) {
	cfgPath, _ := writeTestConfig(t, "")

	_, err := executeCommand(t, "check", "--config", cfgPath)
	require.Error(t, err)
	require.Contains(t, err.Error(), "2 of 2 artifacts are stale")
}
