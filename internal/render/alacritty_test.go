package render

import (
	"testing"

	"github.com/pelletier/go-toml/v2"
	"github.com/stretchr/testify/require"

	"pigment/internal/theme"
	pigmenterrors "pigment/pkg/errors"
)

func TestAlacrittyExtractsTerminalTable(t *testing.T) {
	t.Parallel()

	data, err := NewAlacritty().Render(sampleTheme(t))
	require.NoError(t, err)

	var doc alacrittyDocument
	require.NoError(t, toml.Unmarshal(data, &doc))

	require.Equal(t, "#0e1116", doc.Colors.Primary.Background)
	require.Equal(t, "#d8dee9", doc.Colors.Primary.Foreground)
	require.Equal(t, "#81a1c1", doc.Colors.Cursor.Cursor)
	require.Equal(t, "#0e1116", doc.Colors.Cursor.Text)
	require.Equal(t, "CellForeground", doc.Colors.Selection.Text)

	require.Equal(t, "#101010", doc.Colors.Normal.Black)
	require.Equal(t, "#101011", doc.Colors.Normal.Red)
	require.Equal(t, "#101017", doc.Colors.Normal.White)
	require.Equal(t, "#202020", doc.Colors.Bright.Black)
	require.Equal(t, "#202027", doc.Colors.Bright.White)
}

func TestAlacrittyStripsAlphaChannels(t *testing.T) {
	t.Parallel()

	data, err := NewAlacritty().Render(sampleTheme(t))
	require.NoError(t, err)

	var doc alacrittyDocument
	require.NoError(t, toml.Unmarshal(data, &doc))
	require.Equal(t, "#283248", doc.Colors.Selection.Background)
}

func TestAlacrittyRenderIsDeterministic(t *testing.T) {
	t.Parallel()

	resolved := sampleTheme(t)
	ren := NewAlacritty()

	first, err := ren.Render(resolved)
	require.NoError(t, err)
	second, err := ren.Render(resolved)
	require.NoError(t, err)

	require.Equal(t, first, second)
}

func TestAlacrittyReportsMissingEntries(t *testing.T) {
	t.Parallel()

	resolved := sampleTheme(t)
	delete(resolved.Colors, "terminal.ansiRed")
	delete(resolved.Colors, "terminal.ansiBrightCyan")

	_, err := NewAlacritty().Render(resolved)
	var rendererErr *pigmenterrors.RendererError
	require.ErrorAs(t, err, &rendererErr)
	require.Contains(t, err.Error(), "terminal.ansiRed")
	require.Contains(t, err.Error(), "terminal.ansiBrightCyan")
}

func TestAlacrittyFilenamePerVariant(t *testing.T) {
	t.Parallel()

	ren := NewAlacritty()
	for _, def := range theme.Definitions() {
		require.Equal(t, "pigment-"+def.ID+".toml", ren.Filename(def))
	}
}

func TestOpaqueHex(t *testing.T) {
	t.Parallel()

	require.Equal(t, "#336699", opaqueHex("#33669980"))
	require.Equal(t, "#336699", opaqueHex("#336699"))
	require.Equal(t, "CellForeground", opaqueHex("CellForeground"))
}
