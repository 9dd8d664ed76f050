package render

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"pigment/internal/theme"
	pigmenterrors "pigment/pkg/errors"
)

func sampleTheme(t *testing.T) *theme.ResolvedTheme {
	t.Helper()

	def, ok := theme.Lookup("abyss")
	require.True(t, ok)

	colors := map[string]string{
		"editor.background":          "#0e1116",
		"editor.foreground":          "#d8dee9",
		"editorCursor.foreground":    "#81a1c1",
		"editor.selectionBackground": "#28324880",
	}
	for i, name := range []string{"Black", "Red", "Green", "Yellow", "Blue", "Magenta", "Cyan", "White"} {
		colors["terminal.ansi"+name] = fmt.Sprintf("#10101%x", i)
		colors["terminal.ansiBright"+name] = fmt.Sprintf("#20202%x", i)
	}

	return &theme.ResolvedTheme{
		Definition: def,
		Colors:     colors,
		ScopeRules: []theme.ScopeRule{
			{
				Name:     "comment",
				Scopes:   []string{"comment", "punctuation.definition.comment"},
				Settings: theme.StyleSettings{Foreground: "#5b6578", FontStyle: "italic"},
			},
			{
				Name:     "keyword",
				Scopes:   []string{"keyword"},
				Settings: theme.StyleSettings{Foreground: "#b48ead", FontStyle: "bold"},
			},
		},
		TokenRules: map[string]theme.StyleSettings{
			"function": {Foreground: "#88c0d0"},
			"comment":  {Foreground: "#5b6578", FontStyle: "italic"},
		},
		Semantic: true,
	}
}

func TestRegistryRegisterAndGet(t *testing.T) {
	t.Parallel()

	reg := NewRegistry()
	require.NoError(t, reg.Register(NewVSCode()))

	ren, err := reg.Get("vscode")
	require.NoError(t, err)
	require.Equal(t, "vscode", ren.Name())
}

func TestRegistryRejectsDuplicates(t *testing.T) {
	t.Parallel()

	reg := NewRegistry()
	require.NoError(t, reg.Register(NewVSCode()))

	err := reg.Register(NewVSCode())
	var rendererErr *pigmenterrors.RendererError
	require.ErrorAs(t, err, &rendererErr)
	require.Equal(t, "vscode", rendererErr.Renderer)
}

func TestRegistryRejectsNilRenderer(t *testing.T) {
	t.Parallel()

	reg := NewRegistry()
	require.Error(t, reg.Register(nil))
}

func TestRegistryUnknownName(t *testing.T) {
	t.Parallel()

	reg := NewRegistry()

	_, err := reg.Get("kitty")
	var rendererErr *pigmenterrors.RendererError
	require.ErrorAs(t, err, &rendererErr)
	require.Equal(t, "kitty", rendererErr.Renderer)
}

func TestRegistryNamesAreSorted(t *testing.T) {
	t.Parallel()

	reg := NewRegistry()
	require.NoError(t, reg.Register(NewVSCode()))
	require.NoError(t, reg.Register(NewAlacritty()))

	require.Equal(t, []string{"alacritty", "vscode"}, reg.Names())
}

func TestDefaultRegistryCarriesBuiltins(t *testing.T) {
	t.Parallel()

	reg, err := DefaultRegistry()
	require.NoError(t, err)
	require.Equal(t, []string{"alacritty", "vscode"}, reg.Names())
}
