package errors

import (
	stdErrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseErrorWrapsUnderlying(t *testing.T) {
	t.Parallel()

	err := NewParseError("pigment-abyss-theme.el", ErrEmptyPalette)

	var parseErr *ParseError
	require.ErrorAs(t, err, &parseErr)
	require.Equal(t, "pigment-abyss-theme.el", parseErr.Path)
	require.True(t, stdErrors.Is(err, ErrEmptyPalette))
	require.Contains(t, err.Error(), "pigment-abyss-theme.el")
}

func TestColorFormatErrorCarriesValue(t *testing.T) {
	t.Parallel()

	err := NewColorFormatError("#33669980", "value already carries alpha")

	var formatErr *ColorFormatError
	require.ErrorAs(t, err, &formatErr)
	require.Equal(t, "#33669980", formatErr.Value)
	require.Contains(t, err.Error(), "already carries alpha")
}

func TestColorOpacityErrorCarriesReference(t *testing.T) {
	t.Parallel()

	err := NewColorOpacityError("accent@1.5", "opacity 1.5 outside [0,1]")

	var opacityErr *ColorOpacityError
	require.ErrorAs(t, err, &opacityErr)
	require.Equal(t, "accent@1.5", opacityErr.Reference)
	require.Contains(t, err.Error(), "accent@1.5")
}

func TestColorReferenceErrorNamesTheReference(t *testing.T) {
	t.Parallel()

	err := NewColorReferenceError("bg-mode-line")

	var refErr *ColorReferenceError
	require.ErrorAs(t, err, &refErr)
	require.Equal(t, "bg-mode-line", refErr.Name)
	require.Contains(t, err.Error(), `"bg-mode-line"`)
}

func TestValidationErrorAggregatesFields(t *testing.T) {
	t.Parallel()

	err := NewValidationError("variants[1]", "references unknown variant", nil)

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	require.Equal(t, "variants[1]", validationErr.Field)
	require.Contains(t, validationErr.Message, "references unknown variant")
}

func TestRendererErrorNamesTheRenderer(t *testing.T) {
	t.Parallel()

	err := NewRendererError("vscode", fmt.Errorf("renderer already registered"))

	var rendererErr *RendererError
	require.ErrorAs(t, err, &rendererErr)
	require.Equal(t, "vscode", rendererErr.Renderer)
	require.Contains(t, err.Error(), "[vscode]")
	require.Contains(t, err.Error(), "already registered")
}

func TestGenerationErrorAggregatesVariantFailures(t *testing.T) {
	t.Parallel()

	dusk := fmt.Errorf("variant dusk: %w", ErrEmptyPalette)
	err := NewGenerationError(1, 3, []error{dusk})

	var genErr *GenerationError
	require.ErrorAs(t, err, &genErr)
	require.Equal(t, 1, genErr.Failed)
	require.Equal(t, 3, genErr.Total)
	require.True(t, stdErrors.Is(err, ErrEmptyPalette))
	require.Contains(t, err.Error(), "1 of 3")
}
