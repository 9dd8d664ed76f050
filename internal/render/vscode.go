package render

import (
	"encoding/json"
	"fmt"

	"pigment/internal/theme"
	pigmenterrors "pigment/pkg/errors"
)

// vscodeDocument is the color-theme document shape VS Code consumes.
type vscodeDocument struct {
	Schema               string                    `json:"$schema"`
	Name                 string                    `json:"name"`
	Type                 string                    `json:"type"`
	Colors               map[string]string         `json:"colors"`
	TokenColors          []vscodeTokenColor        `json:"tokenColors"`
	SemanticHighlighting bool                      `json:"semanticHighlighting"`
	SemanticTokenColors  map[string]vscodeSettings `json:"semanticTokenColors,omitempty"`
}

type vscodeTokenColor struct {
	Name     string         `json:"name,omitempty"`
	Scope    []string       `json:"scope"`
	Settings vscodeSettings `json:"settings"`
}

type vscodeSettings struct {
	Foreground string `json:"foreground,omitempty"`
	FontStyle  string `json:"fontStyle,omitempty"`
}

// VSCode renders the primary target format.
type VSCode struct{}

// NewVSCode returns the VS Code renderer.
func NewVSCode() *VSCode { return &VSCode{} }

func (*VSCode) Name() string { return "vscode" }

func (*VSCode) Filename(def theme.Definition) string {
	return fmt.Sprintf("pigment-%s-color-theme.json", def.ID)
}

// Render marshals the resolved theme. Output is deterministic: map keys
// serialise sorted, scope rules keep their synthesis order.
func (*VSCode) Render(resolved *theme.ResolvedTheme) ([]byte, error) {
	if resolved == nil {
		return nil, pigmenterrors.NewRendererError("vscode", fmt.Errorf("resolved theme is nil"))
	}

	doc := vscodeDocument{
		Schema:               "vscode://schemas/color-theme",
		Name:                 resolved.Definition.Name,
		Type:                 string(resolved.Definition.Kind),
		Colors:               resolved.Colors,
		TokenColors:          make([]vscodeTokenColor, 0, len(resolved.ScopeRules)),
		SemanticHighlighting: resolved.Semantic,
	}

	for _, rule := range resolved.ScopeRules {
		doc.TokenColors = append(doc.TokenColors, vscodeTokenColor{
			Name:  rule.Name,
			Scope: rule.Scopes,
			Settings: vscodeSettings{
				Foreground: rule.Settings.Foreground,
				FontStyle:  rule.Settings.FontStyle,
			},
		})
	}

	if resolved.Semantic {
		doc.SemanticTokenColors = make(map[string]vscodeSettings, len(resolved.TokenRules))
		for name, settings := range resolved.TokenRules {
			doc.SemanticTokenColors[name] = vscodeSettings{
				Foreground: settings.Foreground,
				FontStyle:  settings.FontStyle,
			}
		}
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, pigmenterrors.NewRendererError("vscode", err)
	}
	return append(data, '\n'), nil
}
