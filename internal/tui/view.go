package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
)

// View renders the preview.
func (m Model) View() string {
	if len(m.variants) == 0 {
		return "no variants to preview\n"
	}

	sections := []string{m.renderTabs()}

	if m.ready {
		sections = append(sections, m.view.View())
	} else {
		sections = append(sections, m.renderSwatchList())
	}

	sections = append(sections, m.renderDetail())
	sections = append(sections, helpStyle.Render("←/→ variant · ↑/↓ swatch · y copy · q quit"))

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m Model) renderTabs() string {
	tabs := make([]string, 0, len(m.variants))
	for i, variant := range m.variants {
		style := tabStyle
		if i == m.active {
			style = activeTabStyle
		}
		tabs = append(tabs, style.Render(variant.Title))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

func (m Model) renderSwatchList() string {
	variant, ok := m.ActiveVariant()
	if !ok {
		return ""
	}

	lines := make([]string, 0, len(variant.Swatches))
	for i, swatch := range variant.Swatches {
		marker := "  "
		name := nameStyle.Render(swatch.Name)
		if i == m.cursor {
			marker = cursorStyle.Render("▸ ")
			name = selectedNameStyle.Render(swatch.Name)
		}

		chip := lipgloss.NewStyle().
			Background(lipgloss.Color(opaque(swatch.Hex))).
			Foreground(labelColor(swatch.Hex)).
			Render(" " + swatch.Hex + " ")

		lines = append(lines, marker+chip+" "+name)
	}
	return strings.Join(lines, "\n")
}

func (m Model) renderDetail() string {
	swatch, ok := m.SelectedSwatch()
	if !ok {
		return ""
	}

	detail := fmt.Sprintf("%s  %s", selectedNameStyle.Render(swatch.Name), swatch.Hex)
	if m.status != "" {
		detail += "  " + statusStyle.Render(m.status)
	}
	return detailStyle.Render(detail)
}

// labelColor picks black or white for text drawn over hex, whichever
// stays readable.
func labelColor(hex string) lipgloss.Color {
	c, err := colorful.Hex(opaque(hex))
	if err != nil {
		return lipgloss.Color("#ffffff")
	}
	if _, _, l := c.Hcl(); l > 0.55 {
		return lipgloss.Color("#000000")
	}
	return lipgloss.Color("#ffffff")
}

// opaque drops the alpha channel, terminal cells cannot blend.
func opaque(hex string) string {
	if len(hex) == 9 {
		return hex[:7]
	}
	return hex
}
