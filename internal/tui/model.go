// Package tui implements the interactive palette preview shown by the
// preview command: one tab per variant, a scrollable swatch list, and
// clipboard copy for the selected color.
package tui

import (
	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
)

// Swatch is one resolved color entry of a variant.
type Swatch struct {
	Name string
	Hex  string
}

// Variant groups the resolved swatches shown on one tab.
type Variant struct {
	ID       string
	Title    string
	Swatches []Swatch
}

// Model contains the Bubble Tea state for the preview.
type Model struct {
	variants []Variant
	active   int
	cursor   int
	view     viewport.Model
	status   string
	width    int
	height   int
	ready    bool

	// copyFn is swappable so tests never touch the real clipboard.
	copyFn func(string) error
}

// NewModel constructs the preview over the given variants.
func NewModel(variants []Variant) Model {
	return Model{
		variants: variants,
		view:     viewport.New(0, 0),
		copyFn:   clipboard.WriteAll,
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// ActiveVariant returns the variant shown on the current tab.
func (m Model) ActiveVariant() (Variant, bool) {
	if len(m.variants) == 0 {
		return Variant{}, false
	}
	return m.variants[m.active], true
}

// SelectedSwatch returns the swatch under the cursor.
func (m Model) SelectedSwatch() (Swatch, bool) {
	variant, ok := m.ActiveVariant()
	if !ok || len(variant.Swatches) == 0 {
		return Swatch{}, false
	}
	return variant.Swatches[m.cursor], true
}

func (m *Model) moveTab(delta int) {
	if len(m.variants) == 0 {
		return
	}
	m.active = (m.active + delta + len(m.variants)) % len(m.variants)
	m.clampCursor()
	m.status = ""
	m.refreshContent()
}

func (m *Model) moveCursor(delta int) {
	m.cursor += delta
	m.clampCursor()
	m.ensureCursorVisible()
	m.refreshContent()
}

func (m *Model) setCursor(index int) {
	m.cursor = index
	m.clampCursor()
	m.ensureCursorVisible()
	m.refreshContent()
}

func (m *Model) clampCursor() {
	variant, ok := m.ActiveVariant()
	if !ok || len(variant.Swatches) == 0 {
		m.cursor = 0
		return
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
	if m.cursor >= len(variant.Swatches) {
		m.cursor = len(variant.Swatches) - 1
	}
}

func (m *Model) ensureCursorVisible() {
	if !m.ready {
		return
	}
	top := m.view.YOffset
	bottom := top + m.view.Height - 1
	if m.cursor < top {
		m.view.SetYOffset(m.cursor)
	} else if m.cursor > bottom {
		m.view.SetYOffset(m.cursor - m.view.Height + 1)
	}
}

func (m *Model) refreshContent() {
	if m.ready {
		m.view.SetContent(m.renderSwatchList())
	}
}
