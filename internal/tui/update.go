package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
)

// Update handles Bubble Tea messages and advances the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.view.Width = msg.Width
		m.view.Height = listHeight(msg.Height)
		m.ready = true
		m.ensureCursorVisible()
		m.refreshContent()
		return m, nil
	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c", "esc":
		return m, tea.Quit

	case "left", "h", "shift+tab":
		m.moveTab(-1)
		return m, nil

	case "right", "l", "tab":
		m.moveTab(1)
		return m, nil

	case "up", "k":
		m.moveCursor(-1)
		return m, nil

	case "down", "j":
		m.moveCursor(1)
		return m, nil

	case "g", "home":
		m.setCursor(0)
		return m, nil

	case "G", "end":
		if variant, ok := m.ActiveVariant(); ok {
			m.setCursor(len(variant.Swatches) - 1)
		}
		return m, nil

	case "y":
		m.copySelected()
		return m, nil
	}

	return m, nil
}

func (m *Model) copySelected() {
	swatch, ok := m.SelectedSwatch()
	if !ok {
		return
	}
	if err := m.copyFn(swatch.Hex); err != nil {
		m.status = "clipboard unavailable"
		return
	}
	m.status = fmt.Sprintf("copied %s (%s)", swatch.Hex, swatch.Name)
}

// listHeight reserves rows for the tab bar, detail line, and help footer.
func listHeight(total int) int {
	h := total - 6
	if h < 3 {
		h = 3
	}
	return h
}
