package ui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/seawavessolutions/seawaves-site/internal/logging/events"
)

func (m *Model) openMenu(active string) {
	m.nav.Reset()
	m.nav.Focus(active)
	m.ctrl.ToggleMenu()
}

func (m *Model) closeMenu() {
	m.ctrl.CloseMenu()
	m.nav.Reset()
}

func (m *Model) handleMenuKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.Type {
	case tea.KeyEsc:
		if m.nav.Query() != "" {
			m.nav.SetFilter("", 0)
			events.Filter.Cleared()
			return nil
		}
		m.closeMenu()
	case tea.KeyTab:
		m.closeMenu()
	case tea.KeyEnter:
		item, ok := m.nav.Selected()
		if !ok {
			return nil
		}
		events.UI.MenuEnter(item.ID, m.nav.Filter)
		m.nav.Reset()
		return m.navigate(item.ID)
	case tea.KeyUp, tea.KeyCtrlP, tea.KeyShiftTab:
		m.nav.MoveCursorUp()
	case tea.KeyDown, tea.KeyCtrlN:
		m.nav.MoveCursorDown()
	case tea.KeyHome:
		m.nav.MoveCursorHome()
	case tea.KeyEnd:
		m.nav.MoveCursorEnd()
	case tea.KeyBackspace:
		if m.nav.DeleteFilterRuneBackward() {
			events.Filter.Backspace(m.nav.Filter)
		}
	case tea.KeyCtrlW:
		if m.nav.DeleteFilterWordBackward() {
			events.Filter.WordBackspace(m.nav.Filter)
		}
	case tea.KeyCtrlU:
		m.nav.SetFilter("", 0)
		events.Filter.Cleared()
	case tea.KeySpace:
		if m.nav.InsertFilterText(" ") {
			events.Filter.Append(m.nav.Filter)
		}
	case tea.KeyRunes:
		if m.nav.InsertFilterText(string(msg.Runes)) {
			events.Filter.Append(m.nav.Filter)
		}
	}
	return nil
}

// viewMenu renders the section list as a drop-down anchored under the nav bar.
func (m *Model) viewMenu(width, rows int) string {
	lines := make([]styledLine, 0, len(m.nav.Items)+2)
	prompt := fmt.Sprintf("» %s", m.nav.Filter)
	lines = append(lines, styledLine{text: prompt + "▏", style: styles.FilterPrompt})
	if len(m.nav.Items) == 0 {
		lines = append(lines, styledLine{text: fmt.Sprintf("No matches for %q", m.nav.Query()), style: styles.Info})
	}
	active := m.ctrl.State().Active
	for i, item := range m.nav.Items {
		marker := "  "
		style := styles.MenuItem
		if i == m.nav.Cursor {
			marker = "▌ "
			style = styles.MenuSelected
		}
		label := item.Label
		if item.ID == active {
			label += " •"
		}
		lines = append(lines, styledLine{text: marker + label, style: style})
	}
	boxWidth := 32
	if boxWidth > width-2 {
		boxWidth = width - 2
	}
	lines = limitHeight(lines, rows-2, boxWidth)
	box := styles.Popup.Padding(0, 1).Render(renderLines(applyWidth(lines, boxWidth)))
	return lipgloss.Place(width, rows, lipgloss.Left, lipgloss.Top, box)
}
