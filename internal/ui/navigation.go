package ui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/seawavessolutions/seawaves-site/internal/page"
	"github.com/seawavessolutions/seawaves-site/internal/site"
)

func (m *Model) handleKeyMsg(msg tea.Msg) tea.Cmd {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}
	if keyMsg.Type == tea.KeyCtrlC {
		return m.quit()
	}
	if m.mode == ModeForm {
		return m.handleFormKey(keyMsg)
	}
	st := m.ctrl.State()
	switch {
	case st.Loading:
		if key.Matches(keyMsg, m.keys.Quit) {
			return m.quit()
		}
		return nil
	case st.PopupVisible:
		return m.handlePopupKey(keyMsg)
	case st.MenuOpen:
		return m.handleMenuKey(keyMsg)
	}
	return m.handlePageKey(keyMsg, st)
}

func (m *Model) quit() tea.Cmd {
	m.ctrl.Teardown()
	m.quitting = true
	return tea.Quit
}

func (m *Model) handlePopupKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case msg.Type == tea.KeyEnter:
		m.ctrl.DismissPopup()
		target := m.content.Popup.Target
		if target == "" {
			target = site.SectionContact
		}
		return m.navigate(target)
	case key.Matches(msg, m.keys.Dismiss), msg.String() == "x":
		m.ctrl.DismissPopup()
	case key.Matches(msg, m.keys.Quit):
		return m.quit()
	}
	return nil
}

func (m *Model) handlePageKey(msg tea.KeyMsg, st page.State) tea.Cmd {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m.quit()
	case key.Matches(msg, m.keys.Up):
		return m.scrollBy(-1)
	case key.Matches(msg, m.keys.Down):
		return m.scrollBy(1)
	case key.Matches(msg, m.keys.PageUp):
		return m.scrollBy(-m.viewport.Height)
	case key.Matches(msg, m.keys.PageDown):
		return m.scrollBy(m.viewport.Height)
	case key.Matches(msg, m.keys.Top):
		return m.scrollToTop()
	case key.Matches(msg, m.keys.Bottom):
		return m.scrollTo(m.doc.rows())
	case key.Matches(msg, m.keys.Menu):
		m.openMenu(st.Active)
	case key.Matches(msg, m.keys.Form):
		return m.openForm()
	case key.Matches(msg, m.keys.Start):
		return m.navigate(site.SectionContact)
	case key.Matches(msg, m.keys.Learn):
		return m.navigate(site.SectionAbout)
	case key.Matches(msg, m.keys.NextTab):
		m.ctrl.NextCapability()
	case key.Matches(msg, m.keys.PrevTab):
		m.ctrl.PrevCapability()
	case key.Matches(msg, m.keys.Email):
		return m.copyLink(site.LinkEmail)
	case key.Matches(msg, m.keys.Phone):
		return m.copyLink(site.LinkPhone)
	case key.Matches(msg, m.keys.WhatsApp):
		return m.copyLink(site.LinkWhatsApp)
	case key.Matches(msg, m.keys.Location):
		return m.copyLink(site.LinkMap)
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	case key.Matches(msg, m.keys.Dismiss):
		m.clearMessages()
		m.ctrl.ClearOutcome()
	default:
		if idx, ok := digitIndex(msg); ok {
			m.ctrl.SelectCapability(idx)
		}
	}
	return nil
}

func digitIndex(msg tea.KeyMsg) (int, bool) {
	if msg.Type != tea.KeyRunes || len(msg.Runes) != 1 {
		return 0, false
	}
	r := msg.Runes[0]
	if r < '1' || r > '9' {
		return 0, false
	}
	return int(r - '1'), true
}

func (m *Model) handleMouseMsg(msg tea.Msg) tea.Cmd {
	mouse, ok := msg.(tea.MouseMsg)
	if !ok || m.mode != ModePage {
		return nil
	}
	st := m.ctrl.State()
	if st.Loading || st.PopupVisible {
		return nil
	}
	switch mouse.Button {
	case tea.MouseButtonWheelUp:
		return m.scrollBy(-wheelRows)
	case tea.MouseButtonWheelDown:
		return m.scrollBy(wheelRows)
	}
	return nil
}

func (m *Model) scrollBy(rows int) tea.Cmd {
	return m.scrollTo(m.viewport.YOffset + rows)
}

// scrollTo moves the viewport and reports the new position. Positions the
// viewport clamps to its current offset produce no scroll event.
func (m *Model) scrollTo(row int) tea.Cmd {
	before := m.viewport.YOffset
	m.viewport.SetYOffset(row)
	if m.viewport.YOffset == before {
		return nil
	}
	return m.reportScroll()
}

func (m *Model) reportScroll() tea.Cmd {
	return m.ctrl.Scroll(m.geometry())
}

// geometry converts the viewport position into layout pixels.
func (m *Model) geometry() page.Geometry {
	offsets := make(map[string]int, len(m.doc.offsets))
	for id, row := range m.doc.offsets {
		offsets[id] = row * RowPixels
	}
	return page.Geometry{
		ScrollTop:      m.viewport.YOffset * RowPixels,
		DocumentHeight: m.viewport.TotalLineCount() * RowPixels,
		ViewportHeight: m.viewport.Height * RowPixels,
		Offsets:        offsets,
	}
}

// navigate jumps to a section. Unknown ids only close the menu.
func (m *Model) navigate(id string) tea.Cmd {
	known := m.ctrl.Registry().Has(id)
	cmd := m.ctrl.ScrollToSection(id)
	if !known {
		return cmd
	}
	return tea.Batch(cmd, m.scrollTo(m.doc.offsets[id]))
}

func (m *Model) scrollToTop() tea.Cmd {
	cmd := m.ctrl.ScrollToTop()
	return tea.Batch(cmd, m.scrollTo(0))
}
