package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/muesli/reflow/truncate"
	"github.com/muesli/reflow/wordwrap"

	"github.com/seawavessolutions/seawaves-site/internal/page"
)

type styledLine struct {
	text  string
	style *lipgloss.Style
	raw   bool // text contains ANSI escapes; skip style wrapping, use ANSI-aware truncation
}

// View implements tea.Model.
func (m *Model) View() string {
	if m.quitting {
		return ""
	}
	st := m.ctrl.State()
	width := m.layoutWidth()
	if st.Loading {
		return m.viewLoading(width, m.layoutHeight())
	}
	rows := m.viewport.Height
	body := m.viewport.View()
	switch {
	case m.mode == ModeForm:
		body = m.viewForm(st, width, rows)
	case st.PopupVisible:
		body = lipgloss.Place(width, rows, lipgloss.Center, lipgloss.Center, m.viewPopup(width))
	case st.MenuOpen:
		body = m.viewMenu(width, rows)
	}
	parts := []string{
		m.viewNav(st, width),
		m.progress.ViewAs(st.Progress / 100),
		body,
		m.viewStatus(st, width),
	}
	if m.showFooter {
		parts = append(parts, m.help.View(m.keys))
	}
	return strings.Join(parts, "\n")
}

func (m *Model) viewLoading(width, height int) string {
	text := fmt.Sprintf("%s Loading %s", m.spinner.View(), m.content.Brand.Name)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, styles.Loading.Render(text))
}

// viewNav renders the brand and the nav sections with the active section
// highlighted. The bar gains a background once the page is scrolled.
func (m *Model) viewNav(st page.State, width int) string {
	items := make([]string, 0, 8)
	items = append(items, styles.Brand.Render(m.content.Brand.Name))
	for _, s := range m.ctrl.Registry().NavSections() {
		style := styles.NavItem
		if s.ID == st.Active {
			style = styles.NavActive
		}
		items = append(items, style.Render(s.Title))
	}
	line := ansi.Truncate(strings.Join(items, "  "), width, "…")
	bar := styles.Nav
	if st.Scrolled {
		bar = styles.NavScrolled
	}
	return bar.Width(width).Render(line)
}

func (m *Model) viewStatus(st page.State, width int) string {
	var line styledLine
	switch {
	case m.errMsg != "":
		line = styledLine{text: m.errMsg, style: styles.Error}
	case m.currentInfo() != "":
		line = styledLine{text: m.infoMsg, style: styles.Info}
	case st.Outcome == page.OutcomeSuccess:
		line = styledLine{text: msgSent, style: styles.Success}
	case st.Outcome == page.OutcomeError:
		line = styledLine{text: msgSendFailed, style: styles.Error}
	case st.Scrolled:
		line = styledLine{text: fmt.Sprintf("§ %s   ↑ t: back to top", m.ctrl.Registry().Title(st.Active)), style: styles.Footer}
	default:
		line = styledLine{text: fmt.Sprintf("§ %s", m.ctrl.Registry().Title(st.Active)), style: styles.Footer}
	}
	return renderLines(applyWidth([]styledLine{line}, width))
}

func (m *Model) viewPopup(width int) string {
	popup := m.content.Popup
	inner := width - 10
	if inner < 20 {
		inner = 20
	}
	lines := []string{
		styles.PopupTitle.Render(popup.Title),
		"",
		wrapText(popup.Body, inner),
		"",
	}
	action := popup.Action
	if action == "" {
		action = "Open"
	}
	lines = append(lines, keyHint("enter")+" "+styles.ButtonFocused.Render(action)+"   "+keyHint("esc")+" "+styles.Info.Render("Close"))
	return styles.Popup.Render(strings.Join(lines, "\n"))
}

func limitHeight(lines []styledLine, height, width int) []styledLine {
	if height <= 0 || len(lines) <= height {
		return lines
	}
	if height == 1 {
		return []styledLine{{text: truncateText("…", width)}}
	}
	trimmed := make([]styledLine, 0, height)
	trimmed = append(trimmed, lines[:height-1]...)
	trimmed = append(trimmed, styledLine{text: truncateText("…", width)})
	return trimmed
}

func applyWidth(lines []styledLine, width int) []styledLine {
	if width <= 0 {
		return lines
	}
	result := make([]styledLine, len(lines))
	for i, line := range lines {
		text := line.text
		if line.raw {
			if lipgloss.Width(text) > width {
				text = truncate.StringWithTail(text, uint(width-1), "…")
			}
		} else {
			text = truncateText(text, width)
		}
		result[i] = styledLine{text: text, style: line.style, raw: line.raw}
	}
	return result
}

func renderLines(lines []styledLine) string {
	out := make([]string, len(lines))
	for i, line := range lines {
		text := line.text
		if !line.raw && line.style != nil && text != "" {
			text = line.style.Render(text)
		}
		out[i] = text
	}
	return strings.Join(out, "\n")
}

func truncateText(text string, width int) string {
	if width <= 0 {
		return text
	}
	runes := []rune(text)
	if len(runes) <= width {
		return text
	}
	if width == 1 {
		return string(runes[:1])
	}
	return string(runes[:width-1]) + "…"
}

func wrapText(text string, width int) string {
	return strings.TrimRight(wordwrap.String(strings.TrimSpace(text), width), "\n")
}
