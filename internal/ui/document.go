package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"

	"github.com/seawavessolutions/seawaves-site/internal/format/table"
	"github.com/seawavessolutions/seawaves-site/internal/page"
	"github.com/seawavessolutions/seawaves-site/internal/site"
)

const (
	msgSent       = "Thank you! Your message has been sent successfully."
	msgSendFailed = "Sorry, something went wrong. Please try again."
	bullet        = "• "
)

var linkKeys = map[site.LinkKind]string{
	site.LinkEmail:    "e",
	site.LinkPhone:    "p",
	site.LinkWhatsApp: "w",
	site.LinkMap:      "l",
}

// document is the rendered page plus the row at which each section starts.
type document struct {
	lines   []styledLine
	offsets map[string]int
}

func (d document) render(width int) string {
	return renderLines(applyWidth(d.lines, width))
}

func (d document) rows() int {
	return len(d.lines)
}

type docBuilder struct {
	width int
	doc   document
}

// renderDocument lays out every section in page order. The home section is
// padded to fill one viewport so the hero reads like a landing screen.
func renderDocument(content site.Content, st page.State, width, viewportRows int) document {
	if width < 20 {
		width = 20
	}
	b := &docBuilder{width: width, doc: document{offsets: make(map[string]int, len(content.Sections))}}
	for _, s := range content.Sections {
		start := len(b.doc.lines)
		b.doc.offsets[s.ID] = start
		switch s.ID {
		case site.SectionHome:
			b.hero(content)
			b.padTo(start + viewportRows)
			continue
		case site.SectionServices:
			b.section(s)
			b.capabilities(content.Capabilities, st.Capability)
		case site.SectionFAQ:
			b.section(s)
			b.faq(content.FAQ)
		case site.SectionContact:
			b.section(s)
			b.contact(content.Contact, st)
		default:
			b.section(s)
		}
		b.blank()
	}
	b.footer(content)
	return b.doc
}

func (b *docBuilder) add(text string, style *lipgloss.Style) {
	b.doc.lines = append(b.doc.lines, styledLine{text: text, style: style})
}

func (b *docBuilder) raw(text string) {
	b.doc.lines = append(b.doc.lines, styledLine{text: text, raw: true})
}

func (b *docBuilder) blank() {
	b.doc.lines = append(b.doc.lines, styledLine{})
}

func (b *docBuilder) padTo(rows int) {
	for len(b.doc.lines) < rows {
		b.blank()
	}
}

// wrap word-wraps text and prefixes the first line with lead and the rest
// with matching indentation.
func (b *docBuilder) wrap(text, lead string, style *lipgloss.Style) {
	text = strings.TrimSpace(text)
	if text == "" {
		return
	}
	indent := strings.Repeat(" ", lipgloss.Width(lead))
	limit := b.width - len(indent)
	if limit < 10 {
		limit = 10
	}
	for i, line := range strings.Split(wordwrap.String(text, limit), "\n") {
		prefix := indent
		if i == 0 {
			prefix = lead
		}
		b.add(prefix+line, style)
	}
}

func (b *docBuilder) hero(content site.Content) {
	b.blank()
	b.add(content.Brand.Name, styles.Brand)
	b.add(content.Brand.Tagline, styles.Tagline)
	b.blank()
	b.wrap(content.Hero.Headline, "", styles.Headline)
	b.blank()
	b.wrap(content.Hero.Lede, "", styles.Body)
	b.blank()
	ctas := make([]string, 0, 2)
	if label := strings.TrimSpace(content.Hero.Primary); label != "" {
		ctas = append(ctas, keyHint("s")+" "+styles.Button.Render(label))
	}
	if label := strings.TrimSpace(content.Hero.Secondary); label != "" {
		ctas = append(ctas, keyHint("a")+" "+styles.Button.Render(label))
	}
	if len(ctas) > 0 {
		b.raw(strings.Join(ctas, "   "))
	}
}

func (b *docBuilder) section(s site.Section) {
	heading := s.Heading
	if heading == "" {
		heading = s.Title
	}
	b.add(heading, styles.Heading)
	b.blank()
	if s.Body != "" {
		b.wrap(s.Body, "", styles.Body)
		b.blank()
	}
	for _, item := range s.Items {
		b.wrap(item, bullet, styles.Bullet)
	}
	if len(s.Items) > 0 {
		b.blank()
	}
}

// capabilities renders the tab strip, wrapping tabs that do not fit, and the
// detail panel of the selected capability.
func (b *docBuilder) capabilities(caps []site.Capability, selected int) {
	if len(caps) == 0 {
		return
	}
	var row []string
	rowWidth := 0
	for i, capability := range caps {
		style := styles.Tab
		if i == selected {
			style = styles.TabSelected
		}
		tab := style.Render(fmt.Sprintf("%d %s", i+1, capability.Title))
		w := lipgloss.Width(tab)
		if rowWidth > 0 && rowWidth+1+w > b.width {
			b.raw(strings.Join(row, " "))
			row, rowWidth = nil, 0
		}
		if rowWidth > 0 {
			rowWidth++
		}
		row = append(row, tab)
		rowWidth += w
	}
	if len(row) > 0 {
		b.raw(strings.Join(row, " "))
	}
	b.blank()
	if selected < 0 || selected >= len(caps) {
		return
	}
	capability := caps[selected]
	b.add(capability.Title, styles.Heading)
	b.wrap(capability.Summary, "  ", styles.Panel)
	for _, detail := range capability.Details {
		b.wrap(detail, "  "+bullet, styles.Panel)
	}
}

func (b *docBuilder) faq(entries []site.FAQEntry) {
	for _, entry := range entries {
		b.wrap(entry.Question, "Q: ", styles.Heading)
		b.wrap(entry.Answer, "   ", styles.Body)
		b.blank()
	}
}

func (b *docBuilder) contact(info site.ContactInfo, st page.State) {
	rows := make([][]string, 0, 3)
	for _, link := range info.Links() {
		if link.Kind == site.LinkMap {
			continue
		}
		rows = append(rows, linkCells(link))
	}
	for _, line := range table.Format(rows, nil) {
		b.raw(line)
	}
	b.blank()
	switch st.Outcome {
	case page.OutcomeSuccess:
		b.wrap(msgSent, "", styles.Success)
		b.blank()
	case page.OutcomeError:
		b.wrap(msgSendFailed, "", styles.Error)
		b.blank()
	}
	if st.Submitting {
		b.add("Sending your message…", styles.Info)
	} else {
		b.raw(keyHint("c") + " " + styles.Info.Render("Open the contact form"))
	}
	if link, ok := info.Link(site.LinkMap); ok {
		b.blank()
		b.add("Find Us", styles.Heading)
		b.wrap(info.Location, "", styles.Body)
		b.raw(strings.Join(linkCells(link), " "))
	}
}

func (b *docBuilder) footer(content site.Content) {
	b.add(strings.Repeat("─", b.width), styles.Footer)
	b.wrap(fmt.Sprintf("%s · %s", content.Brand.Name, content.Brand.Tagline), "", styles.Footer)
	parts := make([]string, 0, 2)
	if content.Contact.Email != "" {
		parts = append(parts, content.Contact.Email)
	}
	if content.Contact.Phone != "" {
		parts = append(parts, content.Contact.Phone)
	}
	if len(parts) > 0 {
		b.wrap(strings.Join(parts, " · "), "", styles.Footer)
	}
}

func keyHint(k string) string {
	return styles.LinkKey.Render("[" + k + "]")
}

func linkCells(link site.Link) []string {
	return []string{keyHint(linkKeys[link.Kind]), link.Label, styles.Link.Render(link.URL)}
}
