package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/seawavessolutions/seawaves-site/internal/contact"
	"github.com/seawavessolutions/seawaves-site/internal/logging/events"
	"github.com/seawavessolutions/seawaves-site/internal/page"
)

const (
	formTitle      = "Send us a message"
	formHelp       = "tab next · shift+tab back · ctrl+s send · ctrl+y accept suggestion · esc close"
	submitLabel    = "Send Message"
	sendingLabel   = "Sending…"
	messageRows    = 4
	formCharLimit  = 120
	messageMaxSize = 2000
)

var formLabels = map[contact.Field]string{
	contact.FieldName:    "Name *",
	contact.FieldEmail:   "Email *",
	contact.FieldPhone:   "Phone",
	contact.FieldService: "Service",
	contact.FieldMessage: "Message *",
}

var formPlaceholders = map[contact.Field]string{
	contact.FieldName:    "Your name",
	contact.FieldEmail:   "you@example.com",
	contact.FieldPhone:   "+91 98765 43210",
	contact.FieldService: "What can we help with?",
	contact.FieldMessage: "Tell us about your project",
}

// contactForm holds the text widgets of the contact form. Focus runs over
// the fields in order and then the submit button.
type contactForm struct {
	inputs  []textinput.Model
	message textarea.Model
	focus   int
}

func newContactForm(services []string) *contactForm {
	f := &contactForm{}
	for _, field := range contact.FieldOrder {
		if field == contact.FieldMessage {
			continue
		}
		ti := textinput.New()
		ti.Prompt = "  "
		ti.Placeholder = formPlaceholders[field]
		ti.CharLimit = formCharLimit
		ti.Cursor.SetMode(cursor.CursorStatic)
		if field == contact.FieldService && len(services) > 0 {
			ti.ShowSuggestions = true
			ti.SetSuggestions(services)
			ti.KeyMap.AcceptSuggestion = key.NewBinding(key.WithKeys("ctrl+y"))
		}
		f.inputs = append(f.inputs, ti)
	}
	ta := textarea.New()
	ta.Placeholder = formPlaceholders[contact.FieldMessage]
	ta.ShowLineNumbers = false
	ta.Prompt = "  "
	ta.CharLimit = messageMaxSize
	ta.SetHeight(messageRows)
	ta.Cursor.SetMode(cursor.CursorStatic)
	f.message = ta
	return f
}

func (f *contactForm) submitIndex() int {
	return len(contact.FieldOrder)
}

func (f *contactForm) field(i int) (contact.Field, bool) {
	if i < 0 || i >= len(contact.FieldOrder) {
		return "", false
	}
	return contact.FieldOrder[i], true
}

func (f *contactForm) onSubmit() bool {
	return f.focus == f.submitIndex()
}

func (f *contactForm) onMessage() bool {
	field, ok := f.field(f.focus)
	return ok && field == contact.FieldMessage
}

func (f *contactForm) setWidth(width int) {
	inner := width - 6
	if inner < 10 {
		inner = 10
	}
	for i := range f.inputs {
		f.inputs[i].Width = inner
	}
	f.message.SetWidth(inner)
}

// focusOn moves focus to index i, wrapping around the submit button.
func (f *contactForm) focusOn(i int) tea.Cmd {
	n := f.submitIndex() + 1
	i = ((i % n) + n) % n
	f.focus = i
	for j := range f.inputs {
		f.inputs[j].Blur()
	}
	f.message.Blur()
	var cmd tea.Cmd
	if field, ok := f.field(i); ok {
		if field == contact.FieldMessage {
			cmd = f.message.Focus()
		} else {
			cmd = f.inputs[i].Focus()
		}
		events.UI.FormFocus(string(field))
	} else {
		events.UI.FormFocus("submit")
	}
	return cmd
}

func (f *contactForm) value(field contact.Field) string {
	if field == contact.FieldMessage {
		return f.message.Value()
	}
	for i, candidate := range contact.FieldOrder {
		if candidate == field && i < len(f.inputs) {
			return f.inputs[i].Value()
		}
	}
	return ""
}

// load copies the controller's field values into the widgets.
func (f *contactForm) load(fields contact.Fields) {
	for i, field := range contact.FieldOrder {
		if field == contact.FieldMessage {
			f.message.SetValue(fields.Get(field))
			continue
		}
		f.inputs[i].SetValue(fields.Get(field))
	}
}

func (f *contactForm) reset() {
	f.load(contact.Fields{})
	f.focusOn(0)
}

// update forwards a key to the focused widget and reports the field whose
// value changed.
func (f *contactForm) update(msg tea.KeyMsg) (contact.Field, bool, tea.Cmd) {
	field, ok := f.field(f.focus)
	if !ok {
		return "", false, nil
	}
	before := f.value(field)
	var cmd tea.Cmd
	if field == contact.FieldMessage {
		f.message, cmd = f.message.Update(msg)
	} else {
		f.inputs[f.focus], cmd = f.inputs[f.focus].Update(msg)
	}
	return field, f.value(field) != before, cmd
}

func (m *Model) openForm() tea.Cmd {
	m.ctrl.CloseMenu()
	m.form.load(m.ctrl.State().Fields)
	m.setMode(ModeForm)
	focus := m.form.focus
	if m.form.onSubmit() {
		focus = 0
	}
	return m.form.focusOn(focus)
}

func (m *Model) closeForm() {
	m.setMode(ModePage)
}

func (m *Model) handleFormKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.Type {
	case tea.KeyEsc:
		m.closeForm()
		return nil
	case tea.KeyTab:
		return m.form.focusOn(m.form.focus + 1)
	case tea.KeyShiftTab:
		return m.form.focusOn(m.form.focus - 1)
	case tea.KeyCtrlS:
		return m.submitForm()
	case tea.KeyEnter:
		if m.form.onSubmit() {
			return m.submitForm()
		}
		if !m.form.onMessage() {
			return m.form.focusOn(m.form.focus + 1)
		}
	}
	if m.form.onSubmit() {
		return nil
	}
	field, changed, cmd := m.form.update(msg)
	if changed {
		m.ctrl.SetField(field, m.form.value(field))
	}
	return cmd
}

// submitForm hands the form to the controller and focuses the first field
// that failed validation.
func (m *Model) submitForm() tea.Cmd {
	cmd := m.ctrl.Submit()
	st := m.ctrl.State()
	if st.Errors.Empty() {
		return cmd
	}
	for i, field := range contact.FieldOrder {
		if st.Errors.Get(field) != "" {
			return tea.Batch(cmd, m.form.focusOn(i))
		}
	}
	return cmd
}

func (m *Model) viewForm(st page.State, width, rows int) string {
	lines := make([]styledLine, 0, 24)
	focusLine := 0
	lines = append(lines, styledLine{text: formTitle, style: styles.Heading}, styledLine{})
	for i, field := range contact.FieldOrder {
		label := formLabels[field]
		if i == m.form.focus {
			label = "› " + label
			focusLine = len(lines)
		} else {
			label = "  " + label
		}
		lines = append(lines, styledLine{text: label, style: styles.FormLabel})
		var view string
		if field == contact.FieldMessage {
			view = m.form.message.View()
		} else {
			view = m.form.inputs[i].View()
		}
		for _, row := range strings.Split(view, "\n") {
			lines = append(lines, styledLine{text: row, raw: true})
		}
		if msg := st.Errors.Get(field); msg != "" {
			lines = append(lines, styledLine{text: "  " + msg, style: styles.FormError})
		}
	}
	lines = append(lines, styledLine{})
	if m.form.onSubmit() {
		focusLine = len(lines)
	}
	lines = append(lines, styledLine{text: "  " + m.viewSubmitButton(st), raw: true})
	switch st.Outcome {
	case page.OutcomeSuccess:
		lines = append(lines, styledLine{}, styledLine{text: "  " + msgSent, style: styles.Success})
	case page.OutcomeError:
		lines = append(lines, styledLine{}, styledLine{text: "  " + msgSendFailed, style: styles.Error})
	}
	lines = append(lines, styledLine{}, styledLine{text: formHelp, style: styles.Footer})
	lines = windowAround(lines, focusLine, rows)
	return renderLines(applyWidth(lines, width))
}

func (m *Model) viewSubmitButton(st page.State) string {
	switch {
	case st.Submitting:
		return m.spinner.View() + " " + styles.ButtonDisabled.Render(sendingLabel)
	case m.form.onSubmit():
		return styles.ButtonFocused.Render(submitLabel)
	default:
		return styles.Button.Render(submitLabel)
	}
}

// windowAround keeps at most rows lines, scrolled so focus stays visible.
func windowAround(lines []styledLine, focus, rows int) []styledLine {
	if rows <= 0 || len(lines) <= rows {
		return lines
	}
	start := 0
	if focus >= rows-1 {
		start = focus - rows/2
	}
	if start+rows > len(lines) {
		start = len(lines) - rows
	}
	if start < 0 {
		start = 0
	}
	return lines[start : start+rows]
}
