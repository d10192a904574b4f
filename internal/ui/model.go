package ui

import (
	"reflect"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/seawavessolutions/seawaves-site/internal/contact"
	"github.com/seawavessolutions/seawaves-site/internal/logging/events"
	"github.com/seawavessolutions/seawaves-site/internal/page"
	"github.com/seawavessolutions/seawaves-site/internal/site"
	"github.com/seawavessolutions/seawaves-site/internal/theme"
	"github.com/seawavessolutions/seawaves-site/internal/ui/command"
	uistate "github.com/seawavessolutions/seawaves-site/internal/ui/state"
)

// Mode selects which surface receives key input.
type Mode int

const (
	ModePage Mode = iota
	ModeForm
)

func (m Mode) String() string {
	if m == ModeForm {
		return "form"
	}
	return "page"
}

// RowPixels is the layout height given to one terminal row when reporting
// scroll geometry to the page controller.
const RowPixels = 16

const (
	defaultWidth  = 80
	defaultHeight = 24
	infoTTL       = 5 * time.Second
	wheelRows     = 3
)

var styles = theme.Default()

type msgHandler func(tea.Msg) tea.Cmd

// Options configures a Model.
type Options struct {
	Content      site.Content
	Submitter    contact.Submitter
	Width        int
	Height       int
	ShowFooter   bool
	DisablePopup bool
	// Clipboard receives copied links. Nil uses the system clipboard.
	Clipboard func(string) error
	// Tick overrides tea.Tick for the controller's deferred tasks.
	Tick page.TickFunc
}

// Model implements the Bubble Tea model for the site.
type Model struct {
	content site.Content
	ctrl    *page.Controller
	mode    Mode

	width       int
	height      int
	fixedWidth  bool
	fixedHeight bool
	showFooter  bool

	viewport viewport.Model
	progress progress.Model
	spinner  spinner.Model
	spinning bool
	help     help.Model
	keys     keyMap

	doc  document
	nav  *uistate.NavList
	form *contactForm

	infoMsg    string
	infoExpire time.Time
	errMsg     string

	bus       *command.Bus
	clipboard func(string) error
	quitting  bool

	handlers map[reflect.Type]msgHandler
}

// NewModel builds the page model around a fresh controller.
func NewModel(opts Options) *Model {
	registry := opts.Content.Registry()
	ctrl := page.New(page.Options{
		Registry:     registry,
		Capabilities: len(opts.Content.Capabilities),
		Submitter:    opts.Submitter,
		DisablePopup: opts.DisablePopup,
		Tick:         opts.Tick,
	})
	clip := opts.Clipboard
	if clip == nil {
		clip = clipboard.WriteAll
	}
	spin := spinner.New()
	spin.Spinner = spinner.Dot
	if styles.Loading != nil {
		spin.Style = *styles.Loading
	}
	m := &Model{
		content:    opts.Content,
		ctrl:       ctrl,
		mode:       ModePage,
		showFooter: opts.ShowFooter,
		viewport:   viewport.New(defaultWidth, defaultHeight),
		progress:   progress.New(progress.WithDefaultGradient(), progress.WithoutPercentage()),
		spinner:    spin,
		help:       help.New(),
		keys:       defaultKeyMap(),
		nav:        uistate.NewNavList(navItems(registry)),
		form:       newContactForm(opts.Content.ServiceNames()),
		bus:        command.New(),
		clipboard:  clip,
	}
	if opts.Width > 0 {
		m.width = opts.Width
		m.fixedWidth = true
	}
	if opts.Height > 0 {
		m.height = opts.Height
		m.fixedHeight = true
	}
	m.registerHandlers()
	m.refresh()
	return m
}

func navItems(registry site.Registry) []uistate.Item {
	sections := registry.Sections()
	items := make([]uistate.Item, 0, len(sections))
	for _, s := range sections {
		items = append(items, uistate.Item{ID: s.ID, Label: s.Title})
	}
	return items
}

// Controller exposes the page controller driving this model.
func (m *Model) Controller() *page.Controller {
	return m.ctrl
}

// Mode reports which surface receives key input.
func (m *Model) Mode() Mode {
	return m.mode
}

// Teardown stops the controller. It is safe to call more than once.
func (m *Model) Teardown() {
	m.ctrl.Teardown()
}

// Init is part of the tea.Model interface.
func (m *Model) Init() tea.Cmd {
	cmds := []tea.Cmd{m.ctrl.Mount()}
	if cmd := m.startSpinner(); cmd != nil {
		cmds = append(cmds, cmd)
	}
	return tea.Batch(cmds...)
}

// Update responds to Bubble Tea messages.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	cmds := make([]tea.Cmd, 0, 4)
	if handler := m.handlerFor(msg); handler != nil {
		if cmd := handler(msg); cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	return m, m.finishUpdate(cmds)
}

func (m *Model) registerHandlers() {
	m.handlers = map[reflect.Type]msgHandler{
		reflect.TypeOf(tea.KeyMsg{}):               m.handleKeyMsg,
		reflect.TypeOf(tea.MouseMsg{}):             m.handleMouseMsg,
		reflect.TypeOf(tea.WindowSizeMsg{}):        m.handleWindowSizeMsg,
		reflect.TypeOf(page.TimerMsg{}):            m.handleTimerMsg,
		reflect.TypeOf(page.SubmissionResultMsg{}): m.handleSubmissionResultMsg,
		reflect.TypeOf(spinner.TickMsg{}):          m.handleSpinnerTickMsg,
		reflect.TypeOf(command.ResultMsg{}):        m.handleCommandResultMsg,
	}
}

func (m *Model) handlerFor(msg tea.Msg) msgHandler {
	if msg == nil || m.handlers == nil {
		return nil
	}
	t := reflect.TypeOf(msg)
	if handler, ok := m.handlers[t]; ok {
		return handler
	}
	if t.Kind() == reflect.Ptr {
		if handler, ok := m.handlers[t.Elem()]; ok {
			return handler
		}
	}
	return nil
}

func (m *Model) finishUpdate(cmds []tea.Cmd) tea.Cmd {
	m.refresh()
	if cmd := m.startSpinner(); cmd != nil {
		cmds = append(cmds, cmd)
	}
	if len(cmds) == 0 {
		return nil
	}
	return tea.Batch(cmds...)
}

func (m *Model) busy() bool {
	st := m.ctrl.State()
	return st.Loading || st.Submitting
}

func (m *Model) startSpinner() tea.Cmd {
	if m.spinning || !m.busy() || m.ctrl.TornDown() {
		return nil
	}
	m.spinning = true
	return m.spinner.Tick
}

func (m *Model) handleSpinnerTickMsg(msg tea.Msg) tea.Cmd {
	tick, ok := msg.(spinner.TickMsg)
	if !ok {
		return nil
	}
	if !m.busy() || m.ctrl.TornDown() {
		m.spinning = false
		return nil
	}
	var cmd tea.Cmd
	m.spinner, cmd = m.spinner.Update(tick)
	return cmd
}

func (m *Model) handleTimerMsg(msg tea.Msg) tea.Cmd {
	timer, ok := msg.(page.TimerMsg)
	if !ok {
		return nil
	}
	m.ctrl.HandleTimer(timer)
	return nil
}

func (m *Model) handleSubmissionResultMsg(msg tea.Msg) tea.Cmd {
	result, ok := msg.(page.SubmissionResultMsg)
	if !ok {
		return nil
	}
	if !m.ctrl.HandleResult(result) {
		return nil
	}
	if m.ctrl.State().Outcome == page.OutcomeSuccess {
		m.form.reset()
	}
	return nil
}

func (m *Model) handleWindowSizeMsg(msg tea.Msg) tea.Cmd {
	resize, ok := msg.(tea.WindowSizeMsg)
	if !ok {
		return nil
	}
	if !m.fixedWidth {
		m.width = resize.Width
	}
	if !m.fixedHeight {
		m.height = resize.Height
	}
	events.UI.Resize(m.layoutWidth(), m.layoutHeight())
	m.refresh()
	return m.reportScroll()
}

func (m *Model) setMode(mode Mode) {
	if m.mode == mode {
		return
	}
	m.mode = mode
	events.UI.Mode(mode.String())
}

func (m *Model) layoutWidth() int {
	if m.width > 0 {
		return m.width
	}
	return defaultWidth
}

func (m *Model) layoutHeight() int {
	if m.height > 0 {
		return m.height
	}
	return defaultHeight
}

// viewportRows is the height left for the document after the nav bar,
// progress bar, status line and optional help footer.
func (m *Model) viewportRows() int {
	used := 3
	if m.showFooter {
		used++
	}
	rows := m.layoutHeight() - used
	if rows < 1 {
		return 1
	}
	return rows
}

// refresh re-renders the document for the current state and size while
// keeping the scroll position.
func (m *Model) refresh() {
	width := m.layoutWidth()
	m.viewport.Width = width
	m.viewport.Height = m.viewportRows()
	m.progress.Width = width
	m.help.Width = width
	m.form.setWidth(width)
	m.doc = renderDocument(m.content, m.ctrl.State(), width, m.viewport.Height)
	offset := m.viewport.YOffset
	m.viewport.SetContent(m.doc.render(width))
	m.viewport.SetYOffset(offset)
}

func (m *Model) setInfo(message string) {
	m.infoMsg = message
	m.infoExpire = time.Now().Add(infoTTL)
	m.errMsg = ""
}

func (m *Model) setError(message string) {
	m.errMsg = message
	m.infoMsg = ""
	m.infoExpire = time.Time{}
}

func (m *Model) clearMessages() {
	m.infoMsg = ""
	m.infoExpire = time.Time{}
	m.errMsg = ""
}

func (m *Model) currentInfo() string {
	if m.infoMsg != "" && !m.infoExpire.IsZero() && time.Now().After(m.infoExpire) {
		m.infoMsg = ""
		m.infoExpire = time.Time{}
	}
	return m.infoMsg
}
