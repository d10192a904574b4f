package page

import (
	"context"
	"sort"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/seawavessolutions/seawaves-site/internal/contact"
	"github.com/seawavessolutions/seawaves-site/internal/logging"
	"github.com/seawavessolutions/seawaves-site/internal/logging/events"
	"github.com/seawavessolutions/seawaves-site/internal/site"
)

const (
	LoadingDelay     = 2000 * time.Millisecond
	PopupDelay       = 2500 * time.Millisecond
	ScrollDebounce   = 50 * time.Millisecond
	SuppressDuration = 1000 * time.Millisecond
)

// Outcome is the result of the last submission attempt.
type Outcome int

const (
	OutcomeNone Outcome = iota
	OutcomeSuccess
	OutcomeError
)

func (o Outcome) String() string {
	switch o {
	case OutcomeSuccess:
		return "success"
	case OutcomeError:
		return "error"
	}
	return "none"
}

// Phase is the position in the submission state machine. Validation runs
// synchronously inside Submit, so it is never observed from outside.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseValidating
	PhaseSubmitting
)

func (p Phase) String() string {
	switch p {
	case PhaseValidating:
		return "validating"
	case PhaseSubmitting:
		return "submitting"
	}
	return "idle"
}

// State is the UI state of one page view.
type State struct {
	MenuOpen     bool
	Scrolled     bool
	Progress     float64
	Active       string
	Loading      bool
	PopupVisible bool
	Capability   int
	Fields       contact.Fields
	Errors       contact.Errors
	Submitting   bool
	Outcome      Outcome
	Suppressed   bool
}

// SubmissionResultMsg carries the Submitter's answer back into the event loop.
type SubmissionResultMsg struct {
	ID  string
	Err error
}

// Options configures a Controller.
type Options struct {
	Registry     site.Registry
	Capabilities int
	Submitter    contact.Submitter
	// DisablePopup skips scheduling the promotional popup.
	DisablePopup bool
	// Tick overrides tea.Tick for deferred tasks.
	Tick TickFunc
}

// Controller owns the State of one page view.
type Controller struct {
	state        State
	registry     site.Registry
	capabilities int
	submitter    contact.Submitter
	popupEnabled bool

	timers    *Timers
	geometry  Geometry
	popupDue  bool
	pendingID string

	ctx    context.Context
	cancel context.CancelFunc
	torn   bool
}

// New returns a controller in its initial state. A nil Submitter falls back
// to the simulated one.
func New(opts Options) *Controller {
	submitter := opts.Submitter
	if submitter == nil {
		submitter = contact.NewSimulated(false)
	}
	ctx, cancel := context.WithCancel(context.Background())
	return &Controller{
		state: State{
			Active: opts.Registry.First(),
			Errors: contact.Errors{},
		},
		registry:     opts.Registry,
		capabilities: opts.Capabilities,
		submitter:    submitter,
		popupEnabled: !opts.DisablePopup,
		timers:       NewTimersWith(opts.Tick),
		ctx:          ctx,
		cancel:       cancel,
	}
}

// State returns a snapshot of the current state.
func (c *Controller) State() State {
	s := c.state
	s.Errors = c.state.Errors.Clone()
	return s
}

// Registry returns the section registry the controller navigates.
func (c *Controller) Registry() site.Registry {
	return c.registry
}

// Phase reports where the submission state machine is.
func (c *Controller) Phase() Phase {
	if c.state.Submitting {
		return PhaseSubmitting
	}
	return PhaseIdle
}

// TornDown reports whether Teardown has run.
func (c *Controller) TornDown() bool {
	return c.torn
}

// PendingTimer returns the message the armed timer of kind will deliver.
func (c *Controller) PendingTimer(kind TimerKind) (TimerMsg, bool) {
	return c.timers.Live(kind)
}

// Mount starts the staged intro: the loading indicator is shown now and
// hidden after LoadingDelay; the popup is due PopupDelay after mount.
func (c *Controller) Mount() tea.Cmd {
	if c.torn {
		return nil
	}
	c.state.Loading = true
	events.Page.Mount(c.popupEnabled)
	cmds := []tea.Cmd{c.timers.Schedule(TimerLoading, LoadingDelay)}
	if c.popupEnabled {
		cmds = append(cmds, c.timers.Schedule(TimerPopup, PopupDelay))
	}
	return tea.Batch(cmds...)
}

// HandleTimer applies a fired timer. It reports false for stale or
// cancelled ticks.
func (c *Controller) HandleTimer(msg TimerMsg) bool {
	if !c.timers.Accept(msg) {
		return false
	}
	switch msg.Kind {
	case TimerLoading:
		c.state.Loading = false
		events.Page.Loaded()
		if c.popupDue {
			c.popupDue = false
			c.showPopup()
		}
	case TimerPopup:
		if c.state.Loading {
			c.popupDue = true
			return true
		}
		c.showPopup()
	case TimerDebounce:
		c.detectActive()
	case TimerSuppress:
		c.state.Suppressed = false
		events.Page.Suppress(false)
	}
	return true
}

func (c *Controller) showPopup() {
	c.state.PopupVisible = true
	events.Page.Popup(true)
}

// Scroll records a scroll event. The scrolled flag and progress update
// immediately; active-section detection waits for ScrollDebounce of quiet.
func (c *Controller) Scroll(g Geometry) tea.Cmd {
	if c.torn {
		return nil
	}
	c.geometry = g
	c.state.Scrolled = g.ScrollTop > ScrolledThreshold
	c.state.Progress = ScrollProgress(g)
	return c.timers.Schedule(TimerDebounce, ScrollDebounce)
}

func (c *Controller) detectActive() {
	if c.state.Suppressed {
		return
	}
	next := DetectActive(c.registry, c.geometry)
	if next != c.state.Active {
		events.Page.Section(c.state.Active, next)
		c.state.Active = next
	}
}

// ScrollToSection marks id active and suppresses scroll-driven detection for
// SuppressDuration so the scroll handler cannot override the target while the
// viewport moves. The menu closes either way; unknown ids change nothing else.
func (c *Controller) ScrollToSection(id string) tea.Cmd {
	c.CloseMenu()
	known := c.registry.Has(id)
	events.Page.Navigate(id, known)
	if !known || c.torn {
		return nil
	}
	if c.state.Active != id {
		events.Page.Section(c.state.Active, id)
	}
	c.state.Active = id
	c.state.Suppressed = true
	events.Page.Suppress(true)
	return c.timers.Schedule(TimerSuppress, SuppressDuration)
}

// ScrollToTop navigates to the first section.
func (c *Controller) ScrollToTop() tea.Cmd {
	return c.ScrollToSection(c.registry.First())
}

// ToggleMenu flips the navigation menu.
func (c *Controller) ToggleMenu() {
	c.state.MenuOpen = !c.state.MenuOpen
	events.Page.Menu(c.state.MenuOpen)
}

// CloseMenu closes the navigation menu.
func (c *Controller) CloseMenu() {
	if !c.state.MenuOpen {
		return
	}
	c.state.MenuOpen = false
	events.Page.Menu(false)
}

// DismissPopup hides the popup and forgets a pending one.
func (c *Controller) DismissPopup() {
	c.popupDue = false
	c.timers.Cancel(TimerPopup)
	if c.state.PopupVisible {
		c.state.PopupVisible = false
		events.Page.Popup(false)
	}
}

// SelectCapability makes i the selected capability. Out-of-range indices are
// ignored.
func (c *Controller) SelectCapability(i int) bool {
	if i < 0 || i >= c.capabilities || i == c.state.Capability {
		return false
	}
	c.state.Capability = i
	events.Page.Capability(i)
	return true
}

// NextCapability selects the following capability, wrapping around.
func (c *Controller) NextCapability() bool {
	if c.capabilities <= 1 {
		return false
	}
	return c.SelectCapability((c.state.Capability + 1) % c.capabilities)
}

// PrevCapability selects the preceding capability, wrapping around.
func (c *Controller) PrevCapability() bool {
	if c.capabilities <= 1 {
		return false
	}
	return c.SelectCapability((c.state.Capability - 1 + c.capabilities) % c.capabilities)
}

// SetField updates a form value and clears that field's error without
// re-validating.
func (c *Controller) SetField(f contact.Field, value string) {
	c.state.Fields = c.state.Fields.With(f, value)
	delete(c.state.Errors, f)
}

// Submit validates the form. Invalid input stores per-field errors and
// returns nil; valid input enters the submitting phase and returns the
// command that awaits the Submitter. Submit is a no-op while a submission is
// in flight.
func (c *Controller) Submit() tea.Cmd {
	if c.torn {
		return nil
	}
	if c.state.Submitting {
		events.Contact.Ignored("in-flight")
		return nil
	}
	c.state.Outcome = OutcomeNone
	errs := contact.Validate(c.state.Fields)
	c.state.Errors = errs
	if !errs.Empty() {
		events.Contact.Invalid(errorFields(errs))
		return nil
	}

	sub := contact.NewSubmission(c.state.Fields)
	c.state.Submitting = true
	c.pendingID = sub.ID
	events.Contact.Submit(sub.ID)

	ctx := c.ctx
	submitter := c.submitter
	return func() tea.Msg {
		return SubmissionResultMsg{ID: sub.ID, Err: submitter.Submit(ctx, sub)}
	}
}

// HandleResult applies the Submitter's answer. Success clears the form;
// failure keeps the fields for a retry. Results for a different submission
// or arriving after Teardown are dropped.
func (c *Controller) HandleResult(msg SubmissionResultMsg) bool {
	if c.torn || msg.ID == "" || msg.ID != c.pendingID {
		events.Contact.Stale(msg.ID)
		return false
	}
	c.pendingID = ""
	c.state.Submitting = false
	if msg.Err != nil {
		c.state.Outcome = OutcomeError
		logging.Errorf("contact submission %s: %v", msg.ID, msg.Err)
		events.Contact.Error(msg.ID, msg.Err)
		return true
	}
	c.state.Outcome = OutcomeSuccess
	c.state.Fields = contact.Fields{}
	c.state.Errors = contact.Errors{}
	events.Contact.Success(msg.ID)
	return true
}

// ClearOutcome hides the last outcome banner.
func (c *Controller) ClearOutcome() {
	c.state.Outcome = OutcomeNone
}

// Teardown stops every timer and cancels the submission context.
func (c *Controller) Teardown() {
	if c.torn {
		return
	}
	c.torn = true
	c.timers.Stop()
	c.cancel()
	events.Page.Teardown()
}

func errorFields(errs contact.Errors) []string {
	fields := make([]string, 0, len(errs))
	for f := range errs {
		fields = append(fields, string(f))
	}
	sort.Strings(fields)
	return fields
}
