package ui

import (
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/seawavessolutions/seawaves-site/internal/page"
	"github.com/seawavessolutions/seawaves-site/internal/site"
)

func TestLoadingSplashBlocksInputUntilLoaded(t *testing.T) {
	h := newTestHarness(t, nil, nil)
	h.Init()
	if view := h.View(); !strings.Contains(view, "Loading Sea Waves Solutions") {
		t.Fatalf("expected loading splash, got:\n%s", view)
	}
	h.SendKey("c")
	if h.Model().Mode() != ModePage {
		t.Fatalf("expected input ignored while loading")
	}
	fire(t, h, page.TimerLoading)
	if view := h.View(); !strings.Contains(view, "Transforming Ideas into Reality") {
		t.Fatalf("expected hero after loading, got:\n%s", view)
	}
}

func TestPopupEnterNavigatesToTarget(t *testing.T) {
	h := newTestHarness(t, nil, nil)
	h.Init()
	fire(t, h, page.TimerLoading)
	fire(t, h, page.TimerPopup)
	if view := h.View(); !strings.Contains(view, "Internship admissions are open") {
		t.Fatalf("expected popup, got:\n%s", view)
	}
	h.SendKey("enter")
	st := state(h)
	if st.PopupVisible {
		t.Fatalf("expected popup hidden")
	}
	if st.Active != site.SectionContact || !st.Suppressed {
		t.Fatalf("expected suppressed navigation to contact, got %+v", st)
	}
	if h.Model().viewport.YOffset == 0 {
		t.Fatalf("expected viewport to move towards contact")
	}
}

func TestPopupEscDismisses(t *testing.T) {
	h := newTestHarness(t, nil, nil)
	h.Init()
	fire(t, h, page.TimerLoading)
	fire(t, h, page.TimerPopup)
	h.SendKey("esc")
	if state(h).PopupVisible {
		t.Fatalf("expected popup dismissed")
	}
	if state(h).Active != site.SectionHome {
		t.Fatalf("expected no navigation on dismiss")
	}
}

func TestScrollUpdatesProgressAndActiveSection(t *testing.T) {
	h := readyHarness(t, nil, nil)
	h.SendKey("pgdown")
	st := state(h)
	if !st.Scrolled || st.Progress <= 0 {
		t.Fatalf("expected scrolled with progress, got %+v", st)
	}
	if st.Active != site.SectionHome {
		t.Fatalf("expected active section to wait for debounce, got %s", st.Active)
	}
	fire(t, h, page.TimerDebounce)
	if got := state(h).Active; got != site.SectionAbout {
		t.Fatalf("expected about after one page, got %s", got)
	}
	if view := h.View(); !strings.Contains(view, "back to top") {
		t.Fatalf("expected back-to-top hint, got:\n%s", view)
	}
}

func TestGeometryUsesRowPixels(t *testing.T) {
	h := readyHarness(t, nil, nil)
	h.SendKey("down")
	g := h.Model().geometry()
	if g.ScrollTop != RowPixels {
		t.Fatalf("expected scrollTop %d, got %d", RowPixels, g.ScrollTop)
	}
	if g.ViewportHeight != h.Model().viewport.Height*RowPixels {
		t.Fatalf("unexpected viewport height %d", g.ViewportHeight)
	}
	if g.Offsets[site.SectionAbout] != h.Model().viewport.Height*RowPixels {
		t.Fatalf("expected about right after a viewport-high hero, got %d", g.Offsets[site.SectionAbout])
	}
}

func TestBackToTop(t *testing.T) {
	h := readyHarness(t, nil, nil)
	h.SendKey("pgdown")
	h.SendKey("pgdown")
	fire(t, h, page.TimerDebounce)
	h.SendKey("t")
	st := state(h)
	if h.Model().viewport.YOffset != 0 {
		t.Fatalf("expected viewport at top, got %d", h.Model().viewport.YOffset)
	}
	if st.Active != site.SectionHome || st.Scrolled || st.Progress != 0 {
		t.Fatalf("expected reset to home, got %+v", st)
	}
}

func TestMenuFilterAndJump(t *testing.T) {
	h := readyHarness(t, nil, nil)
	h.SendKey("tab")
	if !state(h).MenuOpen {
		t.Fatalf("expected menu open")
	}
	h.Type("intern")
	items := h.Model().nav.Items
	if len(items) != 1 || items[0].ID != site.SectionInternship {
		t.Fatalf("expected internship only, got %#v", items)
	}
	h.SendKey("enter")
	st := state(h)
	if st.MenuOpen || st.Active != site.SectionInternship || !st.Suppressed {
		t.Fatalf("expected suppressed jump to internship, got %+v", st)
	}
	if got, want := h.Model().viewport.YOffset, h.Model().doc.offsets[site.SectionInternship]; got != want {
		t.Fatalf("expected viewport at row %d, got %d", want, got)
	}
	fire(t, h, page.TimerDebounce)
	if state(h).Active != site.SectionInternship {
		t.Fatalf("expected detection suppressed after jump")
	}
}

func TestMenuEscClearsFilterThenCloses(t *testing.T) {
	h := readyHarness(t, nil, nil)
	h.SendKey("tab")
	h.Type("zzz")
	if view := h.View(); !strings.Contains(view, `No matches for "zzz"`) {
		t.Fatalf("expected no-match notice, got:\n%s", view)
	}
	h.SendKey("esc")
	if !state(h).MenuOpen || h.Model().nav.Filter != "" {
		t.Fatalf("expected filter cleared with menu still open")
	}
	h.SendKey("esc")
	if state(h).MenuOpen {
		t.Fatalf("expected menu closed")
	}
}

func TestCapabilityKeys(t *testing.T) {
	h := readyHarness(t, nil, nil)
	h.SendKey("]")
	if got := state(h).Capability; got != 1 {
		t.Fatalf("expected capability 1, got %d", got)
	}
	h.SendKey("4")
	if got := state(h).Capability; got != 3 {
		t.Fatalf("expected capability 3, got %d", got)
	}
	h.SendKey("9")
	if got := state(h).Capability; got != 3 {
		t.Fatalf("expected out of range digit ignored, got %d", got)
	}
	doc := h.Model().doc.render(80)
	if !strings.Contains(doc, "Creative and professional logo designs") {
		t.Fatalf("expected logo design details in document")
	}
	h.SendKey("]")
	if got := state(h).Capability; got != 0 {
		t.Fatalf("expected wrap to 0, got %d", got)
	}
	h.SendKey("[")
	if got := state(h).Capability; got != 3 {
		t.Fatalf("expected wrap back to 3, got %d", got)
	}
}

func TestCopyLinkWritesClipboard(t *testing.T) {
	clip := &fakeClipboard{}
	h := readyHarness(t, nil, clip)
	h.SendKey("e")
	h.SendKey("w")
	want := []string{"mailto:info@seawavessolutions.com", "https://wa.me/919876543210"}
	if len(clip.copied) != 2 || clip.copied[0] != want[0] || clip.copied[1] != want[1] {
		t.Fatalf("expected %v, got %v", want, clip.copied)
	}
	if view := h.View(); !strings.Contains(view, "Copied WhatsApp") {
		t.Fatalf("expected copy notice, got:\n%s", view)
	}
}

func TestCopyLinkErrorShownInStatus(t *testing.T) {
	clip := &fakeClipboard{err: errors.New("no clipboard utility")}
	h := readyHarness(t, nil, clip)
	h.SendKey("p")
	if view := h.View(); !strings.Contains(view, "Could not copy phone link") {
		t.Fatalf("expected copy error, got:\n%s", view)
	}
}

func TestQuitTearsDownController(t *testing.T) {
	h := readyHarness(t, nil, nil)
	h.SendKey("q")
	if !h.Quit() {
		t.Fatalf("expected quit")
	}
	if !h.Model().Controller().TornDown() {
		t.Fatalf("expected controller torn down")
	}
}

func TestWindowSizeResizesViewport(t *testing.T) {
	m := NewModel(Options{Content: testContent(t), Tick: noTick, ShowFooter: true})
	h := NewHarness(m)
	h.Send(tea.WindowSizeMsg{Width: 100, Height: 40})
	if m.viewport.Width != 100 || m.viewport.Height != 36 {
		t.Fatalf("expected 100x36 viewport, got %dx%d", m.viewport.Width, m.viewport.Height)
	}
	if m.doc.offsets[site.SectionAbout] != 36 {
		t.Fatalf("expected hero padded to the viewport, got %d", m.doc.offsets[site.SectionAbout])
	}
}

func TestFixedSizeIgnoresResize(t *testing.T) {
	h := newTestHarness(t, nil, nil)
	h.Send(tea.WindowSizeMsg{Width: 120, Height: 50})
	if h.Model().viewport.Width != 80 {
		t.Fatalf("expected fixed width, got %d", h.Model().viewport.Width)
	}
}

func TestMouseWheelScrolls(t *testing.T) {
	h := readyHarness(t, nil, nil)
	h.Send(tea.MouseMsg{Button: tea.MouseButtonWheelDown, Action: tea.MouseActionPress})
	if got := h.Model().viewport.YOffset; got != wheelRows {
		t.Fatalf("expected offset %d, got %d", wheelRows, got)
	}
	h.Send(tea.MouseMsg{Button: tea.MouseButtonWheelUp, Action: tea.MouseActionPress})
	if got := h.Model().viewport.YOffset; got != 0 {
		t.Fatalf("expected offset 0, got %d", got)
	}
}
