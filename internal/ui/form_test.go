package ui

import (
	"errors"
	"strings"
	"testing"

	"github.com/seawavessolutions/seawaves-site/internal/contact"
	"github.com/seawavessolutions/seawaves-site/internal/page"
)

func fillValidForm(h *Harness) {
	h.Type("Jo")
	h.SendKey("tab")
	h.Type("jo@example.com")
	h.SendKey("tab")
	h.SendKey("tab")
	h.SendKey("tab")
	h.Type("I need a new logo please")
}

func TestFormOpensWithNameFocused(t *testing.T) {
	h := readyHarness(t, nil, nil)
	h.SendKey("c")
	if h.Model().Mode() != ModeForm {
		t.Fatalf("expected form mode")
	}
	if h.Model().form.focus != 0 {
		t.Fatalf("expected name focused, got %d", h.Model().form.focus)
	}
	if view := h.View(); !strings.Contains(view, formTitle) || !strings.Contains(view, submitLabel) {
		t.Fatalf("expected form view, got:\n%s", view)
	}
}

func TestFormInvalidSubmitShowsErrors(t *testing.T) {
	sub := &instantSubmitter{}
	h := readyHarness(t, sub, nil)
	h.SendKey("c")
	h.SendKey("tab")
	h.SendKey("ctrl+s")
	view := h.View()
	for _, msg := range []string{contact.MsgNameRequired, contact.MsgEmailRequired, contact.MsgMessageRequired} {
		if !strings.Contains(view, msg) {
			t.Fatalf("expected %q in view:\n%s", msg, view)
		}
	}
	if len(sub.subs) != 0 {
		t.Fatalf("expected no submission")
	}
	if h.Model().form.focus != 0 {
		t.Fatalf("expected focus moved to first invalid field, got %d", h.Model().form.focus)
	}
	if state(h).Submitting {
		t.Fatalf("expected idle after invalid submit")
	}
}

func TestFormTypingClearsOnlyThatError(t *testing.T) {
	h := readyHarness(t, &instantSubmitter{}, nil)
	h.SendKey("c")
	h.SendKey("ctrl+s")
	h.Type("J")
	errs := state(h).Errors
	if errs.Get(contact.FieldName) != "" {
		t.Fatalf("expected name error cleared")
	}
	if errs.Get(contact.FieldEmail) == "" {
		t.Fatalf("expected email error kept")
	}
	if got := state(h).Fields.Name; got != "J" {
		t.Fatalf("expected name synced to controller, got %q", got)
	}
}

func TestFormValidSubmitSucceedsAndClears(t *testing.T) {
	sub := &instantSubmitter{}
	h := readyHarness(t, sub, nil)
	h.SendKey("c")
	fillValidForm(h)
	h.SendKey("ctrl+s")
	if len(sub.subs) != 1 {
		t.Fatalf("expected one submission, got %d", len(sub.subs))
	}
	got := sub.subs[0].Fields
	if got.Name != "Jo" || got.Email != "jo@example.com" || got.Message != "I need a new logo please" {
		t.Fatalf("unexpected submitted fields %+v", got)
	}
	st := state(h)
	if st.Outcome != page.OutcomeSuccess || st.Submitting {
		t.Fatalf("expected success, got %+v", st)
	}
	if !st.Fields.IsZero() {
		t.Fatalf("expected fields cleared, got %+v", st.Fields)
	}
	if h.Model().form.value(contact.FieldName) != "" || h.Model().form.value(contact.FieldMessage) != "" {
		t.Fatalf("expected widgets cleared")
	}
	if view := h.View(); !strings.Contains(view, msgSent) {
		t.Fatalf("expected success banner, got:\n%s", view)
	}
}

func TestFormFailureRetainsFields(t *testing.T) {
	sub := &instantSubmitter{err: errors.New("gateway timeout")}
	h := readyHarness(t, sub, nil)
	h.SendKey("c")
	fillValidForm(h)
	h.SendKey("ctrl+s")
	st := state(h)
	if st.Outcome != page.OutcomeError {
		t.Fatalf("expected error outcome, got %v", st.Outcome)
	}
	if st.Fields.Name != "Jo" || h.Model().form.value(contact.FieldName) != "Jo" {
		t.Fatalf("expected fields retained for retry")
	}
	if view := h.View(); !strings.Contains(view, msgSendFailed) {
		t.Fatalf("expected failure banner, got:\n%s", view)
	}

	sub.err = nil
	h.SendKey("ctrl+s")
	if state(h).Outcome != page.OutcomeSuccess || len(sub.subs) != 2 {
		t.Fatalf("expected retry to succeed")
	}
}

func TestFormEnterOnSubmitButton(t *testing.T) {
	sub := &instantSubmitter{}
	h := readyHarness(t, sub, nil)
	h.SendKey("c")
	fillValidForm(h)
	h.SendKey("tab")
	if !h.Model().form.onSubmit() {
		t.Fatalf("expected submit button focused")
	}
	h.SendKey("enter")
	if len(sub.subs) != 1 {
		t.Fatalf("expected enter on the button to submit")
	}
}

func TestFormShiftTabWrapsToButton(t *testing.T) {
	h := readyHarness(t, nil, nil)
	h.SendKey("c")
	h.SendKey("shift+tab")
	if !h.Model().form.onSubmit() {
		t.Fatalf("expected focus to wrap to the submit button")
	}
}

func TestFormEscKeepsValues(t *testing.T) {
	h := readyHarness(t, nil, nil)
	h.SendKey("c")
	h.Type("Jo")
	h.SendKey("esc")
	if h.Model().Mode() != ModePage {
		t.Fatalf("expected page mode")
	}
	h.SendKey("c")
	if got := h.Model().form.value(contact.FieldName); got != "Jo" {
		t.Fatalf("expected name retained, got %q", got)
	}
}

func TestFormEnterInMessageInsertsNewline(t *testing.T) {
	h := readyHarness(t, nil, nil)
	h.SendKey("c")
	h.Model().form.focusOn(4)
	h.Type("line one")
	h.SendKey("enter")
	h.Type("line two")
	if got := state(h).Fields.Message; got != "line one\nline two" {
		t.Fatalf("expected multi-line message, got %q", got)
	}
}
