package state

import (
	"reflect"
	"testing"
)

func newTestList(labels ...string) *NavList {
	items := make([]Item, len(labels))
	for i, label := range labels {
		items[i] = Item{ID: label, Label: label}
	}
	return NewNavList(items)
}

func TestSetFilterTracksCursorAndRestoresPosition(t *testing.T) {
	l := newTestList("Home", "About", "Services", "Contact")
	l.Cursor = 2
	l.SetFilter("cont", len("cont"))

	if len(l.Items) != 1 || l.Items[0].ID != "Contact" {
		t.Fatalf("expected only Contact, got %#v", l.Items)
	}
	if l.Cursor != 0 {
		t.Fatalf("expected filtered cursor at 0, got %d", l.Cursor)
	}

	l.SetFilter("", 0)
	if l.Cursor != 2 {
		t.Fatalf("expected cursor restored to 2, got %d", l.Cursor)
	}
	if l.LastCursor != -1 {
		t.Fatalf("expected last cursor reset, got %d", l.LastCursor)
	}
}

func TestInsertAndDeleteFilterText(t *testing.T) {
	l := newTestList("Internship")
	if !l.InsertFilterText("it") {
		t.Fatal("expected insert to succeed")
	}
	l.FilterCursor = 1
	if !l.InsertFilterText("n") {
		t.Fatal("expected insert in middle to succeed")
	}
	if l.Filter != "int" || l.FilterCursor != 2 {
		t.Fatalf("unexpected filter state %q/%d", l.Filter, l.FilterCursor)
	}
	if !l.DeleteFilterRuneBackward() || l.Filter != "it" {
		t.Fatalf("expected rune deletion, got %q", l.Filter)
	}
	l.SetFilter("why us", len("why us"))
	if !l.DeleteFilterWordBackward() || l.Filter != "why " {
		t.Fatalf("expected word deletion, got %q", l.Filter)
	}
	if l.InsertFilterText("") {
		t.Fatal("expected empty insert to be rejected")
	}
}

func TestFilterItemsFuzzyAndSubstring(t *testing.T) {
	items := []Item{{ID: "faq", Label: "FAQ"}, {ID: "whyus", Label: "Why Us"}, {ID: "portfolio", Label: "Portfolio"}}
	got := FilterItems(items, "pfl")
	if !reflect.DeepEqual(got, []Item{{ID: "portfolio", Label: "Portfolio"}}) {
		t.Fatalf("expected fuzzy match on portfolio, got %#v", got)
	}
	got = FilterItems(items, "whyus")
	if len(got) != 1 || got[0].ID != "whyus" {
		t.Fatalf("expected id fallback match, got %#v", got)
	}
	if got := FilterItems(items, "zzz"); len(got) != 0 {
		t.Fatalf("expected no matches, got %#v", got)
	}
	if got := FilterItems(items, "  "); len(got) != len(items) {
		t.Fatalf("expected blank filter to keep all items")
	}
}

func TestBestMatchIndexPrefersPrefix(t *testing.T) {
	items := []Item{{ID: "services", Label: "Services"}, {ID: "speed", Label: "Speed"}}
	if idx := BestMatchIndex(items, "sp"); idx != 1 {
		t.Fatalf("expected prefix match on Speed, got %d", idx)
	}
	if idx := BestMatchIndex(nil, "x"); idx != -1 {
		t.Fatalf("expected -1 for empty items, got %d", idx)
	}
}

func TestCursorMovementWraps(t *testing.T) {
	l := newTestList("a", "b", "c")
	if !l.MoveCursorUp() || l.Cursor != 2 {
		t.Fatalf("expected wrap to last, got %d", l.Cursor)
	}
	if !l.MoveCursorDown() || l.Cursor != 0 {
		t.Fatalf("expected wrap to first, got %d", l.Cursor)
	}
	l.MoveCursorEnd()
	if l.Cursor != 2 {
		t.Fatalf("expected end, got %d", l.Cursor)
	}
	l.MoveCursorHome()
	if l.Cursor != 0 {
		t.Fatalf("expected home, got %d", l.Cursor)
	}
	empty := newTestList()
	if empty.MoveCursorDown() || empty.MoveCursorUp() {
		t.Fatalf("expected no movement in empty list")
	}
}

func TestSelectedFocusAndReset(t *testing.T) {
	l := newTestList("Home", "FAQ")
	if !l.Focus("FAQ") {
		t.Fatalf("expected focus on FAQ")
	}
	item, ok := l.Selected()
	if !ok || item.ID != "FAQ" {
		t.Fatalf("unexpected selection %#v", item)
	}
	l.SetFilter("zzz", 3)
	if _, ok := l.Selected(); ok {
		t.Fatalf("expected no selection with no matches")
	}
	l.Reset()
	if len(l.Items) != 2 || l.Filter != "" {
		t.Fatalf("expected reset list")
	}
}
