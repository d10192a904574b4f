package state

import "strings"

// Item is one entry in the section jump list.
type Item struct {
	ID    string
	Label string
}

// NavList holds the section jump list: the full item set, the filter query
// typed so far, and the cursor into the filtered items.
type NavList struct {
	Items        []Item
	Full         []Item
	Filter       string
	FilterCursor int
	Cursor       int
	LastCursor   int
}

// NewNavList builds a list over items with the cursor on the first entry.
func NewNavList(items []Item) *NavList {
	l := &NavList{LastCursor: -1}
	l.Full = CloneItems(items)
	l.applyFilter()
	return l
}

// CloneItems produces a shallow copy of items.
func CloneItems(items []Item) []Item {
	dup := make([]Item, len(items))
	copy(dup, items)
	return dup
}

// IndexOf returns the filtered index of id, or -1.
func (l *NavList) IndexOf(id string) int {
	for i, item := range l.Items {
		if item.ID == id {
			return i
		}
	}
	return -1
}

// Selected returns the item under the cursor.
func (l *NavList) Selected() (Item, bool) {
	if l.Cursor < 0 || l.Cursor >= len(l.Items) {
		return Item{}, false
	}
	return l.Items[l.Cursor], true
}

// Focus places the cursor on id when it is visible.
func (l *NavList) Focus(id string) bool {
	if idx := l.IndexOf(id); idx >= 0 {
		l.Cursor = idx
		return true
	}
	return false
}

// Reset clears the filter and shows every item again.
func (l *NavList) Reset() {
	l.Filter = ""
	l.FilterCursor = 0
	l.LastCursor = -1
	l.applyFilter()
}

// Query returns the trimmed filter.
func (l *NavList) Query() string {
	return strings.TrimSpace(l.Filter)
}
