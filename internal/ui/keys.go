package ui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Up       key.Binding
	Down     key.Binding
	PageUp   key.Binding
	PageDown key.Binding
	Top      key.Binding
	Bottom   key.Binding
	Menu     key.Binding
	Form     key.Binding
	Start    key.Binding
	Learn    key.Binding
	NextTab  key.Binding
	PrevTab  key.Binding
	Email    key.Binding
	Phone    key.Binding
	WhatsApp key.Binding
	Location key.Binding
	Help     key.Binding
	Dismiss  key.Binding
	Quit     key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Up:       key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:     key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		PageUp:   key.NewBinding(key.WithKeys("pgup", "b"), key.WithHelp("pgup/b", "page up")),
		PageDown: key.NewBinding(key.WithKeys("pgdown", " ", "f"), key.WithHelp("pgdn/space", "page down")),
		Top:      key.NewBinding(key.WithKeys("t", "home"), key.WithHelp("t", "back to top")),
		Bottom:   key.NewBinding(key.WithKeys("G", "end"), key.WithHelp("G", "bottom")),
		Menu:     key.NewBinding(key.WithKeys("tab", "m"), key.WithHelp("tab", "sections")),
		Form:     key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "contact form")),
		Start:    key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "get started")),
		Learn:    key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "learn more")),
		NextTab:  key.NewBinding(key.WithKeys("]"), key.WithHelp("]", "next service")),
		PrevTab:  key.NewBinding(key.WithKeys("["), key.WithHelp("[", "prev service")),
		Email:    key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "copy email")),
		Phone:    key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "copy phone")),
		WhatsApp: key.NewBinding(key.WithKeys("w"), key.WithHelp("w", "copy whatsapp")),
		Location: key.NewBinding(key.WithKeys("l"), key.WithHelp("l", "copy map")),
		Help:     key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "more keys")),
		Dismiss:  key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "dismiss")),
		Quit:     key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Menu, k.Form, k.Top, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.PageUp, k.PageDown, k.Top, k.Bottom},
		{k.Menu, k.Start, k.Learn, k.NextTab, k.PrevTab, k.Form},
		{k.Email, k.Phone, k.WhatsApp, k.Location},
		{k.Dismiss, k.Help, k.Quit},
	}
}
