package ui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/seawavessolutions/seawaves-site/internal/logging"
	"github.com/seawavessolutions/seawaves-site/internal/logging/events"
	"github.com/seawavessolutions/seawaves-site/internal/site"
	"github.com/seawavessolutions/seawaves-site/internal/ui/command"
)

// copyLink puts the outbound link of kind on the clipboard.
func (m *Model) copyLink(kind site.LinkKind) tea.Cmd {
	link, ok := m.content.Contact.Link(kind)
	if !ok {
		m.setError(fmt.Sprintf("No %s link configured", kind))
		return nil
	}
	events.Link.Copy(string(kind), link.URL)
	write := m.clipboard
	return m.bus.Execute(command.Request{
		ID:    string(kind),
		Label: link.Label,
		Handler: func() error {
			return write(link.URL)
		},
	})
}

func (m *Model) handleCommandResultMsg(msg tea.Msg) tea.Cmd {
	result, ok := msg.(command.ResultMsg)
	if !ok {
		return nil
	}
	if result.Err != nil {
		logging.Errorf("copy %s link: %v", result.ID, result.Err)
		events.Link.Error(result.ID, result.Err)
		m.setError(fmt.Sprintf("Could not copy %s link: %v", result.ID, result.Err))
		return nil
	}
	if link, ok := m.content.Contact.Link(site.LinkKind(result.ID)); ok {
		m.setInfo(fmt.Sprintf("Copied %s: %s", result.Label, link.URL))
		return nil
	}
	m.setInfo(fmt.Sprintf("Copied %s", result.Label))
	return nil
}
