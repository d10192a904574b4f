package command

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/seawavessolutions/seawaves-site/internal/logging/events"
)

// Handler performs one side effect outside the event loop.
type Handler func() error

// Request encapsulates an action invocation.
type Request struct {
	ID      string
	Label   string
	Handler Handler
}

// ResultMsg reports the outcome of an executed Request.
type ResultMsg struct {
	ID    string
	Label string
	Err   error
}

// Bus coordinates the execution of side-effecting actions such as clipboard
// writes.
type Bus struct{}

// New initialises a command bus instance.
func New() *Bus {
	return &Bus{}
}

// Execute wraps the request into a Bubble Tea command while emitting trace logs.
func (b *Bus) Execute(req Request) tea.Cmd {
	events.Command.Queue(req.ID, req.Label)
	return func() tea.Msg {
		if req.Handler == nil {
			events.Command.Skip(req.ID, req.Label)
			return nil
		}
		err := req.Handler()
		events.Command.Result(req.ID, req.Label, err)
		return ResultMsg{ID: req.ID, Label: req.Label, Err: err}
	}
}
