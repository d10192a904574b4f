package app

import (
	"errors"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/seawavessolutions/seawaves-site/internal/contact"
	"github.com/seawavessolutions/seawaves-site/internal/logging/events"
	"github.com/seawavessolutions/seawaves-site/internal/site"
	"github.com/seawavessolutions/seawaves-site/internal/ui"
)

// Config describes user-provided application options.
type Config struct {
	ContentPath     string
	Width           int
	Height          int
	ShowFooter      bool
	ContactEndpoint string
	ContactTimeout  time.Duration
	SimulateFailure bool
	DisablePopup    bool
}

// Run bootstraps and executes the Bubble Tea program.
func Run(cfg Config) error {
	model, err := NewModel(cfg)
	if err != nil {
		return err
	}
	defer model.Teardown()
	program := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseCellMotion())
	_, err = program.Run()
	if errors.Is(err, tea.ErrProgramKilled) {
		events.App.Stop("killed")
		return nil
	}
	if err != nil {
		events.App.Stop(err.Error())
		return err
	}
	events.App.Stop("quit")
	return nil
}

// NewModel loads the site content and wires the submitter into a UI model.
func NewModel(cfg Config) (*ui.Model, error) {
	content, err := site.Load(cfg.ContentPath)
	if err != nil {
		return nil, fmt.Errorf("load content: %w", err)
	}
	return ui.NewModel(ui.Options{
		Content:      content,
		Submitter:    NewSubmitter(cfg),
		Width:        cfg.Width,
		Height:       cfg.Height,
		ShowFooter:   cfg.ShowFooter,
		DisablePopup: cfg.DisablePopup,
	}), nil
}

// NewSubmitter posts to the configured endpoint, or simulates the round trip
// when none is set.
func NewSubmitter(cfg Config) contact.Submitter {
	if endpoint := strings.TrimSpace(cfg.ContactEndpoint); endpoint != "" {
		return contact.NewHTTP(endpoint, cfg.ContactTimeout)
	}
	return contact.NewSimulated(cfg.SimulateFailure)
}
