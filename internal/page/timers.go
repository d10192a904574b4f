package page

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TimerKind identifies one class of deferred task.
type TimerKind int

const (
	TimerLoading TimerKind = iota
	TimerPopup
	TimerDebounce
	TimerSuppress
)

func (k TimerKind) String() string {
	switch k {
	case TimerLoading:
		return "loading"
	case TimerPopup:
		return "popup"
	case TimerDebounce:
		return "debounce"
	case TimerSuppress:
		return "suppress"
	}
	return "unknown"
}

// TimerMsg is delivered when a scheduled timer expires.
type TimerMsg struct {
	Kind TimerKind
	Seq  uint64
}

// TickFunc schedules fn after d. tea.Tick is the production implementation.
type TickFunc func(d time.Duration, fn func(time.Time) tea.Msg) tea.Cmd

// Timers hands out cancellable deferred tasks, at most one live task per kind.
type Timers struct {
	seq     map[TimerKind]uint64
	armed   map[TimerKind]bool
	stopped bool
	tick    TickFunc
}

// NewTimers returns an empty timer set backed by tea.Tick.
func NewTimers() *Timers {
	return NewTimersWith(tea.Tick)
}

// NewTimersWith returns an empty timer set that schedules through tick.
func NewTimersWith(tick TickFunc) *Timers {
	if tick == nil {
		tick = tea.Tick
	}
	return &Timers{
		seq:   make(map[TimerKind]uint64),
		armed: make(map[TimerKind]bool),
		tick:  tick,
	}
}

// Schedule arms kind to fire after d, superseding any pending task of the
// same kind. It returns nil once the set is stopped.
func (t *Timers) Schedule(kind TimerKind, d time.Duration) tea.Cmd {
	if t.stopped {
		return nil
	}
	t.seq[kind]++
	t.armed[kind] = true
	seq := t.seq[kind]
	return t.tick(d, func(time.Time) tea.Msg {
		return TimerMsg{Kind: kind, Seq: seq}
	})
}

// Cancel disarms kind. A tick already in flight is dropped when it arrives.
func (t *Timers) Cancel(kind TimerKind) {
	t.seq[kind]++
	t.armed[kind] = false
}

// Pending reports whether kind is armed.
func (t *Timers) Pending(kind TimerKind) bool {
	return !t.stopped && t.armed[kind]
}

// Seq returns the current sequence number for kind.
func (t *Timers) Seq(kind TimerKind) uint64 {
	return t.seq[kind]
}

// Live returns the message the armed task of kind will deliver.
func (t *Timers) Live(kind TimerKind) (TimerMsg, bool) {
	if !t.Pending(kind) {
		return TimerMsg{}, false
	}
	return TimerMsg{Kind: kind, Seq: t.seq[kind]}, true
}

// Accept reports whether msg is the live tick for its kind and consumes it,
// so each scheduled task fires at most once.
func (t *Timers) Accept(msg TimerMsg) bool {
	if t.stopped || !t.armed[msg.Kind] || t.seq[msg.Kind] != msg.Seq {
		return false
	}
	t.armed[msg.Kind] = false
	return true
}

// Stop disarms every kind and refuses further scheduling.
func (t *Timers) Stop() {
	t.stopped = true
	for kind := range t.armed {
		t.armed[kind] = false
	}
}

// Stopped reports whether Stop has been called.
func (t *Timers) Stopped() bool {
	return t.stopped
}
