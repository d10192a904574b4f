package contact

import (
	"context"
	"errors"
	"time"
)

// DefaultSimulatedDelay stands in for the round trip of a real submission.
const DefaultSimulatedDelay = 2000 * time.Millisecond

// ErrSimulatedFailure is returned by a Simulated submitter configured to fail.
var ErrSimulatedFailure = errors.New("simulated submission failure")

// Submitter delivers a contact submission. A nil error is the success outcome.
type Submitter interface {
	Submit(ctx context.Context, sub Submission) error
}

// SubmitterFunc adapts a function to Submitter.
type SubmitterFunc func(ctx context.Context, sub Submission) error

func (f SubmitterFunc) Submit(ctx context.Context, sub Submission) error {
	return f(ctx, sub)
}

// Simulated waits Delay and then succeeds, or fails when Fail is set.
type Simulated struct {
	Delay time.Duration
	Fail  bool
}

// NewSimulated returns a simulated submitter with the default delay.
func NewSimulated(fail bool) *Simulated {
	return &Simulated{Delay: DefaultSimulatedDelay, Fail: fail}
}

func (s *Simulated) Submit(ctx context.Context, _ Submission) error {
	if s.Delay > 0 {
		timer := time.NewTimer(s.Delay)
		defer timer.Stop()
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-timer.C:
		}
	}
	if s.Fail {
		return ErrSimulatedFailure
	}
	return nil
}
