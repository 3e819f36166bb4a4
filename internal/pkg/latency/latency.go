// Package latency injects an artificial delay in front of store operations so
// front-end loading states can be exercised against a local backend.
package latency

import (
	"context"
	"time"
)

// Simulator delays callers by a fixed duration. The zero value does not delay.
type Simulator struct {
	delay time.Duration
}

func New(delay time.Duration) Simulator {
	if delay < 0 {
		delay = 0
	}
	return Simulator{delay: delay}
}

// Delay returns the configured delay.
func (s Simulator) Delay() time.Duration { return s.delay }

// Wait blocks for the configured delay or until ctx is done, whichever comes
// first. It returns ctx.Err() when the context ended the wait.
func (s Simulator) Wait(ctx context.Context) error {
	if s.delay <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(s.delay)
	defer t.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
