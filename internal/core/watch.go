package core

import (
	"context"
	"slices"
	"time"
)

// DefaultWatchInterval is the poll interval used when none is configured.
const DefaultWatchInterval = time.Second

// WaitForState polls get until it returns a state contained in terminal and
// returns that state. Between polls it sleeps on a timer that is interrupted
// by context cancellation, so a waiting invocation never pins a goroutine in
// an uninterruptible sleep. A maxWait of zero means no upper bound; when a
// positive maxWait elapses before a terminal state is observed,
// ErrWatchTimeout is returned. Cancellation surfaces as the context's error,
// never as a state.
func WaitForState[S comparable](ctx context.Context, get func(context.Context) (S, error), terminal []S, interval, maxWait time.Duration) (S, error) {
	var zero S
	if interval <= 0 {
		interval = DefaultWatchInterval
	}

	var deadline <-chan time.Time
	if maxWait > 0 {
		t := time.NewTimer(maxWait)
		defer t.Stop()
		deadline = t.C
	}

	for {
		state, err := get(ctx)
		if err != nil {
			return zero, err
		}
		if slices.Contains(terminal, state) {
			return state, nil
		}

		pause := time.NewTimer(interval)
		select {
		case <-ctx.Done():
			pause.Stop()
			return zero, ctx.Err()
		case <-deadline:
			pause.Stop()
			return zero, ErrWatchTimeout
		case <-pause.C:
		}
	}
}
