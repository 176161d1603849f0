// Package pacing provides the delay policies used between provider calls.
package pacing

import (
	"context"
	"time"
)

const (
	// Google rejects a next_page_token that is used too soon after it was issued.
	DefaultPageTokenDelay = 2 * time.Second
	DefaultDetailDelay    = 200 * time.Millisecond
)

// Fixed waits a constant duration at each suspension point.
type Fixed struct {
	Detail    time.Duration
	PageToken time.Duration
}

func (f Fixed) AfterDetail(ctx context.Context) error {
	return sleep(ctx, f.Detail)
}

func (f Fixed) BeforeNextPage(ctx context.Context) error {
	return sleep(ctx, f.PageToken)
}

// None never waits. Used by tests and deterministic replays.
type None struct{}

func (None) AfterDetail(ctx context.Context) error    { return ctx.Err() }
func (None) BeforeNextPage(ctx context.Context) error { return ctx.Err() }

// sleep blocks for d while respecting context cancellation.
func sleep(ctx context.Context, d time.Duration) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if d <= 0 {
		return nil
	}

	timer := time.NewTimer(d)
	select {
	case <-ctx.Done():
		timer.Stop()
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
