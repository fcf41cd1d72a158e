package sim

import (
	"context"
	"time"
)

// Scheduler blocks until the next frame is due.
type Scheduler interface {
	Next(ctx context.Context) error
}

// Immediate never waits. Headless runs and tests use it.
type Immediate struct{}

func (Immediate) Next(ctx context.Context) error {
	return ctx.Err()
}

// Ticker paces frames against the wall clock.
type Ticker struct {
	t *time.Ticker
}

func NewTicker(fps int) *Ticker {
	if fps <= 0 {
		fps = 60
	}
	return &Ticker{t: time.NewTicker(time.Second / time.Duration(fps))}
}

func (t *Ticker) Next(ctx context.Context) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.t.C:
		return nil
	}
}

func (t *Ticker) Stop() { t.t.Stop() }
