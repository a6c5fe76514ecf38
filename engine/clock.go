package engine

import (
	"context"
	"time"
)

// TickerClock gates the frame loop at a fixed rate.
// Missed ticks are dropped by the underlying ticker rather than queued.
type TickerClock struct {
	ticker *time.Ticker
}

// NewTickerClock starts a clock ticking every interval
func NewTickerClock(interval time.Duration) *TickerClock {
	return &TickerClock{ticker: time.NewTicker(interval)}
}

// Wait blocks until the next tick boundary or until ctx is done
func (c *TickerClock) Wait(ctx context.Context) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-c.ticker.C:
		return nil
	}
}

// Stop releases the ticker
func (c *TickerClock) Stop() {
	c.ticker.Stop()
}
