// Package pace spaces out batch submissions to stay inside the
// provider's call-rate policy.
package pace

import (
	"context"
	"time"
)

// Pacer enforces a minimum wall-clock gap between the completion of one
// call and the start of the next. Callers bracket each call with Wait
// and Done: Wait returns immediately until the first Done, then blocks
// until the configured delay has elapsed since the most recent Done —
// regardless of how that call turned out.
type Pacer struct {
	delay time.Duration
	last  time.Time

	// now and sleep are swappable for tests.
	now   func() time.Time
	sleep func(ctx context.Context, d time.Duration) error
}

func New(delay time.Duration) *Pacer {
	return &Pacer{
		delay: delay,
		now:   time.Now,
		sleep: sleepCtx,
	}
}

// Wait blocks until the next submission slot opens or ctx is done.
func (p *Pacer) Wait(ctx context.Context) error {
	if p.delay <= 0 || p.last.IsZero() {
		return ctx.Err()
	}
	remaining := p.delay - p.now().Sub(p.last)
	if remaining <= 0 {
		return ctx.Err()
	}
	return p.sleep(ctx, remaining)
}

// Done marks the completion of a call; the next Wait measures from here.
func (p *Pacer) Done() {
	p.last = p.now()
}

func sleepCtx(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
