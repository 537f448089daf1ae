package searcher

import (
	"context"
	"time"
)

// budget stops a search once its deadline passes or its context is done.
// It is polled at expansion boundaries and never interrupts a call in flight.
type budget struct {
	ctx      context.Context
	deadline time.Time // Zero when unbounded
	stopped  bool
}

func newBudget(ctx context.Context, duration time.Duration) *budget {
	b := &budget{ctx: ctx}
	if duration > 0 {
		b.deadline = time.Now().Add(duration)
	}
	if deadline, ok := ctx.Deadline(); ok && (b.deadline.IsZero() || deadline.Before(b.deadline)) {
		b.deadline = deadline
	}
	return b
}

func (b *budget) Stop() bool {
	if b.stopped {
		return true
	}
	select {
	case <-b.ctx.Done():
		b.stopped = true
	default:
		b.stopped = !b.deadline.IsZero() && !time.Now().Before(b.deadline)
	}
	return b.stopped
}
