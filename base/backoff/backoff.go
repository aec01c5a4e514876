package backoff

import (
	"context"
	"math"
	"time"
)

type Strategy interface {
	Duration(count int, start time.Duration) time.Duration
}

// Backoff sleeps an increasing amount of time on each call until Reset
type Backoff struct {
	start    time.Duration
	limit    time.Duration
	count    int
	strategy Strategy
}

func New(strategy Strategy, start, limit time.Duration) *Backoff {
	return &Backoff{strategy: strategy, start: start, limit: limit}
}

func (b *Backoff) Reset() {
	b.count = 0
}

// Next returns the duration the following Backoff call will sleep
func (b *Backoff) Next() time.Duration {
	d := b.strategy.Duration(b.count, b.start)
	if b.limit > 0 && d > b.limit {
		d = b.limit
	}
	return d
}

// Backoff blocks for Next() or until ctx is done
func (b *Backoff) Backoff(ctx context.Context) error {
	d := b.Next()
	b.count++
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

type exponential struct{}

func (exponential) Duration(count int, start time.Duration) time.Duration {
	return time.Duration(int64(math.Pow(2, float64(count)))) * start
}

func NewExponential(start, limit time.Duration) *Backoff {
	return New(exponential{}, start, limit)
}

type linear struct{}

func (linear) Duration(count int, start time.Duration) time.Duration {
	return time.Duration(count+1) * start
}

func NewLinear(start, limit time.Duration) *Backoff {
	return New(linear{}, start, limit)
}

type constant struct{}

func (constant) Duration(_ int, start time.Duration) time.Duration {
	return start
}

func NewConstant(interval time.Duration) *Backoff {
	return New(constant{}, interval, 0)
}
