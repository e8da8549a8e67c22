package generation

import (
	"context"
	"math"
	"time"
)

// BackoffPolicy maps the number of failed attempts so far (starting at 1) to
// the delay before the next attempt.
type BackoffPolicy interface {
	Delay(failures int) time.Duration
}

// ExponentialBackoff doubles the delay after every failure, starting at
// Initial. A positive Max caps each delay; zero leaves growth unbounded (the
// delay still saturates at the largest time.Duration instead of overflowing).
type ExponentialBackoff struct {
	Initial time.Duration
	Max     time.Duration
}

// Delay returns Initial * 2^(failures-1), capped by Max when set.
func (b ExponentialBackoff) Delay(failures int) time.Duration {
	if failures < 1 || b.Initial <= 0 {
		return 0
	}

	delay := b.Initial
	for i := 1; i < failures; i++ {
		if delay > math.MaxInt64/2 {
			delay = math.MaxInt64
			break
		}
		delay *= 2
		if b.Max > 0 && delay >= b.Max {
			break
		}
	}

	if b.Max > 0 && delay > b.Max {
		return b.Max
	}
	return delay
}

// Sleeper blocks for a backoff delay.
type Sleeper interface {
	Sleep(ctx context.Context, d time.Duration) error
}

// TimerSleeper sleeps on a real timer and wakes early when ctx is done.
type TimerSleeper struct{}

// Sleep waits for d or until ctx is done, whichever comes first.
func (TimerSleeper) Sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}

	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
