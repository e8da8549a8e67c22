package generation

import (
	"context"
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestExponentialBackoffDelay(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name     string
		policy   ExponentialBackoff
		failures int
		expected time.Duration
	}{
		{"no failures", ExponentialBackoff{Initial: time.Second}, 0, 0},
		{"first failure", ExponentialBackoff{Initial: time.Second}, 1, time.Second},
		{"second failure", ExponentialBackoff{Initial: time.Second}, 2, 2 * time.Second},
		{"tenth failure", ExponentialBackoff{Initial: time.Second}, 10, 512 * time.Second},
		{"capped", ExponentialBackoff{Initial: time.Second, Max: 5 * time.Second}, 4, 5 * time.Second},
		{"below cap", ExponentialBackoff{Initial: time.Second, Max: 5 * time.Second}, 3, 4 * time.Second},
		{"saturates", ExponentialBackoff{Initial: time.Second}, 200, time.Duration(math.MaxInt64)},
		{"zero initial", ExponentialBackoff{}, 3, 0},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.expected, tc.policy.Delay(tc.failures))
		})
	}
}

func TestTimerSleeper(t *testing.T) {
	t.Parallel()

	assert.NoError(t, TimerSleeper{}.Sleep(context.Background(), time.Millisecond))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.ErrorIs(t, TimerSleeper{}.Sleep(ctx, time.Hour), context.Canceled)
}
