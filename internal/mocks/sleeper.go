package mocks

import (
	"context"
	"time"
)

// MockSleeper implements generation.Sleeper without waiting and records every
// requested delay.
type MockSleeper struct {
	Delays []time.Duration
	// Err, when set, is returned from every Sleep call
	Err error
}

// Sleep implements the generation.Sleeper interface
func (m *MockSleeper) Sleep(_ context.Context, d time.Duration) error {
	m.Delays = append(m.Delays, d)
	return m.Err
}
