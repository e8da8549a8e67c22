package mocks

import (
	"context"
	"strings"
	"sync"
)

// MockModel implements the single-prompt model interface used by the services.
// AskFn takes precedence; otherwise Replies are returned in order and the last
// one repeats once the script runs out.
type MockModel struct {
	AskFn   func(ctx context.Context, prompt string) (string, error)
	Replies []Reply

	mu      sync.Mutex
	Prompts []string
}

// Ask records prompt and returns the next scripted reply.
func (m *MockModel) Ask(ctx context.Context, prompt string) (string, error) {
	m.mu.Lock()
	m.Prompts = append(m.Prompts, prompt)
	n := len(m.Prompts)
	m.mu.Unlock()

	if m.AskFn != nil {
		return m.AskFn(ctx, prompt)
	}
	if len(m.Replies) == 0 {
		return "", nil
	}
	if n > len(m.Replies) {
		n = len(m.Replies)
	}
	r := m.Replies[n-1]
	return r.Text, r.Err
}

// Calls returns how many prompts were asked.
func (m *MockModel) Calls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.Prompts)
}

// CallsContaining counts prompts that contain substr.
func (m *MockModel) CallsContaining(substr string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	count := 0
	for _, p := range m.Prompts {
		if strings.Contains(p, substr) {
			count++
		}
	}
	return count
}
