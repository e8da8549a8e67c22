package mocks

import (
	"context"
	"sync"

	"github.com/phrazzld/factqa/internal/generation"
)

// Reply is one scripted completion result.
type Reply struct {
	Text string
	Err  error
}

// MockCompleter implements generation.Completer for testing.
// CompleteFn takes precedence; otherwise Replies are returned in order and the
// last one repeats once the script runs out.
type MockCompleter struct {
	// CompleteFn allows test cases to mock the Complete behavior
	CompleteFn func(ctx context.Context, req generation.Request) (string, error)

	// Replies is the scripted sequence of results
	Replies []Reply

	mu       sync.Mutex
	requests []generation.Request
}

// Complete implements the generation.Completer interface
func (m *MockCompleter) Complete(ctx context.Context, req generation.Request) (string, error) {
	m.mu.Lock()
	m.requests = append(m.requests, req)
	n := len(m.requests)
	m.mu.Unlock()

	if m.CompleteFn != nil {
		return m.CompleteFn(ctx, req)
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

// Calls returns how many times Complete was called.
func (m *MockCompleter) Calls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.requests)
}

// Requests returns a copy of every request received.
func (m *MockCompleter) Requests() []generation.Request {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]generation.Request, len(m.requests))
	copy(out, m.requests)
	return out
}

// NewMockCompleterFailingTimes creates a completer that fails with err the
// first k calls and then replies with text.
func NewMockCompleterFailingTimes(k int, err error, text string) *MockCompleter {
	replies := make([]Reply, 0, k+1)
	for i := 0; i < k; i++ {
		replies = append(replies, Reply{Err: err})
	}
	return &MockCompleter{Replies: append(replies, Reply{Text: text})}
}

// MockClientResolver implements generation.ClientResolver, always handing out
// Completer unless Err is set.
type MockClientResolver struct {
	Completer generation.Completer
	Err       error

	mu          sync.Mutex
	Credentials []string
}

// Client implements the generation.ClientResolver interface
func (m *MockClientResolver) Client(_ context.Context, credential string) (generation.Completer, error) {
	m.mu.Lock()
	m.Credentials = append(m.Credentials, credential)
	m.mu.Unlock()

	if m.Err != nil {
		return nil, m.Err
	}
	return m.Completer, nil
}
