// Package registry caches model clients per credential. A client is created
// lazily on the first request for a credential and reused for the lifetime of
// the Registry. Credentials are keyed by a BLAKE2b fingerprint so raw API keys
// are never retained as map keys or written to logs.
package registry

import (
	"context"
	"encoding/hex"
	"errors"
	"fmt"
	"log/slog"

	"golang.org/x/crypto/blake2b"

	"github.com/phrazzld/factqa/internal/generation"
)

// DefaultKey identifies the client created for an empty credential, letting the
// provider SDK fall back to its own environment lookup.
const DefaultKey = "default"

// Factory builds a new client for a credential.
type Factory func(ctx context.Context, credential string) (generation.Completer, error)

// Registry implements generation.ClientResolver. It is not safe for concurrent
// use; the pipeline is sequential.
type Registry struct {
	factory Factory
	clients map[string]generation.Completer
	logger  *slog.Logger
}

// New creates an empty Registry that builds clients with factory.
func New(factory Factory, logger *slog.Logger) (*Registry, error) {
	if factory == nil {
		return nil, errors.New("client factory cannot be nil")
	}
	if logger == nil {
		return nil, errors.New("logger cannot be nil")
	}
	return &Registry{
		factory: factory,
		clients: make(map[string]generation.Completer),
		logger:  logger.With("component", "client_registry"),
	}, nil
}

// Client returns the cached client for credential, creating it on first use.
// A failed creation is not cached, so the next call tries again.
func (r *Registry) Client(ctx context.Context, credential string) (generation.Completer, error) {
	key := Fingerprint(credential)
	if client, ok := r.clients[key]; ok {
		return client, nil
	}

	client, err := r.factory(ctx, credential)
	if err != nil {
		return nil, fmt.Errorf("failed to create client: %w", err)
	}

	r.clients[key] = client
	r.logger.DebugContext(ctx, "created model client", "credential", key)
	return client, nil
}

// Len returns the number of cached clients.
func (r *Registry) Len() int {
	return len(r.clients)
}

// Fingerprint returns a short, non-reversible identifier for credential, or
// DefaultKey when it is empty.
func Fingerprint(credential string) string {
	if credential == "" {
		return DefaultKey
	}
	sum := blake2b.Sum256([]byte(credential))
	return hex.EncodeToString(sum[:8])
}
