package generation

import "context"

// Role tags a conversation message.
type Role string

// Conversation roles understood by every provider.
const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Message is one role-tagged entry of a conversation.
type Message struct {
	Role    Role
	Content string
}

// Request is a single completion request.
type Request struct {
	Model        string
	SystemPrompt string
	Messages     []Message
	Temperature  float64
	MaxTokens    int
}

// Completer issues one text-completion request and returns the generated text.
// Implementations must not retry; retries belong to the Caller.
type Completer interface {
	Complete(ctx context.Context, req Request) (string, error)
}

// ClientResolver hands out the Completer for a credential, creating it on first
// use and reusing it afterwards.
type ClientResolver interface {
	Client(ctx context.Context, credential string) (Completer, error)
}

// Limiter paces outgoing requests. *rate.Limiter satisfies it.
type Limiter interface {
	Wait(ctx context.Context) error
}
