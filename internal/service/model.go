package service

import "context"

// Model answers a single prompt. generation.Caller satisfies it; the call is
// expected to retry transport failures internally and return an error only
// once its own budget is spent.
type Model interface {
	Ask(ctx context.Context, prompt string) (string, error)
}
