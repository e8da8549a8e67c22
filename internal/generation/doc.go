// Package generation is the boundary between the dataset pipeline and external
// AI/LLM text-completion services (Anthropic, Gemini).
//
// A Completer issues exactly one completion request. The Caller wraps a
// Completer obtained from a ClientResolver with the retry contract the pipeline
// relies on: every failure is retried after an exponential backoff delay until
// the attempt budget is spent, and exhaustion is reported as a *CallError rather
// than aborting the process. Backoff delays come from a BackoffPolicy and are
// waited out through a Sleeper so tests never sleep for real.
package generation
