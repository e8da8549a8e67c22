// Package service implements the dialog pipeline use cases: turning a fact
// into a question, translating a question/answer pair, and orchestrating both
// across every fact and target language.
//
// Services talk to the language model only through the Model interface, which
// generation.Caller satisfies. Failures that exhaust a retry budget skip the
// current fact or language variant; only context cancellation stops a run.
package service
