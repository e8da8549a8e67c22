// Package mocks provides centralized mock implementations for testing.
//
// This package contains mock implementations of the interfaces used throughout
// the pipeline (completers, client resolvers, sleepers and the single-prompt
// model used by the services), so tests across packages script model replies
// the same way instead of defining inline mocks.
//
// Usage:
//
//	completer := mocks.NewMockCompleterFailingTimes(2, errors.New("overloaded"), "ok")
//	resolver := &mocks.MockClientResolver{Completer: completer}
//	sleeper := &mocks.MockSleeper{}
//
// When adding a new mock to this package:
//  1. Create a new file named after the interface being mocked
//  2. Implement the mock struct with function fields for each interface method
//  3. Record calls so tests can assert on them
package mocks
