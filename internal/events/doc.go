// Package events carries progress notifications out of the dialog pipeline.
//
// The orchestrator emits an Event for every step that matters to an operator
// (a fact started or skipped, a pair emitted, a translation skipped) without
// knowing who listens. Handlers registered on an InMemoryEmitter turn those
// events into progress logs (LogHandler) or an end-of-run tally (Summary).
// Handler failures are logged and reported but never stop a run.
package events
