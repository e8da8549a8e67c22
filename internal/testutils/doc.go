// Package testutils provides helpers shared by tests across the module:
// an in-memory slog handler for asserting on log output and small file
// fixtures.
package testutils
