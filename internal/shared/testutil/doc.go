// Package testutil provides test helpers shared across packages: a
// buffered slog handler for asserting log output and sensor CSV fixtures.
package testutil
