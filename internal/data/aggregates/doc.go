// Package aggregates contains infrastructure implementations of domain aggregate contracts.
//
// Implementations compose the table repos from internal/data/repos and own the
// transaction boundary for every write that must land atomically.
package aggregates
