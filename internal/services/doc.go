// Package services defines shared utilities consumed by the catalog passes
// and the external integrations they call.
//
// Key responsibilities:
//   - Context helpers that stamp the run identifier and the active catalog
//     source so log lines from nested calls can be correlated.
//   - Structured error markers plus the Wrap helper that tag failures as
//     configuration, validation, timeout, or transient problems.
//
// Integrations live in subpackages (see services/github) and report their
// failures through Wrap so callers can branch with errors.Is.
package services
