// Package preflight provides readiness checks for the filesystem paths and
// the remote listing a catalog build depends on.
//
// The CLI "krokindex check" command runs RunAll and renders the results.
// Source roots are reported as optional: a build tolerates a missing root,
// but the operator usually wants to know about it before publishing.
//
// Each check is gated by its config toggle -- a disabled remote is skipped.
package preflight
