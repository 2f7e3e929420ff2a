// Package github lists repository directories through the GitHub contents
// API.
//
// The client only needs one call: fetch the entries under a path and return
// their names, types, and raw download URLs. Failures are tagged with the
// services error markers so the catalog can log a useful hint and carry on
// with the local sources.
package github
