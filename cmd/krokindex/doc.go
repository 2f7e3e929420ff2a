// Package main hosts the krokindex CLI entrypoint and command graph.
//
// The Cobra-based command tree builds the exam catalog, summarizes an
// existing artifact, and scaffolds configuration. It centralizes configuration
// resolution and logger setup so subcommands only deal with their own flags
// and output.
//
// Keep this package lean: behaviour belongs in the internal packages and is
// surfaced here through commands or flags.
package main
