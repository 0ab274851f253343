// Package app wires application dependencies for the CLI.
//
// It resolves the immutable per-invocation Config and builds the
// session, network and client components from it, exposing them via
// the Wire struct for commands to use.
package app
