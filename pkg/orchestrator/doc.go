// Package orchestrator wires the loader → class lookup → parameter list →
// renderer pipeline behind a single entry point.
package orchestrator
