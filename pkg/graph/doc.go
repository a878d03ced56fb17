// Package graph derives the journey tree and its read models. The Builder
// turns a journey list into a rooted tree with deterministic node IDs,
// Paths walks it into root-to-leaf sequences, and Statistics folds the
// result into aggregate statistics. All functions are pure; persistence
// and transport live behind the ports layer.
package graph
