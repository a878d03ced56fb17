// Package export projects a journey graph into visualization formats: a
// generic node/edge list for third-party renderers, Mermaid flowchart
// syntax, and Graphviz DOT. All projections are read-only views over the
// graph and never mutate it.
package export
