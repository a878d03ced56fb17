/*
Package domain contains the core domain models for the journeymap engine.

It defines the input side (Journey, Step) supplied by an external detection
collaborator, and the derived side (Node, Graph, Path, Stats) produced by the
graph builder. This package is kept pure and free of external dependencies
like I/O or persistence, following Hexagonal Architecture principles.

# Key Entities

  - Journey: An externally detected, ordered sequence of user actions.
  - Node: A vertex in the derived tree, tagged as Page (the root) or Action.
  - Graph: The aggregate built from a journey list (root + flat node list).
  - Path: A non-owning root-to-leaf node sequence, recomputed on demand.
*/
package domain
