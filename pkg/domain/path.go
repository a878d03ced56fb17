package domain

import "strings"

// PathSeparator joins node labels in a path description.
const PathSeparator = " → "

// Path is one root-to-leaf traversal of the graph. Nodes are borrowed
// pointers into the owning graph, never copies, so mutating a node is
// visible through every path that crosses it.
type Path struct {
	Nodes       []*Node `json:"-" yaml:"-"`
	Description string  `json:"description" yaml:"description"`
	Length      int     `json:"length" yaml:"length"`
}

// NewPath builds a path from a borrowed node sequence, deriving the
// description and length.
func NewPath(nodes []*Node) Path {
	labels := make([]string, len(nodes))
	for i, n := range nodes {
		labels[i] = n.Label
	}
	return Path{
		Nodes:       nodes,
		Description: strings.Join(labels, PathSeparator),
		Length:      len(nodes),
	}
}

// NodeIDs returns the IDs of the path's nodes in traversal order.
func (p Path) NodeIDs() []string {
	ids := make([]string, len(p.Nodes))
	for i, n := range p.Nodes {
		ids[i] = n.ID
	}
	return ids
}

// Leaf returns the terminal node of the path, or nil for an empty path.
func (p Path) Leaf() *Node {
	if len(p.Nodes) == 0 {
		return nil
	}
	return p.Nodes[len(p.Nodes)-1]
}
