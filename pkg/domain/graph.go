package domain

// Graph is the aggregate derived from a journey list. Root is the synthetic
// page node; Nodes holds every node in pre-order (root first) so consumers
// can iterate without re-walking the tree; Paths holds the root-to-leaf
// traversals in left-to-right order.
type Graph struct {
	Root  *Node   `json:"root" yaml:"root"`
	Nodes []*Node `json:"-" yaml:"-"`
	Paths []Path  `json:"paths" yaml:"paths"`
}

// NodeCount returns the number of nodes in the graph, root included.
func (g *Graph) NodeCount() int {
	return len(g.Nodes)
}

// EdgeCount returns the number of parent-child edges. In a rooted tree
// this is always one less than the node count, but it is computed from
// the children lists so partially built graphs stay honest.
func (g *Graph) EdgeCount() int {
	total := 0
	for _, n := range g.Nodes {
		total += len(n.Children)
	}
	return total
}

// FindNode returns the node with the given ID, or nil when absent.
func (g *Graph) FindNode(id string) *Node {
	for _, n := range g.Nodes {
		if n.ID == id {
			return n
		}
	}
	return nil
}
