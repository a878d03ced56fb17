package graph

import "github.com/rinasm/journeymap/pkg/domain"

type pathFrame struct {
	node  *domain.Node
	trail []*domain.Node
}

// Paths extracts every root-to-leaf traversal in left-to-right leaf order.
// The walk is iterative; each frame carries its own trail copy so sibling
// branches never alias each other's slices. A childless root produces a
// single root-only path.
func Paths(root *domain.Node) []domain.Path {
	if root == nil {
		return nil
	}

	var paths []domain.Path
	stack := []pathFrame{{node: root, trail: []*domain.Node{root}}}
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if f.node.IsLeaf() {
			paths = append(paths, domain.NewPath(f.trail))
			continue
		}
		for i := len(f.node.Children) - 1; i >= 0; i-- {
			child := f.node.Children[i]
			trail := make([]*domain.Node, len(f.trail)+1)
			copy(trail, f.trail)
			trail[len(f.trail)] = child
			stack = append(stack, pathFrame{node: child, trail: trail})
		}
	}
	return paths
}

// Leaves returns the path termini in path order. It walks the already
// extracted paths of the graph rather than re-traversing the tree.
func Leaves(g *domain.Graph) []*domain.Node {
	leaves := make([]*domain.Node, 0, len(g.Paths))
	for _, p := range g.Paths {
		if leaf := p.Leaf(); leaf != nil {
			leaves = append(leaves, leaf)
		}
	}
	return leaves
}
