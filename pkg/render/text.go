// Package render draws a journey graph as an ASCII tree for terminals
// and logs. The output is deterministic and never truncated.
package render

import (
	"strings"

	"github.com/rinasm/journeymap/pkg/domain"
)

type textFrame struct {
	node   *domain.Node
	prefix string
	isLast bool
}

// Text renders the tree with box-drawing connectors. The root label is
// printed unprefixed; every descendant gets "├── " or "└── " depending
// on sibling position, with "│   " continuing under open branches and
// four spaces under closed ones. Journey branch nodes append their
// confidence as a percentage in parentheses.
//
// The walk uses an explicit stack so arbitrarily deep step chains render
// without recursion limits.
func Text(g *domain.Graph) string {
	if g == nil || g.Root == nil {
		return ""
	}

	var sb strings.Builder
	sb.WriteString(label(g.Root))
	sb.WriteString("\n")

	var stack []textFrame
	pushChildren(&stack, g.Root, "")
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		branch := "├── "
		childPrefix := f.prefix + "│   "
		if f.isLast {
			branch = "└── "
			childPrefix = f.prefix + "    "
		}

		sb.WriteString(f.prefix)
		sb.WriteString(branch)
		sb.WriteString(label(f.node))
		sb.WriteString("\n")

		pushChildren(&stack, f.node, childPrefix)
	}
	return sb.String()
}

// pushChildren stacks a node's children right to left so the leftmost
// child pops first.
func pushChildren(stack *[]textFrame, n *domain.Node, prefix string) {
	for i := len(n.Children) - 1; i >= 0; i-- {
		*stack = append(*stack, textFrame{
			node:   n.Children[i],
			prefix: prefix,
			isLast: i == len(n.Children)-1,
		})
	}
}

func label(n *domain.Node) string {
	if n.Action != nil && n.Action.Confidence != nil {
		return n.Label + " (" + domain.FormatConfidence(*n.Action.Confidence) + ")"
	}
	return n.Label
}
