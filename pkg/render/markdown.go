package render

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/rinasm/journeymap/pkg/domain"
	"github.com/rinasm/journeymap/pkg/graph"
)

// Markdown renders a full report of the graph: the tree, summary
// statistics and every extracted path. The output is plain markdown so
// callers can pipe it through a terminal renderer or save it as-is.
func Markdown(g *domain.Graph) string {
	stats := graph.Statistics(g)

	var b strings.Builder
	b.WriteString("# Journey Map\n\n")
	fmt.Fprintf(&b, "%d journeys, %d nodes, %d paths.\n\n",
		stats.TotalJourneys, stats.TotalNodes, stats.TotalPaths)

	b.WriteString("## Tree\n\n")
	b.WriteString("```\n")
	b.WriteString(Text(g))
	b.WriteString("```\n\n")

	b.WriteString("## Statistics\n\n")
	fmt.Fprintf(&b, "- Total journeys: %d\n", stats.TotalJourneys)
	fmt.Fprintf(&b, "- Total nodes: %d\n", stats.TotalNodes)
	fmt.Fprintf(&b, "- Total paths: %d\n", stats.TotalPaths)
	fmt.Fprintf(&b, "- Average path length: %s\n", strconv.FormatFloat(stats.AveragePathLength, 'f', -1, 64))
	fmt.Fprintf(&b, "- Max path length: %d\n\n", stats.MaxPathLength)

	b.WriteString("## Paths\n\n")
	for i, p := range g.Paths {
		fmt.Fprintf(&b, "%d. %s (length %d)\n", i+1, p.Description, p.Length)
	}

	return b.String()
}
