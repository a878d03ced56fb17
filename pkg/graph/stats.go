package graph

import (
	"math"

	"github.com/rinasm/journeymap/pkg/domain"
)

// Statistics folds a graph into aggregate numbers in one pass over its
// paths. The journey count equals the root's branch count since branches
// map one to one onto input journeys. On a graph without paths the
// average and maximum both report zero.
func Statistics(g *domain.Graph) domain.Stats {
	stats := domain.Stats{
		TotalNodes: len(g.Nodes),
		TotalPaths: len(g.Paths),
	}
	if g.Root != nil {
		stats.TotalJourneys = len(g.Root.Children)
	}

	if len(g.Paths) == 0 {
		return stats
	}

	sum := 0
	for _, p := range g.Paths {
		sum += p.Length
		if p.Length > stats.MaxPathLength {
			stats.MaxPathLength = p.Length
		}
	}
	stats.AveragePathLength = round1(float64(sum) / float64(len(g.Paths)))
	return stats
}

// round1 rounds half-up to one decimal place, so 2.25 becomes 2.3 and
// 2.24 becomes 2.2.
func round1(x float64) float64 {
	return math.Floor(x*10+0.5) / 10
}
