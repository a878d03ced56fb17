/*
Package journeymap converts detected user journeys into a rooted graph of
pages and actions, with path extraction, statistics, visualization exports
and terminal rendering.

A journey is an ordered sequence of steps a user takes from the current
page: "Checkout" might be "Add to cart" then "Click checkout". The engine
merges every detected journey under a single synthetic root ("Current
Page"), giving one branch per journey and one chain of action nodes per
step list. From that tree it derives root-to-leaf paths, summary
statistics, Mermaid and Graphviz DOT exports, and an ASCII tree.

# Architecture

The core is hexagonal: pkg/domain holds the pure model, pkg/graph the
builder and traversals, pkg/export and pkg/render the projections. Journeys
reach the engine through a ports.JourneySource; adapters for memory, files
and Redis ship in pkg/adapters, and the same boundary accepts your own
detection pipeline. Sources that implement ports.Watchable drive live
rebuilds in the HTTP server and the watch-capable CLI commands.

# Usage

	package main

	import (
		"context"
		"fmt"
		"log"

		"github.com/rinasm/journeymap"
		"github.com/rinasm/journeymap/pkg/domain"
	)

	func main() {
		journeys := []domain.Journey{
			{
				ID:         "checkout",
				Name:       "Checkout",
				Confidence: 92,
				Steps: []domain.Step{
					{Description: "Add to cart", Order: 1},
					{Description: "Click checkout", Order: 2},
				},
			},
		}

		eng, err := journeymap.New(journeymap.WithJourneys(journeys...))
		if err != nil {
			log.Fatal(err)
		}

		ctx := context.Background()

		// Render the tree for the terminal.
		tree, err := eng.RenderText(ctx)
		if err != nil {
			log.Fatal(err)
		}
		fmt.Print(tree)

		// Or pull the raw graph and walk it yourself.
		g, err := eng.Snapshot(ctx)
		if err != nil {
			log.Fatal(err)
		}
		fmt.Println("nodes:", g.NodeCount())
	}

Lifecycle hooks (WithHooks) observe builds and exports without coupling
the engine to any telemetry system; pkg/observability bridges them to
Prometheus and slog.
*/
package journeymap
