package journeymap_test

import (
	"context"
	"fmt"
	"log"

	"github.com/rinasm/journeymap"
	"github.com/rinasm/journeymap/pkg/domain"
)

// Example renders the tree for a single detected journey.
func Example() {
	eng, err := journeymap.New(journeymap.WithJourneys(domain.Journey{
		ID:         "checkout",
		Name:       "Checkout",
		Confidence: 92,
		Steps: []domain.Step{
			{Description: "Add to cart", Order: 1},
			{Description: "Click checkout", Order: 2},
		},
	}))
	if err != nil {
		log.Fatal(err)
	}

	tree, err := eng.RenderText(context.Background())
	if err != nil {
		log.Fatal(err)
	}
	fmt.Print(tree)
	// Output:
	// Current Page
	// └── Checkout (92%)
	//     └── Add to cart
	//         └── Click checkout
}

// ExampleEngine_Stats summarizes a graph built from two journeys.
func ExampleEngine_Stats() {
	eng, err := journeymap.New(journeymap.WithJourneys(
		domain.Journey{ID: "signup", Name: "Sign Up", Steps: []domain.Step{
			{Description: "Open form", Order: 1},
			{Description: "Submit", Order: 2},
		}},
		domain.Journey{ID: "purchase", Name: "Purchase", Steps: []domain.Step{
			{Description: "Search product", Order: 1},
			{Description: "Open product page", Order: 2},
			{Description: "Add to cart", Order: 3},
			{Description: "Pay", Order: 4},
		}},
	))
	if err != nil {
		log.Fatal(err)
	}

	stats, err := eng.Stats(context.Background())
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("journeys=%d nodes=%d paths=%d avg=%v max=%d\n",
		stats.TotalJourneys, stats.TotalNodes, stats.TotalPaths,
		stats.AveragePathLength, stats.MaxPathLength)
	// Output:
	// journeys=2 nodes=9 paths=2 avg=5 max=6
}

// ExampleEngine_Paths lists every root-to-leaf path.
func ExampleEngine_Paths() {
	eng, err := journeymap.New(journeymap.WithJourneys(
		domain.Journey{ID: "login", Name: "User Login", Confidence: 92, Steps: []domain.Step{
			{Description: "Enter username", Order: 1},
			{Description: "Click submit", Order: 2},
		}},
	))
	if err != nil {
		log.Fatal(err)
	}

	paths, err := eng.Paths(context.Background())
	if err != nil {
		log.Fatal(err)
	}
	for _, p := range paths {
		fmt.Printf("%s (length %d)\n", p.Description, p.Length)
	}
	// Output:
	// Current Page → User Login → Enter username → Click submit (length 4)
}
