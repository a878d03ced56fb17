package render

import (
	"strings"
	"testing"

	"github.com/rinasm/journeymap/pkg/domain"
	"github.com/rinasm/journeymap/pkg/graph"
)

func TestTextTwoBranches(t *testing.T) {
	journeys := []domain.Journey{
		{
			ID:         "login",
			Name:       "User Login",
			Confidence: 92,
			Steps: []domain.Step{
				{Description: "Enter username", Order: 1},
				{Description: "Click submit", Order: 2},
			},
		},
		{
			ID:         "search",
			Name:       "Product Search",
			Confidence: 75.5,
			Steps: []domain.Step{
				{Description: "Type query", Order: 1},
			},
		},
	}
	g := graph.Build(journeys)

	want := strings.Join([]string{
		"Current Page",
		"├── User Login (92%)",
		"│   └── Enter username",
		"│       └── Click submit",
		"└── Product Search (75.5%)",
		"    └── Type query",
		"",
	}, "\n")

	if got := Text(g); got != want {
		t.Errorf("Text() =\n%s\nwant:\n%s", got, want)
	}
}

func TestTextRootOnly(t *testing.T) {
	g := graph.Build(nil)
	if got := Text(g); got != "Current Page\n" {
		t.Errorf("Text() = %q, want %q", got, "Current Page\n")
	}
}

func TestTextStepLessJourney(t *testing.T) {
	g := graph.Build([]domain.Journey{
		{ID: "a", Name: "Bare", Confidence: 40},
	})

	want := "Current Page\n└── Bare (40%)\n"
	if got := Text(g); got != want {
		t.Errorf("Text() = %q, want %q", got, want)
	}
}

func TestTextWideFanOut(t *testing.T) {
	// Three branches: the first two continue with the pipe prefix, the
	// last closes with spaces.
	journeys := []domain.Journey{
		{ID: "a", Name: "Alpha", Confidence: 10, Steps: []domain.Step{{Description: "a1", Order: 1}}},
		{ID: "b", Name: "Beta", Confidence: 20, Steps: []domain.Step{{Description: "b1", Order: 1}}},
		{ID: "c", Name: "Gamma", Confidence: 30, Steps: []domain.Step{{Description: "c1", Order: 1}}},
	}
	g := graph.Build(journeys)

	want := strings.Join([]string{
		"Current Page",
		"├── Alpha (10%)",
		"│   └── a1",
		"├── Beta (20%)",
		"│   └── b1",
		"└── Gamma (30%)",
		"    └── c1",
		"",
	}, "\n")

	if got := Text(g); got != want {
		t.Errorf("Text() =\n%s\nwant:\n%s", got, want)
	}
}

func TestTextNilGraph(t *testing.T) {
	if got := Text(nil); got != "" {
		t.Errorf("Text(nil) = %q, want empty", got)
	}
}

func TestTextDeepChain(t *testing.T) {
	steps := make([]domain.Step, 200)
	for i := range steps {
		steps[i] = domain.Step{Description: "step", Order: i}
	}
	g := graph.Build([]domain.Journey{{ID: "deep", Name: "Deep", Confidence: 50, Steps: steps}})

	out := Text(g)
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 202 {
		t.Fatalf("line count = %d, want 202", len(lines))
	}
	// Every line below the branch nests one level deeper.
	last := lines[len(lines)-1]
	wantIndent := strings.Repeat("    ", 200)
	if !strings.HasPrefix(last, wantIndent+"└── ") {
		t.Errorf("deepest line = %q, want prefix %q", last[:40], (wantIndent + "└── ")[:40])
	}
}
