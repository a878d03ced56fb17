package query

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rinasm/journeymap/pkg/domain"
	"github.com/rinasm/journeymap/pkg/graph"
)

func filterJourneys() []domain.Journey {
	return []domain.Journey{
		{
			ID:         "login",
			Name:       "User Login",
			Confidence: 92,
			Steps: []domain.Step{
				{Description: "Enter username", Order: 1},
				{Description: "Enter password", Order: 2},
				{Description: "Click submit", Order: 3},
			},
		},
		{
			ID:         "search",
			Name:       "Product Search",
			Confidence: 60,
			Steps: []domain.Step{
				{Description: "Type query", Order: 1},
			},
		},
	}
}

func TestCompileRejectsInvalid(t *testing.T) {
	tests := []string{
		"length >",        // syntax error
		"length + 1",      // not a boolean
		"unknownvar == 1", // unknown variable
	}
	for _, src := range tests {
		if _, err := Compile(src); err == nil {
			t.Errorf("Compile(%q) = nil error, want error", src)
		}
	}
}

func TestFilterByLength(t *testing.T) {
	g := graph.Build(filterJourneys())

	f, err := Compile("length > 3")
	require.NoError(t, err)

	matched, err := f.Apply(g.Paths)
	require.NoError(t, err)
	require.Len(t, matched, 1)
	assert.Equal(t, "login-step-3", matched[0].Leaf().ID)
}

func TestFilterByConfidence(t *testing.T) {
	g := graph.Build(filterJourneys())

	f, err := Compile("confidence >= 90")
	require.NoError(t, err)

	matched, err := f.Apply(g.Paths)
	require.NoError(t, err)
	require.Len(t, matched, 1)
	assert.Equal(t, "login", matched[0].Nodes[1].ID)
}

func TestFilterByJourneyID(t *testing.T) {
	g := graph.Build(filterJourneys())

	f, err := Compile(`journey == "search"`)
	require.NoError(t, err)

	matched, err := f.Apply(g.Paths)
	require.NoError(t, err)
	require.Len(t, matched, 1)
	assert.Equal(t, "search-step-1", matched[0].Leaf().ID)
}

func TestFilterByLabelMembership(t *testing.T) {
	g := graph.Build(filterJourneys())

	f, err := Compile(`"Type query" in labels`)
	require.NoError(t, err)

	matched, err := f.Apply(g.Paths)
	require.NoError(t, err)
	require.Len(t, matched, 1)

	f2, err := Compile(`description contains "password"`)
	require.NoError(t, err)
	matched2, err := f2.Apply(g.Paths)
	require.NoError(t, err)
	require.Len(t, matched2, 1)
	assert.Equal(t, "login", matched2[0].Nodes[1].Action.JourneyID)
}

func TestFilterRootOnlyPath(t *testing.T) {
	g := graph.Build(nil)

	f, err := Compile(`journey == "" && confidence == 0`)
	require.NoError(t, err)

	matched, err := f.Apply(g.Paths)
	require.NoError(t, err)
	assert.Len(t, matched, 1)
}

func TestFilterPreservesOrderAndInput(t *testing.T) {
	g := graph.Build(filterJourneys())

	f, err := Compile("length > 0")
	require.NoError(t, err)

	matched, err := f.Apply(g.Paths)
	require.NoError(t, err)
	require.Len(t, matched, len(g.Paths))
	for i := range matched {
		assert.Equal(t, g.Paths[i].Description, matched[i].Description)
	}
}
