package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/muesli/termenv"

	"github.com/rinasm/journeymap/pkg/domain"
)

// RenderStats formats graph statistics as aligned key/value lines. Values
// pick up the banner accent color; termenv degrades them to plain text
// when stdout is not a terminal.
func RenderStats(stats domain.Stats) string {
	p := termenv.ColorProfile()

	rows := []struct {
		label string
		value string
	}{
		{"Journeys", strconv.Itoa(stats.TotalJourneys)},
		{"Nodes", strconv.Itoa(stats.TotalNodes)},
		{"Paths", strconv.Itoa(stats.TotalPaths)},
		{"Avg path length", strconv.FormatFloat(stats.AveragePathLength, 'f', -1, 64)},
		{"Max path length", strconv.Itoa(stats.MaxPathLength)},
	}

	var sb strings.Builder
	for _, row := range rows {
		value := termenv.String(row.value).Foreground(p.Color(bannerColors[0])).Bold()
		fmt.Fprintf(&sb, "%-16s %s\n", row.label, value)
	}
	return sb.String()
}
