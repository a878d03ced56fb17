package domain

// Stats summarizes a derived graph. AveragePathLength is rounded half-up
// to one decimal; MaxPathLength is 0 when the graph has no paths.
type Stats struct {
	TotalJourneys     int     `json:"totalJourneys" yaml:"totalJourneys"`
	TotalNodes        int     `json:"totalNodes" yaml:"totalNodes"`
	TotalPaths        int     `json:"totalPaths" yaml:"totalPaths"`
	AveragePathLength float64 `json:"avgPathLength" yaml:"avgPathLength"`
	MaxPathLength     int     `json:"maxPathLength" yaml:"maxPathLength"`
}
