package journeymap

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/rinasm/journeymap/pkg/adapters/memory"
	"github.com/rinasm/journeymap/pkg/domain"
	"github.com/rinasm/journeymap/pkg/export"
	"github.com/rinasm/journeymap/pkg/graph"
	"github.com/rinasm/journeymap/pkg/ports"
	"github.com/rinasm/journeymap/pkg/render"
)

// Engine is the high-level entry point for the journeymap library.
// It wires a journey source to the graph core and provides a simplified
// API for consumers.
type Engine struct {
	source    ports.JourneySource
	builder   *graph.Builder
	hooks     domain.LifecycleHooks
	logger    *slog.Logger
	rootLabel string
	rootURL   string
}

// Option defines a functional option for configuring the Engine.
type Option func(*Engine)

// WithHooks registers observability hooks.
func WithHooks(hooks domain.LifecycleHooks) Option {
	return func(e *Engine) {
		e.hooks = hooks
	}
}

// WithSource injects a custom JourneySource (file, redis, or your own
// detection pipeline), bypassing the default in-memory source.
func WithSource(src ports.JourneySource) Option {
	return func(e *Engine) {
		e.source = src
	}
}

// WithJourneys serves the given journeys from a built-in memory source.
func WithJourneys(journeys ...domain.Journey) Option {
	return func(e *Engine) {
		e.source = memory.NewSource(journeys...)
	}
}

// WithLogger sets a custom structured logger for the engine.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) {
		e.logger = logger
	}
}

// WithRootLabel overrides the label of the synthetic root node
// (default: "Current Page").
func WithRootLabel(label string) Option {
	return func(e *Engine) {
		e.rootLabel = label
	}
}

// WithRootURL records the current page URL on the root node.
func WithRootURL(url string) Option {
	return func(e *Engine) {
		e.rootURL = url
	}
}

// New initializes a journeymap Engine. A journey source is required:
// use WithJourneys for a static list, or WithSource to plug in a custom
// adapter.
func New(opts ...Option) (*Engine, error) {
	eng := &Engine{}

	for _, opt := range opts {
		opt(eng)
	}

	if eng.source == nil {
		return nil, fmt.Errorf("a journey source is required (use WithJourneys or WithSource)")
	}

	// Ensure logger is initialized so hooks and adapters never see nil.
	if eng.logger == nil {
		eng.logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}

	var builderOpts []graph.BuilderOption
	if eng.rootLabel != "" {
		builderOpts = append(builderOpts, graph.WithRootLabel(eng.rootLabel))
	}
	if eng.rootURL != "" {
		builderOpts = append(builderOpts, graph.WithRootURL(eng.rootURL))
	}
	eng.builder = graph.NewBuilder(builderOpts...)

	return eng, nil
}

// Snapshot pulls the current journeys from the source and builds a fresh
// graph, firing build hooks around the construction. Building never
// fails; the only error path is the source itself.
func (e *Engine) Snapshot(ctx context.Context) (*domain.Graph, error) {
	journeys, err := e.source.Journeys(ctx)
	if err != nil {
		return nil, fmt.Errorf("load journeys: %w", err)
	}

	start := time.Now()
	e.hooks.EmitBuildStart(ctx, &domain.BuildEvent{
		Timestamp: start,
		Type:      domain.EventBuildStart,
		Journeys:  len(journeys),
	})

	g := e.builder.Build(journeys)

	e.hooks.EmitBuildComplete(ctx, &domain.BuildEvent{
		Timestamp: time.Now(),
		Type:      domain.EventBuildComplete,
		Journeys:  len(journeys),
		Nodes:     g.NodeCount(),
		Paths:     len(g.Paths),
		Duration:  time.Since(start),
	})
	e.logger.DebugContext(ctx, "graph built",
		"journeys", len(journeys),
		"nodes", g.NodeCount(),
		"paths", len(g.Paths),
	)

	return g, nil
}

// Paths returns every root-to-leaf path of the current graph.
func (e *Engine) Paths(ctx context.Context) ([]domain.Path, error) {
	g, err := e.Snapshot(ctx)
	if err != nil {
		return nil, err
	}
	return g.Paths, nil
}

// Stats computes summary statistics over the current graph.
func (e *Engine) Stats(ctx context.Context) (domain.Stats, error) {
	g, err := e.Snapshot(ctx)
	if err != nil {
		return domain.Stats{}, err
	}
	return graph.Statistics(g), nil
}

// Visualization returns the current graph as flat node and edge lists,
// ready for JSON serialization.
func (e *Engine) Visualization(ctx context.Context) (export.Graph, error) {
	g, err := e.Snapshot(ctx)
	if err != nil {
		return export.Graph{}, err
	}
	e.emitExport(ctx, "json", g)
	return export.Visualization(g), nil
}

// Mermaid exports the current graph as a Mermaid flowchart definition.
func (e *Engine) Mermaid(ctx context.Context) (string, error) {
	g, err := e.Snapshot(ctx)
	if err != nil {
		return "", err
	}
	e.emitExport(ctx, "mermaid", g)
	return export.Mermaid(g), nil
}

// DOT exports the current graph in Graphviz DOT format.
func (e *Engine) DOT(ctx context.Context) (string, error) {
	g, err := e.Snapshot(ctx)
	if err != nil {
		return "", err
	}
	out, err := export.DOT(g)
	if err != nil {
		return "", err
	}
	e.emitExport(ctx, "dot", g)
	return out, nil
}

// RenderText renders the current graph as a box-drawing tree for
// terminal display.
func (e *Engine) RenderText(ctx context.Context) (string, error) {
	g, err := e.Snapshot(ctx)
	if err != nil {
		return "", err
	}
	return render.Text(g), nil
}

// Watch returns a channel that signals when the underlying journey set
// changes. Returns an error if the source does not support watching.
func (e *Engine) Watch(ctx context.Context) (<-chan struct{}, error) {
	if w, ok := e.source.(ports.Watchable); ok {
		return w.Watch(ctx)
	}
	return nil, fmt.Errorf("current source does not support watching")
}

// Source returns the underlying JourneySource used by the engine.
func (e *Engine) Source() ports.JourneySource {
	return e.source
}

func (e *Engine) emitExport(ctx context.Context, format string, g *domain.Graph) {
	e.hooks.EmitExport(ctx, &domain.ExportEvent{
		Timestamp: time.Now(),
		Type:      domain.EventExport,
		Format:    format,
		Nodes:     g.NodeCount(),
		Edges:     g.EdgeCount(),
	})
}
