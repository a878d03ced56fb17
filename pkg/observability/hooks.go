package observability

import (
	"context"
	"log/slog"

	"github.com/rinasm/journeymap/pkg/domain"
)

// LoggingHooks returns lifecycle hooks that write one structured log line
// per event. Build completions log at Info, starts at Debug so the default
// level stays quiet during rebuild storms from watched sources.
func LoggingHooks(logger *slog.Logger) domain.LifecycleHooks {
	return domain.LifecycleHooks{
		OnBuildStart: func(ctx context.Context, e *domain.BuildEvent) {
			logger.DebugContext(ctx, "build_start", "journeys", e.Journeys)
		},
		OnBuildComplete: func(ctx context.Context, e *domain.BuildEvent) {
			logger.InfoContext(ctx, "build_complete",
				"journeys", e.Journeys,
				"nodes", e.Nodes,
				"paths", e.Paths,
				"duration", e.Duration,
			)
		},
		OnExport: func(ctx context.Context, e *domain.ExportEvent) {
			logger.InfoContext(ctx, "export",
				"format", e.Format,
				"nodes", e.Nodes,
				"edges", e.Edges,
			)
		},
	}
}

// Merge combines multiple hook sets into a single set. Each event fans out
// to every set in registration order; nil callbacks are skipped.
func Merge(hooks ...domain.LifecycleHooks) domain.LifecycleHooks {
	merged := make([]domain.LifecycleHooks, len(hooks))
	copy(merged, hooks)
	return domain.LifecycleHooks{
		OnBuildStart: func(ctx context.Context, e *domain.BuildEvent) {
			for i := range merged {
				merged[i].EmitBuildStart(ctx, e)
			}
		},
		OnBuildComplete: func(ctx context.Context, e *domain.BuildEvent) {
			for i := range merged {
				merged[i].EmitBuildComplete(ctx, e)
			}
		},
		OnExport: func(ctx context.Context, e *domain.ExportEvent) {
			for i := range merged {
				merged[i].EmitExport(ctx, e)
			}
		},
	}
}
