package domain

import (
	"context"
	"time"
)

// EventType identifies a lifecycle event emitted by the engine.
type EventType string

const (
	EventBuildStart    EventType = "build_start"
	EventBuildComplete EventType = "build_complete"
	EventExport        EventType = "export"
)

// BuildEvent describes one graph build. Nodes, Paths and Duration are
// only populated on build_complete.
type BuildEvent struct {
	Timestamp time.Time     `json:"timestamp"`
	Type      EventType     `json:"type"`
	Journeys  int           `json:"journeys"`
	Nodes     int           `json:"nodes,omitempty"`
	Paths     int           `json:"paths,omitempty"`
	Duration  time.Duration `json:"duration,omitempty"`
}

// ExportEvent describes one visualization export.
type ExportEvent struct {
	Timestamp time.Time `json:"timestamp"`
	Type      EventType `json:"type"`
	Format    string    `json:"format"`
	Nodes     int       `json:"nodes"`
	Edges     int       `json:"edges"`
}

// LifecycleHooks lets callers observe engine activity without coupling the
// engine to any telemetry system. Nil hooks are skipped. Hooks run
// synchronously on the calling goroutine, so implementations must be fast
// or hand off to their own workers.
type LifecycleHooks struct {
	OnBuildStart    func(ctx context.Context, e *BuildEvent)
	OnBuildComplete func(ctx context.Context, e *BuildEvent)
	OnExport        func(ctx context.Context, e *ExportEvent)
}

// EmitBuildStart invokes OnBuildStart when set.
func (h *LifecycleHooks) EmitBuildStart(ctx context.Context, e *BuildEvent) {
	if h != nil && h.OnBuildStart != nil {
		h.OnBuildStart(ctx, e)
	}
}

// EmitBuildComplete invokes OnBuildComplete when set.
func (h *LifecycleHooks) EmitBuildComplete(ctx context.Context, e *BuildEvent) {
	if h != nil && h.OnBuildComplete != nil {
		h.OnBuildComplete(ctx, e)
	}
}

// EmitExport invokes OnExport when set.
func (h *LifecycleHooks) EmitExport(ctx context.Context, e *ExportEvent) {
	if h != nil && h.OnExport != nil {
		h.OnExport(ctx, e)
	}
}
