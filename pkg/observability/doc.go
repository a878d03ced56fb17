/*
Package observability provides tools for monitoring the journeymap engine.

It bridges domain.LifecycleHooks to Prometheus collectors and slog so that
builds and exports show up in metrics and structured logs without coupling
the engine to either system. Merge combines several hook sets into one for
callers that want both telemetry and their own listeners.
*/
package observability
