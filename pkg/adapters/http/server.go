package http

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/go-chi/chi/v5"
	"github.com/oapi-codegen/runtime"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/rinasm/journeymap"
	"github.com/rinasm/journeymap/api"
	"github.com/rinasm/journeymap/internal/dto"
	"github.com/rinasm/journeymap/pkg/domain"
	"github.com/rinasm/journeymap/pkg/export"
	"github.com/rinasm/journeymap/pkg/ports"
	"github.com/rinasm/journeymap/pkg/query"
	"github.com/rinasm/journeymap/pkg/schema"
)

// Engine defines the interface for the journey graph core.
type Engine interface {
	Paths(ctx context.Context) ([]domain.Path, error)
	Stats(ctx context.Context) (domain.Stats, error)
	Visualization(ctx context.Context) (export.Graph, error)
	Mermaid(ctx context.Context) (string, error)
	DOT(ctx context.Context) (string, error)
	RenderText(ctx context.Context) (string, error)
	Watch(ctx context.Context) (<-chan struct{}, error)
}

// Sink accepts replacement journey sets pushed through POST /journeys.
// pkg/adapters/memory.Source implements it.
type Sink interface {
	Set(journeys []domain.Journey)
}

// Server hosts the journey graph API.
type Server struct {
	engine   Engine
	sink     Sink
	store    ports.JourneyStore
	locker   ports.DistributedLocker
	streams  *StreamManager
	logger   *slog.Logger
	gatherer prometheus.Gatherer
}

// Option configures the Server.
type Option func(*Server)

// WithSink enables POST /journeys to replace the working set.
func WithSink(sink Sink) Option {
	return func(s *Server) {
		s.sink = sink
	}
}

// WithStore enables POST /journeys?save=<name> persistence.
func WithStore(store ports.JourneyStore) Option {
	return func(s *Server) {
		s.store = store
	}
}

// WithLocker guards saves with a distributed lock, so replicas sharing a
// store never interleave writes to the same set.
func WithLocker(locker ports.DistributedLocker) Option {
	return func(s *Server) {
		s.locker = locker
	}
}

// WithLogger sets the server's structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Server) {
		s.logger = logger
	}
}

// WithGatherer sets the metrics registry served at /metrics.
func WithGatherer(g prometheus.Gatherer) Option {
	return func(s *Server) {
		s.gatherer = g
	}
}

// NewHandler creates the HTTP handler for the engine.
func NewHandler(engine Engine, opts ...Option) http.Handler {
	server := &Server{
		engine:   engine,
		streams:  NewStreamManager(),
		logger:   slog.Default(),
		gatherer: prometheus.DefaultGatherer,
	}
	for _, opt := range opts {
		opt(server)
	}
	server.streams.logger = server.logger

	r := chi.NewRouter()

	r.Get("/openapi.yaml", server.GetOpenAPI)
	r.Get("/swagger", server.GetSwaggerUI)
	r.Get("/health", server.GetHealth)
	r.Get("/info", server.GetInfo)
	r.Get("/graph", server.GetGraph)
	r.Get("/graph/paths", server.GetPaths)
	r.Get("/graph/stats", server.GetStats)
	r.Get("/graph/export", server.ExportGraph)
	r.Get("/graph/render", server.RenderGraph)
	r.Get("/events", server.SubscribeEvents)
	r.Post("/journeys", server.IngestJourneys)
	r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(server.gatherer, promhttp.HandlerOpts{}))

	return enableCORS(r)
}

func enableCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Custom-Header")
		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}
		next.ServeHTTP(w, r)
	})
}

const swaggerHTML = `
<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="utf-8" />
    <meta name="viewport" content="width=device-width, initial-scale=1" />
    <title>Journeymap API Documentation</title>
    <link rel="stylesheet" href="https://unpkg.com/swagger-ui-dist@5.11.0/swagger-ui.css" />
</head>
<body>
<div id="swagger-ui"></div>
<script src="https://unpkg.com/swagger-ui-dist@5.11.0/swagger-ui-bundle.js" crossorigin></script>
<script>
    window.onload = () => {
    window.ui = SwaggerUIBundle({
        url: '/openapi.yaml',
        dom_id: '#swagger-ui',
    });
    };
</script>
</body>
</html>
`

// GetOpenAPI handles the GET /openapi.yaml request.
func (s *Server) GetOpenAPI(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/yaml")
	w.Write(api.OpenAPI)
}

// GetSwaggerUI handles the GET /swagger request.
func (s *Server) GetSwaggerUI(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html")
	w.Write([]byte(swaggerHTML))
}

// GetGraph handles the GET /graph request.
func (s *Server) GetGraph(w http.ResponseWriter, r *http.Request) {
	viz, err := s.engine.Visualization(r.Context())
	if err != nil {
		http.Error(w, fmt.Sprintf("Graph error: %v", err), http.StatusInternalServerError)
		s.logger.Error("graph build failed", "err", err)
		return
	}
	s.writeJSON(w, viz)
}

// GetPathsParams defines parameters for GetPaths.
type GetPathsParams struct {
	Filter *string `form:"filter" json:"filter,omitempty"`
}

// GetPaths handles the GET /graph/paths request.
func (s *Server) GetPaths(w http.ResponseWriter, r *http.Request) {
	var params GetPathsParams
	if err := runtime.BindQueryParameter("form", true, false, "filter", r.URL.Query(), &params.Filter); err != nil {
		http.Error(w, fmt.Sprintf("Invalid format for parameter filter: %v", err), http.StatusBadRequest)
		return
	}

	paths, err := s.engine.Paths(r.Context())
	if err != nil {
		http.Error(w, fmt.Sprintf("Paths error: %v", err), http.StatusInternalServerError)
		s.logger.Error("path extraction failed", "err", err)
		return
	}

	if params.Filter != nil && *params.Filter != "" {
		f, err := query.Compile(*params.Filter)
		if err != nil {
			http.Error(w, fmt.Sprintf("Invalid filter: %v", err), http.StatusBadRequest)
			s.logger.Warn("filter rejected", "err", err, "filter", *params.Filter)
			return
		}
		paths, err = f.Apply(paths)
		if err != nil {
			http.Error(w, fmt.Sprintf("Filter error: %v", err), http.StatusInternalServerError)
			return
		}
	}

	if paths == nil {
		paths = []domain.Path{}
	}
	s.writeJSON(w, paths)
}

// GetStats handles the GET /graph/stats request.
func (s *Server) GetStats(w http.ResponseWriter, r *http.Request) {
	stats, err := s.engine.Stats(r.Context())
	if err != nil {
		http.Error(w, fmt.Sprintf("Stats error: %v", err), http.StatusInternalServerError)
		s.logger.Error("stats computation failed", "err", err)
		return
	}
	s.writeJSON(w, stats)
}

// ExportGraphParams defines parameters for ExportGraph.
type ExportGraphParams struct {
	Format *string `form:"format" json:"format,omitempty"`
}

// ExportGraph handles the GET /graph/export request.
func (s *Server) ExportGraph(w http.ResponseWriter, r *http.Request) {
	var params ExportGraphParams
	if err := runtime.BindQueryParameter("form", true, false, "format", r.URL.Query(), &params.Format); err != nil {
		http.Error(w, fmt.Sprintf("Invalid format for parameter format: %v", err), http.StatusBadRequest)
		return
	}

	format := "json"
	if params.Format != nil && *params.Format != "" {
		format = *params.Format
	}

	switch format {
	case "json":
		viz, err := s.engine.Visualization(r.Context())
		if err != nil {
			http.Error(w, fmt.Sprintf("Export error: %v", err), http.StatusInternalServerError)
			return
		}
		s.writeJSON(w, viz)
	case "mermaid":
		out, err := s.engine.Mermaid(r.Context())
		if err != nil {
			http.Error(w, fmt.Sprintf("Export error: %v", err), http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		fmt.Fprint(w, out)
	case "dot":
		out, err := s.engine.DOT(r.Context())
		if err != nil {
			http.Error(w, fmt.Sprintf("Export error: %v", err), http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "text/vnd.graphviz")
		fmt.Fprint(w, out)
	default:
		http.Error(w, fmt.Sprintf("Unknown format: %s", format), http.StatusBadRequest)
	}
}

// RenderGraph handles the GET /graph/render request.
func (s *Server) RenderGraph(w http.ResponseWriter, r *http.Request) {
	tree, err := s.engine.RenderText(r.Context())
	if err != nil {
		http.Error(w, fmt.Sprintf("Render error: %v", err), http.StatusInternalServerError)
		s.logger.Error("render failed", "err", err)
		return
	}
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	fmt.Fprint(w, tree)
}

// IngestJourneysParams defines parameters for IngestJourneys.
type IngestJourneysParams struct {
	Save *string `form:"save" json:"save,omitempty"`
}

// IngestResult reports what an ingest applied.
type IngestResult struct {
	Journeys    int     `json:"journeys"`
	AssignedIDs int     `json:"assignedIds"`
	Saved       *string `json:"saved,omitempty"`
}

// IngestJourneys handles the POST /journeys request. The body is either a
// bare journey array or a document with a "journeys" list. The set is
// linted, optionally persisted, then swapped into the working source.
func (s *Server) IngestJourneys(w http.ResponseWriter, r *http.Request) {
	if s.sink == nil {
		http.Error(w, "Journey ingestion is not configured", http.StatusNotImplemented)
		return
	}

	var params IngestJourneysParams
	if err := runtime.BindQueryParameter("form", true, false, "save", r.URL.Query(), &params.Save); err != nil {
		http.Error(w, fmt.Sprintf("Invalid format for parameter save: %v", err), http.StatusBadRequest)
		return
	}

	var body any
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		s.logger.Warn("ingest: invalid request body", "err", err)
		return
	}
	if doc, ok := body.(map[string]any); ok {
		if list, ok := doc["journeys"]; ok {
			body = list
		}
	}

	journeys, err := dto.DecodeJourneys(body)
	if err != nil {
		http.Error(w, fmt.Sprintf("Invalid journeys: %v", err), http.StatusBadRequest)
		s.logger.Warn("ingest: decode failed", "err", err)
		return
	}

	assigned := dto.AssignIDs(journeys)

	if err := schema.LintJourneys(journeys); err != nil {
		http.Error(w, fmt.Sprintf("Journeys failed linting: %v", err), http.StatusUnprocessableEntity)
		s.logger.Warn("ingest: lint failed", "err", err)
		return
	}

	resp := IngestResult{Journeys: len(journeys), AssignedIDs: assigned}

	// Persist before swapping so a failed save leaves the working set alone.
	if params.Save != nil && *params.Save != "" {
		if s.store == nil {
			http.Error(w, "No journey store configured", http.StatusBadRequest)
			return
		}
		if err := s.saveSet(r.Context(), *params.Save, journeys); err != nil {
			http.Error(w, fmt.Sprintf("Save error: %v", err), http.StatusInternalServerError)
			s.logger.Error("ingest: save failed", "err", err, "set", *params.Save)
			return
		}
		resp.Saved = params.Save
	}

	s.sink.Set(journeys)
	s.logger.Info("journeys updated", "journeys", len(journeys), "assigned_ids", assigned)

	if payload, err := json.Marshal(map[string]any{
		"event":    "journeys_updated",
		"journeys": len(journeys),
	}); err == nil {
		s.streams.Broadcast(string(payload))
	}

	s.writeJSON(w, resp)
}

// saveSet persists a journey set, holding the distributed lock for the
// set name when a locker is configured.
func (s *Server) saveSet(ctx context.Context, name string, journeys []domain.Journey) error {
	if s.locker != nil {
		unlock, err := s.locker.Lock(ctx, name, 30*time.Second)
		if err != nil {
			return fmt.Errorf("failed to acquire distributed lock: %w", err)
		}
		defer func() {
			if err := unlock(ctx); err != nil {
				s.logger.Warn("Failed to release distributed lock (will expire via TTL)",
					"set", name,
					"err", err,
				)
			}
		}()
	}
	return s.store.Save(ctx, name, journeys)
}

// GetHealth handles the GET /health request.
func (s *Server) GetHealth(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, map[string]string{"status": "ok"})
}

// GetInfo handles the GET /info request.
func (s *Server) GetInfo(w http.ResponseWriter, r *http.Request) {
	apiVersion := "unknown"
	if doc, err := openapi3.NewLoader().LoadFromData(api.OpenAPI); err == nil && doc.Info != nil {
		apiVersion = doc.Info.Version
	}

	s.writeJSON(w, map[string]string{
		"app":         "journeymap-http",
		"version":     strings.TrimSpace(journeymap.Version),
		"api_version": apiVersion,
	})
}

// StreamManager fans journey-set update notices out to active SSE
// connections.
type StreamManager struct {
	mu          sync.RWMutex
	subscribers map[chan<- string]struct{}
	logger      *slog.Logger
}

func NewStreamManager() *StreamManager {
	return &StreamManager{
		subscribers: make(map[chan<- string]struct{}),
		logger:      slog.Default(),
	}
}

func (sm *StreamManager) Subscribe() (chan string, func()) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	ch := make(chan string, 10)
	sm.subscribers[ch] = struct{}{}

	return ch, func() {
		sm.mu.Lock()
		defer sm.mu.Unlock()
		if _, ok := sm.subscribers[ch]; ok {
			delete(sm.subscribers, ch)
			close(ch)
		}
	}
}

func (sm *StreamManager) Broadcast(msg string) {
	sm.mu.RLock()
	defer sm.mu.RUnlock()

	for ch := range sm.subscribers {
		select {
		case ch <- msg:
		default:
			// Drop message if channel is full (slow client)
			sm.logger.Warn("sse: client buffer full, dropping message")
		}
	}
}

// SubscribeEvents handles the GET /events request (SSE). Clients get a
// ping on connect, "reload" whenever the journey source changes, and a
// JSON notice for every set pushed through POST /journeys.
func (s *Server) SubscribeEvents(w http.ResponseWriter, r *http.Request) {
	flusher, ok := w.(http.Flusher)
	if !ok {
		http.Error(w, "Streaming not supported", http.StatusInternalServerError)
		s.logger.Error("events: streaming not supported")
		return
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")

	// Sources that cannot be watched still get ingest notices below.
	changes, err := s.engine.Watch(r.Context())
	if err != nil {
		changes = nil
	}

	ch, cancel := s.streams.Subscribe()
	defer cancel()

	fmt.Fprintf(w, "event: ping\ndata: connected\n\n")
	flusher.Flush()

	for {
		select {
		case <-r.Context().Done():
			s.logger.Debug("events: client disconnected")
			return
		case _, ok := <-changes:
			if !ok {
				// A nil channel blocks forever, dropping this case.
				changes = nil
				continue
			}
			fmt.Fprintf(w, "data: reload\n\n")
			flusher.Flush()
		case msg, ok := <-ch:
			if !ok {
				return
			}
			fmt.Fprintf(w, "data: %s\n\n", msg)
			flusher.Flush()
		}
	}
}

func (s *Server) writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Error("response encode failed", "err", err)
	}
}
