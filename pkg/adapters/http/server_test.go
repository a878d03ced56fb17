package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/rinasm/journeymap"
	"github.com/rinasm/journeymap/pkg/adapters/memory"
	"github.com/rinasm/journeymap/pkg/domain"
	"github.com/rinasm/journeymap/pkg/export"
	"github.com/rinasm/journeymap/pkg/observability"
	"github.com/rinasm/journeymap/pkg/ports"
)

func demoJourneys() []domain.Journey {
	return []domain.Journey{
		{
			ID:         "login",
			Name:       "User Login",
			Confidence: 92,
			Steps: []domain.Step{
				{Description: "Enter username", Order: 1, RequiresData: true, DataType: "text"},
				{Description: "Click submit", Order: 2},
			},
		},
		{
			ID:         "purchase",
			Name:       "Purchase",
			Confidence: 75,
			Steps: []domain.Step{
				{Description: "Search product", Order: 1},
				{Description: "Open product page", Order: 2},
				{Description: "Add to cart", Order: 3},
				{Description: "Pay", Order: 4},
			},
		},
	}
}

func newTestHandler(t *testing.T, src *memory.Source, opts ...Option) http.Handler {
	t.Helper()
	eng, err := journeymap.New(journeymap.WithSource(src))
	if err != nil {
		t.Fatalf("engine init failed: %v", err)
	}
	return NewHandler(eng, opts...)
}

func TestGetGraph(t *testing.T) {
	handler := newTestHandler(t, memory.NewSource(demoJourneys()...))

	req := httptest.NewRequest("GET", "/graph", nil)
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 OK, got %d: %s", w.Code, w.Body.String())
	}

	var viz export.Graph
	if err := json.Unmarshal(w.Body.Bytes(), &viz); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if len(viz.Nodes) != 9 {
		t.Errorf("expected 9 nodes, got %d", len(viz.Nodes))
	}
	if len(viz.Edges) != 8 {
		t.Errorf("expected 8 edges, got %d", len(viz.Edges))
	}
	if viz.Nodes[0].ID != domain.RootNodeID {
		t.Errorf("expected root first, got %q", viz.Nodes[0].ID)
	}
}

func TestGetPaths(t *testing.T) {
	handler := newTestHandler(t, memory.NewSource(demoJourneys()...))

	req := httptest.NewRequest("GET", "/graph/paths", nil)
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 OK, got %d", w.Code)
	}

	var paths []domain.Path
	if err := json.Unmarshal(w.Body.Bytes(), &paths); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if len(paths) != 2 {
		t.Fatalf("expected 2 paths, got %d", len(paths))
	}
	want := "Current Page → User Login → Enter username → Click submit"
	if paths[0].Description != want {
		t.Errorf("unexpected first path: %q", paths[0].Description)
	}
}

func TestGetPathsFiltered(t *testing.T) {
	handler := newTestHandler(t, memory.NewSource(demoJourneys()...))

	req := httptest.NewRequest("GET", "/graph/paths?filter="+
		"length+%3E%3D+6", nil)
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 OK, got %d: %s", w.Code, w.Body.String())
	}

	var paths []domain.Path
	if err := json.Unmarshal(w.Body.Bytes(), &paths); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if len(paths) != 1 {
		t.Fatalf("expected 1 matching path, got %d", len(paths))
	}
	if paths[0].Length != 6 {
		t.Errorf("expected length 6, got %d", paths[0].Length)
	}
}

func TestGetPathsBadFilter(t *testing.T) {
	handler := newTestHandler(t, memory.NewSource(demoJourneys()...))

	req := httptest.NewRequest("GET", "/graph/paths?filter=length+%2B", nil)
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for a broken filter, got %d", w.Code)
	}
}

func TestGetStats(t *testing.T) {
	handler := newTestHandler(t, memory.NewSource(demoJourneys()...))

	req := httptest.NewRequest("GET", "/graph/stats", nil)
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 OK, got %d", w.Code)
	}

	var stats domain.Stats
	if err := json.Unmarshal(w.Body.Bytes(), &stats); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if stats.TotalJourneys != 2 || stats.TotalNodes != 9 {
		t.Errorf("unexpected stats: %+v", stats)
	}
	if stats.AveragePathLength != 5.0 {
		t.Errorf("expected avg 5.0, got %v", stats.AveragePathLength)
	}
}

func TestExportGraphFormats(t *testing.T) {
	handler := newTestHandler(t, memory.NewSource(demoJourneys()...))

	cases := []struct {
		url      string
		code     int
		contains string
	}{
		{"/graph/export", http.StatusOK, `"nodes"`},
		{"/graph/export?format=json", http.StatusOK, `"edges"`},
		{"/graph/export?format=mermaid", http.StatusOK, "graph TD"},
		{"/graph/export?format=dot", http.StatusOK, "digraph journeymap"},
		{"/graph/export?format=svg", http.StatusBadRequest, "Unknown format"},
	}

	for _, tc := range cases {
		req := httptest.NewRequest("GET", tc.url, nil)
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, req)

		if w.Code != tc.code {
			t.Errorf("%s: expected %d, got %d", tc.url, tc.code, w.Code)
			continue
		}
		if !strings.Contains(w.Body.String(), tc.contains) {
			t.Errorf("%s: body missing %q:\n%s", tc.url, tc.contains, w.Body.String())
		}
	}
}

func TestRenderGraph(t *testing.T) {
	handler := newTestHandler(t, memory.NewSource(demoJourneys()...))

	req := httptest.NewRequest("GET", "/graph/render", nil)
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 OK, got %d", w.Code)
	}
	body := w.Body.String()
	if !strings.Contains(body, "Current Page") || !strings.Contains(body, "└── Purchase (75%)") {
		t.Errorf("unexpected rendering:\n%s", body)
	}
	if ct := w.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/plain") {
		t.Errorf("expected text/plain, got %q", ct)
	}
}

func TestIngestJourneys(t *testing.T) {
	src := memory.NewSource()
	handler := newTestHandler(t, src, WithSink(src))

	payload := `[{"name": "Checkout", "confidence": 92, "steps": [
		{"description": "Add to cart", "order": 1},
		{"description": "Click checkout", "order": 2}
	]}]`
	req := httptest.NewRequest("POST", "/journeys", strings.NewReader(payload))
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("ingest failed: %d %s", w.Code, w.Body.String())
	}

	var result IngestResult
	if err := json.Unmarshal(w.Body.Bytes(), &result); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if result.Journeys != 1 || result.AssignedIDs != 1 {
		t.Errorf("unexpected result: %+v", result)
	}

	// The working set now feeds the graph.
	reqGraph := httptest.NewRequest("GET", "/graph/render", nil)
	wGraph := httptest.NewRecorder()
	handler.ServeHTTP(wGraph, reqGraph)
	if !strings.Contains(wGraph.Body.String(), "Checkout (92%)") {
		t.Errorf("graph does not reflect ingested set:\n%s", wGraph.Body.String())
	}
}

func TestIngestJourneysDocumentForm(t *testing.T) {
	src := memory.NewSource()
	handler := newTestHandler(t, src, WithSink(src))

	payload := `{"label": "Current Page", "journeys": [
		{"id": "login", "name": "Login", "steps": [{"description": "Submit", "order": 1}]}
	]}`
	req := httptest.NewRequest("POST", "/journeys", strings.NewReader(payload))
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("ingest failed: %d %s", w.Code, w.Body.String())
	}

	var result IngestResult
	if err := json.Unmarshal(w.Body.Bytes(), &result); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if result.Journeys != 1 || result.AssignedIDs != 0 {
		t.Errorf("unexpected result: %+v", result)
	}
}

func TestIngestJourneysLintRejection(t *testing.T) {
	src := memory.NewSource()
	handler := newTestHandler(t, src, WithSink(src))

	payload := `[
		{"id": "dup", "name": "A", "steps": []},
		{"id": "dup", "name": "B", "steps": []}
	]`
	req := httptest.NewRequest("POST", "/journeys", strings.NewReader(payload))
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	if w.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422 for duplicate IDs, got %d: %s", w.Code, w.Body.String())
	}

	// Rejected sets never reach the source.
	journeys, err := src.Journeys(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if len(journeys) != 0 {
		t.Errorf("expected untouched working set, got %d journeys", len(journeys))
	}
}

func TestIngestJourneysWithoutSink(t *testing.T) {
	handler := newTestHandler(t, memory.NewSource())

	req := httptest.NewRequest("POST", "/journeys", strings.NewReader("[]"))
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	if w.Code != http.StatusNotImplemented {
		t.Fatalf("expected 501 when no sink is configured, got %d", w.Code)
	}
}

func TestIngestJourneysSave(t *testing.T) {
	src := memory.NewSource()
	store := memory.NewStore()
	handler := newTestHandler(t, src, WithSink(src), WithStore(store))

	payload := `[{"id": "login", "name": "Login", "steps": [{"description": "Submit", "order": 1}]}]`
	req := httptest.NewRequest("POST", "/journeys?save=main", strings.NewReader(payload))
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("ingest failed: %d %s", w.Code, w.Body.String())
	}

	saved, err := store.Load(context.Background(), "main")
	if err != nil {
		t.Fatalf("expected saved set: %v", err)
	}
	if len(saved) != 1 || saved[0].ID != "login" {
		t.Errorf("unexpected saved set: %+v", saved)
	}
}

// recordingLocker tracks lock/unlock calls for save coordination tests.
type recordingLocker struct {
	mu       sync.Mutex
	keys     []string
	unlocked int
	fail     bool
}

func (l *recordingLocker) Lock(ctx context.Context, key string, ttl time.Duration) (ports.UnlockFunc, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.fail {
		return nil, errors.New("lock held elsewhere")
	}
	l.keys = append(l.keys, key)
	return func(ctx context.Context) error {
		l.mu.Lock()
		defer l.mu.Unlock()
		l.unlocked++
		return nil
	}, nil
}

func TestIngestJourneysSaveWithLocker(t *testing.T) {
	src := memory.NewSource()
	store := memory.NewStore()
	locker := &recordingLocker{}
	handler := newTestHandler(t, src, WithSink(src), WithStore(store), WithLocker(locker))

	payload := `[{"id": "login", "name": "Login", "steps": [{"description": "Submit", "order": 1}]}]`
	req := httptest.NewRequest("POST", "/journeys?save=main", strings.NewReader(payload))
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("ingest failed: %d %s", w.Code, w.Body.String())
	}
	if len(locker.keys) != 1 || locker.keys[0] != "main" {
		t.Errorf("expected lock on set name, got %v", locker.keys)
	}
	if locker.unlocked != 1 {
		t.Errorf("expected lock released once, got %d", locker.unlocked)
	}
	if _, err := store.Load(context.Background(), "main"); err != nil {
		t.Errorf("expected saved set: %v", err)
	}
}

func TestIngestJourneysSaveLockFailure(t *testing.T) {
	src := memory.NewSource()
	store := memory.NewStore()
	handler := newTestHandler(t, src, WithSink(src), WithStore(store), WithLocker(&recordingLocker{fail: true}))

	payload := `[{"id": "login", "name": "Login", "steps": [{"description": "Submit", "order": 1}]}]`
	req := httptest.NewRequest("POST", "/journeys?save=main", strings.NewReader(payload))
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	if w.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500 on lock failure, got %d", w.Code)
	}
	if _, err := store.Load(context.Background(), "main"); err == nil {
		t.Error("expected no saved set when the lock could not be acquired")
	}
}

func TestSubscribeEventsReload(t *testing.T) {
	src := memory.NewSource()
	handler := newTestHandler(t, src)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/events", nil).WithContext(ctx)

	done := make(chan struct{})
	go func() {
		handler.ServeHTTP(w, req)
		close(done)
	}()

	time.Sleep(100 * time.Millisecond) // Wait for subscription to register
	src.Set(demoJourneys())
	time.Sleep(100 * time.Millisecond)

	cancel()
	<-done

	body := w.Body.String()
	if !strings.Contains(body, "event: ping") {
		t.Error("expected initial ping")
	}
	if !strings.Contains(body, "data: reload") {
		t.Errorf("expected reload event, got:\n%s", body)
	}
}

func TestSubscribeEventsIngestNotice(t *testing.T) {
	src := memory.NewSource()
	handler := newTestHandler(t, src, WithSink(src))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	wSub := httptest.NewRecorder()
	reqSub := httptest.NewRequest("GET", "/events", nil).WithContext(ctx)

	done := make(chan struct{})
	go func() {
		handler.ServeHTTP(wSub, reqSub)
		close(done)
	}()

	time.Sleep(100 * time.Millisecond) // Wait for subscription to register

	payload := `[{"id": "login", "name": "Login", "steps": []}]`
	reqIngest := httptest.NewRequest("POST", "/journeys", strings.NewReader(payload))
	wIngest := httptest.NewRecorder()
	handler.ServeHTTP(wIngest, reqIngest)

	if wIngest.Code != http.StatusOK {
		t.Fatalf("ingest failed: %d %s", wIngest.Code, wIngest.Body.String())
	}

	time.Sleep(100 * time.Millisecond)
	cancel()
	<-done

	if !strings.Contains(wSub.Body.String(), "journeys_updated") {
		t.Errorf("expected ingest notice in SSE output:\n%s", wSub.Body.String())
	}
}

func TestGetHealth(t *testing.T) {
	handler := newTestHandler(t, memory.NewSource())

	req := httptest.NewRequest("GET", "/health", nil)
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 OK, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), `"status":"ok"`) {
		t.Errorf("unexpected health body: %s", w.Body.String())
	}
}

func TestGetInfo(t *testing.T) {
	handler := newTestHandler(t, memory.NewSource())

	req := httptest.NewRequest("GET", "/info", nil)
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 OK, got %d", w.Code)
	}

	var info map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &info); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if info["app"] != "journeymap-http" {
		t.Errorf("unexpected app: %q", info["app"])
	}
	if info["version"] == "" || strings.ContainsAny(info["version"], " \n") {
		t.Errorf("version should be trimmed and non-empty, got %q", info["version"])
	}
	if info["api_version"] != "1.0.0" {
		t.Errorf("expected api_version 1.0.0, got %q", info["api_version"])
	}
}

func TestGetOpenAPIAndSwagger(t *testing.T) {
	handler := newTestHandler(t, memory.NewSource())

	req := httptest.NewRequest("GET", "/openapi.yaml", nil)
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)
	if w.Code != http.StatusOK || !strings.Contains(w.Body.String(), "openapi: 3.0.3") {
		t.Errorf("unexpected openapi response: %d", w.Code)
	}

	req = httptest.NewRequest("GET", "/swagger", nil)
	w = httptest.NewRecorder()
	handler.ServeHTTP(w, req)
	if w.Code != http.StatusOK || !strings.Contains(w.Body.String(), "swagger-ui") {
		t.Errorf("unexpected swagger response: %d", w.Code)
	}
}

func TestMetricsEndpoint(t *testing.T) {
	reg := prometheus.NewRegistry()
	observability.NewMetrics(reg)

	handler := newTestHandler(t, memory.NewSource(), WithGatherer(reg))

	req := httptest.NewRequest("GET", "/metrics", nil)
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 OK, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "journeymap_builds_total") {
		t.Errorf("expected registered collectors in metrics output:\n%s", w.Body.String())
	}
}

// errorEngine forces the failure paths.
type errorEngine struct{}

var errEngine = errors.New("source exploded")

func (errorEngine) Paths(ctx context.Context) ([]domain.Path, error) { return nil, errEngine }
func (errorEngine) Stats(ctx context.Context) (domain.Stats, error) {
	return domain.Stats{}, errEngine
}
func (errorEngine) Visualization(ctx context.Context) (export.Graph, error) {
	return export.Graph{}, errEngine
}
func (errorEngine) Mermaid(ctx context.Context) (string, error)    { return "", errEngine }
func (errorEngine) DOT(ctx context.Context) (string, error)        { return "", errEngine }
func (errorEngine) RenderText(ctx context.Context) (string, error) { return "", errEngine }
func (errorEngine) Watch(ctx context.Context) (<-chan struct{}, error) {
	return nil, errEngine
}

func TestEngineErrorsSurfaceAs500(t *testing.T) {
	handler := NewHandler(errorEngine{})

	for _, url := range []string{"/graph", "/graph/paths", "/graph/stats", "/graph/export", "/graph/render"} {
		req := httptest.NewRequest("GET", url, nil)
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, req)
		if w.Code != http.StatusInternalServerError {
			t.Errorf("%s: expected 500, got %d", url, w.Code)
		}
	}
}
