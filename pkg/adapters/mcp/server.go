package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/rinasm/journeymap"
	"github.com/rinasm/journeymap/pkg/domain"
	"github.com/rinasm/journeymap/pkg/export"
	"github.com/rinasm/journeymap/pkg/query"
)

// PathsResponse aligns with the HTTP surface and provides a unified
// structure across adapters.
type PathsResponse struct {
	Paths []domain.Path `json:"paths" jsonschema_description:"Root-to-leaf paths through the journey graph"`
	Total int           `json:"total" jsonschema_description:"Number of paths returned"`
}

// Engine defines the interface required by the MCP server to interact
// with the journey graph core.
type Engine interface {
	Paths(ctx context.Context) ([]domain.Path, error)
	Stats(ctx context.Context) (domain.Stats, error)
	Visualization(ctx context.Context) (export.Graph, error)
	Mermaid(ctx context.Context) (string, error)
	DOT(ctx context.Context) (string, error)
	RenderText(ctx context.Context) (string, error)
}

// Server wraps the journeymap Engine and exposes it as an MCP Server.
type Server struct {
	engine    Engine
	mcpServer *server.MCPServer
}

// NewServer creates a new MCP Server instance.
func NewServer(engine Engine) *Server {
	s := &Server{
		engine:    engine,
		mcpServer: server.NewMCPServer("journeymap-mcp", strings.TrimSpace(journeymap.Version)),
	}
	s.registerTools()
	s.registerResources()
	return s
}

// ServeStdio starts the server on Stdin/Stdout.
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.mcpServer)
}

// ServeSSE starts the server on the given port using SSE.
func (s *Server) ServeSSE(ctx context.Context, port int) error {
	addr := fmt.Sprintf(":%d", port)
	baseURL := fmt.Sprintf("http://localhost:%d", port)

	sseServer := server.NewSSEServer(s.mcpServer, server.WithBaseURL(baseURL))

	mux := http.NewServeMux()
	mux.Handle("/sse", corsMiddleware(sseServer.SSEHandler()))
	mux.Handle("/message", corsMiddleware(sseServer.MessageHandler()))

	httpServer := &http.Server{
		Addr:    addr,
		Handler: mux,
	}

	// Channel to listen for errors coming from the listener.
	serverErrors := make(chan error, 1)

	go func() {
		slog.Info("MCP Server listening (SSE)", "address", addr)
		serverErrors <- httpServer.ListenAndServe()
	}()

	select {
	case err := <-serverErrors:
		return err
	case <-ctx.Done():
		// Create a timeout context for the graceful shutdown
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		fmt.Println("\nShutdown signal received, shutting down server...")
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("could not stop server gracefully: %w", err)
		}
		return nil
	}
}

func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		slog.Debug("CORS Middleware", "method", r.Method, "path", r.URL.Path)
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization, X-Requested-With")

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func (s *Server) registerTools() {
	// TOOL: get_graph
	s.mcpServer.AddTool(mcp.NewTool("get_graph",
		mcp.WithDescription("Get the full journey graph as flat node and edge lists."),
	), func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		viz, err := s.engine.Visualization(ctx)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("graph build failed: %v", err)), nil
		}
		jsonBytes, _ := json.Marshal(viz)
		return mcp.NewToolResultText(string(jsonBytes)), nil
	})

	// TOOL: list_paths
	pathsTool := mcp.NewTool("list_paths",
		mcp.WithDescription("List every root-to-leaf path through the journey graph."),
		mcp.WithString("filter", mcp.Description("Boolean expression over description, length, labels, journey and confidence (optional)")),
		mcp.WithOutputSchema[PathsResponse](),
	)
	s.mcpServer.AddTool(pathsTool, mcp.NewStructuredToolHandler(s.handleListPaths))

	// TOOL: get_stats
	statsTool := mcp.NewTool("get_stats",
		mcp.WithDescription("Summary statistics of the journey graph: node, path and journey counts plus path length aggregates."),
		mcp.WithOutputSchema[domain.Stats](),
	)
	s.mcpServer.AddTool(statsTool, mcp.NewStructuredToolHandler(s.handleGetStats))

	// TOOL: render_tree
	s.mcpServer.AddTool(mcp.NewTool("render_tree",
		mcp.WithDescription("Render the journey graph as a box-drawing ASCII tree."),
	), func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		tree, err := s.engine.RenderText(ctx)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("render failed: %v", err)), nil
		}
		return mcp.NewToolResultText(tree), nil
	})

	// TOOL: export_graph
	s.mcpServer.AddTool(mcp.NewTool("export_graph",
		mcp.WithDescription("Export the journey graph for visualization tooling."),
		mcp.WithString("format", mcp.Description("json, mermaid or dot (default json)")),
	), func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		format := request.GetString("format", "json")
		switch format {
		case "json":
			viz, err := s.engine.Visualization(ctx)
			if err != nil {
				return mcp.NewToolResultError(fmt.Sprintf("export failed: %v", err)), nil
			}
			jsonBytes, _ := json.Marshal(viz)
			return mcp.NewToolResultText(string(jsonBytes)), nil
		case "mermaid":
			out, err := s.engine.Mermaid(ctx)
			if err != nil {
				return mcp.NewToolResultError(fmt.Sprintf("export failed: %v", err)), nil
			}
			return mcp.NewToolResultText(out), nil
		case "dot":
			out, err := s.engine.DOT(ctx)
			if err != nil {
				return mcp.NewToolResultError(fmt.Sprintf("export failed: %v", err)), nil
			}
			return mcp.NewToolResultText(out), nil
		default:
			return mcp.NewToolResultError(fmt.Sprintf("unknown format: %s", format)), nil
		}
	})
}

// Handler methods for structured tools

func (s *Server) handleListPaths(ctx context.Context, request mcp.CallToolRequest, args map[string]interface{}) (PathsResponse, error) {
	paths, err := s.engine.Paths(ctx)
	if err != nil {
		return PathsResponse{}, fmt.Errorf("path extraction failed: %w", err)
	}

	if src, ok := args["filter"].(string); ok && src != "" {
		f, err := query.Compile(src)
		if err != nil {
			return PathsResponse{}, fmt.Errorf("invalid filter: %w", err)
		}
		paths, err = f.Apply(paths)
		if err != nil {
			return PathsResponse{}, fmt.Errorf("filter failed: %w", err)
		}
	}

	return PathsResponse{Paths: paths, Total: len(paths)}, nil
}

func (s *Server) handleGetStats(ctx context.Context, request mcp.CallToolRequest, args map[string]interface{}) (domain.Stats, error) {
	stats, err := s.engine.Stats(ctx)
	if err != nil {
		return domain.Stats{}, fmt.Errorf("stats computation failed: %w", err)
	}
	return stats, nil
}

func (s *Server) registerResources() {
	// EXPOSE: journeymap://graph
	s.mcpServer.AddResource(mcp.NewResource("journeymap://graph", "Current Journey Graph",
		mcp.WithMIMEType("application/json"),
	), func(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
		viz, err := s.engine.Visualization(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to build graph: %w", err)
		}
		jsonBytes, _ := json.Marshal(viz)

		return []mcp.ResourceContents{
			mcp.TextResourceContents{
				URI:      "journeymap://graph",
				MIMEType: "application/json",
				Text:     string(jsonBytes),
			},
		}, nil
	})
}
