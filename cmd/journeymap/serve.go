package main

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/rinasm/journeymap"
	"github.com/rinasm/journeymap/internal/cli"
	"github.com/rinasm/journeymap/internal/logging"
	"github.com/rinasm/journeymap/internal/presentation/tui"
	httpadapter "github.com/rinasm/journeymap/pkg/adapters/http"
	"github.com/rinasm/journeymap/pkg/adapters/memory"
	"github.com/rinasm/journeymap/pkg/domain"
	"github.com/rinasm/journeymap/pkg/observability"
	"github.com/rinasm/journeymap/pkg/persistence/middleware"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the journey map HTTP server",
	Long:  `Starts the engine in server mode, exposing the graph as a JSON API with SSE change notifications and Prometheus metrics.`,
	Run: func(cmd *cobra.Command, args []string) {
		opts := buildOptions(cmd, args)
		port, _ := cmd.Flags().GetString("port")
		storeDir, _ := cmd.Flags().GetString("store")

		level := slog.LevelInfo
		if opts.Debug {
			level = slog.LevelDebug
		}
		logger := logging.New(level)

		// The server owns a mutable working set so POST /journeys can swap
		// it; the document or store set only seeds it.
		seed, err := cli.LoadJourneys(cmd.Context(), opts)
		if err != nil {
			if errors.Is(err, os.ErrNotExist) || errors.Is(err, domain.ErrSetNotFound) {
				logger.Warn("No journey set found, starting empty", "err", err)
			} else {
				fmt.Printf("Error loading journeys: %v\n", err)
				os.Exit(1)
			}
		}
		source := memory.NewSource(seed...)

		reg := prometheus.NewRegistry()
		metrics := observability.NewMetrics(reg)

		hooks := metrics.Hooks()
		if opts.Debug {
			hooks = observability.Merge(hooks, observability.LoggingHooks(logger))
		}

		engine, err := journeymap.New(
			journeymap.WithSource(source),
			journeymap.WithLogger(logger),
			journeymap.WithHooks(hooks),
		)
		if err != nil {
			fmt.Printf("Error initializing journeymap: %v\n", err)
			os.Exit(1)
		}

		store, err := cli.CreateStore(opts, storeDir)
		if err != nil {
			fmt.Printf("Error initializing store: %v\n", err)
			os.Exit(1)
		}
		if keyB64 := os.Getenv("JOURNEYMAP_ENCRYPTION_KEY"); keyB64 != "" {
			key, kerr := base64.StdEncoding.DecodeString(keyB64)
			if kerr != nil || len(key) != 32 {
				fmt.Println("JOURNEYMAP_ENCRYPTION_KEY must be 32 bytes, base64 encoded")
				os.Exit(1)
			}
			store = middleware.NewEncryptionMiddleware(middleware.EncryptionConfig{ActiveKey: key})(store)
			logger.Info("Journey set encryption enabled")
		}

		handlerOpts := []httpadapter.Option{
			httpadapter.WithSink(source),
			httpadapter.WithStore(store),
			httpadapter.WithLogger(logger),
			httpadapter.WithGatherer(reg),
		}
		locker, err := cli.CreateLocker(opts)
		if err != nil {
			fmt.Printf("Error initializing locker: %v\n", err)
			os.Exit(1)
		}
		if locker != nil {
			handlerOpts = append(handlerOpts, httpadapter.WithLocker(locker))
			logger.Info("Distributed locking enabled for saves")
		}

		handler := httpadapter.NewHandler(engine, handlerOpts...)

		if cli.IsTerminal(os.Stdout) {
			tui.PrintBanner(strings.TrimSpace(journeymap.Version))
		}

		srv := &http.Server{
			Addr:    ":" + port,
			Handler: handler,
		}

		// Channel to listen for errors coming from the listener.
		serverErrors := make(chan error, 1)

		go func() {
			fmt.Printf("Starting Journeymap Server on %s\n", srv.Addr)
			fmt.Printf("Serving %d journeys\n", len(seed))
			serverErrors <- srv.ListenAndServe()
		}()

		// Channel to listen for interrupt or terminate signals.
		shutdown := make(chan os.Signal, 1)
		signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

		// Blocking main and waiting for shutdown.
		select {
		case err := <-serverErrors:
			// Error when starting HTTP server.
			fmt.Printf("Server error: %v\n", err)
			os.Exit(1)

		case sig := <-shutdown:
			fmt.Printf("\nStart shutdown... Signal: %v\n", sig)

			// Give outstanding requests a deadline for completion.
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()

			// Asking listener to shut down and shed load.
			if err := srv.Shutdown(ctx); err != nil {
				fmt.Printf("Graceful shutdown did not complete in %v: %v\n", 5*time.Second, err)
				if err := srv.Close(); err != nil {
					fmt.Printf("Error killing server: %v\n", err)
				}
			}
			fmt.Println("Journeymap Server stopped gracefully")
		}
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	addSourceFlags(serveCmd)
	serveCmd.Flags().StringP("port", "p", "8080", "Port to listen on")
	serveCmd.Flags().String("store", ".journeymap/sets", "Directory for saved journey sets (ignored with --redis)")
}
