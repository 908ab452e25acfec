// Package cli implements the textutils subcommands.
package cli

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	otelapi "go.opentelemetry.io/otel"

	"github.com/petal-labs/textutils/config"
	"github.com/petal-labs/textutils/mcp"
	textotel "github.com/petal-labs/textutils/otel"
	"github.com/petal-labs/textutils/server"
	"github.com/petal-labs/textutils/textops"
	"github.com/petal-labs/textutils/tool"
)

// NewServeCmd creates the "serve" subcommand.
func NewServeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP server",
		RunE:  runServe,
	}

	cmd.Flags().IntP("port", "p", 8080, "Listen port")
	cmd.Flags().String("host", "0.0.0.0", "Listen host")
	cmd.Flags().String("cors-origin", "*", "Allowed CORS origin")
	cmd.Flags().String("config", "", "Path to textutils.yaml config")
	cmd.Flags().Duration("read-timeout", 30*time.Second, "HTTP read timeout")
	cmd.Flags().Duration("write-timeout", 60*time.Second, "HTTP write timeout")
	cmd.Flags().Int64("max-body", 1<<20, "Max request body size in bytes")
	cmd.Flags().String("otlp-endpoint", "", "OTLP/HTTP trace endpoint (host:port)")

	return cmd
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}

	shutdownTelemetry, err := textotel.Setup(cmd.Context(), textotel.SetupConfig{
		ServiceName:    cfg.Server.Name,
		ServiceVersion: cfg.Server.Version,
		OTLPEndpoint:   cfg.Telemetry.OTLPEndpoint,
	})
	if err != nil {
		return exitError(exitRuntime, "initializing telemetry: %v", err)
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = shutdownTelemetry(shutdownCtx)
	}()

	observer, err := textotel.NewDispatchObserver(
		otelapi.GetMeterProvider().Meter("textutils/tool"),
		otelapi.GetTracerProvider().Tracer("textutils/tool"),
	)
	if err != nil {
		return exitError(exitRuntime, "initializing dispatch observability: %v", err)
	}
	tool.SetObserver(observer)
	defer tool.SetObserver(nil)

	logger := slog.Default()
	registry, router, err := buildRouter(cfg, logger)
	if err != nil {
		return err
	}

	srv := server.NewServer(server.ServerConfig{
		Registry:   registry,
		Router:     router,
		CORSOrigin: cfg.Server.CORSOrigin,
		MaxBody:    cfg.Server.MaxBodyBytes,
		Logger:     logger,
	})

	readTimeout, _ := cmd.Flags().GetDuration("read-timeout")
	writeTimeout, _ := cmd.Flags().GetDuration("write-timeout")

	addr := net.JoinHostPort(cfg.Server.Host, fmt.Sprintf("%d", cfg.Server.Port))
	httpServer := &http.Server{
		Addr:         addr,
		Handler:      srv.Handler(),
		ReadTimeout:  readTimeout,
		WriteTimeout: writeTimeout,
	}

	// Signal handling
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		fmt.Fprintf(cmd.OutOrStdout(), "%s listening on %s\n", cfg.Server.Name, addr)
		errCh <- httpServer.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		fmt.Fprintln(cmd.OutOrStdout(), "Shutting down...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			return exitError(exitRuntime, "shutdown error: %v", err)
		}
		return nil
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return exitError(exitRuntime, "server error: %v", err)
		}
		return nil
	}
}

// resolveConfig loads the startup config and applies any explicitly set
// command-line flags on top of it.
func resolveConfig(cmd *cobra.Command) (config.Config, error) {
	explicitPath, _ := cmd.Flags().GetString("config")

	cfg := config.Default()
	path, found, err := config.DiscoverPath(explicitPath)
	if err != nil {
		return config.Config{}, exitError(exitConfig, "%s", err)
	}
	if found {
		cfg, err = config.Load(path)
		if err != nil {
			return config.Config{}, exitError(exitConfig, "%s", err)
		}
	}

	if cmd.Flags().Changed("host") {
		cfg.Server.Host, _ = cmd.Flags().GetString("host")
	}
	if cmd.Flags().Changed("port") {
		cfg.Server.Port, _ = cmd.Flags().GetInt("port")
	}
	if cmd.Flags().Changed("cors-origin") {
		cfg.Server.CORSOrigin, _ = cmd.Flags().GetString("cors-origin")
	}
	if cmd.Flags().Changed("max-body") {
		cfg.Server.MaxBodyBytes, _ = cmd.Flags().GetInt64("max-body")
	}
	if cmd.Flags().Changed("otlp-endpoint") {
		cfg.Telemetry.OTLPEndpoint, _ = cmd.Flags().GetString("otlp-endpoint")
	}
	return cfg, nil
}

// buildRouter assembles the tool registry and protocol router from config.
func buildRouter(cfg config.Config, logger *slog.Logger) (*tool.Registry, *mcp.Router, error) {
	registry := tool.NewRegistry()
	if err := textops.Register(registry, cfg.DisabledSet()); err != nil {
		return nil, nil, exitError(exitRuntime, "registering built-in tools: %v", err)
	}
	router := mcp.NewRouter(mcp.RouterConfig{
		Registry:      registry,
		Dispatcher:    tool.NewDispatcher(registry),
		ServerName:    cfg.Server.Name,
		ServerVersion: cfg.Server.Version,
		Logger:        logger,
	})
	return registry, router, nil
}
