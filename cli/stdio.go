package cli

import (
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/petal-labs/textutils/mcp"
)

// NewStdioCmd creates the "stdio" subcommand.
func NewStdioCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stdio",
		Short: "Serve JSON-RPC over stdin/stdout",
		Long:  "Serve newline-delimited JSON-RPC 2.0 over stdin/stdout for editor and agent clients.",
		RunE:  runStdio,
	}
	cmd.Flags().String("config", "", "Path to textutils.yaml config")
	return cmd
}

func runStdio(cmd *cobra.Command, _ []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}

	// Stdout carries the wire protocol, so logs go to stderr.
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	_, router, err := buildRouter(cfg, logger)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	transport := mcp.NewStdioTransport(router, os.Stdin, os.Stdout, logger)
	if err := transport.Run(ctx); err != nil {
		return exitError(exitRuntime, "stdio transport: %v", err)
	}
	return nil
}
