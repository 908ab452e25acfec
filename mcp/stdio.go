package mcp

import (
	"bufio"
	"context"
	"errors"
	"io"
	"log/slog"
)

// StdioTransport serves the router over newline-delimited JSON-RPC, one
// message per line. It is the transport used when the server runs as a
// subprocess of an agent host; logging must go to stderr because stdout
// carries the protocol.
type StdioTransport struct {
	router *Router
	in     *bufio.Reader
	out    io.Writer
	logger *slog.Logger
}

// NewStdioTransport creates a stdio transport over the given streams.
func NewStdioTransport(router *Router, in io.Reader, out io.Writer, logger *slog.Logger) *StdioTransport {
	if logger == nil {
		logger = slog.Default()
	}
	return &StdioTransport{
		router: router,
		in:     bufio.NewReader(in),
		out:    out,
		logger: logger,
	}
}

// Run reads requests until the input stream closes or the context is
// canceled. A closed stream (client disconnect) is a clean shutdown, not an
// error.
func (t *StdioTransport) Run(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		line, err := t.in.ReadBytes('\n')
		if len(line) == 0 && err != nil {
			if errors.Is(err, io.EOF) {
				t.logger.Info("client disconnected")
				return nil
			}
			return err
		}

		response := t.router.HandleRaw(ctx, line)
		if response == nil {
			continue
		}
		response = append(response, '\n')
		if _, err := t.out.Write(response); err != nil {
			return err
		}
	}
}
