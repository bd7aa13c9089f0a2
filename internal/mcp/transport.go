package mcp

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/Fuabioo/notesmcp/internal/core"
	"github.com/mark3labs/mcp-go/server"
)

// shutdownTimeout bounds how long an HTTP shutdown may drain connections.
const shutdownTimeout = 5 * time.Second

// Serve runs the MCP server on the transport selected by the config.
// It blocks until the transport stops or ctx is cancelled.
func (s *Server) Serve(ctx context.Context) error {
	switch s.cfg.Transport {
	case core.TransportHTTP:
		return s.serveHTTP(ctx)
	default:
		return s.serveStdio(ctx)
	}
}

// serveStdio serves MCP over stdin/stdout. Nothing else may write to
// stdout while this runs.
func (s *Server) serveStdio(ctx context.Context) error {
	stdioServer := server.NewStdioServer(s.mcp)
	if err := stdioServer.Listen(ctx, os.Stdin, os.Stdout); err != nil {
		return fmt.Errorf("failed to serve MCP over stdio: %w", err)
	}
	return nil
}

// serveHTTP serves MCP over streamable HTTP on the configured address,
// shutting down gracefully when ctx is cancelled.
func (s *Server) serveHTTP(ctx context.Context) error {
	httpServer := server.NewStreamableHTTPServer(s.mcp)
	addr := s.cfg.ListenAddr()

	errCh := make(chan error, 1)
	go func() {
		errCh <- httpServer.Start(addr)
	}()

	fmt.Fprintf(os.Stderr, "serving MCP over streamable HTTP on %s\n", addr)

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("failed to serve MCP over HTTP: %w", err)
		}
		return nil
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("failed to shut down HTTP server: %w", err)
		}
		return nil
	}
}

// Serve creates a new MCP server from the environment and starts serving.
func Serve(ctx context.Context) error {
	srv, err := NewServer()
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}

	if err := srv.Serve(ctx); err != nil {
		return fmt.Errorf("server error: %w", err)
	}

	return nil
}
