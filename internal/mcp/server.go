// Package mcp exposes the curve service as an MCP tool server over stdio or
// streamable HTTP.
package mcp

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"time"

	"bonddata/internal/config"
	"bonddata/internal/curve"
	"bonddata/pkg/controller"
	"bonddata/pkg/logger"
	"bonddata/pkg/metrics"

	mcpgo "github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"go.uber.org/zap"
)

const (
	serverName    = "Bond data mcp server"
	serverVersion = "1.0.0"

	// TransportStdio serves MCP over stdin/stdout.
	TransportStdio = "stdio"
	// TransportHTTP serves MCP over the streamable HTTP transport.
	TransportHTTP = "http"

	endpointPath = "/mcp"
)

// Options configure the MCP server and its transport.
type Options struct {
	// Transport selects TransportStdio or TransportHTTP.
	Transport string
	// Addr is the listen address for the HTTP transport.
	Addr string
	// RequireAuth enables bearer-token verification on the HTTP transport.
	RequireAuth bool
	// JWTPublicKey is the PEM-encoded RSA public key tokens are verified with.
	JWTPublicKey string
	// MaxRangeDays caps the inclusive query range of tool calls.
	MaxRangeDays int
	// GracefulShutdownTimeout bounds the HTTP transport drain on shutdown.
	GracefulShutdownTimeout time.Duration
}

// NewOptions constructs an Options value from the provided application config.
func NewOptions(cfg *config.Config) Options {
	return Options{
		Transport:               cfg.MCP.Transport,
		Addr:                    cfg.MCP.Addr,
		RequireAuth:             cfg.MCP.RequireAuth,
		JWTPublicKey:            cfg.JWT.PublicKey,
		MaxRangeDays:            cfg.Curve.MaxRangeDays,
		GracefulShutdownTimeout: cfg.GracefulShutdownTimeout,
	}
}

// Server wraps the underlying MCP server together with transport options.
type Server struct {
	mcp     *server.MCPServer
	options Options
}

// New builds the MCP server and registers the curve tool on it.
func New(service curve.Service, m *metrics.Metrics, options Options) *Server {
	hooks := &server.Hooks{}
	hooks.AddBeforeCallTool(func(ctx context.Context, id any, message *mcpgo.CallToolRequest) {
		logger.Info(ctx, "tool call received",
			zap.Any("id", id),
			zap.String("tool", message.Params.Name))
	})
	hooks.AddOnError(func(ctx context.Context, id any, method mcpgo.MCPMethod, _ any, err error) {
		logger.Error(ctx, "mcp request failed",
			zap.Any("id", id),
			zap.String("method", string(method)),
			zap.Error(err))
	})

	s := server.NewMCPServer(serverName, serverVersion,
		server.WithToolCapabilities(false),
		server.WithRecovery(),
		server.WithHooks(hooks))
	s.AddTool(newCurveTool(), newCurveToolHandler(service, m, options.MaxRangeDays))

	return &Server{mcp: s, options: options}
}

// Run serves MCP on the configured transport until ctx is canceled (HTTP) or
// stdin is closed (stdio).
func (s *Server) Run(ctx context.Context) error {
	switch s.options.Transport {
	case TransportStdio:
		return s.runStdio(ctx)
	case TransportHTTP:
		return s.runHTTP(ctx)
	default:
		return fmt.Errorf("unknown MCP transport: %q", s.options.Transport)
	}
}

// runStdio serves the protocol on stdin/stdout. Stdout belongs to the
// transport, which is why all logging goes to stderr.
func (s *Server) runStdio(ctx context.Context) error {
	stdio := server.NewStdioServer(s.mcp)
	if err := stdio.Listen(ctx, os.Stdin, os.Stdout); err != nil {
		return fmt.Errorf("could not serve stdio transport: %w", err)
	}

	return nil
}

func (s *Server) runHTTP(ctx context.Context) error {
	streamable := server.NewStreamableHTTPServer(s.mcp,
		server.WithEndpointPath(endpointPath))

	var handler http.Handler = streamable
	if s.options.RequireAuth {
		authed, err := WithAuth(handler, s.options.JWTPublicKey)
		if err != nil {
			return fmt.Errorf("could not set up transport auth: %w", err)
		}
		handler = authed
	}
	handler = controller.WithCORS(handler)
	handler = controller.WithLogger(handler)

	httpServer := &http.Server{
		Addr:              s.options.Addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errChan := make(chan error, 1)
	go func() {
		logger.Info(ctx, "starting MCP HTTP transport", zap.String("addr", s.options.Addr))
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errChan <- err
		}
	}()

	select {
	case err := <-errChan:
		return fmt.Errorf("could not serve HTTP transport: %w", err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.options.GracefulShutdownTimeout)
	defer cancel()

	logger.Info(ctx, "stopping MCP HTTP transport...")
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("could not stop HTTP transport: %w", err)
	}

	return nil
}
