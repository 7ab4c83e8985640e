package mcp

import (
	"context"
	"errors"
	"io"
	"sync"
	"sync/atomic"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/honeycarbs/kingoftime-mcp/internal/config"
	"github.com/honeycarbs/kingoftime-mcp/internal/mcp/tools"
	"github.com/honeycarbs/kingoftime-mcp/pkg/logging"
)

const (
	serverName    = "king-of-time"
	serverVersion = "0.1.0"

	instructions = "MCP server for the King of Time attendance system. " +
		"Look up the company, employees and divisions, read daily, monthly and yearly attendance, " +
		"record clock-ins and clock-outs, and approve or reject requests. " +
		"Dates are YYYY-MM-DD, months are YYYY-MM and times are HH:MM."
)

// Server wraps an MCP SDK server served over stdio
type Server struct {
	logger *logging.Logger
	config config.Config

	mcp   *sdkmcp.Server
	tools []string

	started atomic.Bool
	mu      sync.Mutex
	cancel  context.CancelFunc
}

// NewServer constructs the MCP server and registers every tool
func NewServer(log *logging.Logger, cfg config.Config, deps tools.Deps) *Server {
	impl := &sdkmcp.Implementation{
		Name:    serverName,
		Version: serverVersion,
	}

	mcpServer := sdkmcp.NewServer(impl, &sdkmcp.ServerOptions{
		Instructions: instructions,
	})

	names := tools.Register(mcpServer, deps)

	return &Server{
		logger: log,
		config: cfg,
		mcp:    mcpServer,
		tools:  names,
	}
}

// Tools returns the registered tool names
func (s *Server) Tools() []string {
	return append([]string(nil), s.tools...)
}

// Run serves over stdin/stdout and blocks until the host closes the stream
// or Shutdown is called
func (s *Server) Run(ctx context.Context) error {
	return s.Serve(ctx, &sdkmcp.StdioTransport{})
}

// Serve runs the server on an arbitrary transport
func (s *Server) Serve(ctx context.Context, transport sdkmcp.Transport) error {
	if !s.started.CompareAndSwap(false, true) {
		return nil
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	s.mu.Lock()
	s.cancel = cancel
	s.mu.Unlock()

	s.logger.Info("MCP server serving",
		"name", serverName,
		"tools", len(s.tools),
		"base_url", s.config.KingOfTime.BaseURL,
		"max_retries", s.config.KingOfTime.MaxRetries,
	)

	err := s.mcp.Run(ctx, transport)
	if err != nil && !errors.Is(err, context.Canceled) && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}

func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("shutdown requested for MCP server")

	s.mu.Lock()
	cancel := s.cancel
	s.mu.Unlock()

	if cancel != nil {
		cancel()
	}

	if err := ctx.Err(); err != nil {
		s.logger.Warn("MCP server shutdown with error", "err", err)
		return err
	}

	s.logger.Info("MCP server shutdown complete")
	return nil
}
