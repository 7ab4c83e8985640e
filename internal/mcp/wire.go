//go:build wireinject
// +build wireinject

package mcp

import (
	"github.com/google/wire"

	"github.com/honeycarbs/kingoftime-mcp/internal/config"
	"github.com/honeycarbs/kingoftime-mcp/pkg/kingoftime"
	"github.com/honeycarbs/kingoftime-mcp/pkg/logging"
)

// InitializeServer creates the Server with all dependencies wired up
func InitializeServer(cfg config.Config, logger *logging.Logger) *Server {
	wire.Build(
		// Infrastructure
		provideHTTPClient,
		kingoftime.NewGateSet,

		// Tools
		provideToolDeps,

		NewServer,
	)

	return &Server{}
}
