package mcp

import (
	"net/http"

	"github.com/honeycarbs/kingoftime-mcp/internal/config"
	"github.com/honeycarbs/kingoftime-mcp/internal/mcp/tools"
	"github.com/honeycarbs/kingoftime-mcp/pkg/kingoftime"
	"github.com/honeycarbs/kingoftime-mcp/pkg/logging"
)

// provideHTTPClient builds the connection pool shared by every tool call
func provideHTTPClient(cfg config.Config) *http.Client {
	timeout := cfg.KingOfTime.Timeout
	if timeout <= 0 {
		timeout = kingoftime.DefaultTimeout
	}
	return &http.Client{Timeout: timeout}
}

// provideToolDeps assembles tool dependencies from config and shared infrastructure
func provideToolDeps(cfg config.Config, logger *logging.Logger, httpClient *http.Client, gates *kingoftime.GateSet) tools.Deps {
	return tools.Deps{
		Config:     cfg.KingOfTime,
		Logger:     logger.Named("tools"),
		HTTPClient: httpClient,
		Gates:      gates,
	}
}
