package main

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/honeycarbs/kingoftime-mcp/internal/config"
	"github.com/honeycarbs/kingoftime-mcp/internal/mcp"
	"github.com/honeycarbs/kingoftime-mcp/pkg/kingoftime"
	"github.com/honeycarbs/kingoftime-mcp/pkg/logging"
	"github.com/honeycarbs/kingoftime-mcp/pkg/shutdown"
)

const version = "0.1.0"

func newRootCmd() *cobra.Command {
	var configPath string

	root := &cobra.Command{
		Use:          "kingoftime-mcp",
		Short:        "King of Time attendance tools over MCP stdio",
		Version:      version,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return serve(cmd.Context(), configPath)
		},
	}
	root.PersistentFlags().StringVarP(&configPath, "config", "c", "", "YAML config file; environment variables override it")

	root.AddCommand(newCheckTokenCmd(&configPath))
	root.AddCommand(newToolsCmd(&configPath))

	return root
}

func loadConfig(path string) (config.Config, error) {
	if path == "" {
		return config.Load()
	}
	return config.LoadFile(path)
}

// loadServeConfig tolerates a missing access token; any other problem is fatal.
func loadServeConfig(path string) (config.Config, bool, error) {
	cfg, err := loadConfig(path)
	if errors.Is(err, config.ErrMissingToken) {
		return cfg, true, nil
	}
	if err != nil {
		return cfg, false, fmt.Errorf("failed to load config: %w", err)
	}
	return cfg, false, nil
}

func serve(ctx context.Context, configPath string) error {
	cfg, missingToken, err := loadServeConfig(configPath)
	if err != nil {
		return err
	}

	logger := logging.New(cfg.LogLevel)
	defer func() { _ = logger.Sync() }()

	// every tool call reports the missing token to the agent
	if missingToken {
		logger.Warn("starting without an access token", "err", config.ErrMissingToken)
	}

	srv := mcp.InitializeServer(cfg, logger)

	if ctx == nil {
		ctx = context.Background()
	}
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	go shutdown.Graceful(
		ctx,
		[]os.Signal{os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT, syscall.SIGHUP},
		srv,
		10*time.Second,
		logger,
	)

	logger.Info("MCP server initialized and starting", "transport", "stdio")

	if err := srv.Run(ctx); err != nil {
		logger.Error("MCP server exited with error", "err", err)
		return err
	}

	logger.Info("MCP server stopped")
	return nil
}

func newCheckTokenCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "check-token",
		Short: "Call the token availability endpoint once and print the answer",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(*configPath)
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}

			logger := logging.New(cfg.LogLevel)
			defer func() { _ = logger.Sync() }()

			client, err := kingoftime.NewClient(kingoftime.Config{
				Token:      cfg.KingOfTime.AccessToken,
				BaseURL:    cfg.KingOfTime.BaseURL,
				Timeout:    cfg.KingOfTime.Timeout,
				MaxRetries: cfg.KingOfTime.MaxRetries,
				Logger:     logger,
			})
			if err != nil {
				return err
			}
			defer func() { _ = client.Close() }()

			payload, err := client.CheckToken(cmd.Context())
			if err != nil {
				return err
			}

			var out bytes.Buffer
			if len(payload) > 0 {
				if err := json.Indent(&out, payload, "", "  "); err != nil {
					return err
				}
			}
			fmt.Fprintln(cmd.OutOrStdout(), out.String())
			return nil
		},
	}
}

func newToolsCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "tools",
		Short: "List the tools this server exposes",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, _, err := loadServeConfig(*configPath)
			if err != nil {
				return err
			}

			srv := mcp.InitializeServer(cfg, logging.NewNop())
			for _, name := range srv.Tools() {
				fmt.Fprintln(cmd.OutOrStdout(), name)
			}
			return nil
		},
	}
}
