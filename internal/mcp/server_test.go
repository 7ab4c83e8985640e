package mcp

import (
	"context"
	"testing"
	"time"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/honeycarbs/kingoftime-mcp/internal/config"
	"github.com/honeycarbs/kingoftime-mcp/pkg/logging"
)

func testConfig() config.Config {
	return config.Config{
		LogLevel: "debug",
		KingOfTime: config.KingOfTime{
			AccessToken: "tok",
			BaseURL:     "http://127.0.0.1:0",
			Timeout:     time.Second,
			MaxRetries:  3,
		},
	}
}

func TestInitializeServer_RegistersTools(t *testing.T) {
	srv := InitializeServer(testConfig(), logging.NewNop())

	names := srv.Tools()
	assert.Len(t, names, 15)
	assert.Contains(t, names, "record_time")
	assert.Contains(t, names, "check_token")
}

func TestServer_ServeAndShutdown(t *testing.T) {
	srv := InitializeServer(testConfig(), logging.NewNop())
	clientTransport, serverTransport := sdkmcp.NewInMemoryTransports()

	done := make(chan error, 1)
	go func() {
		done <- srv.Serve(context.Background(), serverTransport)
	}()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	client := sdkmcp.NewClient(&sdkmcp.Implementation{Name: "server-test", Version: "0.0.1"}, nil)
	session, err := client.Connect(ctx, clientTransport, nil)
	require.NoError(t, err)
	defer func() { _ = session.Close() }()

	res, err := session.ListTools(ctx, nil)
	require.NoError(t, err)
	assert.Len(t, res.Tools, 15)

	require.NoError(t, srv.Shutdown(context.Background()))

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-ctx.Done():
		t.Fatal("server did not stop after Shutdown")
	}
}

func TestServer_ServeOnlyOnce(t *testing.T) {
	srv := InitializeServer(testConfig(), logging.NewNop())
	srv.started.Store(true)

	_, serverTransport := sdkmcp.NewInMemoryTransports()
	assert.NoError(t, srv.Serve(context.Background(), serverTransport))
}

func TestProvideHTTPClient_DefaultTimeout(t *testing.T) {
	cfg := testConfig()
	cfg.KingOfTime.Timeout = 0

	client := provideHTTPClient(cfg)
	assert.Equal(t, 30*time.Second, client.Timeout)
}

func TestServer_LogsUpstreamSettings(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	srv := InitializeServer(testConfig(), logging.FromZap(zap.New(core)))
	_, serverTransport := sdkmcp.NewInMemoryTransports()

	done := make(chan error, 1)
	go func() {
		done <- srv.Serve(context.Background(), serverTransport)
	}()

	require.Eventually(t, func() bool {
		return logs.FilterMessage("MCP server serving").Len() == 1
	}, 5*time.Second, 10*time.Millisecond)

	fields := logs.FilterMessage("MCP server serving").All()[0].ContextMap()
	assert.Equal(t, "http://127.0.0.1:0", fields["base_url"])
	assert.Equal(t, int64(3), fields["max_retries"])

	require.NoError(t, srv.Shutdown(context.Background()))
	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop after Shutdown")
	}
}
