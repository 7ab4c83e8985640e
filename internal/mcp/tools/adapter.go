package tools

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/google/uuid"
	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/honeycarbs/kingoftime-mcp/internal/config"
	"github.com/honeycarbs/kingoftime-mcp/pkg/kingoftime"
	"github.com/honeycarbs/kingoftime-mcp/pkg/logging"
)

type apiCall func(ctx context.Context, client *kingoftime.Client) (json.RawMessage, error)

// adapter opens one API client per tool invocation and turns its outcome into
// a tool result.
type adapter struct {
	deps Deps
}

func newAdapter(deps Deps) *adapter {
	if deps.Logger == nil {
		deps.Logger = logging.NewNop()
	}
	if deps.HTTPClient == nil {
		timeout := deps.Config.Timeout
		if timeout <= 0 {
			timeout = kingoftime.DefaultTimeout
		}
		deps.HTTPClient = &http.Client{Timeout: timeout}
	}
	if deps.Gates == nil {
		deps.Gates = kingoftime.NewGateSet()
	}
	return &adapter{deps: deps}
}

func (a *adapter) openClient(logger *logging.Logger) (*kingoftime.Client, error) {
	token := a.deps.Config.AccessToken
	if token == "" {
		return nil, config.ErrMissingToken
	}

	return kingoftime.NewClient(kingoftime.Config{
		Token:      token,
		BaseURL:    a.deps.Config.BaseURL,
		HTTPClient: a.deps.HTTPClient,
		MaxRetries: a.deps.Config.MaxRetries,
		Gate:       a.deps.Gates.For(token),
		Sleep:      a.deps.Sleep,
		Logger:     logger,
	})
}

// run executes call against a fresh client. API errors come back as text so
// the agent always gets an answer; configuration and transport failures are
// returned as errors. confirmation replaces an empty payload when set.
func (a *adapter) run(ctx context.Context, tool string, call apiCall, confirmation string) (*sdkmcp.CallToolResult, any, error) {
	logger := a.deps.Logger.With("tool", tool, "call_id", uuid.NewString())

	client, err := a.openClient(logger)
	if err != nil {
		logger.Error("tool call rejected", "err", err)
		return nil, nil, err
	}
	defer func() {
		_ = client.Close()
	}()

	logger.Debug("tool call started")

	payload, err := call(ctx, client)
	if err != nil {
		var apiErr *kingoftime.APIError
		if errors.As(err, &apiErr) {
			logger.Warn("upstream API error", "status", apiErr.StatusCode)
			return textResult(formatAPIError(apiErr)), nil, nil
		}
		logger.Error("tool call failed", "err", err)
		return nil, nil, err
	}

	if confirmation != "" && isEmptyPayload(payload) {
		logger.Info("tool call completed", "empty", true)
		return textResult(confirmation), nil, nil
	}

	text, err := formatPayload(payload)
	if err != nil {
		logger.Error("format response", "err", err)
		return nil, nil, err
	}

	logger.Info("tool call completed", "bytes", len(payload))
	return textResult(text), nil, nil
}
