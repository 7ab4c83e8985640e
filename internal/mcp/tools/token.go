package tools

import (
	"context"
	"encoding/json"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/honeycarbs/kingoftime-mcp/pkg/kingoftime"
)

// WithTokenTools registers check_token
func WithTokenTools() Option {
	return func(reg *registry) {
		a := reg.adapter

		addTool(reg, &sdkmcp.Tool{
			Name:        "check_token",
			Description: "Check whether the API token is valid. Useful as a connection test.",
		}, func(ctx context.Context, _ *sdkmcp.CallToolRequest, _ noArgs) (*sdkmcp.CallToolResult, any, error) {
			return a.run(ctx, "check_token", func(ctx context.Context, c *kingoftime.Client) (json.RawMessage, error) {
				return c.CheckToken(ctx)
			}, "")
		})
	}
}
