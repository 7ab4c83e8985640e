package tools

import (
	"context"
	"encoding/json"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/honeycarbs/kingoftime-mcp/pkg/kingoftime"
)

// WithCompanyTools registers get_company and list_administrators
func WithCompanyTools() Option {
	return func(reg *registry) {
		a := reg.adapter

		addTool(reg, &sdkmcp.Tool{
			Name:        "get_company",
			Description: "Get company information such as the company code and company name.",
		}, func(ctx context.Context, _ *sdkmcp.CallToolRequest, _ noArgs) (*sdkmcp.CallToolResult, any, error) {
			return a.run(ctx, "get_company", func(ctx context.Context, c *kingoftime.Client) (json.RawMessage, error) {
				return c.GetCompany(ctx)
			}, "")
		})

		addTool(reg, &sdkmcp.Tool{
			Name:        "list_administrators",
			Description: "List administrators with their names, email addresses and divisions.",
		}, func(ctx context.Context, _ *sdkmcp.CallToolRequest, _ noArgs) (*sdkmcp.CallToolResult, any, error) {
			return a.run(ctx, "list_administrators", func(ctx context.Context, c *kingoftime.Client) (json.RawMessage, error) {
				return c.ListAdministrators(ctx)
			}, "")
		})
	}
}
