package tools

import (
	"context"
	"encoding/json"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/honeycarbs/kingoftime-mcp/pkg/kingoftime"
)

// ListEmployeesParams defines the arguments for the list_employees tool
type ListEmployeesParams struct {
	DivisionCode *string `json:"division_code,omitempty" jsonschema:"Only list employees in this division. Omit for everyone"`
}

// GetEmployeeParams defines the arguments for the get_employee tool
type GetEmployeeParams struct {
	EmployeeCode string `json:"employee_code" jsonschema:"Employee code"`
}

// WithEmployeeTools registers the roster and organisation lookups
func WithEmployeeTools() Option {
	return func(reg *registry) {
		a := reg.adapter

		addTool(reg, &sdkmcp.Tool{
			Name:        "list_employees",
			Description: "List employees, optionally filtered by division code.",
		}, func(ctx context.Context, _ *sdkmcp.CallToolRequest, in ListEmployeesParams) (*sdkmcp.CallToolResult, any, error) {
			return a.run(ctx, "list_employees", func(ctx context.Context, c *kingoftime.Client) (json.RawMessage, error) {
				return c.ListEmployees(ctx, deref(in.DivisionCode))
			}, "")
		})

		addTool(reg, &sdkmcp.Tool{
			Name:        "get_employee",
			Description: "Get the details of one employee.",
		}, func(ctx context.Context, _ *sdkmcp.CallToolRequest, in GetEmployeeParams) (*sdkmcp.CallToolResult, any, error) {
			return a.run(ctx, "get_employee", func(ctx context.Context, c *kingoftime.Client) (json.RawMessage, error) {
				return c.GetEmployee(ctx, in.EmployeeCode)
			}, "")
		})

		addTool(reg, &sdkmcp.Tool{
			Name:        "list_divisions",
			Description: "List divisions (departments).",
		}, func(ctx context.Context, _ *sdkmcp.CallToolRequest, _ noArgs) (*sdkmcp.CallToolResult, any, error) {
			return a.run(ctx, "list_divisions", func(ctx context.Context, c *kingoftime.Client) (json.RawMessage, error) {
				return c.ListDivisions(ctx)
			}, "")
		})

		addTool(reg, &sdkmcp.Tool{
			Name:        "list_working_types",
			Description: "List employment types.",
		}, func(ctx context.Context, _ *sdkmcp.CallToolRequest, _ noArgs) (*sdkmcp.CallToolResult, any, error) {
			return a.run(ctx, "list_working_types", func(ctx context.Context, c *kingoftime.Client) (json.RawMessage, error) {
				return c.ListWorkingTypes(ctx)
			}, "")
		})

		addTool(reg, &sdkmcp.Tool{
			Name:        "list_employee_groups",
			Description: "List employee groups.",
		}, func(ctx context.Context, _ *sdkmcp.CallToolRequest, _ noArgs) (*sdkmcp.CallToolResult, any, error) {
			return a.run(ctx, "list_employee_groups", func(ctx context.Context, c *kingoftime.Client) (json.RawMessage, error) {
				return c.ListEmployeeGroups(ctx)
			}, "")
		})
	}
}
