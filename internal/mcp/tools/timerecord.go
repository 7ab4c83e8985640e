package tools

import (
	"context"
	"encoding/json"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/honeycarbs/kingoftime-mcp/pkg/kingoftime"
)

// RecordTimeParams defines the arguments for the record_time tool
type RecordTimeParams struct {
	EmployeeKey string  `json:"employee_key" jsonschema:"Employee key"`
	RecordType  int     `json:"record_type" jsonschema:"Record type: 1 clock-in, 2 clock-out, 3 leave, 4 return"`
	Date        *string `json:"date,omitempty" jsonschema:"Record date (YYYY-MM-DD). Defaults to today"`
	Time        *string `json:"time,omitempty" jsonschema:"Record time (HH:MM). Defaults to now"`
}

// WithTimeRecordTools registers record_time
func WithTimeRecordTools() Option {
	return func(reg *registry) {
		a := reg.adapter

		addTool(reg, &sdkmcp.Tool{
			Name:        "record_time",
			Description: "Record a clock-in, clock-out, leave or return for an employee.",
		}, func(ctx context.Context, _ *sdkmcp.CallToolRequest, in RecordTimeParams) (*sdkmcp.CallToolResult, any, error) {
			return a.run(ctx, "record_time", func(ctx context.Context, c *kingoftime.Client) (json.RawMessage, error) {
				return c.RecordTime(ctx, in.EmployeeKey, kingoftime.TimeRecord{
					Type: kingoftime.RecordType(in.RecordType),
					Date: deref(in.Date),
					Time: deref(in.Time),
				})
			}, "")
		})
	}
}
