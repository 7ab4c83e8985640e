package tools

import (
	"context"
	"encoding/json"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/honeycarbs/kingoftime-mcp/pkg/kingoftime"
)

const (
	approvedText = "Request approved"
	rejectedText = "Request rejected"
)

// ScheduleRequestsParams defines the arguments for the get_schedule_requests tool
type ScheduleRequestsParams struct {
	Date string `json:"date" jsonschema:"Target date (YYYY-MM-DD)"`
}

// ApproveRequestParams defines the arguments for the approve_request tool
type ApproveRequestParams struct {
	RequestID string `json:"request_id" jsonschema:"ID of the request to approve"`
}

// RejectRequestParams defines the arguments for the reject_request tool
type RejectRequestParams struct {
	RequestID string  `json:"request_id" jsonschema:"ID of the request to reject"`
	Reason    *string `json:"reason,omitempty" jsonschema:"Reason for the rejection"`
}

// WithRequestTools registers the manager-facing request review tools
func WithRequestTools() Option {
	return func(reg *registry) {
		a := reg.adapter

		addTool(reg, &sdkmcp.Tool{
			Name:        "get_schedule_requests",
			Description: "List schedule requests for a date. For managers.",
		}, func(ctx context.Context, _ *sdkmcp.CallToolRequest, in ScheduleRequestsParams) (*sdkmcp.CallToolResult, any, error) {
			return a.run(ctx, "get_schedule_requests", func(ctx context.Context, c *kingoftime.Client) (json.RawMessage, error) {
				return c.GetScheduleRequests(ctx, in.Date)
			}, "")
		})

		addTool(reg, &sdkmcp.Tool{
			Name:        "approve_request",
			Description: "Approve a request. For managers.",
		}, func(ctx context.Context, _ *sdkmcp.CallToolRequest, in ApproveRequestParams) (*sdkmcp.CallToolResult, any, error) {
			return a.run(ctx, "approve_request", func(ctx context.Context, c *kingoftime.Client) (json.RawMessage, error) {
				return c.ApproveRequest(ctx, in.RequestID)
			}, approvedText)
		})

		addTool(reg, &sdkmcp.Tool{
			Name:        "reject_request",
			Description: "Reject a request. For managers.",
		}, func(ctx context.Context, _ *sdkmcp.CallToolRequest, in RejectRequestParams) (*sdkmcp.CallToolResult, any, error) {
			return a.run(ctx, "reject_request", func(ctx context.Context, c *kingoftime.Client) (json.RawMessage, error) {
				return c.RejectRequest(ctx, in.RequestID, deref(in.Reason))
			}, rejectedText)
		})
	}
}
