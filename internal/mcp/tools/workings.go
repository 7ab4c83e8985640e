package tools

import (
	"context"
	"encoding/json"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/honeycarbs/kingoftime-mcp/pkg/kingoftime"
)

// DailyWorkingsParams defines the arguments for the get_daily_workings tool
type DailyWorkingsParams struct {
	Date         *string `json:"date,omitempty" jsonschema:"Single day (YYYY-MM-DD)"`
	StartDate    *string `json:"start_date,omitempty" jsonschema:"Start of the range (YYYY-MM-DD)"`
	EndDate      *string `json:"end_date,omitempty" jsonschema:"End of the range (YYYY-MM-DD)"`
	DivisionCode *string `json:"division_code,omitempty" jsonschema:"Only include this division"`
}

// MonthlyWorkingsParams defines the arguments for the get_monthly_workings tool
type MonthlyWorkingsParams struct {
	Date         string  `json:"date" jsonschema:"Target month (YYYY-MM)"`
	DivisionCode *string `json:"division_code,omitempty" jsonschema:"Only include this division"`
}

// YearlyHolidaysParams defines the arguments for the get_yearly_holidays tool
type YearlyHolidaysParams struct {
	TypeCode string `json:"type_code" jsonschema:"Leave type code"`
	Year     int    `json:"year" jsonschema:"Target year, e.g. 2026"`
}

// WithAttendanceTools registers the daily, monthly and yearly attendance reads
func WithAttendanceTools() Option {
	return func(reg *registry) {
		a := reg.adapter

		addTool(reg, &sdkmcp.Tool{
			Name:        "get_daily_workings",
			Description: "Get daily attendance data for one date or a date range.",
		}, func(ctx context.Context, _ *sdkmcp.CallToolRequest, in DailyWorkingsParams) (*sdkmcp.CallToolResult, any, error) {
			return a.run(ctx, "get_daily_workings", func(ctx context.Context, c *kingoftime.Client) (json.RawMessage, error) {
				return c.GetDailyWorkings(ctx, kingoftime.DailyWorkingsQuery{
					Date:         deref(in.Date),
					StartDate:    deref(in.StartDate),
					EndDate:      deref(in.EndDate),
					DivisionCode: deref(in.DivisionCode),
				})
			}, "")
		})

		addTool(reg, &sdkmcp.Tool{
			Name:        "get_monthly_workings",
			Description: "Get monthly attendance totals.",
		}, func(ctx context.Context, _ *sdkmcp.CallToolRequest, in MonthlyWorkingsParams) (*sdkmcp.CallToolResult, any, error) {
			return a.run(ctx, "get_monthly_workings", func(ctx context.Context, c *kingoftime.Client) (json.RawMessage, error) {
				return c.GetMonthlyWorkings(ctx, in.Date, deref(in.DivisionCode))
			}, "")
		})

		addTool(reg, &sdkmcp.Tool{
			Name:        "get_yearly_holidays",
			Description: "Get yearly leave data for a leave type.",
		}, func(ctx context.Context, _ *sdkmcp.CallToolRequest, in YearlyHolidaysParams) (*sdkmcp.CallToolResult, any, error) {
			return a.run(ctx, "get_yearly_holidays", func(ctx context.Context, c *kingoftime.Client) (json.RawMessage, error) {
				return c.GetYearlyHolidays(ctx, in.TypeCode, in.Year)
			}, "")
		})
	}
}
