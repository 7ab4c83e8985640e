package kingoftime

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/honeycarbs/kingoftime-mcp/pkg/logging"
)

const (
	DefaultBaseURL    = "https://api.kingtime.jp/v1.0"
	DefaultTimeout    = 30 * time.Second
	DefaultMaxRetries = 3
)

// NewClient instantiates a King of Time API client
func NewClient(cfg Config) (*Client, error) {
	if cfg.Token == "" {
		return nil, fmt.Errorf("kingoftime: access token is required")
	}

	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	baseURL = strings.TrimSuffix(baseURL, "/")

	httpClient := cfg.HTTPClient
	ownsHTTP := false
	if httpClient == nil {
		timeout := cfg.Timeout
		if timeout <= 0 {
			timeout = DefaultTimeout
		}
		httpClient = &http.Client{Timeout: timeout}
		ownsHTTP = true
	}

	maxRetries := cfg.MaxRetries
	if maxRetries <= 0 {
		maxRetries = DefaultMaxRetries
	}

	sleep := cfg.Sleep
	if sleep == nil {
		sleep = sleepContext
	}

	logger := cfg.Logger
	if logger == nil {
		logger = logging.NewNop()
	}

	return &Client{
		token:      cfg.Token,
		baseURL:    baseURL,
		httpClient: httpClient,
		ownsHTTP:   ownsHTTP,
		maxRetries: maxRetries,
		gate:       cfg.Gate,
		sleep:      sleep,
		logger:     logger,
	}, nil
}

// Close releases connections held by a client-owned transport. A shared
// HTTPClient passed through Config is left alone.
func (c *Client) Close() error {
	if c == nil || !c.ownsHTTP {
		return nil
	}
	c.httpClient.CloseIdleConnections()
	return nil
}

func (c *Client) get(ctx context.Context, p string, query url.Values) (json.RawMessage, error) {
	return c.do(ctx, http.MethodGet, p, query, nil)
}

func (c *Client) post(ctx context.Context, p string, body any) (json.RawMessage, error) {
	return c.do(ctx, http.MethodPost, p, nil, body)
}

func (c *Client) put(ctx context.Context, p string, body any) (json.RawMessage, error) {
	return c.do(ctx, http.MethodPut, p, nil, body)
}

// Company and administrators

func (c *Client) GetCompany(ctx context.Context) (json.RawMessage, error) {
	return c.get(ctx, "/company", nil)
}

func (c *Client) ListAdministrators(ctx context.Context) (json.RawMessage, error) {
	return c.get(ctx, "/administrators", nil)
}

// Employees

// ListEmployees lists employees, optionally restricted to one division.
func (c *Client) ListEmployees(ctx context.Context, divisionCode string) (json.RawMessage, error) {
	return c.get(ctx, "/employees", params("divisionCode", divisionCode))
}

func (c *Client) GetEmployee(ctx context.Context, employeeCode string) (json.RawMessage, error) {
	return c.get(ctx, "/employees/"+url.PathEscape(employeeCode), nil)
}

func (c *Client) ListDivisions(ctx context.Context) (json.RawMessage, error) {
	return c.get(ctx, "/divisions", nil)
}

func (c *Client) ListWorkingTypes(ctx context.Context) (json.RawMessage, error) {
	return c.get(ctx, "/working-types", nil)
}

func (c *Client) ListEmployeeGroups(ctx context.Context) (json.RawMessage, error) {
	return c.get(ctx, "/employee-groups", nil)
}

// Attendance

// GetDailyWorkings fetches daily attendance for one date or a date range.
func (c *Client) GetDailyWorkings(ctx context.Context, q DailyWorkingsQuery) (json.RawMessage, error) {
	return c.get(ctx, "/daily-workings", params(
		"date", q.Date,
		"startDate", q.StartDate,
		"endDate", q.EndDate,
		"divisionCode", q.DivisionCode,
	))
}

// GetMonthlyWorkings fetches monthly totals; yearMonth is YYYY-MM.
func (c *Client) GetMonthlyWorkings(ctx context.Context, yearMonth, divisionCode string) (json.RawMessage, error) {
	return c.get(ctx, "/monthly-workings/"+url.PathEscape(yearMonth), params("divisionCode", divisionCode))
}

func (c *Client) GetYearlyHolidays(ctx context.Context, typeCode string, year int) (json.RawMessage, error) {
	return c.get(ctx, "/yearly-workings/holidays/"+url.PathEscape(typeCode)+"/"+strconv.Itoa(year), nil)
}

// Time records

// RecordTime writes a clock record. It is retried on 429 only.
func (c *Client) RecordTime(ctx context.Context, employeeKey string, rec TimeRecord) (json.RawMessage, error) {
	return c.post(ctx, "/daily-workings/timerecord/"+url.PathEscape(employeeKey), rec)
}

// Requests

func (c *Client) GetScheduleRequests(ctx context.Context, date string) (json.RawMessage, error) {
	return c.get(ctx, "/schedule-requests/"+url.PathEscape(date), nil)
}

func (c *Client) ApproveRequest(ctx context.Context, requestID string) (json.RawMessage, error) {
	return c.put(ctx, "/requests/"+url.PathEscape(requestID), requestAction{Action: "approve"})
}

// RejectRequest rejects a request; reason is sent only when non-empty.
func (c *Client) RejectRequest(ctx context.Context, requestID, reason string) (json.RawMessage, error) {
	return c.put(ctx, "/requests/"+url.PathEscape(requestID), requestAction{Action: "reject", Reason: reason})
}

// CheckToken asks the API whether the client's own token is usable.
func (c *Client) CheckToken(ctx context.Context) (json.RawMessage, error) {
	return c.get(ctx, "/tokens/"+url.PathEscape(c.token)+"/available", nil)
}
