package kingoftime

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/honeycarbs/kingoftime-mcp/pkg/logging"
)

// Config defines King of Time API client settings
type Config struct {
	Token      string
	BaseURL    string
	HTTPClient *http.Client // shared pool; left open by Close when set
	Timeout    time.Duration
	MaxRetries int
	Gate       *Gate
	Sleep      func(ctx context.Context, d time.Duration) error
	Logger     *logging.Logger
}

// Client calls the King of Time REST API
type Client struct {
	token      string
	baseURL    string
	httpClient *http.Client
	ownsHTTP   bool
	maxRetries int
	gate       *Gate
	sleep      func(ctx context.Context, d time.Duration) error
	logger     *logging.Logger
}

// APIError is returned for any non-success response, including 429 once the
// retry budget is spent.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("[%d] %s", e.StatusCode, e.Message)
}

// RecordType is the kind of clock record written by RecordTime.
type RecordType int

const (
	ClockIn  RecordType = 1
	ClockOut RecordType = 2
	Leave    RecordType = 3
	Return   RecordType = 4
)

// TimeRecord is the body of POST /daily-workings/timerecord/{employeeKey}.
// Date (YYYY-MM-DD) and Time (HH:MM) default to now upstream when empty.
type TimeRecord struct {
	Type RecordType `json:"type"`
	Date string     `json:"date,omitempty"`
	Time string     `json:"time,omitempty"`
}

// DailyWorkingsQuery filters GET /daily-workings
type DailyWorkingsQuery struct {
	Date         string
	StartDate    string
	EndDate      string
	DivisionCode string
}

type requestAction struct {
	Action string `json:"action"`
	Reason string `json:"reason,omitempty"`
}
