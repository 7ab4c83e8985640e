package tools

import (
	"context"
	"net/http"
	"time"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/honeycarbs/kingoftime-mcp/internal/config"
	"github.com/honeycarbs/kingoftime-mcp/pkg/kingoftime"
	"github.com/honeycarbs/kingoftime-mcp/pkg/logging"
)

// Deps is everything the tools need at call time. It is built once at
// startup; nothing is read from the environment per call.
type Deps struct {
	Config     config.KingOfTime
	Logger     *logging.Logger
	HTTPClient *http.Client        // shared connection pool
	Gates      *kingoftime.GateSet // shared 429 cooldown per token
	Sleep      func(ctx context.Context, d time.Duration) error
}

// Option configures which tools are registered
type Option func(*registry)

type registry struct {
	server  *sdkmcp.Server
	adapter *adapter
	names   []string
}

// Register applies the provided tool options and returns the registered tool
// names in registration order. With no options every tool is registered.
func Register(server *sdkmcp.Server, deps Deps, opts ...Option) []string {
	if len(opts) == 0 {
		opts = All()
	}

	reg := &registry{server: server, adapter: newAdapter(deps)}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		opt(reg)
	}
	return reg.names
}

// All returns every tool group.
func All() []Option {
	return []Option{
		WithCompanyTools(),
		WithEmployeeTools(),
		WithAttendanceTools(),
		WithTimeRecordTools(),
		WithRequestTools(),
		WithTokenTools(),
	}
}

func addTool[In any](reg *registry, tool *sdkmcp.Tool, handler func(context.Context, *sdkmcp.CallToolRequest, In) (*sdkmcp.CallToolResult, any, error)) {
	reg.names = append(reg.names, tool.Name)
	sdkmcp.AddTool[In, any](reg.server, tool, handler)
}

type noArgs struct{}
