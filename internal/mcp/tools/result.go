package tools

import (
	"bytes"
	"encoding/json"
	"fmt"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/honeycarbs/kingoftime-mcp/pkg/kingoftime"
)

// textResult returns a text-only ToolResult
func textResult(msg string) *sdkmcp.CallToolResult {
	return &sdkmcp.CallToolResult{
		Content: []sdkmcp.Content{
			&sdkmcp.TextContent{Text: msg},
		},
	}
}

// formatPayload indents the upstream JSON by two spaces. Key order and
// non-ASCII text are kept as the API sent them.
func formatPayload(payload json.RawMessage) (string, error) {
	if len(payload) == 0 {
		return "null", nil
	}

	var buf bytes.Buffer
	if err := json.Indent(&buf, payload, "", "  "); err != nil {
		return "", fmt.Errorf("indent payload: %w", err)
	}
	return buf.String(), nil
}

// deref maps an omitted or null optional argument to "".
func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func formatAPIError(err *kingoftime.APIError) string {
	return "Error: " + err.Error()
}

// isEmptyPayload is true for no body, null, {} and [].
func isEmptyPayload(payload json.RawMessage) bool {
	if len(payload) == 0 {
		return true
	}

	var buf bytes.Buffer
	if err := json.Compact(&buf, payload); err != nil {
		return false
	}

	switch buf.String() {
	case "null", "{}", "[]", `""`:
		return true
	}
	return false
}
