package diag

import (
	"fmt"
	"strings"

	"weather-gateway/internal/api"
)

// DebugLogsHeader is the first line of a diagnostics content block.
const DebugLogsHeader = "--- Debug Logs ---"

// Compose builds the final tool response from the primary payload text and
// the invocation's diagnostic scope. It drains the scope; if any entries
// were recorded during the invocation they are appended as a single
// trailing content block, one line per entry in append order.
//
// Compose must be the last step before a tool returns so it captures every
// entry appended during that invocation and none from any other.
func Compose(primary string, scope *Buffer) api.ToolResponse {
	resp := api.TextResponse(primary)
	if scope == nil {
		return resp
	}
	entries := scope.Drain()
	if len(entries) == 0 {
		return resp
	}
	var sb strings.Builder
	sb.WriteString(DebugLogsHeader)
	for _, entry := range entries {
		sb.WriteString(fmt.Sprintf("\n[%s] %s", entry.Timestamp, entry.Message))
	}
	resp.Content = append(resp.Content, api.TextBlock(sb.String()))
	return resp
}
