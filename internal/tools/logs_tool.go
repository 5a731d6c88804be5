package tools

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"weather-gateway/internal/api"
	"weather-gateway/internal/diag"
)

// --- Logs Tool Implementation ---

const (
	logsDefaultLines = 20
	logsMaxLines     = 100
)

// LogsTool returns a snapshot of the shared diagnostic history. It is a
// pure read: it never drains the history and never calls upstream.
type LogsTool struct {
	history *diag.Buffer
}

// Statically verify that LogsTool implements the ToolExecutor interface.
var _ ToolExecutor = (*LogsTool)(nil)

// NewLogsTool creates a new instance of the LogsTool.
func NewLogsTool(history *diag.Buffer) *LogsTool {
	return &LogsTool{history: history}
}

// Definition describes the tool to callers.
func (lt *LogsTool) Definition() Tool {
	return NewTool(
		"get-logs",
		"Get recent server log entries for debugging",
		JSONSchema{
			Type: "object",
			Properties: map[string]*JSONSchema{
				"lines": {
					Type:        "integer",
					Description: fmt.Sprintf("Number of recent log entries to return (1-%d, default %d)", logsMaxLines, logsDefaultLines),
				},
			},
		},
	)
}

// Execute reads the last N entries without mutating the history.
func (lt *LogsTool) Execute(_ context.Context, arguments string) (api.ToolResponse, error) {
	var args struct {
		Lines *int `json:"lines"`
	}
	if err := json.Unmarshal([]byte(arguments), &args); err != nil {
		return api.ToolResponse{}, fmt.Errorf("invalid arguments for logs tool: %w", err)
	}
	lines := logsDefaultLines
	if args.Lines != nil {
		lines = *args.Lines
		if lines < 1 || lines > logsMaxLines {
			return api.ToolResponse{}, fmt.Errorf("lines must be between 1 and %d, got %d", logsMaxLines, lines)
		}
	}

	entries := lt.history.PeekLast(lines)
	if len(entries) == 0 {
		return api.TextResponse("No log entries recorded."), nil
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Last %d log entries:\n", len(entries)))
	for _, entry := range entries {
		sb.WriteString(fmt.Sprintf("\n[%s] %s", entry.Timestamp, entry.Message))
	}
	return api.TextResponse(sb.String()), nil
}
