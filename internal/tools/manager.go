package tools

import (
	"context"
	"errors"
	"fmt"

	"weather-gateway/internal/api"
)

// ErrToolNotFound is returned when an invocation names an unregistered tool.
var ErrToolNotFound = errors.New("tool not found")

// ToolManager holds a registry of all available tools.
type ToolManager struct {
	tools map[string]ToolExecutor
	order []string
}

func NewToolManager() *ToolManager {
	return &ToolManager{
		tools: make(map[string]ToolExecutor),
	}
}

// Register adds a new tool to the manager's registry.
func (tm *ToolManager) Register(tool ToolExecutor) {
	name := tool.Definition().Name
	if _, exists := tm.tools[name]; !exists {
		tm.order = append(tm.order, name)
	}
	tm.tools[name] = tool
}

// GetDefinitions returns all registered tool definitions in registration
// order.
func (tm *ToolManager) GetDefinitions() []Tool {
	defs := make([]Tool, 0, len(tm.tools))
	for _, name := range tm.order {
		defs = append(defs, tm.tools[name].Definition())
	}
	return defs
}

// Execute runs a tool by name with the given arguments.
func (tm *ToolManager) Execute(ctx context.Context, name, arguments string) (api.ToolResponse, error) {
	tool, ok := tm.tools[name]
	if !ok {
		return api.ToolResponse{}, fmt.Errorf("%w: '%s'", ErrToolNotFound, name)
	}
	return tool.Execute(ctx, arguments)
}

// ToolCount returns the number of registered tools.
func (tm *ToolManager) ToolCount() int {
	return len(tm.tools)
}
