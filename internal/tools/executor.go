package tools

import (
	"context"

	"weather-gateway/internal/api"
)

// ToolExecutor is the contract every tool implements so the manager can
// dispatch invocations without knowing tool specifics.
//
// Execute receives the caller's arguments as a JSON string and returns the
// composed response. The error return is reserved for argument validation:
// upstream trouble never surfaces as an error, it becomes an informational
// response instead. The context carries cancellation for outbound calls.
type ToolExecutor interface {
	// Definition returns the tool's schema as shown to callers.
	Definition() Tool

	// Execute runs the tool with the given JSON arguments.
	Execute(ctx context.Context, arguments string) (api.ToolResponse, error)
}
