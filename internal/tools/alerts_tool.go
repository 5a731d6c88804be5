package tools

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"weather-gateway/internal/api"
	"weather-gateway/internal/diag"
	"weather-gateway/internal/nws"
)

// --- Alerts Tool Implementation ---

const (
	alertsDefaultLimit = 10
	alertsMaxLimit     = 50
)

// AlertsTool fetches active weather alerts for a US state.
type AlertsTool struct {
	client  *nws.Client
	history *diag.Buffer
}

// Statically verify that AlertsTool implements the ToolExecutor interface.
var _ ToolExecutor = (*AlertsTool)(nil)

// NewAlertsTool creates a new instance of the AlertsTool.
func NewAlertsTool(client *nws.Client, history *diag.Buffer) *AlertsTool {
	return &AlertsTool{client: client, history: history}
}

// Definition describes the tool to callers using the type-safe schema
// structures.
func (at *AlertsTool) Definition() Tool {
	return NewTool(
		"get-alerts",
		"Get active weather alerts for a US state",
		JSONSchema{
			Type: "object",
			Properties: map[string]*JSONSchema{
				"state": {
					Type:        "string",
					Description: "Two-letter US state code, e.g. 'CA' or 'NY'",
				},
				"limit": {
					Type:        "integer",
					Description: fmt.Sprintf("Maximum number of alerts to return (1-%d, default %d)", alertsMaxLimit, alertsDefaultLimit),
				},
			},
			Required: []string{"state"},
		},
	)
}

// Execute performs one bounded call against the alerts feed. Upstream
// failure short-circuits with a single informational block; a successful
// fetch, including one with zero alerts, is funneled through the composer.
func (at *AlertsTool) Execute(ctx context.Context, arguments string) (api.ToolResponse, error) {
	var args struct {
		State string `json:"state"`
		Limit *int   `json:"limit"`
	}
	if err := json.Unmarshal([]byte(arguments), &args); err != nil {
		return api.ToolResponse{}, fmt.Errorf("invalid arguments for alerts tool: %w", err)
	}

	state := strings.ToUpper(strings.TrimSpace(args.State))
	if !isStateCode(state) {
		return api.ToolResponse{}, fmt.Errorf("state must be a two-letter code, got %q", args.State)
	}
	limit := alertsDefaultLimit
	if args.Limit != nil {
		limit = *args.Limit
		if limit < 1 || limit > alertsMaxLimit {
			return api.ToolResponse{}, fmt.Errorf("limit must be between 1 and %d, got %d", alertsMaxLimit, limit)
		}
	}

	scope := diag.NewScope(at.history)
	result := nws.Fetch[nws.AlertsResponse](ctx, at.client, at.client.AlertsURL(state), scope)
	if !result.OK {
		return api.TextResponse("Failed to retrieve alerts data"), nil
	}

	features := result.Body.Features
	if len(features) == 0 {
		return diag.Compose(fmt.Sprintf("No active alerts for %s", state), scope), nil
	}
	if len(features) > limit {
		features = features[:limit]
	}

	formatted := make([]string, 0, len(features))
	for _, feature := range features {
		formatted = append(formatted, formatAlert(feature))
	}
	text := fmt.Sprintf("Active alerts for %s:\n\n%s", state, strings.Join(formatted, "\n"))
	return diag.Compose(text, scope), nil
}

func isStateCode(s string) bool {
	if len(s) != 2 {
		return false
	}
	for _, r := range s {
		if r < 'A' || r > 'Z' {
			return false
		}
	}
	return true
}

// formatAlert renders one alert feature as plain text. Missing fields fall
// back to placeholders rather than errors.
func formatAlert(feature nws.AlertFeature) string {
	props := feature.Properties
	lines := []string{
		"Event: " + orPlaceholder(props.Event, "Unknown"),
		"Area: " + orPlaceholder(props.AreaDesc, "Unknown"),
		"Severity: " + orPlaceholder(props.Severity, "Unknown"),
		"Status: " + orPlaceholder(props.Status, "Unknown"),
		"Headline: " + orPlaceholder(props.Headline, "No headline"),
		"---",
	}
	return strings.Join(lines, "\n")
}

func orPlaceholder(value, placeholder string) string {
	if value == "" {
		return placeholder
	}
	return value
}
