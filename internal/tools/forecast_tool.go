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

// --- Forecast Tool Implementation ---

// ForecastTool fetches the forecast for a coordinate via a two-stage
// pipeline: resolve the grid point, then fetch the forecast resource it
// names.
type ForecastTool struct {
	client  *nws.Client
	history *diag.Buffer
}

// Statically verify that ForecastTool implements the ToolExecutor interface.
var _ ToolExecutor = (*ForecastTool)(nil)

// NewForecastTool creates a new instance of the ForecastTool.
func NewForecastTool(client *nws.Client, history *diag.Buffer) *ForecastTool {
	return &ForecastTool{client: client, history: history}
}

// Definition describes the tool to callers.
func (ft *ForecastTool) Definition() Tool {
	return NewTool(
		"get-forecast",
		"Get the weather forecast for a location",
		JSONSchema{
			Type: "object",
			Properties: map[string]*JSONSchema{
				"latitude": {
					Type:        "number",
					Description: "Latitude of the location (-90 to 90)",
				},
				"longitude": {
					Type:        "number",
					Description: "Longitude of the location (-180 to 180)",
				},
			},
			Required: []string{"latitude", "longitude"},
		},
	)
}

// Execute runs the two-stage pipeline. Each stage's failure short-circuits
// with its own informational message and never starts the next stage; only
// the final success path goes through the composer.
func (ft *ForecastTool) Execute(ctx context.Context, arguments string) (api.ToolResponse, error) {
	var args struct {
		Latitude  *float64 `json:"latitude"`
		Longitude *float64 `json:"longitude"`
	}
	if err := json.Unmarshal([]byte(arguments), &args); err != nil {
		return api.ToolResponse{}, fmt.Errorf("invalid arguments for forecast tool: %w", err)
	}
	if args.Latitude == nil || args.Longitude == nil {
		return api.ToolResponse{}, fmt.Errorf("latitude and longitude are required")
	}
	lat, lon := *args.Latitude, *args.Longitude
	if lat < -90 || lat > 90 {
		return api.ToolResponse{}, fmt.Errorf("latitude must be between -90 and 90, got %v", lat)
	}
	if lon < -180 || lon > 180 {
		return api.ToolResponse{}, fmt.Errorf("longitude must be between -180 and 180, got %v", lon)
	}

	scope := diag.NewScope(ft.history)

	points := nws.Fetch[nws.PointsResponse](ctx, ft.client, ft.client.PointsURL(lat, lon), scope)
	if !points.OK {
		return api.TextResponse(fmt.Sprintf(
			"Failed to retrieve grid point data for coordinates: %v, %v. This location may not be supported by the NWS API (only US locations are supported).",
			lat, lon)), nil
	}

	forecastURL := points.Body.Properties.Forecast
	if forecastURL == "" {
		return api.TextResponse("Failed to get forecast URL from grid point data"), nil
	}

	forecast := nws.Fetch[nws.ForecastResponse](ctx, ft.client, forecastURL, scope)
	if !forecast.OK {
		return api.TextResponse("Failed to retrieve forecast data"), nil
	}

	periods := forecast.Body.Properties.Periods
	if len(periods) == 0 {
		return api.TextResponse("No forecast periods available"), nil
	}

	formatted := make([]string, 0, len(periods))
	for _, period := range periods {
		formatted = append(formatted, formatPeriod(period))
	}
	text := fmt.Sprintf("Forecast for %v, %v:\n\n%s", lat, lon, strings.Join(formatted, "\n"))
	return diag.Compose(text, scope), nil
}

// formatPeriod renders one forecast period as plain text.
func formatPeriod(period nws.ForecastPeriod) string {
	temperature := string(period.Temperature)
	if temperature == "" {
		temperature = "Unknown"
	}
	lines := []string{
		orPlaceholder(period.Name, "Unknown") + ":",
		fmt.Sprintf("Temperature: %s°%s", temperature, period.TemperatureUnit),
		strings.TrimRight(fmt.Sprintf("Wind: %s %s", orPlaceholder(period.WindSpeed, "Unknown"), period.WindDirection), " "),
		orPlaceholder(period.ShortForecast, "No forecast available"),
		"---",
	}
	return strings.Join(lines, "\n")
}
