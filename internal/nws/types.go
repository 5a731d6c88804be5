package nws

import "encoding/json"

// Response shapes for the three NWS endpoints the gateway consumes. Every
// field is optional on the wire; missing values are rendered as
// placeholders by the tools, never treated as parse errors.

// AlertsResponse is the alerts feed for a state.
type AlertsResponse struct {
	Features []AlertFeature `json:"features"`
}

// AlertFeature is a single active alert.
type AlertFeature struct {
	Properties AlertProperties `json:"properties"`
}

// AlertProperties carries the alert fields the gateway formats.
type AlertProperties struct {
	Event    string `json:"event"`
	AreaDesc string `json:"areaDesc"`
	Severity string `json:"severity"`
	Status   string `json:"status"`
	Headline string `json:"headline"`
}

// PointsResponse resolves a coordinate to its forecast resource.
type PointsResponse struct {
	Properties struct {
		Forecast string `json:"forecast"`
	} `json:"properties"`
}

// ForecastResponse is the forecast for a grid point.
type ForecastResponse struct {
	Properties struct {
		Periods []ForecastPeriod `json:"periods"`
	} `json:"properties"`
}

// ForecastPeriod is one named span of the forecast. Temperature is kept as
// json.Number so an absent value renders as a placeholder rather than a
// spurious zero.
type ForecastPeriod struct {
	Name            string      `json:"name"`
	Temperature     json.Number `json:"temperature"`
	TemperatureUnit string      `json:"temperatureUnit"`
	WindSpeed       string      `json:"windSpeed"`
	WindDirection   string      `json:"windDirection"`
	ShortForecast   string      `json:"shortForecast"`
}
