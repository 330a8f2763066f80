package handlers

import (
	"skycast/weather-widget/internal/lookup"
)

type LookupResponse struct {
	Weather  lookup.Weather       `json:"weather"`
	Forecast []lookup.ForecastDay `json:"forecast"`
}

type HistoryResponse struct {
	Cities []string `json:"cities"`
}

type SessionResponse struct {
	Found           bool   `json:"found"`
	City            string `json:"city,omitempty"`
	FromGeolocation bool   `json:"from_geolocation"`
}

type Notification struct {
	Message string `json:"message"`
	Kind    string `json:"kind"`
}

type Error struct {
	Code   string `json:"code"`
	Detail string `json:"detail"`
	Status int    `json:"status"`
	Title  string `json:"title"`
}

type ErrorResponse struct {
	Errors []Error `json:"errors"`
}
