package openweather

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

const defaultBaseURL = "https://api.openweathermap.org/data/2.5"

// TransportError is a network or parse failure on one of the outbound calls.
// It never reaches the normalizer; the caller surfaces it to the user.
type TransportError struct {
	Endpoint string
	Err      error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("openweather %s request failed: %v", e.Endpoint, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// Client fetches current conditions and the 5-day/3-hour forecast for a
// locator from the OpenWeatherMap API.
type Client interface {
	FetchPair(ctx context.Context, loc Locator) (*CurrentPayload, *ForecastPayload, error)
	GetHTTPClient() *http.Client
}

type client struct {
	apiKey  string
	baseURL string
	client  *http.Client
}

func NewClient(apiKey, baseURL string) Client {
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	return &client{
		apiKey:  apiKey,
		baseURL: baseURL,
		client: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// FetchPair issues the /weather and /forecast calls concurrently and waits
// for both. A TransportError on either call fails the pair; in-body provider
// error codes do not, those are left for classification.
func (c *client) FetchPair(ctx context.Context, loc Locator) (*CurrentPayload, *ForecastPayload, error) {
	type currentResult struct {
		payload *CurrentPayload
		err     error
	}
	type forecastResult struct {
		payload *ForecastPayload
		err     error
	}

	currentCh := make(chan currentResult, 1)
	forecastCh := make(chan forecastResult, 1)

	go func() {
		var payload CurrentPayload
		err := c.fetch(ctx, "weather", loc, &payload)
		currentCh <- currentResult{&payload, err}
	}()

	go func() {
		var payload ForecastPayload
		err := c.fetch(ctx, "forecast", loc, &payload)
		forecastCh <- forecastResult{&payload, err}
	}()

	current := <-currentCh
	forecast := <-forecastCh

	if current.err != nil {
		return nil, nil, current.err
	}
	if forecast.err != nil {
		return nil, nil, forecast.err
	}

	return current.payload, forecast.payload, nil
}

// fetch issues one GET and decodes the body regardless of HTTP status:
// the provider reports errors through the body's cod field.
func (c *client) fetch(ctx context.Context, endpoint string, loc Locator, out any) error {
	values := loc.query()
	values.Set("appid", c.apiKey)

	url := fmt.Sprintf("%s/%s?%s", c.baseURL, endpoint, values.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return &TransportError{Endpoint: endpoint, Err: err}
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return &TransportError{Endpoint: endpoint, Err: err}
	}
	defer resp.Body.Close()

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return &TransportError{Endpoint: endpoint, Err: fmt.Errorf("malformed JSON: %w", err)}
	}

	return nil
}

func (c *client) GetHTTPClient() *http.Client {
	return c.client
}
