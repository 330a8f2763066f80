package lookup

import (
	"fmt"

	"skycast/weather-widget/internal/openweather"
)

// Classify decides whether a current/forecast payload pair is usable. Both
// must report 200 (the gateway has already normalized the provider's mixed
// int/string cod encodings). An authorization failure on either side wins
// over not-found; anything else is an unexpected combination and is surfaced
// rather than silently dropped.
func Classify(current *openweather.CurrentPayload, forecast *openweather.ForecastPayload) error {
	if current.Cod == 200 && forecast.Cod == 200 {
		return nil
	}

	if current.Cod == 401 || forecast.Cod == 401 {
		return fmt.Errorf("%w: %s", ErrUnauthorized, current.Message)
	}

	if current.Cod == 404 || forecast.Cod == 404 {
		return fmt.Errorf("%w: %s", ErrNotFound, current.Message)
	}

	return fmt.Errorf("%w: weather cod %d, forecast cod %d",
		ErrUnknownProvider, current.Cod, forecast.Cod)
}
