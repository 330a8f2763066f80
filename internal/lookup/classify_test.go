package lookup_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"skycast/weather-widget/internal/lookup"
	"skycast/weather-widget/internal/openweather"
)

type ClassifyTestSuite struct {
	suite.Suite
}

func payloadPair(currentCod, forecastCod openweather.StatusCode, message string) (*openweather.CurrentPayload, *openweather.ForecastPayload) {
	current := &openweather.CurrentPayload{Cod: currentCod, Message: message}
	forecast := &openweather.ForecastPayload{Cod: forecastCod}
	return current, forecast
}

func (s *ClassifyTestSuite) TestUsablePair() {
	s.NoError(lookup.Classify(payloadPair(200, 200, "")))
}

func (s *ClassifyTestSuite) TestUnauthorized() {
	current, forecast := payloadPair(401, 401, "Invalid API key")

	err := lookup.Classify(current, forecast)

	s.ErrorIs(err, lookup.ErrUnauthorized)
	s.Contains(err.Error(), "Invalid API key")
}

func (s *ClassifyTestSuite) TestUnauthorizedOnEitherSide() {
	current, forecast := payloadPair(200, 401, "Invalid API key")
	s.ErrorIs(lookup.Classify(current, forecast), lookup.ErrUnauthorized)
}

func (s *ClassifyTestSuite) TestNotFound() {
	current, forecast := payloadPair(404, 404, "city not found")

	err := lookup.Classify(current, forecast)

	s.ErrorIs(err, lookup.ErrNotFound)
	s.Contains(err.Error(), "city not found")
}

func (s *ClassifyTestSuite) TestUnauthorizedWinsOverNotFound() {
	current, forecast := payloadPair(404, 401, "Invalid API key")
	s.ErrorIs(lookup.Classify(current, forecast), lookup.ErrUnauthorized)
}

func (s *ClassifyTestSuite) TestUnknownCombinationIsSurfaced() {
	current, forecast := payloadPair(200, 429, "")

	err := lookup.Classify(current, forecast)

	s.ErrorIs(err, lookup.ErrUnknownProvider)
	s.Contains(err.Error(), "429")
}

func TestClassifySuite(t *testing.T) {
	suite.Run(t, new(ClassifyTestSuite))
}
