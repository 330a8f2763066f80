package lookup

import (
	"context"
	"strings"
	"sync/atomic"

	"github.com/rs/zerolog/log"

	"skycast/weather-widget/internal/db/lookuplog"
	"skycast/weather-widget/internal/openweather"
)

// Result is the normalized output of one completed lookup.
type Result struct {
	Weather  Weather       `json:"weather"`
	Forecast []ForecastDay `json:"forecast"`
}

// SessionMemory is what the service needs from session state: remembering
// the last resolved locator and the searched-city history.
type SessionMemory interface {
	RecordLookup(loc openweather.Locator, fromGeolocation bool) error
	RecordHistory(city string) error
}

type Service interface {
	Lookup(ctx context.Context, loc openweather.Locator, fromGeolocation bool) (Result, error)
}

type service struct {
	gateway    openweather.Client
	normalizer *Normalizer
	memory     SessionMemory
	sink       Sink
	lookupLog  lookuplog.Repository

	// seq orders overlapping lookups; only the newest one may reach the
	// sink and session memory, so the widget never shows a stale city.
	seq atomic.Uint64
}

func NewService(
	gateway openweather.Client,
	normalizer *Normalizer,
	memory SessionMemory,
	sink Sink,
	lookupLog lookuplog.Repository,
) Service {
	return &service{
		gateway:    gateway,
		normalizer: normalizer,
		memory:     memory,
		sink:       sink,
		lookupLog:  lookupLog,
	}
}

// Lookup fetches, classifies and normalizes the weather pair for a locator.
// Every failure is returned to the caller and, when the lookup is still the
// newest one, also pushed to the sink's notification surface.
func (s *service) Lookup(ctx context.Context, loc openweather.Locator, fromGeolocation bool) (Result, error) {
	if !loc.IsCoordinates() && strings.TrimSpace(loc.City()) == "" {
		return Result{}, s.fail(s.seq.Add(1), ErrEmptyInput)
	}

	seq := s.seq.Add(1)

	current, forecast, err := s.gateway.FetchPair(ctx, loc)
	if err != nil {
		return Result{}, s.fail(seq, err)
	}

	if err := Classify(current, forecast); err != nil {
		return Result{}, s.fail(seq, err)
	}

	weather, err := s.normalizer.NormalizeWeather(current)
	if err != nil {
		return Result{}, s.fail(seq, err)
	}

	days, err := s.normalizer.NormalizeForecast(forecast)
	if err != nil {
		return Result{}, s.fail(seq, err)
	}

	result := Result{Weather: weather, Forecast: days}

	if s.stale(seq) {
		log.Debug().Str("locator", loc.String()).Msg("discarding stale lookup result")
		return result, nil
	}

	if err := s.memory.RecordLookup(loc, fromGeolocation); err != nil {
		log.Error().Err(err).Msg("failed to record last location")
	}
	if !fromGeolocation && !loc.IsCoordinates() {
		if err := s.memory.RecordHistory(loc.City()); err != nil {
			log.Error().Err(err).Msg("failed to record search history")
		}
	}

	s.sink.Render(weather, days)

	go func() {
		if s.lookupLog != nil {
			if err := s.lookupLog.LogLookup(weather.City, weather.Country, weather.Celsius, weather.Condition, fromGeolocation); err != nil {
				log.Error().Err(err).Msg("failed to log lookup")
			}
		}
	}()

	return result, nil
}

// fail notifies the sink unless a newer lookup has started, then passes the
// error through unchanged.
func (s *service) fail(seq uint64, err error) error {
	if !s.stale(seq) {
		s.sink.Notify(err.Error(), NotifyError)
	}
	return err
}

func (s *service) stale(seq uint64) bool {
	return seq != s.seq.Load()
}
