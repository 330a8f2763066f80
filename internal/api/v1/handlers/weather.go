package handlers

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/rs/zerolog/log"

	"skycast/weather-widget/internal/lookup"
	"skycast/weather-widget/internal/openweather"
	"skycast/weather-widget/internal/session"
)

// WeatherHandler is the widget's server edge: one lookup endpoint, the
// session-memory endpoints backing reload replay and autocomplete, and the
// event stream the widget renders from.
type WeatherHandler struct {
	lookupService lookup.Service
	memory        *session.Memory
	events        *EventStream
	timeout       time.Duration
}

func NewWeatherHandler(lookupService lookup.Service, memory *session.Memory, events *EventStream, timeout time.Duration) *WeatherHandler {
	return &WeatherHandler{
		lookupService: lookupService,
		memory:        memory,
		events:        events,
		timeout:       timeout,
	}
}

func (h *WeatherHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		respondWithError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	switch r.URL.Path {
	case "/v1/weather":
		h.GetWeather(w, r)
	case "/v1/history":
		h.SearchHistory(w, r)
	case "/v1/session":
		h.GetSession(w, r)
	case "/v1/events":
		h.events.ServeHTTP(w, r)
	default:
		respondWithError(w, http.StatusNotFound, "not found")
	}
}

// GetWeather runs a lookup for ?q=<city> or ?lat=&lon= (with geo=true when
// the coordinates came from browser geolocation) and returns the normalized
// pair directly; the same result also goes out on the event stream.
func (h *WeatherHandler) GetWeather(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	loc, fromGeolocation, ok := locatorFromQuery(w, query)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	result, err := h.lookupService.Lookup(ctx, loc, fromGeolocation)
	if err != nil {
		log.Error().Err(err).Str("locator", loc.String()).Msg("lookup failed")
		respondWithError(w, statusForLookupError(err), err.Error())
		return
	}

	respondWithJSON(w, http.StatusOK, LookupResponse{
		Weather:  result.Weather,
		Forecast: result.Forecast,
	})
}

// SearchHistory returns searched-city autocomplete matches for ?q=<prefix>.
func (h *WeatherHandler) SearchHistory(w http.ResponseWriter, r *http.Request) {
	matches, err := h.memory.Search(r.URL.Query().Get("q"))
	if err != nil {
		log.Error().Err(err).Msg("history search failed")
		respondWithError(w, http.StatusInternalServerError, "failed to search history")
		return
	}

	respondWithJSON(w, http.StatusOK, HistoryResponse{Cities: matches})
}

// GetSession reports the last recorded lookup so a reloading widget can
// replay the last typed city before asking for geolocation again.
func (h *WeatherHandler) GetSession(w http.ResponseWriter, r *http.Request) {
	last, found, err := h.memory.LastLocation()
	if err != nil {
		log.Error().Err(err).Msg("failed to read session state")
		respondWithError(w, http.StatusInternalServerError, "failed to read session state")
		return
	}

	respondWithJSON(w, http.StatusOK, SessionResponse{
		Found:           found,
		City:            last.City,
		FromGeolocation: last.FromGeolocation,
	})
}

func locatorFromQuery(w http.ResponseWriter, query map[string][]string) (openweather.Locator, bool, bool) {
	get := func(key string) string {
		if v, ok := query[key]; ok && len(v) > 0 {
			return v[0]
		}
		return ""
	}

	latStr, lonStr := get("lat"), get("lon")
	if latStr != "" || lonStr != "" {
		lat, latErr := strconv.ParseFloat(latStr, 64)
		lon, lonErr := strconv.ParseFloat(lonStr, 64)
		if latErr != nil || lonErr != nil {
			respondWithError(w, http.StatusBadRequest, "lat and lon must both be valid numbers")
			return openweather.Locator{}, false, false
		}
		fromGeolocation, _ := strconv.ParseBool(get("geo"))
		return openweather.ByCoordinates(lat, lon), fromGeolocation, true
	}

	// A blank q falls through to the service, which rejects it before any
	// network call so the EmptyInput contract holds in one place.
	return openweather.ByName(get("q")), false, true
}
