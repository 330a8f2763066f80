package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/rs/zerolog/log"

	"skycast/weather-widget/internal/lookup"
	"skycast/weather-widget/internal/openweather"
)

func respondWithError(w http.ResponseWriter, code int, message string) {
	errorCode := "INTERNAL_ERROR"
	title := "Internal Server Error"

	switch code {
	case http.StatusBadRequest:
		errorCode = "BAD_REQUEST"
		title = "Bad Request"
	case http.StatusNotFound:
		errorCode = "NOT_FOUND"
		title = "Not Found"
	case http.StatusMethodNotAllowed:
		errorCode = "METHOD_NOT_ALLOWED"
		title = "Method Not Allowed"
	case http.StatusBadGateway:
		errorCode = "BAD_GATEWAY"
		title = "Bad Gateway"
	}

	respondWithJSON(w, code, ErrorResponse{
		Errors: []Error{
			{
				Code:   errorCode,
				Detail: message,
				Status: code,
				Title:  title,
			},
		},
	})
}

func respondWithJSON(w http.ResponseWriter, code int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.Error().Err(err).Msg("failed to encode response")
	}
}

// statusForLookupError maps the lookup error taxonomy onto HTTP statuses.
// Provider-side faults (bad credential, transport failure, contract break)
// all read as a bad gateway from the widget's point of view.
func statusForLookupError(err error) int {
	var transportErr *openweather.TransportError
	var malformedErr *lookup.MalformedPayloadError

	switch {
	case errors.Is(err, lookup.ErrEmptyInput):
		return http.StatusBadRequest
	case errors.Is(err, lookup.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, lookup.ErrUnauthorized),
		errors.Is(err, lookup.ErrUnknownProvider),
		errors.As(err, &transportErr),
		errors.As(err, &malformedErr):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
