package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"sync"

	"github.com/rs/zerolog/log"

	"skycast/weather-widget/internal/lookup"
)

type event struct {
	name string
	data any
}

// EventStream broadcasts render and notify events to connected widgets over
// Server-Sent Events. It is the lookup.Sink implementation: whatever the
// newest lookup produced is pushed here, and the widget paints it.
type EventStream struct {
	mu          sync.Mutex
	subscribers map[chan event]struct{}
}

func NewEventStream() *EventStream {
	return &EventStream{
		subscribers: make(map[chan event]struct{}),
	}
}

func (s *EventStream) Render(weather lookup.Weather, forecast []lookup.ForecastDay) {
	s.broadcast(event{name: "render", data: LookupResponse{Weather: weather, Forecast: forecast}})
}

func (s *EventStream) Notify(message string, kind string) {
	s.broadcast(event{name: "notify", data: Notification{Message: message, Kind: kind}})
}

func (s *EventStream) broadcast(ev event) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for sub := range s.subscribers {
		select {
		case sub <- ev:
		default:
			// Slow subscriber; drop the event rather than block a lookup.
		}
	}
}

func (s *EventStream) subscribe() chan event {
	sub := make(chan event, 8)
	s.mu.Lock()
	s.subscribers[sub] = struct{}{}
	s.mu.Unlock()
	return sub
}

func (s *EventStream) unsubscribe(sub chan event) {
	s.mu.Lock()
	delete(s.subscribers, sub)
	s.mu.Unlock()
}

func (s *EventStream) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	flusher, ok := w.(http.Flusher)
	if !ok {
		respondWithError(w, http.StatusInternalServerError, "streaming not supported")
		return
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	flusher.Flush()

	sub := s.subscribe()
	defer s.unsubscribe(sub)

	for {
		select {
		case ev := <-sub:
			payload, err := json.Marshal(ev.data)
			if err != nil {
				log.Error().Err(err).Str("event", ev.name).Msg("failed to encode event")
				continue
			}
			fmt.Fprintf(w, "event: %s\ndata: %s\n\n", ev.name, payload)
			flusher.Flush()
		case <-r.Context().Done():
			return
		}
	}
}
