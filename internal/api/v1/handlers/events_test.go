package handlers_test

import (
	"bufio"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"skycast/weather-widget/internal/api/v1/handlers"
	"skycast/weather-widget/internal/lookup"
)

type EventStreamTestSuite struct {
	suite.Suite
	events *handlers.EventStream
	server *httptest.Server
}

func (s *EventStreamTestSuite) SetupTest() {
	s.events = handlers.NewEventStream()
	s.server = httptest.NewServer(s.events)
}

func (s *EventStreamTestSuite) TearDownTest() {
	s.server.Close()
}

// readEvent keeps broadcasting until the subscriber sees one full event,
// since subscription and broadcast race on connection setup.
func (s *EventStreamTestSuite) readEvent(broadcast func()) (name, data string) {
	resp, err := http.Get(s.server.URL)
	s.Require().NoError(err)
	defer resp.Body.Close()

	s.Equal("text/event-stream", resp.Header.Get("Content-Type"))

	stop := make(chan struct{})
	defer close(stop)
	go func() {
		ticker := time.NewTicker(20 * time.Millisecond)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				broadcast()
			case <-stop:
				return
			}
		}
	}()

	scanner := bufio.NewScanner(resp.Body)
	for scanner.Scan() {
		line := scanner.Text()
		if strings.HasPrefix(line, "event: ") {
			name = strings.TrimPrefix(line, "event: ")
		}
		if strings.HasPrefix(line, "data: ") {
			data = strings.TrimPrefix(line, "data: ")
			return name, data
		}
	}
	s.FailNow("stream closed before an event arrived")
	return "", ""
}

func (s *EventStreamTestSuite) TestRenderIsBroadcast() {
	weather := lookup.Weather{City: "Paris", Celsius: 20.0}

	name, data := s.readEvent(func() {
		s.events.Render(weather, []lookup.ForecastDay{{Date: "2023-11-15"}})
	})

	s.Equal("render", name)
	s.Contains(data, `"Paris"`)
	s.Contains(data, `"2023-11-15"`)
}

func (s *EventStreamTestSuite) TestNotifyIsBroadcast() {
	name, data := s.readEvent(func() {
		s.events.Notify("city not found", lookup.NotifyError)
	})

	s.Equal("notify", name)
	s.Contains(data, "city not found")
	s.Contains(data, `"error"`)
}

func TestEventStreamSuite(t *testing.T) {
	suite.Run(t, new(EventStreamTestSuite))
}
