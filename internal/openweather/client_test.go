package openweather_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/suite"

	"skycast/weather-widget/internal/openweather"
)

type ClientTestSuite struct {
	suite.Suite
	server       *httptest.Server
	client       openweather.Client
	weatherHits  atomic.Int32
	forecastHits atomic.Int32
}

func (s *ClientTestSuite) SetupTest() {
	s.weatherHits.Store(0)
	s.forecastHits.Store(0)

	s.server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.Equal("test_api_key", r.URL.Query().Get("appid"))

		location := r.URL.Query().Get("q")
		if location == "" {
			location = r.URL.Query().Get("lat") + "," + r.URL.Query().Get("lon")
		}

		switch r.URL.Path {
		case "/weather":
			s.weatherHits.Add(1)
			switch location {
			case "Paris", "48.85,2.35":
				w.Write([]byte(`{
					"cod": 200,
					"name": "Paris",
					"sys": {"country": "FR"},
					"main": {"temp": 293.15, "humidity": 50},
					"wind": {"speed": 3},
					"weather": [{"main": "Clear", "description": "clear sky", "icon": "01d"}],
					"dt": 1700000000
				}`))
			case "Nowhere":
				w.WriteHeader(http.StatusNotFound)
				w.Write([]byte(`{"cod": "404", "message": "city not found"}`))
			case "Garbled":
				w.Write([]byte("{malformed json"))
			default:
				w.WriteHeader(http.StatusInternalServerError)
				w.Write([]byte(`{}`))
			}
		case "/forecast":
			s.forecastHits.Add(1)
			switch location {
			case "Paris", "48.85,2.35":
				w.Write([]byte(`{
					"cod": "200",
					"message": 0,
					"list": [{
						"dt_txt": "2026-08-30 18:00:00",
						"main": {"temp": 290.15, "humidity": 60},
						"wind": {"speed": 4},
						"weather": [{"main": "Clouds"}]
					}]
				}`))
			case "Nowhere":
				w.WriteHeader(http.StatusNotFound)
				w.Write([]byte(`{"cod": "404", "message": "city not found"}`))
			case "Garbled":
				w.Write([]byte(`{"cod": "200", "list": []}`))
			default:
				w.WriteHeader(http.StatusInternalServerError)
				w.Write([]byte(`{}`))
			}
		}
	}))

	s.client = openweather.NewClient("test_api_key", s.server.URL)
}

func (s *ClientTestSuite) TearDownTest() {
	s.server.Close()
}

func (s *ClientTestSuite) TestFetchPairByName() {
	current, forecast, err := s.client.FetchPair(context.Background(), openweather.ByName("Paris"))

	s.NoError(err)
	s.Equal(openweather.StatusCode(200), current.Cod)
	s.Equal("Paris", current.Name)
	s.Equal("FR", current.Sys.Country)
	s.Equal(293.15, current.Main.Temp)
	s.Equal("Clear", current.Weather[0].Main)

	// The forecast endpoint encodes cod as a string; it must still decode
	// to the same integer the classifier compares against.
	s.Equal(openweather.StatusCode(200), forecast.Cod)
	s.Len(forecast.List, 1)
	s.Equal("2026-08-30 18:00:00", forecast.List[0].DtTxt)

	s.Equal(int32(1), s.weatherHits.Load())
	s.Equal(int32(1), s.forecastHits.Load())
}

func (s *ClientTestSuite) TestFetchPairByCoordinates() {
	current, _, err := s.client.FetchPair(context.Background(), openweather.ByCoordinates(48.85, 2.35))

	s.NoError(err)
	s.Equal("Paris", current.Name)
}

func (s *ClientTestSuite) TestFetchPairNotFoundIsNotTransportFailure() {
	current, forecast, err := s.client.FetchPair(context.Background(), openweather.ByName("Nowhere"))

	// In-body provider errors are decoded and left for classification.
	s.NoError(err)
	s.Equal(openweather.StatusCode(404), current.Cod)
	s.Equal("city not found", current.Message)
	s.Equal(openweather.StatusCode(404), forecast.Cod)
}

func (s *ClientTestSuite) TestFetchPairMalformedBody() {
	_, _, err := s.client.FetchPair(context.Background(), openweather.ByName("Garbled"))

	s.Error(err)
	var transportErr *openweather.TransportError
	s.ErrorAs(err, &transportErr)
	s.Equal("weather", transportErr.Endpoint)
}

func (s *ClientTestSuite) TestFetchPairNetworkFailure() {
	s.server.Close()

	_, _, err := s.client.FetchPair(context.Background(), openweather.ByName("Paris"))

	s.Error(err)
	var transportErr *openweather.TransportError
	s.ErrorAs(err, &transportErr)
}

func TestClientSuite(t *testing.T) {
	suite.Run(t, new(ClientTestSuite))
}
