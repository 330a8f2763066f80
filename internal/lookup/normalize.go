package lookup

import (
	"math"
	"strings"
	"time"

	"skycast/weather-widget/internal/openweather"
)

const (
	dateLayout     = "2006-01-02"
	longDateLayout = "Monday 2, 2006"
	eveningTime    = "18:00:00"
)

// Weather is the flat display record the widget renders for current
// conditions. It is derived once from a usable payload and never mutated.
type Weather struct {
	City        string  `json:"city"`
	Country     string  `json:"country"`
	Celsius     float64 `json:"celsius"`
	WindSpeed   float64 `json:"wind_speed"`
	Humidity    float64 `json:"humidity"`
	Condition   string  `json:"condition"`
	Description string  `json:"description"`
	Icon        string  `json:"icon"`
	Date        string  `json:"date"`
}

// ForecastDay is the representative sample kept for one future calendar day.
type ForecastDay struct {
	Date      string  `json:"date"`
	Celsius   float64 `json:"celsius"`
	WindSpeed float64 `json:"wind_speed"`
	Humidity  float64 `json:"humidity"`
	Condition string  `json:"condition"`
}

// Normalizer projects raw provider payloads into display-ready records.
// The clock and location are injectable so day bucketing is deterministic
// under test; both default to the local wall clock.
type Normalizer struct {
	now      func() time.Time
	location *time.Location
}

func NewNormalizer() *Normalizer {
	return &Normalizer{
		now:      time.Now,
		location: time.Local,
	}
}

func NewNormalizerAt(now func() time.Time, loc *time.Location) *Normalizer {
	return &Normalizer{now: now, location: loc}
}

// NormalizeWeather flattens a current-conditions payload: kelvin is converted
// to celsius with one-decimal rounding and the observation timestamp becomes
// a long-form local date. The payload is assumed to have classified as
// usable; a missing weather array is reported as malformed, not skipped.
func (n *Normalizer) NormalizeWeather(payload *openweather.CurrentPayload) (Weather, error) {
	if len(payload.Weather) == 0 {
		return Weather{}, &MalformedPayloadError{Field: "weather"}
	}

	observed := time.Unix(payload.Dt, 0).In(n.location)

	return Weather{
		City:        payload.Name,
		Country:     payload.Sys.Country,
		Celsius:     kelvinToCelsius(payload.Main.Temp),
		WindSpeed:   payload.Wind.Speed,
		Humidity:    payload.Main.Humidity,
		Condition:   payload.Weather[0].Main,
		Description: payload.Weather[0].Description,
		Icon:        payload.Weather[0].Icon,
		Date:        observed.Format(longDateLayout),
	}, nil
}

// NormalizeForecast reduces the 3-hour sample list to one entry per future
// calendar day. Samples dated today are dropped. Within a day the first
// sample encountered is kept unless an 18:00:00 sample exists, which
// replaces it as the most representative reading. Days are emitted in the
// order they were first encountered.
func (n *Normalizer) NormalizeForecast(payload *openweather.ForecastPayload) ([]ForecastDay, error) {
	if payload.List == nil {
		return nil, &MalformedPayloadError{Field: "list"}
	}

	today := n.now().In(n.location).Format(dateLayout)

	kept := make(map[string]openweather.ForecastSample)
	var order []string

	for _, sample := range payload.List {
		date, timeOfDay, ok := strings.Cut(sample.DtTxt, " ")
		if !ok {
			return nil, &MalformedPayloadError{Field: "dt_txt"}
		}
		if date == today {
			continue
		}

		if _, seen := kept[date]; !seen {
			kept[date] = sample
			order = append(order, date)
		} else if timeOfDay == eveningTime {
			kept[date] = sample
		}
	}

	days := make([]ForecastDay, 0, len(order))
	for _, date := range order {
		sample := kept[date]
		if len(sample.Weather) == 0 {
			return nil, &MalformedPayloadError{Field: "weather"}
		}
		days = append(days, ForecastDay{
			Date:      date,
			Celsius:   kelvinToCelsius(sample.Main.Temp),
			WindSpeed: sample.Wind.Speed,
			Humidity:  sample.Main.Humidity,
			Condition: sample.Weather[0].Main,
		})
	}

	return days, nil
}

func kelvinToCelsius(kelvin float64) float64 {
	return math.Round((kelvin-273.15)*10) / 10
}
