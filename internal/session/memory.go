package session

import (
	"strings"

	"skycast/weather-widget/internal/openweather"
)

// Store keys mirror the fields the widget kept in sessionStorage.
const (
	keyLastCity        = "city_name"
	keyFromGeolocation = "current_location"
	keyCityList        = "cityList"
)

// LastLocation is the most recently resolved lookup: the typed city name, or
// a flag that the lookup came from geolocation. On reload the widget replays
// the last typed city before falling back to requesting geolocation.
type LastLocation struct {
	City            string `json:"city"`
	FromGeolocation bool   `json:"from_geolocation"`
}

// Memory records lookup state and the searched-city history for the life of
// the browsing session.
type Memory struct {
	store Store
}

func NewMemory(store Store) *Memory {
	return &Memory{store: store}
}

// RecordLookup remembers how the last successful lookup was made. Typed city
// names are kept for replay on next load; a geolocation lookup only flips
// the flag so a stale typed city is not replayed over it.
func (m *Memory) RecordLookup(loc openweather.Locator, fromGeolocation bool) error {
	if fromGeolocation || loc.IsCoordinates() {
		return m.store.Set(keyFromGeolocation, true)
	}

	if err := m.store.Set(keyLastCity, loc.City()); err != nil {
		return err
	}
	return m.store.Set(keyFromGeolocation, false)
}

// LastLocation reports the recorded state; found is false when nothing was
// recorded this session.
func (m *Memory) LastLocation() (LastLocation, bool, error) {
	var fromGeo bool
	geoFound, err := m.store.Get(keyFromGeolocation, &fromGeo)
	if err != nil {
		return LastLocation{}, false, err
	}

	var city string
	cityFound, err := m.store.Get(keyLastCity, &city)
	if err != nil {
		return LastLocation{}, false, err
	}

	if !geoFound && !cityFound {
		return LastLocation{}, false, nil
	}

	return LastLocation{City: city, FromGeolocation: fromGeo}, true, nil
}

// RecordHistory adds a city to the searched-city history unless it is
// already present. Matching is exact and case-sensitive, as typed.
func (m *Memory) RecordHistory(city string) error {
	var cities []string
	if _, err := m.store.Get(keyCityList, &cities); err != nil {
		return err
	}

	for _, known := range cities {
		if known == city {
			return nil
		}
	}

	return m.store.Set(keyCityList, append(cities, city))
}

// Search returns history entries containing the prefix, case-insensitively.
// A blank prefix matches nothing, so the dropdown stays closed.
func (m *Memory) Search(prefix string) ([]string, error) {
	prefix = strings.ToLower(strings.TrimSpace(prefix))
	if prefix == "" {
		return nil, nil
	}

	var cities []string
	if _, err := m.store.Get(keyCityList, &cities); err != nil {
		return nil, err
	}

	var matches []string
	for _, city := range cities {
		if strings.Contains(strings.ToLower(city), prefix) {
			matches = append(matches, city)
		}
	}

	return matches, nil
}
