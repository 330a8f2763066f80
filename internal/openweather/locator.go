package openweather

import (
	"fmt"
	"net/url"
	"strconv"
)

// Locator is a user-supplied place reference: either a city name typed into
// the widget or a coordinate pair obtained from browser geolocation.
type Locator struct {
	city   string
	lat    float64
	lon    float64
	coords bool
}

func ByName(city string) Locator {
	return Locator{city: city}
}

func ByCoordinates(lat, lon float64) Locator {
	return Locator{lat: lat, lon: lon, coords: true}
}

func (l Locator) IsCoordinates() bool {
	return l.coords
}

func (l Locator) City() string {
	return l.city
}

func (l Locator) Coordinates() (lat, lon float64) {
	return l.lat, l.lon
}

func (l Locator) String() string {
	if l.coords {
		return fmt.Sprintf("%.4f,%.4f", l.lat, l.lon)
	}
	return l.city
}

// query returns the provider query parameters for this locator,
// without the API credential.
func (l Locator) query() url.Values {
	values := url.Values{}
	if l.coords {
		values.Set("lat", strconv.FormatFloat(l.lat, 'f', -1, 64))
		values.Set("lon", strconv.FormatFloat(l.lon, 'f', -1, 64))
	} else {
		values.Set("q", l.city)
	}
	return values
}
