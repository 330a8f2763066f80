package openweather

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
)

// StatusCode is the provider's in-body "cod" field. The API is inconsistent
// about its encoding: the current-conditions endpoint returns it as a number
// (200) while the forecast endpoint returns it as a string ("200"). Both are
// normalized to an integer here so the classifier only ever sees one shape.
type StatusCode int

func (c *StatusCode) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return fmt.Errorf("empty status code")
	}

	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		n, err := strconv.Atoi(s)
		if err != nil {
			return fmt.Errorf("non-numeric status code %q", s)
		}
		*c = StatusCode(n)
		return nil
	}

	var n int
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*c = StatusCode(n)
	return nil
}

// Condition is one entry of the provider's "weather" array.
type Condition struct {
	Main        string `json:"main"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
}

// CurrentPayload is the raw /weather response, status code included. Errors
// are encoded in the body (cod + message), not only via transport status.
type CurrentPayload struct {
	Cod     StatusCode `json:"cod"`
	Message string     `json:"message"`
	Name    string     `json:"name"`
	Sys     struct {
		Country string `json:"country"`
	} `json:"sys"`
	Main struct {
		Temp     float64 `json:"temp"`
		Humidity float64 `json:"humidity"`
	} `json:"main"`
	Wind struct {
		Speed float64 `json:"speed"`
	} `json:"wind"`
	Weather []Condition `json:"weather"`
	Dt      int64       `json:"dt"`
}

// ForecastSample is one 3-hour reading of the /forecast list. DtTxt is the
// provider's "YYYY-MM-DD HH:MM:SS" timestamp string.
type ForecastSample struct {
	DtTxt string `json:"dt_txt"`
	Main  struct {
		Temp     float64 `json:"temp"`
		Humidity float64 `json:"humidity"`
	} `json:"main"`
	Wind struct {
		Speed float64 `json:"speed"`
	} `json:"wind"`
	Weather []Condition `json:"weather"`
}

// ForecastPayload is the raw /forecast response.
type ForecastPayload struct {
	Cod     StatusCode       `json:"cod"`
	Message json.RawMessage  `json:"message"`
	List    []ForecastSample `json:"list"`
}
