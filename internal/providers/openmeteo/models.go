package openmeteo

import "encoding/json"

// ForecastAPIResponse is the JSON body returned for timeformat=unixtime.
// Hourly is kept raw because its keys depend on the requested variables.
type ForecastAPIResponse struct {
	Latitude             float64                    `json:"latitude"`
	Longitude            float64                    `json:"longitude"`
	GenerationtimeMs     float64                    `json:"generationtime_ms"`
	UtcOffsetSeconds     int64                      `json:"utc_offset_seconds"`
	Timezone             string                     `json:"timezone"`
	TimezoneAbbreviation string                     `json:"timezone_abbreviation"`
	Elevation            float64                    `json:"elevation"`
	HourlyUnits          map[string]string          `json:"hourly_units"`
	Hourly               map[string]json.RawMessage `json:"hourly"`
}

// ForecastResponse is the columnar result of one forecast call
type ForecastResponse struct {
	Latitude             float64
	Longitude            float64
	Elevation            float64
	Timezone             string
	TimezoneAbbreviation string
	UtcOffsetSeconds     int64
	Hourly               Hourly
}

// Hourly describes the time axis as a (Time, TimeEnd, Interval) triple in
// unix seconds, with TimeEnd exclusive, and holds one slot per requested
// variable in request order.
type Hourly struct {
	Time      int64
	TimeEnd   int64
	Interval  int64
	Variables []*Variable
}

// Variable returns the slot at index i, or nil when the slot is absent
func (h Hourly) Variable(i int) *Variable {
	if i < 0 || i >= len(h.Variables) {
		return nil
	}
	return h.Variables[i]
}

// Variable is one hourly series. Missing samples are NaN.
type Variable struct {
	Name   string
	Unit   string
	Values []float64
}
