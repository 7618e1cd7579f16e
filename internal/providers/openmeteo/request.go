package openmeteo

import (
	"errors"
	"fmt"
	"slices"
)

// MaxForecastDays is the longest horizon the forecast endpoint serves.
const MaxForecastDays = 16

var (
	ErrInvalidLatitude     = errors.New("latitude must be between -90 and 90")
	ErrInvalidLongitude    = errors.New("longitude must be between -180 and 180")
	ErrNoMetrics           = errors.New("at least one hourly metric is required")
	ErrDuplicateMetric     = errors.New("hourly metric requested more than once")
	ErrInvalidForecastDays = fmt.Errorf("forecast days must be between 1 and %d", MaxForecastDays)
)

// ForecastRequest is the query sent to the forecast endpoint. The order of
// Hourly determines the slot order of ForecastResponse.Hourly.Variables.
type ForecastRequest struct {
	Latitude     float64
	Longitude    float64
	Hourly       []string
	ForecastDays int
	Timezone     string // IANA name, "GMT" or "auto"; empty lets the API default to GMT
}

// NewForecastRequest copies hourly so later changes to the caller's slice
// cannot reorder the request.
func NewForecastRequest(latitude, longitude float64, hourly []string, forecastDays int, timezone string) ForecastRequest {
	return ForecastRequest{
		Latitude:     latitude,
		Longitude:    longitude,
		Hourly:       slices.Clone(hourly),
		ForecastDays: forecastDays,
		Timezone:     timezone,
	}
}

// Validate checks the request before any network call is made
func (r ForecastRequest) Validate() error {
	if r.Latitude < -90 || r.Latitude > 90 {
		return fmt.Errorf("%w: got %f", ErrInvalidLatitude, r.Latitude)
	}
	if r.Longitude < -180 || r.Longitude > 180 {
		return fmt.Errorf("%w: got %f", ErrInvalidLongitude, r.Longitude)
	}
	if len(r.Hourly) == 0 {
		return ErrNoMetrics
	}
	seen := make(map[string]struct{}, len(r.Hourly))
	for _, name := range r.Hourly {
		if _, ok := seen[name]; ok {
			return fmt.Errorf("%w: %s", ErrDuplicateMetric, name)
		}
		seen[name] = struct{}{}
	}
	if r.ForecastDays < 1 || r.ForecastDays > MaxForecastDays {
		return fmt.Errorf("%w: got %d", ErrInvalidForecastDays, r.ForecastDays)
	}
	return nil
}
