package view

import (
	"errors"
	"fmt"
	"math"
	"time"

	"pocasi/internal/forecast"
	"pocasi/internal/types"
)

// DisplayLayout is the Czech wall-clock format used for row labels
const DisplayLayout = "2. 1. 2006 15:04:05"

// MissingValue is shown for a sample the API returned as null
const MissingValue = "n/a"

var ErrRowMismatch = errors.New("apparent temperature does not line up with the time axis")

type Options struct {
	Title string
	// LegacyTimestampList repeats the full timestamp list inside every row
	LegacyTimestampList bool
}

// Page is everything the template needs. It holds no forecast data beyond
// formatted strings.
type Page struct {
	Title       string
	Location    string
	Timezone    string
	GeneratedAt time.Time
	// LastTimestamp is the display form of the final axis point
	LastTimestamp string
	Rows          []Row
	Timestamps    []string
}

type Row struct {
	Time                string
	DisplayTime         string
	ApparentTemperature string
	Weather             string
	Timestamps          []string
}

// NewPage pairs every timestamp with the apparent temperature at the same
// index.
func NewPage(f *forecast.Forecast, opts Options) (*Page, error) {
	if f == nil {
		return nil, errors.New("nil forecast")
	}

	hourly := f.Hourly
	if len(hourly.ApparentTemperature) != len(hourly.Time) {
		return nil, fmt.Errorf("%w: %d samples for %d timestamps",
			ErrRowMismatch, len(hourly.ApparentTemperature), len(hourly.Time))
	}

	display := make([]string, len(hourly.Time))
	for i, ts := range hourly.Time {
		t, err := time.Parse(forecast.ISO8601Layout, ts)
		if err != nil {
			return nil, fmt.Errorf("failed to parse timestamp %q: %w", ts, err)
		}
		display[i] = t.Format(DisplayLayout)
	}

	// weather codes are optional decoration
	codes := hourly.WeatherCode
	if len(codes) != len(hourly.Time) {
		codes = nil
	}

	page := &Page{
		Title:       opts.Title,
		Location:    f.Coordinates.String(),
		Timezone:    f.Timezone,
		GeneratedAt: f.Timestamp,
		Rows:        make([]Row, len(hourly.Time)),
		Timestamps:  hourly.Time,
	}
	if n := len(display); n > 0 {
		page.LastTimestamp = display[n-1]
	}

	for i, v := range hourly.ApparentTemperature {
		row := Row{
			Time:                hourly.Time[i],
			DisplayTime:         display[i],
			ApparentTemperature: FormatTemperature(v),
		}
		if codes != nil {
			if w, ok := types.NewWeatherFromSample(codes[i]); ok {
				row.Weather = w.Description
			}
		}
		if opts.LegacyTimestampList {
			row.Timestamps = display
		}
		page.Rows[i] = row
	}

	return page, nil
}

// FormatTemperature renders one decimal place followed by " C"
func FormatTemperature(v float64) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return MissingValue
	}
	return fmt.Sprintf("%.1f C", v)
}
