//go:build integration

package openmeteo

import (
	"context"
	"log/slog"
	"os"
	"testing"
)

func TestForecastClient_GetForecast_Integration(t *testing.T) {
	// Test coordinates: Krkonoše foothills
	lat := 50.7345
	lon := 15.3609
	forecastDays := 1

	client := NewForecastClient(slog.New(slog.NewTextHandler(os.Stdout, nil)))

	t.Logf("Making API call to OpenMeteo Forecast API...")
	t.Logf("Coordinates: lat=%f, lon=%f", lat, lon)

	resp, err := client.GetForecast(context.Background(), NewForecastRequest(lat, lon, fixtureHourly, forecastDays, "Europe/Prague"))
	if err != nil {
		t.Fatalf("Failed to get forecast: %v", err)
	}

	t.Logf("Response metadata:")
	t.Logf("  Latitude: %f", resp.Latitude)
	t.Logf("  Longitude: %f", resp.Longitude)
	t.Logf("  Elevation: %f meters", resp.Elevation)
	t.Logf("  Timezone: %s (%s), offset %ds", resp.Timezone, resp.TimezoneAbbreviation, resp.UtcOffsetSeconds)

	if resp.Latitude < lat-1 || resp.Latitude > lat+1 {
		t.Errorf("Latitude mismatch: expected ~%f, got %f", lat, resp.Latitude)
	}

	if resp.Hourly.Interval != 3600 {
		t.Errorf("Interval = %d, want 3600", resp.Hourly.Interval)
	}

	points := int((resp.Hourly.TimeEnd - resp.Hourly.Time) / resp.Hourly.Interval)
	if points != 24*forecastDays {
		t.Errorf("time axis has %d points, want %d", points, 24*forecastDays)
	}

	for i, name := range fixtureHourly {
		v := resp.Hourly.Variable(i)
		if v == nil {
			t.Errorf("variable %s missing", name)
			continue
		}
		if len(v.Values) != points {
			t.Errorf("variable %s has %d values, want %d", name, len(v.Values), points)
		}
	}

	t.Log("✓ API call successful, response structure valid")
}
