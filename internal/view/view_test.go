package view

import (
	"bytes"
	"errors"
	"math"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"pocasi/internal/forecast"
	"pocasi/internal/types"
)

func testForecast() *forecast.Forecast {
	return &forecast.Forecast{
		Timestamp:   time.Date(2026, 10, 19, 8, 30, 0, 0, time.UTC),
		Coordinates: types.NewCoords(50.7345, 15.3609),
		Timezone:    "Europe/Prague",
		Hourly: forecast.HourlyData{
			Time: []string{
				"2023-11-14T23:13:20.000Z",
				"2023-11-15T00:13:20.000Z",
				"2023-11-15T01:13:20.000Z",
			},
			ApparentTemperature: forecast.Series{12.34, math.NaN(), -3.05},
			WeatherCode:         forecast.Series{0, 73, math.NaN()},
		},
	}
}

func TestNewPage(t *testing.T) {
	page, err := NewPage(testForecast(), Options{Title: "Počasí z Open-Meteo"})
	if err != nil {
		t.Fatalf("NewPage() error = %v", err)
	}

	want := []Row{
		{Time: "2023-11-14T23:13:20.000Z", DisplayTime: "14. 11. 2023 23:13:20", ApparentTemperature: "12.3 C", Weather: "Jasno"},
		{Time: "2023-11-15T00:13:20.000Z", DisplayTime: "15. 11. 2023 00:13:20", ApparentTemperature: "n/a", Weather: "Sněžení"},
		{Time: "2023-11-15T01:13:20.000Z", DisplayTime: "15. 11. 2023 01:13:20", ApparentTemperature: "-3.0 C"},
	}
	if diff := cmp.Diff(want, page.Rows); diff != "" {
		t.Errorf("Rows mismatch (-want +got):\n%s", diff)
	}
	if page.LastTimestamp != "15. 11. 2023 01:13:20" {
		t.Errorf("LastTimestamp = %q", page.LastTimestamp)
	}
	if page.Location != "50.7345°N, 15.3609°E" {
		t.Errorf("Location = %q", page.Location)
	}
	if len(page.Timestamps) != 3 {
		t.Errorf("len(Timestamps) = %d, want 3", len(page.Timestamps))
	}
}

func TestNewPage_LegacyTimestampList(t *testing.T) {
	page, err := NewPage(testForecast(), Options{LegacyTimestampList: true})
	if err != nil {
		t.Fatalf("NewPage() error = %v", err)
	}

	want := []string{"14. 11. 2023 23:13:20", "15. 11. 2023 00:13:20", "15. 11. 2023 01:13:20"}
	for i, row := range page.Rows {
		if diff := cmp.Diff(want, row.Timestamps); diff != "" {
			t.Errorf("row %d timestamps mismatch (-want +got):\n%s", i, diff)
		}
	}
}

func TestNewPage_WithoutWeatherCodes(t *testing.T) {
	f := testForecast()
	f.Hourly.WeatherCode = nil

	page, err := NewPage(f, Options{})
	if err != nil {
		t.Fatalf("NewPage() error = %v", err)
	}
	for i, row := range page.Rows {
		if row.Weather != "" {
			t.Errorf("row %d Weather = %q, want empty", i, row.Weather)
		}
	}
}

func TestNewPage_Errors(t *testing.T) {
	mismatched := testForecast()
	mismatched.Hourly.ApparentTemperature = forecast.Series{1}

	badStamp := testForecast()
	badStamp.Hourly.Time[1] = "yesterday"

	tests := []struct {
		name    string
		f       *forecast.Forecast
		wantErr error
	}{
		{name: "nil forecast", f: nil},
		{name: "length mismatch", f: mismatched, wantErr: ErrRowMismatch},
		{name: "unparseable timestamp", f: badStamp},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			page, err := NewPage(tt.f, Options{})
			if err == nil {
				t.Fatalf("NewPage() = %+v, want error", page)
			}
			if tt.wantErr != nil && !errors.Is(err, tt.wantErr) {
				t.Errorf("NewPage() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestFormatTemperature(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{in: 0, want: "0.0 C"},
		{in: 21.45, want: "21.4 C"},
		{in: 21.46, want: "21.5 C"},
		{in: -7.5, want: "-7.5 C"},
		{in: math.NaN(), want: MissingValue},
		{in: math.Inf(1), want: MissingValue},
	}

	for _, tt := range tests {
		if got := FormatTemperature(tt.in); got != tt.want {
			t.Errorf("FormatTemperature(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestRenderer_Render(t *testing.T) {
	page, err := NewPage(testForecast(), Options{Title: "Počasí z Open-Meteo"})
	if err != nil {
		t.Fatalf("NewPage() error = %v", err)
	}

	tests := []struct {
		name string
		opts []RendererOption
	}{
		{name: "plain"},
		{name: "minified", opts: []RendererOption{WithMinify()}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := NewRenderer(tt.opts...)
			if err != nil {
				t.Fatalf("NewRenderer() error = %v", err)
			}

			var buf bytes.Buffer
			if err := r.Render(&buf, page); err != nil {
				t.Fatalf("Render() error = %v", err)
			}
			out := buf.String()

			for _, want := range []string{
				"Počasí z Open-Meteo",
				"14. 11. 2023 23:13:20",
				"12.3 C",
				"n/a",
				"-3.0 C",
				"Sněžení",
				"2023-11-15T01:13:20.000Z",
				"19. 10. 2026 08:30",
			} {
				if !strings.Contains(out, want) {
					t.Errorf("output is missing %q", want)
				}
			}
			if n := strings.Count(out, "14. 11. 2023 23:13:20"); n != 1 {
				t.Errorf("first timestamp rendered %d times, want once without the legacy option", n)
			}
		})
	}
}

func TestRenderer_MinifyShrinksOutput(t *testing.T) {
	page, err := NewPage(testForecast(), Options{LegacyTimestampList: true})
	if err != nil {
		t.Fatalf("NewPage() error = %v", err)
	}

	plain, err := NewRenderer()
	if err != nil {
		t.Fatalf("NewRenderer() error = %v", err)
	}
	minified, err := NewRenderer(WithMinify())
	if err != nil {
		t.Fatalf("NewRenderer() error = %v", err)
	}

	var a, b bytes.Buffer
	if err := plain.Render(&a, page); err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	if err := minified.Render(&b, page); err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	if b.Len() >= a.Len() {
		t.Errorf("minified output is %d bytes, plain is %d", b.Len(), a.Len())
	}
	if !strings.Contains(a.String(), `class="stamps"`) {
		t.Error("legacy timestamp list missing from output")
	}
}

func TestRenderer_EmptyPage(t *testing.T) {
	r, err := NewRenderer()
	if err != nil {
		t.Fatalf("NewRenderer() error = %v", err)
	}

	var buf bytes.Buffer
	if err := r.Render(&buf, &Page{}); err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	if !strings.Contains(buf.String(), "Žádná data") {
		t.Error("empty page does not say there is no data")
	}
	if !strings.Contains(buf.String(), "<title>Počasí</title>") {
		t.Error("empty title did not fall back to the default")
	}
}
