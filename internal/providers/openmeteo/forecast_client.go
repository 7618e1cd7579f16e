package openmeteo

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

// API Docs: https://open-meteo.com/en/docs
// Sample request: https://api.open-meteo.com/v1/forecast?latitude=50.7345&longitude=15.3609&hourly=temperature_2m,apparent_temperature&forecast_days=1&timeformat=unixtime&timezone=Europe%2FPrague
const (
	baseForecastURL = "https://api.open-meteo.com/v1/forecast"

	// defaultInterval is used when the response has fewer than two samples
	defaultInterval = int64(3600)
)

var (
	// ErrTransport covers network failures and non-success statuses
	ErrTransport = errors.New("open-meteo transport failure")
	// ErrMalformedResponse covers payloads that cannot be decoded or compacted
	ErrMalformedResponse = errors.New("malformed open-meteo response")
)

type ForecastClient struct {
	httpClient *http.Client
	baseURL    string
	logger     *slog.Logger
}

// ClientOption configures a ForecastClient
type ClientOption func(*ForecastClient)

// WithBaseURL points the client at another endpoint, e.g. a test server
func WithBaseURL(baseURL string) ClientOption {
	return func(c *ForecastClient) {
		if baseURL != "" {
			c.baseURL = baseURL
		}
	}
}

// WithTimeout bounds the whole request; zero means no timeout
func WithTimeout(timeout time.Duration) ClientOption {
	return func(c *ForecastClient) {
		c.httpClient.Timeout = timeout
	}
}

func NewForecastClient(logger *slog.Logger, opts ...ClientOption) *ForecastClient {
	c := &ForecastClient{
		httpClient: &http.Client{},
		baseURL:    baseForecastURL,
		logger:     logger.With("component", "openmeteo-client"),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// GetForecast fetches the hourly forecast described by req. It performs
// exactly one HTTP call and does not retry.
func (c *ForecastClient) GetForecast(ctx context.Context, req ForecastRequest) (*ForecastResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("invalid forecast request: %w", err)
	}

	u, err := url.Parse(c.baseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse base URL: %w", err)
	}

	q := u.Query()
	q.Set("latitude", strconv.FormatFloat(req.Latitude, 'f', -1, 64))
	q.Set("longitude", strconv.FormatFloat(req.Longitude, 'f', -1, 64))
	q.Set("hourly", strings.Join(req.Hourly, ","))
	q.Set("forecast_days", strconv.Itoa(req.ForecastDays))
	q.Set("timeformat", "unixtime")
	if req.Timezone != "" {
		q.Set("timezone", req.Timezone)
	}
	u.RawQuery = q.Encode()

	c.logger.Debug("fetching forecast", "url", u.String())

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		c.logger.Error("failed to fetch forecast", "error", err)
		return nil, fmt.Errorf("%w: failed to fetch: %w", ErrTransport, err)
	}
	defer func(Body io.ReadCloser) {
		_ = Body.Close()
	}(resp.Body)

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		c.logger.Error("forecast API returned error",
			"status_code", resp.StatusCode,
			"response_body", string(body),
		)
		return nil, fmt.Errorf("%w: fetch returned status %d: %s", ErrTransport, resp.StatusCode, string(body))
	}

	var apiResp ForecastAPIResponse
	if err := json.NewDecoder(resp.Body).Decode(&apiResp); err != nil {
		c.logger.Error("failed to decode forecast response", "error", err)
		return nil, fmt.Errorf("%w: failed to decode response: %w", ErrMalformedResponse, err)
	}

	forecast, err := newForecastResponse(req, &apiResp)
	if err != nil {
		c.logger.Error("failed to read forecast response", "error", err)
		return nil, err
	}

	c.logger.Debug("successfully fetched forecast",
		"timezone", forecast.Timezone,
		"utc_offset_seconds", forecast.UtcOffsetSeconds,
		"variables", len(forecast.Hourly.Variables),
	)

	return forecast, nil
}

// newForecastResponse compacts the explicit time array into a triple and
// lays the keyed hourly arrays out in request order. A variable the API
// left out becomes a nil slot.
func newForecastResponse(req ForecastRequest, apiResp *ForecastAPIResponse) (*ForecastResponse, error) {
	rawTime, ok := apiResp.Hourly["time"]
	if !ok {
		return nil, fmt.Errorf("%w: hourly time axis missing", ErrMalformedResponse)
	}

	var times []int64
	if err := json.Unmarshal(rawTime, &times); err != nil {
		return nil, fmt.Errorf("%w: hourly time axis: %w", ErrMalformedResponse, err)
	}

	start, end, interval, err := compactTimeAxis(times)
	if err != nil {
		return nil, err
	}

	variables := make([]*Variable, len(req.Hourly))
	for i, name := range req.Hourly {
		raw, ok := apiResp.Hourly[name]
		if !ok {
			continue
		}
		values, err := decodeValues(raw)
		if err != nil {
			return nil, fmt.Errorf("%w: hourly %s: %w", ErrMalformedResponse, name, err)
		}
		variables[i] = &Variable{
			Name:   name,
			Unit:   apiResp.HourlyUnits[name],
			Values: values,
		}
	}

	return &ForecastResponse{
		Latitude:             apiResp.Latitude,
		Longitude:            apiResp.Longitude,
		Elevation:            apiResp.Elevation,
		Timezone:             apiResp.Timezone,
		TimezoneAbbreviation: apiResp.TimezoneAbbreviation,
		UtcOffsetSeconds:     apiResp.UtcOffsetSeconds,
		Hourly: Hourly{
			Time:      start,
			TimeEnd:   end,
			Interval:  interval,
			Variables: variables,
		},
	}, nil
}

// compactTimeAxis turns evenly spaced instants into (start, end, interval)
// where end is one interval past the last instant.
func compactTimeAxis(times []int64) (start, end, interval int64, err error) {
	switch len(times) {
	case 0:
		return 0, 0, defaultInterval, nil
	case 1:
		return times[0], times[0] + defaultInterval, defaultInterval, nil
	}

	interval = times[1] - times[0]
	if interval <= 0 {
		return 0, 0, 0, fmt.Errorf("%w: time axis is not increasing", ErrMalformedResponse)
	}
	for i := 2; i < len(times); i++ {
		if times[i]-times[i-1] != interval {
			return 0, 0, 0, fmt.Errorf("%w: time axis step changes at index %d", ErrMalformedResponse, i)
		}
	}

	return times[0], times[len(times)-1] + interval, interval, nil
}

func decodeValues(raw json.RawMessage) ([]float64, error) {
	var samples []*float64
	if err := json.Unmarshal(raw, &samples); err != nil {
		return nil, err
	}

	values := make([]float64, len(samples))
	for i, v := range samples {
		if v == nil {
			values[i] = math.NaN()
			continue
		}
		values[i] = *v
	}
	return values, nil
}
