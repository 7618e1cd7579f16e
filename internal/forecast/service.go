package forecast

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"pocasi/internal/config"
	"pocasi/internal/providers/openmeteo"
	"pocasi/internal/timezone"
	"pocasi/internal/types"
)

type ForecastProvider interface {
	// GetForecast performs one outbound forecast call
	GetForecast(ctx context.Context, req openmeteo.ForecastRequest) (*openmeteo.ForecastResponse, error)
}

type Service interface {
	// GetHourlyForecast fetches and shapes the configured location's forecast
	GetHourlyForecast(ctx context.Context) (*Forecast, error)
}

// Forecast is the shaped result handed to the view
type Forecast struct {
	Timestamp            time.Time         `json:"timestamp"`
	Coordinates          types.Coords      `json:"coordinates"`
	Elevation            float64           `json:"elevation"`
	Timezone             string            `json:"timezone"`
	TimezoneAbbreviation string            `json:"timezoneAbbreviation"`
	UtcOffsetSeconds     int64             `json:"utcOffsetSeconds"`
	Units                map[Metric]string `json:"units"`
	Hourly               HourlyData        `json:"hourly"`
}

type forecastService struct {
	forecastProvider ForecastProvider
	timezoneService  timezone.Service
	cfg              *config.Config
	logger           *slog.Logger
	now              func() time.Time
}

// NewForecastService wires the real Open-Meteo client behind a rate limiter.
// The timezone finder is only loaded when no timezone is configured.
func NewForecastService(cfg *config.Config, logger *slog.Logger) (Service, error) {
	var (
		tzSvc timezone.Service
		err   error
	)
	if cfg.Forecast.Timezone != "" {
		tzSvc, err = timezone.Fixed(cfg.Forecast.Timezone)
	} else {
		tzSvc, err = timezone.NewService()
	}
	if err != nil {
		return nil, fmt.Errorf("failed to create timezone service: %w", err)
	}

	client := openmeteo.NewForecastClient(logger,
		openmeteo.WithBaseURL(cfg.OpenMeteo.BaseURL),
		openmeteo.WithTimeout(cfg.OpenMeteo.Timeout),
	)
	limited := openmeteo.NewRateLimitedForecastClient(client, cfg.OpenMeteo.RequestsPerSecond, cfg.OpenMeteo.Burst)

	return NewForecastServiceWithProvider(limited, tzSvc, cfg, logger), nil
}

func NewForecastServiceWithProvider(
	forecastProvider ForecastProvider,
	timezoneService timezone.Service,
	cfg *config.Config,
	logger *slog.Logger,
) Service {
	return &forecastService{
		forecastProvider: forecastProvider,
		timezoneService:  timezoneService,
		cfg:              cfg,
		logger:           logger.With("component", "forecast-service"),
		now:              time.Now,
	}
}

func (s *forecastService) GetHourlyForecast(ctx context.Context) (*Forecast, error) {
	lat, lon := s.cfg.Forecast.Latitude, s.cfg.Forecast.Longitude

	// Look up timezone for the location
	tz, err := s.timezoneService.GetTimezone(lat, lon)
	if err != nil {
		s.logger.Error("failed to determine timezone",
			"latitude", lat,
			"longitude", lon,
			"error", err,
		)
		return nil, fmt.Errorf("failed to determine timezone: %w", err)
	}

	s.logger.Debug("determined timezone for location",
		"latitude", lat,
		"longitude", lon,
		"timezone", tz,
	)

	req := openmeteo.NewForecastRequest(lat, lon, MetricNames(HourlyMetrics), s.cfg.Forecast.Days, tz)

	apiResponse, err := s.forecastProvider.GetForecast(ctx, req)
	if err != nil {
		s.logger.Error("failed to get forecast from provider", "error", err)
		return nil, fmt.Errorf("failed to get forecast: %w", err)
	}

	hourly, err := ShapeHourly(HourlyMetrics, apiResponse)
	if err != nil {
		s.logger.Error("failed to shape forecast response", "error", err)
		return nil, fmt.Errorf("failed to shape forecast: %w", err)
	}

	s.logger.Debug("shaped hourly forecast",
		"timezone", apiResponse.Timezone,
		"points", len(hourly.Time),
	)

	return &Forecast{
		Timestamp:            s.now().UTC(),
		Coordinates:          types.NewCoords(lat, lon),
		Elevation:            apiResponse.Elevation,
		Timezone:             apiResponse.Timezone,
		TimezoneAbbreviation: apiResponse.TimezoneAbbreviation,
		UtcOffsetSeconds:     apiResponse.UtcOffsetSeconds,
		Units:                unitsOf(apiResponse),
		Hourly:               *hourly,
	}, nil
}

func unitsOf(resp *openmeteo.ForecastResponse) map[Metric]string {
	units := make(map[Metric]string, len(resp.Hourly.Variables))
	for _, v := range resp.Hourly.Variables {
		if v != nil && v.Unit != "" {
			units[Metric(v.Name)] = v.Unit
		}
	}
	return units
}
