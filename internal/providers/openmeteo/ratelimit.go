package openmeteo

import (
	"context"
	"fmt"

	"golang.org/x/time/rate"
)

// Forecaster is anything that can answer a ForecastRequest
type Forecaster interface {
	GetForecast(ctx context.Context, req ForecastRequest) (*ForecastResponse, error)
}

// RateLimitedForecastClient keeps outbound calls within the API's fair-use
// budget. Waiting is bounded by the caller's context; nothing is retried.
type RateLimitedForecastClient struct {
	client  Forecaster
	limiter *rate.Limiter
}

// NewRateLimitedForecastClient wraps client. rps <= 0 disables limiting.
func NewRateLimitedForecastClient(client Forecaster, rps float64, burst int) *RateLimitedForecastClient {
	limit := rate.Limit(rps)
	if rps <= 0 {
		limit = rate.Inf
	}
	if burst < 1 {
		burst = 1
	}
	return &RateLimitedForecastClient{
		client:  client,
		limiter: rate.NewLimiter(limit, burst),
	}
}

// GetForecast waits for a token and forwards to the wrapped client
func (r *RateLimitedForecastClient) GetForecast(ctx context.Context, req ForecastRequest) (*ForecastResponse, error) {
	if err := r.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limit wait canceled: %w", err)
	}
	return r.client.GetForecast(ctx, req)
}
