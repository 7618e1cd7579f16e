package main

import (
	"bytes"
	"errors"
	"net/http"

	"pocasi/internal/forecast"
	"pocasi/internal/providers/openmeteo"
	"pocasi/internal/view"

	"github.com/gin-gonic/gin"
)

// handleGetPage godoc
// @Summary Forecast page
// @Description Hourly apparent temperature for the configured location. Any failure aborts with a bare 500 and nothing partial is rendered.
// @Tags forecast
// @Produce html
// @Success 200 {string} string "HTML document"
// @Failure 500 {string} string "Internal Server Error"
// @Router / [get]
func (app *App) handleGetPage(c *gin.Context) {
	f, err := app.forecastService.GetHourlyForecast(c.Request.Context())
	if err != nil {
		app.logger.Error("failed to get forecast for page",
			"request_id", c.GetString(requestIDKey),
			"error", err,
		)
		c.AbortWithStatus(http.StatusInternalServerError)
		return
	}

	page, err := view.NewPage(f, view.Options{
		Title:               app.cfg.Page.Title,
		LegacyTimestampList: app.cfg.Page.LegacyTimestampList,
	})
	if err != nil {
		app.logger.Error("failed to build page", "error", err)
		c.AbortWithStatus(http.StatusInternalServerError)
		return
	}

	var buf bytes.Buffer
	if err := app.renderer.Render(&buf, page); err != nil {
		app.logger.Error("failed to render page", "error", err)
		c.AbortWithStatus(http.StatusInternalServerError)
		return
	}

	c.Data(http.StatusOK, "text/html; charset=utf-8", buf.Bytes())
}

// handleGetForecast godoc
// @Summary Get hourly forecast
// @Description Retrieve the shaped hourly forecast for the configured location. Missing samples are encoded as null.
// @Tags forecast
// @Produce json
// @Success 200 {object} forecast.Forecast
// @Failure 500 {object} map[string]string
// @Failure 502 {object} map[string]string
// @Router /api/forecast [get]
func (app *App) handleGetForecast(c *gin.Context) {
	f, err := app.forecastService.GetHourlyForecast(c.Request.Context())
	if err != nil {
		app.logger.Error("failed to get forecast",
			"request_id", c.GetString(requestIDKey),
			"error", err,
		)

		// Upstream failures are distinguished from our own
		if isUpstreamError(err) {
			c.JSON(http.StatusBadGateway, gin.H{"error": "forecast provider unavailable"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to get forecast"})
		return
	}

	c.JSON(http.StatusOK, f)
}

func isUpstreamError(err error) bool {
	return errors.Is(err, openmeteo.ErrTransport) ||
		errors.Is(err, openmeteo.ErrMalformedResponse) ||
		errors.Is(err, forecast.ErrShape)
}
