package forecast

import (
	"bytes"
	"errors"
	"fmt"
	"math"
	"slices"
	"strconv"

	"pocasi/internal/providers/openmeteo"
)

// ErrShape marks a response whose slots do not line up with the request
var ErrShape = errors.New("forecast response has unexpected shape")

// ShapeError names the metric that could not be extracted
type ShapeError struct {
	Metric Metric
	Reason string
}

func (e *ShapeError) Error() string {
	return fmt.Sprintf("%s: metric %s: %s", ErrShape, e.Metric, e.Reason)
}

func (e *ShapeError) Unwrap() error {
	return ErrShape
}

// Series is one hourly column. NaN marks a missing sample and is encoded
// as JSON null.
type Series []float64

func (s Series) MarshalJSON() ([]byte, error) {
	if s == nil {
		return []byte("null"), nil
	}
	var buf bytes.Buffer
	buf.WriteByte('[')
	for i, v := range s {
		if i > 0 {
			buf.WriteByte(',')
		}
		if math.IsNaN(v) || math.IsInf(v, 0) {
			buf.WriteString("null")
			continue
		}
		buf.WriteString(strconv.FormatFloat(v, 'f', -1, 64))
	}
	buf.WriteByte(']')
	return buf.Bytes(), nil
}

// HourlyData is the named, fully materialized hourly forecast. Metrics that
// were not requested stay nil.
type HourlyData struct {
	Time                     []string `json:"time"`
	Temperature2m            Series   `json:"temperature2m,omitempty"`
	RelativeHumidity2m       Series   `json:"relativeHumidity2m,omitempty"`
	ApparentTemperature      Series   `json:"apparentTemperature,omitempty"`
	PrecipitationProbability Series   `json:"precipitationProbability,omitempty"`
	Precipitation            Series   `json:"precipitation,omitempty"`
	Rain                     Series   `json:"rain,omitempty"`
	Showers                  Series   `json:"showers,omitempty"`
	Snowfall                 Series   `json:"snowfall,omitempty"`
	SnowDepth                Series   `json:"snowDepth,omitempty"`
	WeatherCode              Series   `json:"weatherCode,omitempty"`
	PressureMsl              Series   `json:"pressureMsl,omitempty"`
	SurfacePressure          Series   `json:"surfacePressure,omitempty"`
	CloudCover               Series   `json:"cloudCover,omitempty"`
	CloudCoverLow            Series   `json:"cloudCoverLow,omitempty"`
	CloudCoverMid            Series   `json:"cloudCoverMid,omitempty"`
	CloudCoverHigh           Series   `json:"cloudCoverHigh,omitempty"`
	Visibility               Series   `json:"visibility,omitempty"`
	Evapotranspiration       Series   `json:"evapotranspiration,omitempty"`
	Et0FaoEvapotranspiration Series   `json:"et0FaoEvapotranspiration,omitempty"`
	VapourPressureDeficit    Series   `json:"vapourPressureDeficit,omitempty"`
}

// Series returns the column for m, or nil if m was not requested
func (h *HourlyData) Series(m Metric) Series {
	if s := h.series(m); s != nil {
		return *s
	}
	return nil
}

func (h *HourlyData) series(m Metric) *Series {
	switch m {
	case Temperature2m:
		return &h.Temperature2m
	case RelativeHumidity2m:
		return &h.RelativeHumidity2m
	case ApparentTemperature:
		return &h.ApparentTemperature
	case PrecipitationProbability:
		return &h.PrecipitationProbability
	case Precipitation:
		return &h.Precipitation
	case Rain:
		return &h.Rain
	case Showers:
		return &h.Showers
	case Snowfall:
		return &h.Snowfall
	case SnowDepth:
		return &h.SnowDepth
	case WeatherCode:
		return &h.WeatherCode
	case PressureMsl:
		return &h.PressureMsl
	case SurfacePressure:
		return &h.SurfacePressure
	case CloudCover:
		return &h.CloudCover
	case CloudCoverLow:
		return &h.CloudCoverLow
	case CloudCoverMid:
		return &h.CloudCoverMid
	case CloudCoverHigh:
		return &h.CloudCoverHigh
	case Visibility:
		return &h.Visibility
	case Evapotranspiration:
		return &h.Evapotranspiration
	case Et0FaoEvapotranspiration:
		return &h.Et0FaoEvapotranspiration
	case VapourPressureDeficit:
		return &h.VapourPressureDeficit
	}
	return nil
}

// ShapeHourly turns a columnar response into HourlyData. requested must be
// the exact list, in the exact order, that was sent with the request. Every
// requested metric must have a slot whose length equals the time axis
// length; otherwise nothing is returned.
func ShapeHourly(requested []Metric, resp *openmeteo.ForecastResponse) (*HourlyData, error) {
	if resp == nil {
		return nil, fmt.Errorf("%w: no response", ErrShape)
	}

	index, err := NewMetricIndex(requested)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrShape, err)
	}

	axis := TimeAxis{
		Start:    resp.Hourly.Time,
		End:      resp.Hourly.TimeEnd,
		Interval: resp.Hourly.Interval,
	}
	if err := axis.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrShape, err)
	}

	points := axis.Len()
	data := &HourlyData{
		Time: axis.Timestamps(resp.UtcOffsetSeconds),
	}

	for _, m := range HourlyMetrics {
		slot, ok := index.Slot(m)
		if !ok {
			continue
		}

		v := resp.Hourly.Variable(slot)
		switch {
		case v == nil:
			return nil, &ShapeError{Metric: m, Reason: fmt.Sprintf("slot %d is missing", slot)}
		case v.Name != "" && v.Name != string(m):
			return nil, &ShapeError{Metric: m, Reason: fmt.Sprintf("slot %d holds %s", slot, v.Name)}
		case len(v.Values) != points:
			return nil, &ShapeError{Metric: m, Reason: fmt.Sprintf("%d samples for %d time points", len(v.Values), points)}
		}

		*data.series(m) = slices.Clone(v.Values)
	}

	return data, nil
}
