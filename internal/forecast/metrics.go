package forecast

import (
	"errors"
	"fmt"
)

// Metric is an Open-Meteo hourly variable identifier
type Metric string

const (
	Temperature2m            Metric = "temperature_2m"
	RelativeHumidity2m       Metric = "relative_humidity_2m"
	ApparentTemperature      Metric = "apparent_temperature"
	PrecipitationProbability Metric = "precipitation_probability"
	Precipitation            Metric = "precipitation"
	Rain                     Metric = "rain"
	Showers                  Metric = "showers"
	Snowfall                 Metric = "snowfall"
	SnowDepth                Metric = "snow_depth"
	WeatherCode              Metric = "weather_code"
	PressureMsl              Metric = "pressure_msl"
	SurfacePressure          Metric = "surface_pressure"
	CloudCover               Metric = "cloud_cover"
	CloudCoverLow            Metric = "cloud_cover_low"
	CloudCoverMid            Metric = "cloud_cover_mid"
	CloudCoverHigh           Metric = "cloud_cover_high"
	Visibility               Metric = "visibility"
	Evapotranspiration       Metric = "evapotranspiration"
	Et0FaoEvapotranspiration Metric = "et0_fao_evapotranspiration"
	VapourPressureDeficit    Metric = "vapour_pressure_deficit"
)

// HourlyMetrics is the fixed list the page requests, in request order
var HourlyMetrics = []Metric{
	Temperature2m,
	RelativeHumidity2m,
	ApparentTemperature,
	PrecipitationProbability,
	Precipitation,
	Rain,
	Showers,
	Snowfall,
	SnowDepth,
	WeatherCode,
	PressureMsl,
	SurfacePressure,
	CloudCover,
	CloudCoverLow,
	CloudCoverMid,
	CloudCoverHigh,
	Visibility,
	Evapotranspiration,
	Et0FaoEvapotranspiration,
	VapourPressureDeficit,
}

var (
	ErrUnknownMetric   = errors.New("unknown hourly metric")
	ErrDuplicateMetric = errors.New("duplicate hourly metric")
)

// IsKnown reports whether m is one of HourlyMetrics
func (m Metric) IsKnown() bool {
	var h HourlyData
	return h.series(m) != nil
}

// MetricNames converts metrics to the query parameter form, keeping order
func MetricNames(metrics []Metric) []string {
	names := make([]string, len(metrics))
	for i, m := range metrics {
		names[i] = string(m)
	}
	return names
}

// MetricIndex maps each requested metric to its response slot. It is built
// once from the ordered request list.
type MetricIndex struct {
	slots map[Metric]int
}

// NewMetricIndex builds the index for metrics in request order
func NewMetricIndex(metrics []Metric) (MetricIndex, error) {
	slots := make(map[Metric]int, len(metrics))
	for i, m := range metrics {
		if !m.IsKnown() {
			return MetricIndex{}, fmt.Errorf("%w: %s", ErrUnknownMetric, m)
		}
		if _, ok := slots[m]; ok {
			return MetricIndex{}, fmt.Errorf("%w: %s", ErrDuplicateMetric, m)
		}
		slots[m] = i
	}
	return MetricIndex{slots: slots}, nil
}

// Slot returns the response slot for m and whether m was requested
func (ix MetricIndex) Slot(m Metric) (int, bool) {
	i, ok := ix.slots[m]
	return i, ok
}

// Len returns the number of requested metrics
func (ix MetricIndex) Len() int {
	return len(ix.slots)
}
