package types

import "math"

// WeatherCode represents a WMO weather code
type WeatherCode int

// Weather represents weather conditions with a code and description
type Weather struct {
	Code        int    `json:"code"`
	Description string `json:"description"`
}

// Weather code constants
const (
	ClearSky                     WeatherCode = 0
	MainlyClear                  WeatherCode = 1
	PartlyCloudy                 WeatherCode = 2
	Overcast                     WeatherCode = 3
	Fog                          WeatherCode = 45
	DepositingRimeFog            WeatherCode = 48
	DrizzleLight                 WeatherCode = 51
	DrizzleModerate              WeatherCode = 53
	DrizzleDense                 WeatherCode = 55
	FreezingDrizzleLight         WeatherCode = 56
	FreezingDrizzleDense         WeatherCode = 57
	RainSlight                   WeatherCode = 61
	RainModerate                 WeatherCode = 63
	RainHeavy                    WeatherCode = 65
	FreezingRainLight            WeatherCode = 66
	FreezingRainHeavy            WeatherCode = 67
	SnowFallSlight               WeatherCode = 71
	SnowFallModerate             WeatherCode = 73
	SnowFallHeavy                WeatherCode = 75
	SnowGrains                   WeatherCode = 77
	RainShowersSlight            WeatherCode = 80
	RainShowersModerate          WeatherCode = 81
	RainShowersViolent           WeatherCode = 82
	SnowShowersSlight            WeatherCode = 85
	SnowShowersHeavy             WeatherCode = 86
	ThunderstormSlightOrModerate WeatherCode = 95
	ThunderstormWithSlightHail   WeatherCode = 96
	ThunderstormWithHeavyHail    WeatherCode = 99
)

// UnknownWeather is the description used for codes outside the WMO table
const UnknownWeather = "Neznámé"

var weatherDescriptions = map[WeatherCode]string{
	ClearSky:                     "Jasno",
	MainlyClear:                  "Skoro jasno",
	PartlyCloudy:                 "Polojasno",
	Overcast:                     "Zataženo",
	Fog:                          "Mlha",
	DepositingRimeFog:            "Mlha s námrazou",
	DrizzleLight:                 "Slabé mrholení",
	DrizzleModerate:              "Mrholení",
	DrizzleDense:                 "Husté mrholení",
	FreezingDrizzleLight:         "Slabé mrznoucí mrholení",
	FreezingDrizzleDense:         "Husté mrznoucí mrholení",
	RainSlight:                   "Slabý déšť",
	RainModerate:                 "Déšť",
	RainHeavy:                    "Silný déšť",
	FreezingRainLight:            "Slabý mrznoucí déšť",
	FreezingRainHeavy:            "Silný mrznoucí déšť",
	SnowFallSlight:               "Slabé sněžení",
	SnowFallModerate:             "Sněžení",
	SnowFallHeavy:                "Silné sněžení",
	SnowGrains:                   "Sněhová zrna",
	RainShowersSlight:            "Slabé přeháňky",
	RainShowersModerate:          "Přeháňky",
	RainShowersViolent:           "Prudké přeháňky",
	SnowShowersSlight:            "Slabé sněhové přeháňky",
	SnowShowersHeavy:             "Silné sněhové přeháňky",
	ThunderstormSlightOrModerate: "Bouřka",
	ThunderstormWithSlightHail:   "Bouřka se slabým krupobitím",
	ThunderstormWithHeavyHail:    "Bouřka se silným krupobitím",
}

// GetWeatherDescription returns the description for a given weather code
func GetWeatherDescription(code int) string {
	if desc, ok := weatherDescriptions[WeatherCode(code)]; ok {
		return desc
	}
	return UnknownWeather
}

// NewWeather creates a Weather instance from a weather code
func NewWeather(code int) Weather {
	return Weather{
		Code:        code,
		Description: GetWeatherDescription(code),
	}
}

// NewWeatherFromSample converts an hourly weather_code sample. It reports
// false for a missing (NaN) or fractional sample.
func NewWeatherFromSample(sample float64) (Weather, bool) {
	if math.IsNaN(sample) || math.IsInf(sample, 0) || sample != math.Trunc(sample) {
		return Weather{}, false
	}
	return NewWeather(int(sample)), true
}
