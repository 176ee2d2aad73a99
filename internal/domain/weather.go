package domain

import "time"

// WeatherReading is one fetched snapshot of current conditions for a location
type WeatherReading struct {
	Location     string  `json:"location"`
	Country      string  `json:"country"`
	TemperatureC float64 `json:"temperature_c"`
	Condition    string  `json:"condition"`
	Description  string  `json:"description"`
	Icon         string  `json:"icon"`
	Humidity     int     `json:"humidity"`
	WindSpeed    float64 `json:"wind_speed"`
	ObservedAt   int64   `json:"observed_at"`
	UTCOffset    int     `json:"utc_offset"`
	IsMock       bool    `json:"is_mock"`
}

// LocalTime returns the location's local wall clock at observation time,
// expressed as a UTC instant with the offset already applied.
func (r WeatherReading) LocalTime() time.Time {
	return time.Unix(r.ObservedAt+int64(r.UTCOffset), 0).UTC()
}

// Condition categories reported by the provider in weather[0].main
const (
	ConditionClear        = "Clear"
	ConditionClouds       = "Clouds"
	ConditionRain         = "Rain"
	ConditionDrizzle      = "Drizzle"
	ConditionThunderstorm = "Thunderstorm"
	ConditionSnow         = "Snow"
	ConditionMist         = "Mist"
	ConditionFog          = "Fog"
	ConditionHaze         = "Haze"
)

// BackgroundKey is a normalized condition category used to pick a background
type BackgroundKey string

const (
	BackgroundClear        BackgroundKey = ConditionClear
	BackgroundClouds       BackgroundKey = ConditionClouds
	BackgroundRain         BackgroundKey = ConditionRain
	BackgroundThunderstorm BackgroundKey = ConditionThunderstorm
	BackgroundSnow         BackgroundKey = ConditionSnow
	BackgroundMist         BackgroundKey = ConditionMist

	// DefaultBackgroundKey is used for categories with no configured mapping
	DefaultBackgroundKey = BackgroundClear
)

// BackgroundKeys lists every key a background table may configure
var BackgroundKeys = []BackgroundKey{
	BackgroundClear,
	BackgroundClouds,
	BackgroundRain,
	BackgroundThunderstorm,
	BackgroundSnow,
	BackgroundMist,
}

// Valid reports whether k is one of the closed set of background keys
func (k BackgroundKey) Valid() bool {
	for _, known := range BackgroundKeys {
		if k == known {
			return true
		}
	}
	return false
}
