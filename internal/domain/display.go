package domain

import "time"

// Presentation is the display-ready projection of a WeatherReading
type Presentation struct {
	LocationLabel    string        `json:"location_label"`
	TemperatureLabel string        `json:"temperature_label"`
	DescriptionLabel string        `json:"description_label"`
	HumidityLabel    string        `json:"humidity_label"`
	WindLabel        string        `json:"wind_label"`
	IconURL          string        `json:"icon_url"`
	DateLabel        string        `json:"date_label"`
	IsDaytime        bool          `json:"is_daytime"`
	BackgroundKey    BackgroundKey `json:"background_key,omitempty"`
	BackgroundURL    string        `json:"background_url,omitempty"`
}

// DisplayStatus is the active variant of the widget's display state
type DisplayStatus string

const (
	StatusIdle    DisplayStatus = "idle"
	StatusLoading DisplayStatus = "loading"
	StatusLoaded  DisplayStatus = "loaded"
	StatusFailed  DisplayStatus = "failed"
)

// Placeholder is shown in numeric fields when a lookup fails
const Placeholder = "-"

// DisplayState is what the widget currently shows
type DisplayState struct {
	Status       DisplayStatus   `json:"status"`
	LookupID     string          `json:"lookup_id,omitempty"`
	City         string          `json:"city,omitempty"`
	Reading      *WeatherReading `json:"reading,omitempty"`
	Presentation Presentation    `json:"presentation"`
	LocalTime    string          `json:"local_time,omitempty"`
	Error        string          `json:"error,omitempty"`
	UpdatedAt    time.Time       `json:"updated_at"`
}

// LookupRequest is the body accepted by the lookup endpoint
type LookupRequest struct {
	City string `json:"city"`
}

// StateResponse wraps display state with metadata
type StateResponse struct {
	Data    DisplayState `json:"data"`
	Success bool         `json:"success"`
	Message string       `json:"message,omitempty"`
}
