package service

import (
	"github.com/skyglass/weather-widget/internal/domain"
)

// WeatherProvider is re-exported from domain for convenience
type WeatherProvider = domain.WeatherProvider

// NewProvider picks the live client, or demo data when no API key is set
func NewProvider(apiKey, baseURL string) WeatherProvider {
	if apiKey == "" {
		return NewMockWeatherService()
	}
	svc := NewWeatherService(apiKey)
	if baseURL != "" {
		svc.SetBaseURL(baseURL)
	}
	return svc
}
