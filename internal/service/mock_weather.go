package service

import (
	"context"
	"strings"

	"github.com/skyglass/weather-widget/internal/domain"
)

// MockWeatherService implements domain.WeatherProvider for demo mode
// (no API key configured). Every city gets the same reading.
type MockWeatherService struct {
	reading domain.WeatherReading
}

// NewMockWeatherService creates a new mock provider
func NewMockWeatherService() *MockWeatherService {
	return &MockWeatherService{
		reading: domain.WeatherReading{
			Country:      "IN",
			TemperatureC: 30.2,
			Condition:    domain.ConditionClear,
			Description:  "clear sky",
			Icon:         "01d",
			Humidity:     70,
			WindSpeed:    3.1,
			ObservedAt:   1700000000,
			UTCOffset:    19800,
			IsMock:       true,
		},
	}
}

// Fetch returns the demo reading labelled with the requested city
func (s *MockWeatherService) Fetch(ctx context.Context, city string) (domain.WeatherReading, error) {
	city = strings.TrimSpace(city)
	if city == "" {
		return domain.WeatherReading{}, domain.ErrEmptyCity
	}
	if err := ctx.Err(); err != nil {
		return domain.WeatherReading{}, domain.NewUnreachableError(err)
	}

	r := s.reading
	r.Location = city
	return r, nil
}
