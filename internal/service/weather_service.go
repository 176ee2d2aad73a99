package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/skyglass/weather-widget/internal/domain"
)

// DefaultOpenWeatherURL is the OpenWeatherMap API root
const DefaultOpenWeatherURL = "https://api.openweathermap.org/data/2.5"

// WeatherService handles weather data fetching
type WeatherService struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
}

// NewWeatherService creates a new weather service
func NewWeatherService(apiKey string) *WeatherService {
	return &WeatherService{
		apiKey:  apiKey,
		baseURL: DefaultOpenWeatherURL,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// SetBaseURL points the client at a different API root (useful for testing)
func (s *WeatherService) SetBaseURL(baseURL string) {
	s.baseURL = strings.TrimRight(baseURL, "/")
}

// OpenWeatherResponse represents the OpenWeatherMap current weather response.
// Pointers distinguish a missing field from a zero value.
type OpenWeatherResponse struct {
	Main *struct {
		Temp     *float64 `json:"temp"`
		Humidity *int     `json:"humidity"`
	} `json:"main"`
	Weather []struct {
		Main        string `json:"main"`
		Description string `json:"description"`
		Icon        string `json:"icon"`
	} `json:"weather"`
	Wind *struct {
		Speed *float64 `json:"speed"`
	} `json:"wind"`
	Name string `json:"name"`
	Sys  struct {
		Country string `json:"country"`
	} `json:"sys"`
	Dt       *int64 `json:"dt"`
	Timezone *int   `json:"timezone"`
}

// OpenWeatherError is the body of a non-2xx response
type OpenWeatherError struct {
	Cod     responseCode `json:"cod"`
	Message string       `json:"message"`
}

// responseCode accepts cod as either a JSON number or a string ("404")
type responseCode int

func (c *responseCode) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(bytes.TrimSpace(data)), `"`)
	if s == "" || s == "null" {
		*c = 0
		return nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return fmt.Errorf("weather: invalid cod %q: %w", s, err)
	}
	*c = responseCode(n)
	return nil
}

// Fetch retrieves current conditions for city with a single request
func (s *WeatherService) Fetch(ctx context.Context, city string) (domain.WeatherReading, error) {
	city = strings.TrimSpace(city)
	if city == "" {
		return domain.WeatherReading{}, domain.ErrEmptyCity
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.buildURL(city), nil)
	if err != nil {
		return domain.WeatherReading{}, fmt.Errorf("weather: failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return domain.WeatherReading{}, domain.NewUnreachableError(err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return domain.WeatherReading{}, domain.NewUnreachableError(fmt.Errorf("weather: failed to read response: %w", err))
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return domain.WeatherReading{}, parseProviderError(resp.StatusCode, body)
	}

	var owResp OpenWeatherResponse
	if err := json.Unmarshal(body, &owResp); err != nil {
		return domain.WeatherReading{}, domain.NewMalformedError(resp.StatusCode, "response is not valid JSON", err)
	}

	reading, err := owResp.toReading()
	if err != nil {
		return domain.WeatherReading{}, domain.NewMalformedError(resp.StatusCode, err.Error(), nil)
	}
	return reading, nil
}

func (s *WeatherService) buildURL(city string) string {
	query := url.Values{}
	query.Set("q", city)
	query.Set("appid", s.apiKey)
	query.Set("units", "metric")
	return fmt.Sprintf("%s/weather?%s", s.baseURL, query.Encode())
}

// parseProviderError maps a non-2xx response onto the fetch error taxonomy.
// The provider's cod wins over the HTTP status when present.
func parseProviderError(status int, body []byte) *domain.FetchError {
	var owErr OpenWeatherError
	if err := json.Unmarshal(body, &owErr); err != nil || owErr.Cod == 0 {
		msg := owErr.Message
		if msg == "" {
			msg = http.StatusText(status)
		}
		return domain.NewProviderError(status, msg)
	}
	return domain.NewProviderError(int(owErr.Cod), owErr.Message)
}

func (r OpenWeatherResponse) toReading() (domain.WeatherReading, error) {
	switch {
	case r.Name == "":
		return domain.WeatherReading{}, fmt.Errorf("missing field name")
	case r.Main == nil || r.Main.Temp == nil:
		return domain.WeatherReading{}, fmt.Errorf("missing field main.temp")
	case r.Main.Humidity == nil:
		return domain.WeatherReading{}, fmt.Errorf("missing field main.humidity")
	case r.Wind == nil || r.Wind.Speed == nil:
		return domain.WeatherReading{}, fmt.Errorf("missing field wind.speed")
	case len(r.Weather) == 0 || r.Weather[0].Main == "":
		return domain.WeatherReading{}, fmt.Errorf("missing field weather[0].main")
	case r.Dt == nil:
		return domain.WeatherReading{}, fmt.Errorf("missing field dt")
	case r.Timezone == nil:
		return domain.WeatherReading{}, fmt.Errorf("missing field timezone")
	}

	return domain.WeatherReading{
		Location:     r.Name,
		Country:      r.Sys.Country,
		TemperatureC: *r.Main.Temp,
		Condition:    r.Weather[0].Main,
		Description:  r.Weather[0].Description,
		Icon:         r.Weather[0].Icon,
		Humidity:     *r.Main.Humidity,
		WindSpeed:    *r.Wind.Speed,
		ObservedAt:   *r.Dt,
		UTCOffset:    *r.Timezone,
	}, nil
}
