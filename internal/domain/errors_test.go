package domain

import (
	"errors"
	"testing"
)

func TestNewProviderError(t *testing.T) {
	tests := []struct {
		code int
		want FetchErrorKind
	}{
		{401, FetchUnauthorized},
		{404, FetchNotFound},
		{429, FetchOther},
		{500, FetchOther},
	}

	for _, tt := range tests {
		err := NewProviderError(tt.code, "msg")
		if err.Kind != tt.want {
			t.Errorf("code %d: expected kind %s, got %s", tt.code, tt.want, err.Kind)
		}
		if err.Code != tt.code {
			t.Errorf("code %d: expected code preserved, got %d", tt.code, err.Code)
		}
	}
}

func TestUserMessage(t *testing.T) {
	tests := []struct {
		name string
		err  *FetchError
		want string
	}{
		{
			name: "unauthorized",
			err:  NewProviderError(401, "Invalid API key"),
			want: "API Error 401: Unauthorized. Please check your API key.",
		},
		{
			name: "not found",
			err:  NewProviderError(404, "city not found"),
			want: "City not found! Please check the spelling and try again.",
		},
		{
			name: "other passes provider message through",
			err:  NewProviderError(429, "rate limited"),
			want: "Error 429: rate limited",
		},
		{
			name: "malformed renders like other",
			err:  NewMalformedError(200, "missing field main.temp", nil),
			want: "Error 200: missing field main.temp",
		},
		{
			name: "unreachable",
			err:  NewUnreachableError(errors.New("dial tcp: refused")),
			want: "Unable to reach the weather service. Please check your connection and try again.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.UserMessage(); got != tt.want {
				t.Errorf("Expected %q, got %q", tt.want, got)
			}
		})
	}
}

func TestFetchErrorUnwrap(t *testing.T) {
	cause := errors.New("connection reset")
	var err error = NewUnreachableError(cause)

	if !errors.Is(err, cause) {
		t.Error("Expected unreachable error to wrap its cause")
	}

	var fe *FetchError
	if !errors.As(err, &fe) || fe.Kind != FetchUnreachable {
		t.Errorf("Expected *FetchError of kind unreachable, got %v", err)
	}
}

func TestBackgroundKeyValid(t *testing.T) {
	for _, k := range BackgroundKeys {
		if !k.Valid() {
			t.Errorf("Expected %q to be valid", k)
		}
	}
	for _, k := range []BackgroundKey{"Drizzle", "Fog", "Tornado", ""} {
		if k.Valid() {
			t.Errorf("Expected %q to be invalid", k)
		}
	}
}

func TestReadingLocalTime(t *testing.T) {
	r := WeatherReading{ObservedAt: 1700000000, UTCOffset: 19800}
	got := r.LocalTime()

	if got.Location().String() != "UTC" {
		t.Errorf("Expected UTC-anchored instant, got %s", got.Location())
	}
	if got.Hour() != 3 || got.Minute() != 43 || got.Day() != 15 {
		t.Errorf("Expected 2023-11-15 03:43, got %v", got)
	}
}
