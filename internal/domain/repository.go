package domain

import "context"

// WeatherProvider defines how the widget obtains current conditions.
// The domain owns the contract; service holds the implementations.
type WeatherProvider interface {
	// Fetch performs a single lookup for city. Failures are *FetchError
	// except ErrEmptyCity for blank input.
	Fetch(ctx context.Context, city string) (WeatherReading, error)
}

// AssetResolver checks that an image URL is loadable before it is applied
type AssetResolver interface {
	// Resolve returns url when it can be loaded, otherwise fallback
	Resolve(ctx context.Context, url, fallback string) string
}
