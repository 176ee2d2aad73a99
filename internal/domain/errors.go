package domain

import (
	"errors"
	"fmt"
)

// ErrEmptyCity is returned when a lookup is requested for a blank city
var ErrEmptyCity = errors.New("city must not be empty")

// FetchErrorKind classifies why a weather lookup failed
type FetchErrorKind int

const (
	FetchOther FetchErrorKind = iota
	FetchUnauthorized
	FetchNotFound
	FetchMalformedResponse
	FetchUnreachable
)

func (k FetchErrorKind) String() string {
	switch k {
	case FetchUnauthorized:
		return "unauthorized"
	case FetchNotFound:
		return "not_found"
	case FetchMalformedResponse:
		return "malformed_response"
	case FetchUnreachable:
		return "unreachable"
	default:
		return "other"
	}
}

// FetchError is the typed outcome of a failed weather lookup
type FetchError struct {
	Kind    FetchErrorKind
	Code    int
	Message string
	Err     error
}

func (e *FetchError) Error() string {
	switch e.Kind {
	case FetchUnreachable:
		return fmt.Sprintf("weather provider unreachable: %v", e.Err)
	case FetchMalformedResponse:
		return fmt.Sprintf("malformed weather response: %s", e.Message)
	default:
		return fmt.Sprintf("weather provider error %d (%s): %s", e.Code, e.Kind, e.Message)
	}
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

// UserMessage renders the error as the text shown in the widget
func (e *FetchError) UserMessage() string {
	switch e.Kind {
	case FetchUnauthorized:
		return "API Error 401: Unauthorized. Please check your API key."
	case FetchNotFound:
		return "City not found! Please check the spelling and try again."
	case FetchUnreachable:
		return "Unable to reach the weather service. Please check your connection and try again."
	default:
		return fmt.Sprintf("Error %d: %s", e.Code, e.Message)
	}
}

// NewUnreachableError wraps a transport failure
func NewUnreachableError(err error) *FetchError {
	return &FetchError{Kind: FetchUnreachable, Err: err}
}

// NewMalformedError reports a 2xx response the client could not use
func NewMalformedError(code int, message string, err error) *FetchError {
	return &FetchError{Kind: FetchMalformedResponse, Code: code, Message: message, Err: err}
}

// NewProviderError maps a provider error code onto the taxonomy
func NewProviderError(code int, message string) *FetchError {
	kind := FetchOther
	switch code {
	case 401:
		kind = FetchUnauthorized
	case 404:
		kind = FetchNotFound
	}
	return &FetchError{Kind: kind, Code: code, Message: message}
}
