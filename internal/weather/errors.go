package weather

import "errors"

var (
	// ErrInvalidPincode indicates the input is not a 6-digit postal code.
	ErrInvalidPincode = errors.New("invalid pincode: expected 6 digits not starting with 0")

	// ErrLocationNotFound indicates the geocoder has no match for the pincode.
	ErrLocationNotFound = errors.New("location not found for pincode")

	// ErrWeatherUnavailable indicates the weather service is unreachable or failing.
	ErrWeatherUnavailable = errors.New("weather service unavailable")

	// ErrTimeout indicates the request exceeded the configured timeout.
	ErrTimeout = errors.New("weather request timed out")

	// ErrRetryExhausted indicates all retry attempts have been exhausted.
	ErrRetryExhausted = errors.New("weather retry attempts exhausted")

	// ErrMissingAPIKey indicates no API key is configured.
	ErrMissingAPIKey = errors.New("weather api key not configured")
)
