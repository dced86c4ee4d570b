package weather

import (
	"errors"
	"time"

	"github.com/alexanderramin/aura/internal/domain"
)

// Config holds the settings for the OpenWeatherMap client and its cache.
type Config struct {
	APIKey     string        `yaml:"api_key"`
	GeoURL     string        `yaml:"geo_url"`
	WeatherURL string        `yaml:"weather_url"`
	Country    string        `yaml:"country"`
	TimeoutMs  int           `yaml:"timeout_ms"`
	MaxRetries int           `yaml:"max_retries"`
	CacheTTL   time.Duration `yaml:"cache_ttl"`
	LogCalls   bool          `yaml:"log_calls"`
}

// DefaultConfig returns the public OpenWeatherMap endpoints restricted to India.
// No API key is set.
func DefaultConfig() Config {
	return Config{
		GeoURL:     "https://api.openweathermap.org/geo/1.0/zip",
		WeatherURL: "https://api.openweathermap.org/data/2.5/weather",
		Country:    "IN",
		TimeoutMs:  8000,
		MaxRetries: 1,
		CacheTTL:   domain.WeatherValidity,
	}
}

// Timeout returns the per-fetch deadline.
func (c Config) Timeout() time.Duration {
	return time.Duration(c.TimeoutMs) * time.Millisecond
}

// Validate checks the settings that would otherwise fail at fetch time.
// A missing API key is not an error here; Fetch reports ErrMissingAPIKey.
func (c Config) Validate() error {
	var errs []error
	if c.GeoURL == "" || c.WeatherURL == "" {
		errs = append(errs, errors.New("weather: geo_url and weather_url are required"))
	}
	if c.TimeoutMs <= 0 {
		errs = append(errs, errors.New("weather: timeout_ms must be positive"))
	}
	if c.MaxRetries < 0 {
		errs = append(errs, errors.New("weather: max_retries must not be negative"))
	}
	if c.CacheTTL <= 0 || c.CacheTTL > domain.WeatherValidity {
		errs = append(errs, errors.New("weather: cache_ttl must be in (0, 1h]"))
	}
	return errors.Join(errs...)
}
