package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/alexanderramin/aura/internal/contract"
	"github.com/alexanderramin/aura/internal/domain"
	"github.com/alexanderramin/aura/internal/repository"
	"github.com/alexanderramin/aura/internal/weather"
)

type weatherService struct {
	provider weather.Provider
	store    repository.WeatherRepo
	opts     options
}

// NewWeatherService fetches through provider, normally a
// weather.CachedProvider backed by store.
func NewWeatherService(provider weather.Provider, store repository.WeatherRepo, opts ...Option) WeatherService {
	return &weatherService{provider: provider, store: store, opts: buildOptions(opts)}
}

func (s *weatherService) Fetch(ctx context.Context, pincode string) (snap *domain.WeatherSnapshot, err error) {
	fields := map[string]any{"pincode": pincode}
	defer observe(ctx, s.opts.observer, "fetch-weather", fields, &err)()

	snap, err = s.provider.Fetch(ctx, pincode)
	if errors.Is(err, weather.ErrInvalidPincode) {
		return nil, contract.NewError(contract.ErrInvalidPincode, "pincode must be 6 digits and not start with 0")
	}
	if err != nil {
		return nil, fmt.Errorf("fetching weather: %w", err)
	}
	fields["location"] = snap.Location
	return snap, nil
}

// Current returns the stored snapshot while it is valid, or nil.
func (s *weatherService) Current(ctx context.Context) (*domain.WeatherSnapshot, error) {
	snap, err := s.store.LatestWeather(ctx)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return snap.Valid(s.opts.now()), nil
}
