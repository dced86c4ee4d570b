package service

import (
	"context"
	"errors"

	"github.com/alexanderramin/aura/internal/contract"
	"github.com/alexanderramin/aura/internal/domain"
	"github.com/alexanderramin/aura/internal/repository"
)

// requireProfile loads the profile, mapping a missing one to PROFILE_REQUIRED.
func requireProfile(ctx context.Context, r Repos) (*domain.UserProfile, error) {
	p, err := r.Profiles.Get(ctx)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, contract.NewError(contract.ErrProfileRequired, "please complete your profile first")
	}
	if err != nil {
		return nil, err
	}
	return p, nil
}
