package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/alexanderramin/aura/internal/contract"
	"github.com/alexanderramin/aura/internal/domain"
	"github.com/alexanderramin/aura/internal/repository"
)

type profileService struct {
	profiles repository.ProfileRepo
	opts     options
}

func NewProfileService(profiles repository.ProfileRepo, opts ...Option) ProfileService {
	return &profileService{profiles: profiles, opts: buildOptions(opts)}
}

// Save validates p and replaces the stored profile with it.
func (s *profileService) Save(ctx context.Context, p *domain.UserProfile) (err error) {
	fields := map[string]any{}
	defer observe(ctx, s.opts.observer, "save-profile", fields, &err)()

	if p == nil {
		return contract.NewError(contract.ErrInvalidProfile, "profile is required")
	}
	normalized := *p
	normalized.Name = strings.TrimSpace(normalized.Name)
	normalized.BloodGroup = strings.TrimSpace(normalized.BloodGroup)
	if normalized.HealthIssue == "" {
		normalized.HealthIssue = domain.HealthNone
	}

	if err = profileValidator().Struct(&normalized); err != nil {
		return validationError(contract.ErrInvalidProfile, err)
	}
	fields["bmi_category"] = string(normalized.BMICategory())
	fields["goal"] = string(normalized.Goal)

	if err = s.profiles.Upsert(ctx, &normalized); err != nil {
		return fmt.Errorf("saving profile: %w", err)
	}
	*p = normalized
	return nil
}

// Get returns the stored profile or an error wrapping repository.ErrNotFound.
func (s *profileService) Get(ctx context.Context) (*domain.UserProfile, error) {
	return s.profiles.Get(ctx)
}
