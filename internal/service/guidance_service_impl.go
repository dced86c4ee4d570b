package service

import (
	"context"
	"math"

	"github.com/alexanderramin/aura/internal/contract"
	"github.com/alexanderramin/aura/internal/domain"
	"github.com/alexanderramin/aura/internal/wellness"
)

type guidanceService struct {
	repos Repos
	opts  options
}

func NewGuidanceService(repos Repos, opts ...Option) GuidanceService {
	return &guidanceService{repos: repos, opts: buildOptions(opts)}
}

// Recommendations runs the rule engine over a fresh snapshot of the store.
func (s *guidanceService) Recommendations(ctx context.Context) (resp *contract.GuidanceResponse, err error) {
	fields := map[string]any{}
	defer observe(ctx, s.opts.observer, "recommendations", fields, &err)()

	now := s.opts.now()
	snap, err := loadSnapshot(ctx, s.repos, now)
	if err != nil {
		return nil, err
	}

	recs := wellness.GenerateRecommendations(snap.Profile, snap.Metrics, snap.Weather, now)
	fields["count"] = len(recs)
	fields["has_weather"] = snap.Weather != nil
	return &contract.GuidanceResponse{
		Recommendations: recs,
		Score:           wellness.CalculateScore(snap.Metrics),
		Weather:         snap.Weather,
		GeneratedAt:     now.UTC(),
	}, nil
}

func (s *guidanceService) Dashboard(ctx context.Context) (*contract.DashboardResponse, error) {
	now := s.opts.now()
	snap, err := loadSnapshot(ctx, s.repos, now)
	if err != nil {
		return nil, err
	}
	m := snap.Metrics
	return &contract.DashboardResponse{
		Profile:       snap.Profile,
		Metrics:       m,
		Score:         wellness.CalculateScore(m),
		Badges:        snap.Badges.Ordered(),
		Weather:       snap.Weather,
		StepProgress:  math.Min(float64(m.Steps)/domain.StepGoal, 1),
		WaterProgress: float64(m.Water) / domain.WaterGoalGlasses,
		MoodInsight:   wellness.MoodInsight(m),
		GeneratedAt:   now.UTC(),
	}, nil
}

// Tips draws the daily tips. A profile is required.
func (s *guidanceService) Tips(ctx context.Context) ([]wellness.Tip, error) {
	if _, err := requireProfile(ctx, s.repos); err != nil {
		return nil, err
	}
	return wellness.PickTips(s.opts.random, wellness.DefaultTipCount), nil
}
