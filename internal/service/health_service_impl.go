package service

import (
	"context"
	"errors"

	"github.com/alexanderramin/aura/internal/contract"
	"github.com/alexanderramin/aura/internal/domain"
	"github.com/alexanderramin/aura/internal/wellness"
)

type healthService struct {
	repos Repos
	opts  options
}

func NewHealthService(repos Repos, opts ...Option) HealthService {
	return &healthService{repos: repos, opts: buildOptions(opts)}
}

func (s *healthService) Analyze(ctx context.Context) (*wellness.HealthReport, error) {
	p, err := requireProfile(ctx, s.repos)
	if err != nil {
		return nil, err
	}
	report, ok := wellness.AnalyzeHealth(p)
	if !ok {
		return nil, contract.NewError(contract.ErrProfileRequired, "age, height and weight are needed for health analysis")
	}
	return &report, nil
}

// Cycle projects the menstrual cycle. Only female profiles can use it. A
// zero length means the default cycle length.
func (s *healthService) Cycle(ctx context.Context, req contract.CycleRequest) (report *wellness.CycleReport, err error) {
	fields := map[string]any{"length": req.LengthDays}
	defer observe(ctx, s.opts.observer, "cycle-analysis", fields, &err)()

	p, err := requireProfile(ctx, s.repos)
	if err != nil {
		return nil, err
	}
	if p.Gender != domain.GenderFemale {
		return nil, contract.NewError(contract.ErrInvalidCycle, "cycle tracking is available for female profiles only")
	}

	length := req.LengthDays
	if length == 0 {
		length = wellness.DefaultCycleLength
	}
	if length < wellness.MinCycleLength || length > wellness.MaxCycleLength {
		return nil, contract.NewError(contract.ErrInvalidCycle,
			"cycle length must be between %d and %d days, got %d",
			wellness.MinCycleLength, wellness.MaxCycleLength, length)
	}

	r, err := wellness.AnalyzeCycle(req.Start, length, s.opts.clock(req.Now))
	switch {
	case errors.Is(err, wellness.ErrCycleStartMissing), errors.Is(err, wellness.ErrCycleStartFuture):
		return nil, contract.NewError(contract.ErrInvalidCycle, "%s", err.Error())
	case err != nil:
		return nil, err
	}
	fields["phase"] = string(r.Phase)
	return &r, nil
}
