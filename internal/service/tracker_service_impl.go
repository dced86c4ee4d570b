package service

import (
	"context"
	"fmt"

	"github.com/alexanderramin/aura/internal/contract"
	"github.com/alexanderramin/aura/internal/db"
	"github.com/alexanderramin/aura/internal/domain"
	"github.com/alexanderramin/aura/internal/repository"
	"github.com/alexanderramin/aura/internal/wellness"
	"github.com/google/uuid"
)

// MaxActivityMinutes bounds a single activity entry to one day.
const MaxActivityMinutes = 24 * 60

type trackerService struct {
	repos Repos
	uow   db.UnitOfWork
	opts  options
}

func NewTrackerService(repos Repos, uow db.UnitOfWork, opts ...Option) TrackerService {
	return &trackerService{repos: repos, uow: uow, opts: buildOptions(opts)}
}

// LogActivity appends an activity, credits its steps and evaluates
// achievements in one transaction.
func (s *trackerService) LogActivity(ctx context.Context, req contract.LogActivityRequest) (resp *contract.LogActivityResponse, err error) {
	fields := map[string]any{"type": string(req.Type), "minutes": req.Minutes}
	defer observe(ctx, s.opts.observer, "log-activity", fields, &err)()

	typ, ok := domain.ParseActivityType(string(req.Type))
	if !ok {
		return nil, contract.NewError(contract.ErrInvalidActivity, "unknown activity type %q", req.Type)
	}
	if req.Minutes <= 0 || req.Minutes > MaxActivityMinutes {
		return nil, contract.NewError(contract.ErrInvalidDuration,
			"minutes must be between 1 and %d, got %d", MaxActivityMinutes, req.Minutes)
	}

	now := s.opts.clock(req.Now).UTC()
	entry := domain.ActivityEntry{
		ID:           uuid.New().String(),
		Type:         typ,
		Minutes:      req.Minutes,
		StepsAwarded: domain.StepsFor(typ, req.Minutes),
		LoggedAt:     now,
	}

	resp = &contract.LogActivityResponse{Entry: entry}
	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		if err := repository.NewSQLiteActivityRepo(tx).Create(ctx, &entry); err != nil {
			return err
		}
		if err := repository.NewSQLiteTrackerRepo(tx).AddSteps(ctx, entry.StepsAwarded); err != nil {
			return err
		}
		m, score, newly, err := refreshAchievements(ctx, tx, now)
		if err != nil {
			return err
		}
		resp.TotalSteps = m.Steps
		resp.Score = score
		resp.NewBadges = newly
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("logging activity: %w", err)
	}
	fields["steps_awarded"] = entry.StepsAwarded
	fields["new_badges"] = len(resp.NewBadges)
	return resp, nil
}

// DrinkWater adds one glass up to the daily goal. At the goal it changes
// nothing and reports GoalReached.
func (s *trackerService) DrinkWater(ctx context.Context) (resp *contract.WaterResponse, err error) {
	fields := map[string]any{}
	defer observe(ctx, s.opts.observer, "drink-water", fields, &err)()

	now := s.opts.now().UTC()
	resp = &contract.WaterResponse{}
	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		tracker := repository.NewSQLiteTrackerRepo(tx)
		state, err := tracker.Get(ctx)
		if err != nil {
			return err
		}
		if state.Water < domain.WaterGoalGlasses {
			if err := tracker.SetWater(ctx, state.Water+1); err != nil {
				return err
			}
		}
		m, score, newly, err := refreshAchievements(ctx, tx, now)
		if err != nil {
			return err
		}
		resp.Water = m.Water
		resp.GoalReached = m.Water >= domain.WaterGoalGlasses
		resp.Score = score
		resp.NewBadges = newly
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("logging water: %w", err)
	}
	fields["water"] = resp.Water
	return resp, nil
}

func (s *trackerService) AddCalories(ctx context.Context, n int) (resp *contract.CaloriesResponse, err error) {
	fields := map[string]any{"calories": n}
	defer observe(ctx, s.opts.observer, "add-calories", fields, &err)()

	if n <= 0 {
		return nil, contract.NewError(contract.ErrInvalidCalories, "calories must be > 0, got %d", n)
	}

	now := s.opts.now().UTC()
	resp = &contract.CaloriesResponse{}
	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		if err := repository.NewSQLiteTrackerRepo(tx).AddCalories(ctx, n); err != nil {
			return err
		}
		m, score, newly, err := refreshAchievements(ctx, tx, now)
		if err != nil {
			return err
		}
		resp.Calories = m.Calories
		resp.Score = score
		resp.NewBadges = newly
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("adding calories: %w", err)
	}
	return resp, nil
}

func (s *trackerService) LogMood(ctx context.Context, req contract.LogMoodRequest) (resp *contract.LogMoodResponse, err error) {
	fields := map[string]any{"mood": string(req.Mood)}
	defer observe(ctx, s.opts.observer, "log-mood", fields, &err)()

	mood, ok := domain.ParseMoodLabel(string(req.Mood))
	if !ok {
		return nil, contract.NewError(contract.ErrInvalidMood, "unknown mood %q", req.Mood)
	}

	now := s.opts.clock(req.Now).UTC()
	entry := domain.MoodEntry{ID: uuid.New().String(), Mood: mood, LoggedAt: now}

	resp = &contract.LogMoodResponse{Entry: entry}
	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		if err := repository.NewSQLiteMoodRepo(tx).Create(ctx, &entry); err != nil {
			return err
		}
		m, _, newly, err := refreshAchievements(ctx, tx, now)
		if err != nil {
			return err
		}
		resp.Insight = wellness.MoodInsight(m)
		resp.NewBadges = newly
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("logging mood: %w", err)
	}
	return resp, nil
}

// Recent returns the newest limit entries of each log. A limit of zero or
// less uses contract.RecentLogLimit.
func (s *trackerService) Recent(ctx context.Context, limit int) (*contract.RecentLogs, error) {
	if limit <= 0 {
		limit = contract.RecentLogLimit
	}
	activities, err := s.repos.Activities.ListRecent(ctx, limit)
	if err != nil {
		return nil, err
	}
	moods, err := s.repos.Moods.ListRecent(ctx, limit)
	if err != nil {
		return nil, err
	}
	return &contract.RecentLogs{Activities: activities, Moods: moods}, nil
}

// Reset clears metrics, logs, badges, quiz progress and chat history. The
// profile and the weather snapshot are kept.
func (s *trackerService) Reset(ctx context.Context) (err error) {
	defer observe(ctx, s.opts.observer, "reset", nil, &err)()

	return s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		if err := repository.NewSQLiteTrackerRepo(tx).Reset(ctx); err != nil {
			return err
		}
		if err := repository.NewSQLiteActivityRepo(tx).DeleteAll(ctx); err != nil {
			return err
		}
		if err := repository.NewSQLiteMoodRepo(tx).DeleteAll(ctx); err != nil {
			return err
		}
		if err := repository.NewSQLiteBadgeRepo(tx).DeleteAll(ctx); err != nil {
			return err
		}
		return repository.NewSQLiteChatRepo(tx).Clear(ctx)
	})
}
