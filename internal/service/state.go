package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/alexanderramin/aura/internal/db"
	"github.com/alexanderramin/aura/internal/domain"
	"github.com/alexanderramin/aura/internal/repository"
	"github.com/alexanderramin/aura/internal/wellness"
	"golang.org/x/sync/errgroup"
)

// Repos bundles the Metric Store repositories used for reads outside a
// transaction.
type Repos struct {
	Profiles   repository.ProfileRepo
	Tracker    repository.TrackerRepo
	Activities repository.ActivityRepo
	Moods      repository.MoodRepo
	Badges     repository.BadgeRepo
	Weather    repository.WeatherRepo
	Chat       repository.ChatRepo
}

// NewSQLiteRepos builds every repository over conn.
func NewSQLiteRepos(conn db.DBTX) Repos {
	return Repos{
		Profiles:   repository.NewSQLiteProfileRepo(conn),
		Tracker:    repository.NewSQLiteTrackerRepo(conn),
		Activities: repository.NewSQLiteActivityRepo(conn),
		Moods:      repository.NewSQLiteMoodRepo(conn),
		Badges:     repository.NewSQLiteBadgeRepo(conn),
		Weather:    repository.NewSQLiteWeatherRepo(conn),
		Chat:       repository.NewSQLiteChatRepo(conn),
	}
}

// snapshot is one consistent view of the Metric Store handed to the engine.
// Profile and Weather are nil when absent; Weather is nil when stale.
type snapshot struct {
	Profile *domain.UserProfile
	Metrics *domain.Metrics
	Quiz    domain.QuizState
	Badges  domain.BadgeSet
	Weather *domain.WeatherSnapshot
}

// loadSnapshot reads every part of the store concurrently.
func loadSnapshot(ctx context.Context, r Repos, now time.Time) (*snapshot, error) {
	var (
		profile    *domain.UserProfile
		tracker    *repository.TrackerState
		activities []domain.ActivityEntry
		moods      []domain.MoodEntry
		badges     domain.BadgeSet
		weather    *domain.WeatherSnapshot
	)

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		p, err := r.Profiles.Get(ctx)
		if err != nil && !errors.Is(err, repository.ErrNotFound) {
			return err
		}
		profile = p
		return nil
	})
	g.Go(func() error {
		var err error
		tracker, err = r.Tracker.Get(ctx)
		return err
	})
	g.Go(func() error {
		var err error
		activities, err = r.Activities.List(ctx)
		return err
	})
	g.Go(func() error {
		var err error
		moods, err = r.Moods.List(ctx)
		return err
	})
	g.Go(func() error {
		var err error
		badges, err = r.Badges.List(ctx)
		return err
	})
	g.Go(func() error {
		w, err := r.Weather.LatestWeather(ctx)
		if err != nil && !errors.Is(err, repository.ErrNotFound) {
			return err
		}
		weather = w.Valid(now)
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("loading state: %w", err)
	}

	return &snapshot{
		Profile: profile,
		Metrics: assembleMetrics(tracker, activities, moods),
		Quiz:    tracker.Quiz,
		Badges:  badges,
		Weather: weather,
	}, nil
}

// loadMetrics reads the metrics sequentially through conn, for use inside
// a transaction.
func loadMetrics(ctx context.Context, conn db.DBTX) (*domain.Metrics, *repository.TrackerState, error) {
	tracker, err := repository.NewSQLiteTrackerRepo(conn).Get(ctx)
	if err != nil {
		return nil, nil, err
	}
	activities, err := repository.NewSQLiteActivityRepo(conn).List(ctx)
	if err != nil {
		return nil, nil, err
	}
	moods, err := repository.NewSQLiteMoodRepo(conn).List(ctx)
	if err != nil {
		return nil, nil, err
	}
	return assembleMetrics(tracker, activities, moods), tracker, nil
}

func assembleMetrics(t *repository.TrackerState, activities []domain.ActivityEntry, moods []domain.MoodEntry) *domain.Metrics {
	m := &domain.Metrics{Activities: activities, Moods: moods}
	if t != nil {
		m.Steps = t.Steps
		m.Water = t.Water
		m.Calories = t.Calories
		// A quiz in progress has no score yet.
		if t.Quiz.Done() {
			m.QuizScore = t.Quiz.Score
		}
	}
	return m
}

// awardBadges scores m, evaluates achievements against the stored set and
// persists any newly earned badges through conn.
func awardBadges(ctx context.Context, conn db.DBTX, m *domain.Metrics, now time.Time) (int, []domain.BadgeID, error) {
	badges := repository.NewSQLiteBadgeRepo(conn)
	earned, err := badges.List(ctx)
	if err != nil {
		return 0, nil, err
	}
	score := wellness.CalculateScore(m)
	newly := wellness.EvaluateAchievements(m, score, earned)
	for _, id := range newly {
		if err := badges.Award(ctx, id, now); err != nil {
			return 0, nil, err
		}
	}
	return score, newly, nil
}

// refreshAchievements reloads metrics through conn and awards badges.
func refreshAchievements(ctx context.Context, conn db.DBTX, now time.Time) (*domain.Metrics, int, []domain.BadgeID, error) {
	m, _, err := loadMetrics(ctx, conn)
	if err != nil {
		return nil, 0, nil, err
	}
	score, newly, err := awardBadges(ctx, conn, m, now)
	if err != nil {
		return nil, 0, nil, err
	}
	return m, score, newly, nil
}
