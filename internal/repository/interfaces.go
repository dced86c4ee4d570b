package repository

import (
	"context"
	"time"

	"github.com/alexanderramin/aura/internal/domain"
)

// TrackerState is the singleton row of daily counters and quiz progress.
type TrackerState struct {
	Steps    int
	Water    int
	Calories int
	Quiz     domain.QuizState
}

type ProfileRepo interface {
	Get(ctx context.Context) (*domain.UserProfile, error)
	Upsert(ctx context.Context, p *domain.UserProfile) error
}

type TrackerRepo interface {
	Get(ctx context.Context) (*TrackerState, error)
	AddSteps(ctx context.Context, n int) error
	SetWater(ctx context.Context, glasses int) error
	AddCalories(ctx context.Context, n int) error
	SaveQuiz(ctx context.Context, q domain.QuizState) error
	Reset(ctx context.Context) error
}

type ActivityRepo interface {
	Create(ctx context.Context, a *domain.ActivityEntry) error
	List(ctx context.Context) ([]domain.ActivityEntry, error)
	ListRecent(ctx context.Context, limit int) ([]domain.ActivityEntry, error)
	DeleteAll(ctx context.Context) error
}

type MoodRepo interface {
	Create(ctx context.Context, m *domain.MoodEntry) error
	List(ctx context.Context) ([]domain.MoodEntry, error)
	ListRecent(ctx context.Context, limit int) ([]domain.MoodEntry, error)
	DeleteAll(ctx context.Context) error
}

type BadgeRepo interface {
	List(ctx context.Context) (domain.BadgeSet, error)
	Award(ctx context.Context, id domain.BadgeID, at time.Time) error
	DeleteAll(ctx context.Context) error
}

type WeatherRepo interface {
	LatestWeather(ctx context.Context) (*domain.WeatherSnapshot, error)
	SaveWeather(ctx context.Context, snap *domain.WeatherSnapshot) error
}

type ChatRepo interface {
	Append(ctx context.Context, m *domain.ChatMessage) error
	List(ctx context.Context, limit int) ([]domain.ChatMessage, error)
	Clear(ctx context.Context) error
}

var (
	_ ProfileRepo  = (*SQLiteProfileRepo)(nil)
	_ TrackerRepo  = (*SQLiteTrackerRepo)(nil)
	_ ActivityRepo = (*SQLiteActivityRepo)(nil)
	_ MoodRepo     = (*SQLiteMoodRepo)(nil)
	_ BadgeRepo    = (*SQLiteBadgeRepo)(nil)
	_ WeatherRepo  = (*SQLiteWeatherRepo)(nil)
	_ ChatRepo     = (*SQLiteChatRepo)(nil)
)
