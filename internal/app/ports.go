package app

import (
	"context"

	"github.com/alexanderramin/aura/internal/domain"
	"github.com/alexanderramin/aura/internal/wellness"
)

type ProfileUseCase interface {
	Save(ctx context.Context, p *domain.UserProfile) error
	Get(ctx context.Context) (*domain.UserProfile, error)
}

type TrackerUseCase interface {
	LogActivity(ctx context.Context, req LogActivityRequest) (*LogActivityResponse, error)
	DrinkWater(ctx context.Context) (*WaterResponse, error)
	AddCalories(ctx context.Context, n int) (*CaloriesResponse, error)
	LogMood(ctx context.Context, req LogMoodRequest) (*LogMoodResponse, error)
	Recent(ctx context.Context, limit int) (*RecentLogs, error)
	Reset(ctx context.Context) error
}

type GuidanceUseCase interface {
	Recommendations(ctx context.Context) (*GuidanceResponse, error)
	Dashboard(ctx context.Context) (*DashboardResponse, error)
	Tips(ctx context.Context) ([]wellness.Tip, error)
}

type HealthUseCase interface {
	Analyze(ctx context.Context) (*wellness.HealthReport, error)
	Cycle(ctx context.Context, req CycleRequest) (*wellness.CycleReport, error)
}

type ChatUseCase interface {
	Send(ctx context.Context, req ChatRequest) (*ChatResponse, error)
	History(ctx context.Context, limit int) ([]domain.ChatMessage, error)
	Clear(ctx context.Context) error
}

type QuizUseCase interface {
	Start(ctx context.Context) (*QuizStatus, error)
	Answer(ctx context.Context, answer bool) (*QuizAnswerResponse, error)
	Status(ctx context.Context) (*QuizStatus, error)
}

type WeatherUseCase interface {
	Fetch(ctx context.Context, pincode string) (*domain.WeatherSnapshot, error)
	Current(ctx context.Context) (*domain.WeatherSnapshot, error)
}
