package service

import (
	"context"

	"github.com/alexanderramin/aura/internal/contract"
	"github.com/alexanderramin/aura/internal/domain"
	"github.com/alexanderramin/aura/internal/wellness"
)

type ProfileService interface {
	Save(ctx context.Context, p *domain.UserProfile) error
	Get(ctx context.Context) (*domain.UserProfile, error)
}

type TrackerService interface {
	LogActivity(ctx context.Context, req contract.LogActivityRequest) (*contract.LogActivityResponse, error)
	DrinkWater(ctx context.Context) (*contract.WaterResponse, error)
	AddCalories(ctx context.Context, n int) (*contract.CaloriesResponse, error)
	LogMood(ctx context.Context, req contract.LogMoodRequest) (*contract.LogMoodResponse, error)
	Recent(ctx context.Context, limit int) (*contract.RecentLogs, error)
	Reset(ctx context.Context) error
}

type GuidanceService interface {
	Recommendations(ctx context.Context) (*contract.GuidanceResponse, error)
	Dashboard(ctx context.Context) (*contract.DashboardResponse, error)
	Tips(ctx context.Context) ([]wellness.Tip, error)
}

type HealthService interface {
	Analyze(ctx context.Context) (*wellness.HealthReport, error)
	Cycle(ctx context.Context, req contract.CycleRequest) (*wellness.CycleReport, error)
}

type ChatService interface {
	Send(ctx context.Context, req contract.ChatRequest) (*contract.ChatResponse, error)
	History(ctx context.Context, limit int) ([]domain.ChatMessage, error)
	Clear(ctx context.Context) error
}

type QuizService interface {
	Start(ctx context.Context) (*contract.QuizStatus, error)
	Answer(ctx context.Context, answer bool) (*contract.QuizAnswerResponse, error)
	Status(ctx context.Context) (*contract.QuizStatus, error)
}

type WeatherService interface {
	Fetch(ctx context.Context, pincode string) (*domain.WeatherSnapshot, error)
	Current(ctx context.Context) (*domain.WeatherSnapshot, error)
}

var (
	_ contract.ProfileUseCase  = (*profileService)(nil)
	_ contract.TrackerUseCase  = (*trackerService)(nil)
	_ contract.GuidanceUseCase = (*guidanceService)(nil)
	_ contract.HealthUseCase   = (*healthService)(nil)
	_ contract.ChatUseCase     = (*chatService)(nil)
	_ contract.QuizUseCase     = (*quizService)(nil)
	_ contract.WeatherUseCase  = (*weatherService)(nil)
)
