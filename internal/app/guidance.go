package app

import (
	"time"

	"github.com/alexanderramin/aura/internal/domain"
	"github.com/alexanderramin/aura/internal/wellness"
)

type GuidanceResponse struct {
	Recommendations []wellness.Recommendation `json:"recommendations"`
	Score           int                       `json:"score"`
	Weather         *domain.WeatherSnapshot   `json:"weather,omitempty"`
	GeneratedAt     time.Time                 `json:"generated_at"`
}

type DashboardResponse struct {
	Profile       *domain.UserProfile     `json:"profile,omitempty"`
	Metrics       *domain.Metrics         `json:"metrics"`
	Score         int                     `json:"score"`
	Badges        []domain.Badge          `json:"badges"`
	Weather       *domain.WeatherSnapshot `json:"weather,omitempty"`
	StepProgress  float64                 `json:"step_progress"`
	WaterProgress float64                 `json:"water_progress"`
	MoodInsight   string                  `json:"mood_insight"`
	GeneratedAt   time.Time               `json:"generated_at"`
}

type CycleRequest struct {
	Start      time.Time
	LengthDays int
	Now        *time.Time
}

func NewCycleRequest(start time.Time, lengthDays int) CycleRequest {
	return CycleRequest{Start: start, LengthDays: lengthDays}
}
