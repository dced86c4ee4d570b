package contract

import (
	"github.com/alexanderramin/aura/internal/app"
	"github.com/alexanderramin/aura/internal/domain"
)

type LogActivityRequest = app.LogActivityRequest

func NewLogActivityRequest(t domain.ActivityType, minutes int) LogActivityRequest {
	return app.NewLogActivityRequest(t, minutes)
}

type LogActivityResponse = app.LogActivityResponse

type WaterResponse = app.WaterResponse

type CaloriesResponse = app.CaloriesResponse

type LogMoodRequest = app.LogMoodRequest

func NewLogMoodRequest(m domain.MoodLabel) LogMoodRequest {
	return app.NewLogMoodRequest(m)
}

type LogMoodResponse = app.LogMoodResponse

type RecentLogs = app.RecentLogs
