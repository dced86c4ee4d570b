package app

import (
	"time"

	"github.com/alexanderramin/aura/internal/domain"
)

// RecentLogLimit is how many log entries hosts show by default.
const RecentLogLimit = 5

type LogActivityRequest struct {
	Type    domain.ActivityType
	Minutes int
	Now     *time.Time
}

func NewLogActivityRequest(t domain.ActivityType, minutes int) LogActivityRequest {
	return LogActivityRequest{Type: t, Minutes: minutes}
}

type LogActivityResponse struct {
	Entry      domain.ActivityEntry `json:"entry"`
	TotalSteps int                  `json:"total_steps"`
	Score      int                  `json:"score"`
	NewBadges  []domain.BadgeID     `json:"new_badges"`
}

type WaterResponse struct {
	Water       int              `json:"water"`
	GoalReached bool             `json:"goal_reached"`
	Score       int              `json:"score"`
	NewBadges   []domain.BadgeID `json:"new_badges"`
}

type CaloriesResponse struct {
	Calories  int              `json:"calories"`
	Score     int              `json:"score"`
	NewBadges []domain.BadgeID `json:"new_badges"`
}

type LogMoodRequest struct {
	Mood domain.MoodLabel
	Now  *time.Time
}

func NewLogMoodRequest(m domain.MoodLabel) LogMoodRequest {
	return LogMoodRequest{Mood: m}
}

type LogMoodResponse struct {
	Entry     domain.MoodEntry `json:"entry"`
	Insight   string           `json:"insight"`
	NewBadges []domain.BadgeID `json:"new_badges"`
}

// RecentLogs holds the newest entries of each log, newest first.
type RecentLogs struct {
	Activities []domain.ActivityEntry `json:"activities"`
	Moods      []domain.MoodEntry     `json:"moods"`
}
