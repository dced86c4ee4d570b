package domain

import "time"

const (
	// WaterGoalGlasses is the daily water target and the cap on logged glasses.
	WaterGoalGlasses = 8
	// StepGoal is the daily step target used for progress display.
	StepGoal = 8000
	// DefaultStepMultiplier applies to activity types without a dedicated rate.
	DefaultStepMultiplier = 120
)

var stepMultipliers = map[ActivityType]int{
	ActivityWalking:  120,
	ActivityRunning:  180,
	ActivityCycling:  150,
	ActivityGym:      140,
	ActivityYoga:     80,
	ActivitySwimming: 160,
	ActivityDance:    130,
	ActivitySports:   150,
}

// StepMultiplier returns the steps credited per minute of the given activity.
func StepMultiplier(t ActivityType) int {
	if m, ok := stepMultipliers[t]; ok {
		return m
	}
	return DefaultStepMultiplier
}

// StepsFor returns the steps awarded for minutes of activity t.
func StepsFor(t ActivityType, minutes int) int {
	return minutes * StepMultiplier(t)
}

type MoodEntry struct {
	ID       string    `json:"id"`
	Mood     MoodLabel `json:"mood"`
	LoggedAt time.Time `json:"logged_at"`
}

type ActivityEntry struct {
	ID           string       `json:"id"`
	Type         ActivityType `json:"type"`
	Minutes      int          `json:"minutes"`
	StepsAwarded int          `json:"steps_awarded"`
	LoggedAt     time.Time    `json:"logged_at"`
}

// Metrics is the tracked daily state. Moods and Activities are append-only,
// oldest first.
type Metrics struct {
	Steps      int             `json:"steps"`
	Water      int             `json:"water"`
	Calories   int             `json:"calories"`
	QuizScore  int             `json:"quiz_score"`
	Moods      []MoodEntry     `json:"moods"`
	Activities []ActivityEntry `json:"activities"`
}

// LatestMood returns the most recent mood entry, if any.
func (m *Metrics) LatestMood() (MoodEntry, bool) {
	if m == nil || len(m.Moods) == 0 {
		return MoodEntry{}, false
	}
	return m.Moods[len(m.Moods)-1], true
}

// RecentMoods returns up to n most recent entries, oldest first.
func (m *Metrics) RecentMoods(n int) []MoodEntry {
	if m == nil || len(m.Moods) == 0 {
		return nil
	}
	if len(m.Moods) <= n {
		return m.Moods
	}
	return m.Moods[len(m.Moods)-n:]
}

// Clone returns a deep copy so a caller can hold a stable snapshot.
func (m *Metrics) Clone() *Metrics {
	if m == nil {
		return &Metrics{}
	}
	c := *m
	c.Moods = append([]MoodEntry(nil), m.Moods...)
	c.Activities = append([]ActivityEntry(nil), m.Activities...)
	return &c
}
