package testutil

import (
	"time"

	"github.com/alexanderramin/aura/internal/domain"
	"github.com/google/uuid"
)

// Profile options
type ProfileOption func(*domain.UserProfile)

func WithName(name string) ProfileOption {
	return func(p *domain.UserProfile) {
		p.Name = name
	}
}

func WithAge(age int) ProfileOption {
	return func(p *domain.UserProfile) {
		p.Age = age
	}
}

func WithGender(g domain.Gender) ProfileOption {
	return func(p *domain.UserProfile) {
		p.Gender = g
	}
}

func WithBody(heightCm, weightKg int) ProfileOption {
	return func(p *domain.UserProfile) {
		p.HeightCm = heightCm
		p.WeightKg = weightKg
	}
}

func WithHealthIssue(h domain.HealthIssue) ProfileOption {
	return func(p *domain.UserProfile) {
		p.HealthIssue = h
	}
}

func WithGoal(g domain.Goal) ProfileOption {
	return func(p *domain.UserProfile) {
		p.Goal = g
	}
}

// NewTestProfile returns a complete 25-year-old male profile, BMI 24.2.
func NewTestProfile(opts ...ProfileOption) *domain.UserProfile {
	p := &domain.UserProfile{
		Name:        "Asha",
		Age:         25,
		Gender:      domain.GenderMale,
		HeightCm:    170,
		WeightKg:    70,
		BloodGroup:  "O+",
		HealthIssue: domain.HealthNone,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Metrics options
type MetricsOption func(*domain.Metrics)

func WithSteps(n int) MetricsOption {
	return func(m *domain.Metrics) {
		m.Steps = n
	}
}

func WithWater(n int) MetricsOption {
	return func(m *domain.Metrics) {
		m.Water = n
	}
}

func WithCalories(n int) MetricsOption {
	return func(m *domain.Metrics) {
		m.Calories = n
	}
}

func WithQuizScore(n int) MetricsOption {
	return func(m *domain.Metrics) {
		m.QuizScore = n
	}
}

// WithMoods appends one entry per label, a minute apart.
func WithMoods(labels ...domain.MoodLabel) MetricsOption {
	return func(m *domain.Metrics) {
		base := time.Date(2025, time.March, 15, 8, 0, 0, 0, time.UTC)
		for _, l := range labels {
			m.Moods = append(m.Moods, domain.MoodEntry{
				ID:       uuid.New().String(),
				Mood:     l,
				LoggedAt: base.Add(time.Duration(len(m.Moods)) * time.Minute),
			})
		}
	}
}

// WithActivities appends n walking entries of 10 minutes. Steps are not touched.
func WithActivities(n int) MetricsOption {
	return func(m *domain.Metrics) {
		base := time.Date(2025, time.March, 15, 7, 0, 0, 0, time.UTC)
		for i := 0; i < n; i++ {
			m.Activities = append(m.Activities, domain.ActivityEntry{
				ID:           uuid.New().String(),
				Type:         domain.ActivityWalking,
				Minutes:      10,
				StepsAwarded: domain.StepsFor(domain.ActivityWalking, 10),
				LoggedAt:     base.Add(time.Duration(len(m.Activities)) * time.Minute),
			})
		}
	}
}

func NewTestMetrics(opts ...MetricsOption) *domain.Metrics {
	m := &domain.Metrics{}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Weather options
type WeatherOption func(*domain.WeatherSnapshot)

func WithTemp(c int) WeatherOption {
	return func(w *domain.WeatherSnapshot) {
		w.TempC = c
		w.FeelsLikeC = c
	}
}

func WithCondition(cond string) WeatherOption {
	return func(w *domain.WeatherSnapshot) {
		w.Condition = cond
		w.Description = cond
	}
}

func WithHumidity(h int) WeatherOption {
	return func(w *domain.WeatherSnapshot) {
		w.Humidity = h
	}
}

func WithLocation(loc string) WeatherOption {
	return func(w *domain.WeatherSnapshot) {
		w.Location = loc
	}
}

func WithFetchedAt(t time.Time) WeatherOption {
	return func(w *domain.WeatherSnapshot) {
		w.FetchedAt = t
	}
}

// NewTestWeather returns a mild clear-sky snapshot fetched at fetchedAt.
func NewTestWeather(fetchedAt time.Time, opts ...WeatherOption) *domain.WeatherSnapshot {
	w := &domain.WeatherSnapshot{
		Pincode:     "110001",
		Location:    "New Delhi",
		TempC:       22,
		FeelsLikeC:  22,
		Humidity:    45,
		Condition:   "Clear",
		Description: "clear sky",
		FetchedAt:   fetchedAt,
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// ScriptedRandom replays Picks in order and then keeps returning the last
// one. Calls records every n it was asked for.
type ScriptedRandom struct {
	Picks []int
	Calls []int
}

func (s *ScriptedRandom) IntN(n int) int {
	s.Calls = append(s.Calls, n)
	if len(s.Picks) == 0 {
		return 0
	}
	i := len(s.Calls) - 1
	if i >= len(s.Picks) {
		i = len(s.Picks) - 1
	}
	return s.Picks[i]
}
