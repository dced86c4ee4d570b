package wellness

import (
	"math"

	"github.com/alexanderramin/aura/internal/domain"
)

// Score contribution caps and rates.
const (
	stepsPerPoint    = 150.0
	maxStepPoints    = 40.0
	pointsPerGlass   = 5.0
	caloriesPerPoint = 120.0
	maxCaloriePoints = 20.0
	pointsPerMood    = 3.0
	pointsPerLog     = 2.0
)

// ScoreBreakdown holds each input's contribution before rounding.
type ScoreBreakdown struct {
	Steps      float64
	Water      float64
	Calories   float64
	Moods      float64
	Activities float64
}

func (b ScoreBreakdown) Total() int {
	sum := b.Steps + b.Water + b.Calories + b.Moods + b.Activities
	return clampScore(int(math.Round(sum)))
}

// BreakdownScore computes the per-input contributions for m.
func BreakdownScore(m *domain.Metrics) ScoreBreakdown {
	if m == nil {
		return ScoreBreakdown{}
	}
	return ScoreBreakdown{
		Steps:      math.Min(float64(max(m.Steps, 0))/stepsPerPoint, maxStepPoints),
		Water:      float64(max(m.Water, 0)) * pointsPerGlass,
		Calories:   math.Min(float64(max(m.Calories, 0))/caloriesPerPoint, maxCaloriePoints),
		Moods:      float64(len(m.Moods)) * pointsPerMood,
		Activities: float64(len(m.Activities)) * pointsPerLog,
	}
}

// CalculateScore returns the wellness score in [0, 100].
func CalculateScore(m *domain.Metrics) int {
	return BreakdownScore(m).Total()
}

func clampScore(s int) int {
	if s < 0 {
		return 0
	}
	if s > 100 {
		return 100
	}
	return s
}
