package wellness

import (
	"math"

	"github.com/alexanderramin/aura/internal/domain"
)

// HealthReport is the body-metrics analysis for a profile.
type HealthReport struct {
	BMI                 float64            `json:"bmi"`
	Category            domain.BMICategory `json:"category"`
	Risk                domain.RiskLevel   `json:"risk"`
	BMR                 int                `json:"bmr"`
	RecommendedCalories int                `json:"recommended_calories"`
}

// RiskFor maps a BMI category to its risk level.
func RiskFor(c domain.BMICategory) domain.RiskLevel {
	switch c {
	case domain.BMINormal:
		return domain.RiskLow
	case domain.BMIObese:
		return domain.RiskHigh
	default:
		return domain.RiskModerate
	}
}

// BMR estimates basal metabolic rate with Mifflin-St Jeor. Only Male uses
// the +5 constant; every other gender uses -161.
func BMR(p *domain.UserProfile) int {
	if p == nil {
		return 0
	}
	base := 10*float64(p.WeightKg) + 6.25*float64(p.HeightCm) - 5*float64(p.Age)
	if p.Gender == domain.GenderMale {
		base += 5
	} else {
		base -= 161
	}
	return int(math.Round(base))
}

// AnalyzeHealth returns the report, or false when the profile lacks age,
// height or weight.
func AnalyzeHealth(p *domain.UserProfile) (HealthReport, bool) {
	if !p.Complete() || !p.HasBodyMetrics() {
		return HealthReport{}, false
	}
	category := p.BMICategory()
	bmr := BMR(p)
	return HealthReport{
		BMI:                 domain.RoundBMI(p.BMI()),
		Category:            category,
		Risk:                RiskFor(category),
		BMR:                 bmr,
		RecommendedCalories: bmr,
	}, true
}
