package domain

import "math"

// UserProfile is the static profile entered by the user. It is replaced
// wholesale on every save; a zero Age means the profile is incomplete.
type UserProfile struct {
	Name        string      `json:"name" validate:"required,max=100"`
	Age         int         `json:"age" validate:"required,min=1,max=120"`
	Gender      Gender      `json:"gender" validate:"required,oneof=Male Female Other"`
	HeightCm    int         `json:"height_cm" validate:"required,min=50,max=250"`
	WeightKg    int         `json:"weight_kg" validate:"required,min=20,max=300"`
	BloodGroup  string      `json:"blood_group,omitempty" validate:"max=8"`
	HealthIssue HealthIssue `json:"health_issue" validate:"omitempty,oneof=None BP Diabetes PCOS Thyroid Asthma Heart"`
	Goal        Goal        `json:"goal,omitempty" validate:"omitempty,oneof='Weight Loss' 'Muscle Gain' 'Mental Peace' 'Healthy Lifestyle' 'Disease Management'"`
}

// Complete reports whether the profile has enough data for personalized guidance.
func (p *UserProfile) Complete() bool {
	return p != nil && p.Age > 0
}

// HasBodyMetrics reports whether BMI can be computed.
func (p *UserProfile) HasBodyMetrics() bool {
	return p != nil && p.HeightCm > 0 && p.WeightKg > 0
}

// BMI returns weight / height_m². Zero when height or weight is missing.
func (p *UserProfile) BMI() float64 {
	if !p.HasBodyMetrics() {
		return 0
	}
	h := float64(p.HeightCm) / 100
	return float64(p.WeightKg) / (h * h)
}

// BMICategory buckets the profile's BMI.
func (p *UserProfile) BMICategory() BMICategory {
	return CategorizeBMI(p.BMI())
}

// CategorizeBMI buckets a BMI value: <18.5, <25, <30, otherwise obese.
func CategorizeBMI(bmi float64) BMICategory {
	switch {
	case bmi < 18.5:
		return BMIUnderweight
	case bmi < 25:
		return BMINormal
	case bmi < 30:
		return BMIOverweight
	default:
		return BMIObese
	}
}

// RoundBMI rounds to one decimal place for display.
func RoundBMI(bmi float64) float64 {
	return math.Round(bmi*10) / 10
}
