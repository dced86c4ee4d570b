package domain

import "strings"

type Gender string

const (
	GenderMale   Gender = "Male"
	GenderFemale Gender = "Female"
	GenderOther  Gender = "Other"
)

type HealthIssue string

const (
	HealthNone     HealthIssue = "None"
	HealthBP       HealthIssue = "BP"
	HealthDiabetes HealthIssue = "Diabetes"
	HealthPCOS     HealthIssue = "PCOS"
	HealthThyroid  HealthIssue = "Thyroid"
	HealthAsthma   HealthIssue = "Asthma"
	HealthHeart    HealthIssue = "Heart"
)

// HealthIssues lists the accepted health issues in display order.
var HealthIssues = []HealthIssue{
	HealthNone, HealthBP, HealthDiabetes, HealthPCOS, HealthThyroid, HealthAsthma, HealthHeart,
}

type Goal string

const (
	GoalNone              Goal = ""
	GoalWeightLoss        Goal = "Weight Loss"
	GoalMuscleGain        Goal = "Muscle Gain"
	GoalMentalPeace       Goal = "Mental Peace"
	GoalHealthyLifestyle  Goal = "Healthy Lifestyle"
	GoalDiseaseManagement Goal = "Disease Management"
)

// Goals lists the selectable goals in display order.
var Goals = []Goal{
	GoalWeightLoss, GoalMuscleGain, GoalMentalPeace, GoalHealthyLifestyle, GoalDiseaseManagement,
}

type BMICategory string

const (
	BMIUnderweight BMICategory = "Underweight"
	BMINormal      BMICategory = "Normal"
	BMIOverweight  BMICategory = "Overweight"
	BMIObese       BMICategory = "Obese"
)

type RiskLevel string

const (
	RiskLow      RiskLevel = "Low"
	RiskModerate RiskLevel = "Moderate"
	RiskHigh     RiskLevel = "High"
)

type WeatherCategory string

const (
	WeatherRain    WeatherCategory = "rain"
	WeatherExtreme WeatherCategory = "extreme"
	WeatherClouds  WeatherCategory = "clouds"
	WeatherClear   WeatherCategory = "clear"
	WeatherUnknown WeatherCategory = "unknown"
)

type TemperatureCategory string

const (
	TempCold     TemperatureCategory = "cold"
	TempCool     TemperatureCategory = "cool"
	TempModerate TemperatureCategory = "moderate"
	TempWarm     TemperatureCategory = "warm"
	TempHot      TemperatureCategory = "hot"
	TempExtreme  TemperatureCategory = "extreme"
)

type TimeOfDay string

const (
	Morning   TimeOfDay = "Morning"
	Afternoon TimeOfDay = "Afternoon"
	Evening   TimeOfDay = "Evening"
	Night     TimeOfDay = "Night"
)

type Season string

const (
	SeasonSummer  Season = "Summer"
	SeasonMonsoon Season = "Monsoon"
	SeasonWinter  Season = "Winter"
)

type ActivityType string

const (
	ActivityWalking  ActivityType = "Walking"
	ActivityRunning  ActivityType = "Running"
	ActivityCycling  ActivityType = "Cycling"
	ActivityGym      ActivityType = "Gym"
	ActivityYoga     ActivityType = "Yoga"
	ActivitySwimming ActivityType = "Swimming"
	ActivityDance    ActivityType = "Dance"
	ActivitySports   ActivityType = "Sports"
)

// ActivityTypes lists the activity types offered by the host, in display order.
var ActivityTypes = []ActivityType{
	ActivityWalking, ActivityRunning, ActivityCycling, ActivityGym,
	ActivityYoga, ActivitySwimming, ActivityDance, ActivitySports,
}

type MoodLabel string

const (
	MoodHappy     MoodLabel = "Happy"
	MoodCalm      MoodLabel = "Calm"
	MoodMotivated MoodLabel = "Motivated"
	MoodFocused   MoodLabel = "Focused"
	MoodEnergetic MoodLabel = "Energetic"
	MoodNeutral   MoodLabel = "Neutral"
	MoodStressed  MoodLabel = "Stressed"
	MoodAnxious   MoodLabel = "Anxious"
	MoodSad       MoodLabel = "Sad"
	MoodTired     MoodLabel = "Tired"
)

// MoodLabels lists the accepted mood labels in display order.
var MoodLabels = []MoodLabel{
	MoodHappy, MoodCalm, MoodMotivated, MoodFocused, MoodEnergetic,
	MoodNeutral, MoodStressed, MoodAnxious, MoodSad, MoodTired,
}

// IsPositive reports whether the mood counts toward a positive trend.
func (m MoodLabel) IsPositive() bool {
	switch m {
	case MoodHappy, MoodCalm, MoodMotivated, MoodFocused, MoodEnergetic:
		return true
	}
	return false
}

// IsNegative reports whether the mood counts toward a challenging trend.
func (m MoodLabel) IsNegative() bool {
	switch m {
	case MoodStressed, MoodAnxious, MoodSad, MoodTired:
		return true
	}
	return false
}

// ParseGender matches s case-insensitively against the known genders.
func ParseGender(s string) (Gender, bool) {
	for _, g := range []Gender{GenderMale, GenderFemale, GenderOther} {
		if matchLabel(string(g), s) {
			return g, true
		}
	}
	return "", false
}

// ParseHealthIssue maps free text to a HealthIssue. Empty input means HealthNone.
func ParseHealthIssue(s string) (HealthIssue, bool) {
	if strings.TrimSpace(s) == "" {
		return HealthNone, true
	}
	for _, h := range HealthIssues {
		if matchLabel(string(h), s) {
			return h, true
		}
	}
	return "", false
}

// ParseGoal maps free text such as "weight-loss" or "Weight Loss" to a Goal.
// Empty input means GoalNone.
func ParseGoal(s string) (Goal, bool) {
	if strings.TrimSpace(s) == "" {
		return GoalNone, true
	}
	for _, g := range Goals {
		if matchLabel(string(g), s) {
			return g, true
		}
	}
	return "", false
}

func ParseActivityType(s string) (ActivityType, bool) {
	for _, a := range ActivityTypes {
		if matchLabel(string(a), s) {
			return a, true
		}
	}
	return "", false
}

func ParseMoodLabel(s string) (MoodLabel, bool) {
	for _, m := range MoodLabels {
		if matchLabel(string(m), s) {
			return m, true
		}
	}
	return "", false
}

// matchLabel compares ignoring case, spaces, dashes and underscores.
func matchLabel(label, input string) bool {
	return normalizeLabel(label) == normalizeLabel(input)
}

func normalizeLabel(s string) string {
	r := strings.NewReplacer(" ", "", "-", "", "_", "")
	return strings.ToLower(r.Replace(strings.TrimSpace(s)))
}
