package wellness

import (
	"fmt"
	"regexp"
	"strconv"
	"time"

	"github.com/alexanderramin/aura/internal/domain"
)

// Recommendation titles. Tests and hosts match on these.
const (
	TitleCompleteProfile = "Complete Profile"
	TitleHydration       = "Hydration"
	TitleActivity        = "Activity"
	TitleNutrition       = "Nutrition"
	TitleHealth          = "Health Management"
	TitleGoal            = "Goal Focus"
	TitleMorning         = "Morning Routine"
	TitleSleep           = "Sleep Hygiene"
	TitleHeatWarning     = "Heat Warning"
	TitleColdWarning     = "Cold Warning"
	TitleSevereWeather   = "Severe Weather"
	TitleCurrentWeather  = "Current Weather"
	TitleAddWeather      = "Add Weather Data"
)

// Recommendation is one advice item. Icon is decoration only.
type Recommendation struct {
	Icon  string `json:"icon"`
	Title string `json:"title"`
	Text  string `json:"text"`
}

// GenerateRecommendations builds the ordered advice list for the current
// state. Order is fixed: hydration, activity, nutrition, health, goal,
// routine, weather alert, then the weather display or prompt.
func GenerateRecommendations(profile *domain.UserProfile, metrics *domain.Metrics, weather *domain.WeatherSnapshot, now time.Time) []Recommendation {
	if !profile.Complete() {
		return []Recommendation{{
			Icon:  "👤",
			Title: TitleCompleteProfile,
			Text:  "Please complete your profile to get personalized health recommendations!",
		}}
	}

	c := ReadConditions(weather, now)
	bmi := profile.BMICategory()

	recs := []Recommendation{
		{Icon: "💧", Title: TitleHydration, Text: hydrationText(c, bmi)},
		{Icon: "🏃", Title: TitleActivity, Text: activityText(profile.Age, c, bmi)},
		{Icon: "🍽️", Title: TitleNutrition, Text: nutritionText(c, bmi)},
	}

	if text, ok := HealthAdvice(profile.HealthIssue, c); ok {
		recs = append(recs, Recommendation{Icon: "🩺", Title: TitleHealth, Text: text})
	}
	if text, ok := GoalAdvice(profile.Goal, c); ok {
		recs = append(recs, Recommendation{Icon: "🎯", Title: TitleGoal, Text: text})
	}

	switch c.TimeOfDay {
	case domain.Morning:
		recs = append(recs, Recommendation{Icon: "🌅", Title: TitleMorning, Text: morningRoutineText(c)})
	case domain.Night:
		recs = append(recs, Recommendation{Icon: "🌙", Title: TitleSleep, Text: SleepHygieneText(c)})
	}

	if alert, ok := WeatherAlert(c); ok {
		recs = append(recs, alert)
	}

	return append(recs, weatherDisplay(c))
}

// HydrationRange returns the daily liter range and any weather caveat.
func HydrationRange(c Conditions) (amount, caveat string) {
	if !c.HasWeather() {
		switch c.Season {
		case domain.SeasonSummer:
			return "3-4 liters", ""
		default:
			return "2-3 liters", ""
		}
	}

	switch c.TempCategory {
	case domain.TempHot, domain.TempExtreme:
		amount, caveat = "4-5 liters", " Hot weather increases fluid loss through sweating."
	case domain.TempWarm:
		amount, caveat = "3-4 liters", " Warm conditions require extra hydration."
	case domain.TempCold:
		amount, caveat = "2-2.5 liters", " Cold weather reduces thirst but hydration remains important."
	default:
		amount = "2.5-3 liters"
	}
	if c.Humid() {
		caveat += " High humidity makes you sweat more - drink frequently."
	}
	return amount, caveat
}

func hydrationText(c Conditions, bmi domain.BMICategory) string {
	amount, caveat := HydrationRange(c)
	if bmi == domain.BMIOverweight || bmi == domain.BMIObese {
		amount = bumpFirstNumber(amount, 0.5)
	}
	tip := " Sip steadily through the day rather than drinking a lot at once."
	if c.TimeOfDay == domain.Morning {
		tip = " Start with 2 glasses of warm water on empty stomach."
	}
	return fmt.Sprintf("Aim for %s daily.%s%s", amount, caveat, tip)
}

var leadingNumber = regexp.MustCompile(`\d+(\.\d+)?`)

// bumpFirstNumber adds delta to the first number in s, leaving the rest intact.
func bumpFirstNumber(s string, delta float64) string {
	loc := leadingNumber.FindStringIndex(s)
	if loc == nil {
		return s
	}
	v, err := strconv.ParseFloat(s[loc[0]:loc[1]], 64)
	if err != nil {
		return s
	}
	return s[:loc[0]] + strconv.FormatFloat(v+delta, 'f', -1, 64) + s[loc[1]:]
}

// ActivityPlan is the age-banded exercise suggestion.
type ActivityPlan struct {
	Outdoor string
	Indoor  string
}

// ActivityPlanForAge picks the plan for the age band.
func ActivityPlanForAge(age int) ActivityPlan {
	switch {
	case age < 30:
		return ActivityPlan{
			Outdoor: "HIIT or running (30-45 min)",
			Indoor:  "Indoor cardio, jumping jacks, burpees",
		}
	case age < 50:
		return ActivityPlan{
			Outdoor: "Brisk walking or moderate cardio (30-40 min)",
			Indoor:  "Indoor walking, stationary cycling",
		}
	default:
		return ActivityPlan{
			Outdoor: "Light walking and flexibility exercises (20-30 min)",
			Indoor:  "Gentle stretching, indoor yoga",
		}
	}
}

// IndoorReason explains why outdoor exercise is off. Empty when it is safe
// or when there is no weather to judge by.
func IndoorReason(c Conditions) string {
	if !c.HasWeather() || c.SafeOutdoor() {
		return ""
	}
	switch {
	case c.Category == domain.WeatherRain:
		return "Rainy weather, stay indoors"
	case c.Category == domain.WeatherExtreme:
		return "Extreme weather warning, indoor exercise only"
	case c.Temp() < MinOutdoorTempC:
		return "Too cold for outdoor activity"
	default:
		return "Dangerously hot, avoid outdoor exercise"
	}
}

// OutdoorTiming returns the timing hint for safe outdoor exercise.
func OutdoorTiming(c Conditions) string {
	if !c.SafeOutdoor() {
		return ""
	}
	switch c.TempCategory {
	case domain.TempHot:
		return " Best time: Early morning (6-8 AM) or evening (6-8 PM) to avoid heat."
	case domain.TempWarm:
		return " Good weather for outdoor exercise. Stay in shade during peak heat."
	case domain.TempCool, domain.TempModerate:
		return " Perfect weather for outdoor activities!"
	case domain.TempCold:
		return " Layer up with warm clothes. Warm up indoors before heading out."
	}
	return ""
}

func activityText(age int, c Conditions, bmi domain.BMICategory) string {
	plan := ActivityPlanForAge(age)
	text := plan.Outdoor + OutdoorTiming(c)
	if reason := IndoorReason(c); reason != "" {
		text = plan.Indoor + " - " + reason
	}
	if bmi != domain.BMINormal {
		text += " Consistency beats intensity: aim for at least 5 active days a week."
	}
	return text
}

func nutritionText(c Conditions, bmi domain.BMICategory) string {
	var text string
	switch {
	case c.Hot():
		text = "Hydrating foods: cucumber, watermelon, mint, coconut water, citrus fruits, yogurt. Avoid heavy, oily foods."
	case c.Cold():
		text = "Warming foods: soups, ginger tea, nuts, oats, warm milk. Include vitamin C-rich foods for immunity."
	case c.HasWeather():
		text = "Balanced meals: whole grains, vegetables, lean proteins, healthy fats."
	case c.Season == domain.SeasonSummer:
		text = "Hydrating foods: cucumber, watermelon, mint, coconut water"
	case c.Season == domain.SeasonWinter:
		text = "Warming foods: soups, ginger tea, nuts, whole grains"
	default:
		text = "Fresh vegetables, seasonal fruits, lean proteins"
	}

	switch bmi {
	case domain.BMIUnderweight:
		text += " Add: eggs, nuts, protein shakes, healthy fats."
	case domain.BMIOverweight, domain.BMIObese:
		text += " Reduce: sugar, processed foods. Increase: fiber, vegetables."
	}
	return text
}

func morningRoutineText(c Conditions) string {
	text := "5-min stretching, hydrate (2 glasses), protein breakfast within 2 hours."
	switch {
	case c.Cold():
		text += " Chilly start: warm up indoors before stepping out."
	case c.Hot():
		text += " Exercise before the heat builds, ideally before 8 AM."
	}
	return text
}

// SleepHygieneText is the night routine with a weather addendum.
func SleepHygieneText(c Conditions) string {
	text := "No screens 1h before bed, cool dark room, consistent schedule, 7-8h sleep."
	switch {
	case c.Hot():
		text += " Warm night: use a fan, light cotton bedding and keep water by the bed."
	case c.Cold():
		text += " Cold night: keep your feet warm and try warm milk or herbal tea before bed."
	}
	return text
}

// WeatherAlert returns at most one alert for dangerous conditions.
func WeatherAlert(c Conditions) (Recommendation, bool) {
	if !c.HasWeather() {
		return Recommendation{}, false
	}
	temp := c.Temp()
	switch {
	case c.TempCategory == domain.TempExtreme && temp > MaxOutdoorTempC:
		return Recommendation{
			Icon:  "🔥",
			Title: TitleHeatWarning,
			Text: fmt.Sprintf("Extreme heat (%d°C). Stay indoors between 11 AM and 4 PM, drink water every 30 minutes and watch for dizziness or nausea.",
				temp),
		}, true
	case temp < 0:
		return Recommendation{
			Icon:  "🥶",
			Title: TitleColdWarning,
			Text: fmt.Sprintf("Freezing temperatures (%d°C). Limit time outdoors, wear insulated layers and protect hands and feet.",
				temp),
		}, true
	case c.Category == domain.WeatherExtreme:
		return Recommendation{
			Icon:  "⛈️",
			Title: TitleSevereWeather,
			Text: fmt.Sprintf("Severe weather (%s) in your area. Stay indoors and avoid travel unless necessary.",
				c.Weather.Condition),
		}, true
	}
	return Recommendation{}, false
}

func weatherDisplay(c Conditions) Recommendation {
	if !c.HasWeather() {
		return Recommendation{
			Icon:  "🌤️",
			Title: TitleAddWeather,
			Text:  "Share your 6-digit pincode to get weather-specific health recommendations!",
		}
	}
	w := c.Weather
	return Recommendation{
		Icon:  "🌤️",
		Title: TitleCurrentWeather,
		Text: fmt.Sprintf("%s: %d°C, %s, Humidity: %d%%. Last updated: %s.",
			domain.CoalesceStr(w.Location, "Your area"), w.TempC, w.Condition, w.Humidity,
			c.UpdatedAt()),
	}
}
