package dialogue

import (
	"strings"
	"testing"
	"time"

	"github.com/alexanderramin/aura/internal/domain"
	"github.com/alexanderramin/aura/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var morning = time.Date(2025, time.March, 15, 9, 0, 0, 0, time.UTC)

func input(opts ...func(*Input)) Input {
	in := Input{
		Profile: testutil.NewTestProfile(),
		Metrics: testutil.NewTestMetrics(),
		Badges:  domain.NewBadgeSet(),
		Now:     morning,
	}
	for _, opt := range opts {
		opt(&in)
	}
	return in
}

func withMetrics(m *domain.Metrics) func(*Input) {
	return func(in *Input) { in.Metrics = m }
}

func withWeather(w *domain.WeatherSnapshot) func(*Input) {
	return func(in *Input) { in.Weather = w }
}

func withProfile(p *domain.UserProfile) func(*Input) {
	return func(in *Input) { in.Profile = p }
}

func TestBuildResponse_EveryIntentIsTotal(t *testing.T) {
	states := []Input{
		input(),
		input(withProfile(nil), withMetrics(nil)),
		{Now: morning},
		input(withWeather(testutil.NewTestWeather(morning))),
	}
	for _, intent := range Intents() {
		for i, in := range states {
			got := BuildResponse(intent, in, &testutil.ScriptedRandom{})
			assert.NotEmpty(t, got, "intent %s state %d", intent, i)
		}
	}
}

func TestBuildResponse_UnknownIntentFallsBack(t *testing.T) {
	r := &testutil.ScriptedRandom{Picks: []int{0}}
	assert.Equal(t, unknownReplies[0], BuildResponse(Intent("dance"), input(), r))
}

func TestGreeting(t *testing.T) {
	got := BuildResponse(IntentGreeting, input(), nil)
	assert.True(t, strings.HasPrefix(got, "👋 Hi Asha!"))
	assert.Contains(t, got, "It's morning.")

	got = BuildResponse(IntentGreeting, input(withProfile(nil), withWeather(testutil.NewTestWeather(morning, testutil.WithTemp(31)))), nil)
	assert.Contains(t, got, "Hi there!")
	assert.Contains(t, got, "It's morning and 31°C outside.")
}

func TestExercise_StepBands(t *testing.T) {
	tests := []struct {
		steps int
		want  string
	}{
		{0, "VERY LOW ACTIVITY"},
		{1999, "VERY LOW ACTIVITY"},
		{2000, "Good start"},
		{5999, "Good start"},
		{6500, "Just 1,500 steps to go!"},
		{8000, "You've hit your goal!"},
		{12000, "You've hit your goal!"},
	}
	for _, tt := range tests {
		got := BuildResponse(IntentExercise, input(withMetrics(testutil.NewTestMetrics(testutil.WithSteps(tt.steps)))), nil)
		assert.Contains(t, got, tt.want, "steps %d", tt.steps)
	}
}

func TestExercise_ProfileAndWeather(t *testing.T) {
	got := BuildResponse(IntentExercise, input(withMetrics(testutil.NewTestMetrics(testutil.WithSteps(12345)))), nil)
	assert.Contains(t, got, "Steps: 12,345/8,000")
	assert.Contains(t, got, "Recommended for age 25")
	assert.Contains(t, got, "HIIT or running (30-45 min)")
	assert.NotContains(t, got, "WEATHER")

	hot := testutil.NewTestWeather(morning, testutil.WithTemp(42))
	got = BuildResponse(IntentExercise, input(withWeather(hot)), nil)
	assert.Contains(t, got, "WEATHER (42°C, Clear)")
	assert.Contains(t, got, "Dangerously hot, avoid outdoor exercise")

	mild := testutil.NewTestWeather(morning)
	got = BuildResponse(IntentExercise, input(withWeather(mild)), nil)
	assert.Contains(t, got, "Perfect weather for outdoor activities!")

	got = BuildResponse(IntentExercise, input(withProfile(nil)), nil)
	assert.Contains(t, got, "Complete your profile")
}

func TestHydration_Bands(t *testing.T) {
	tests := []struct {
		water int
		want  []string
	}{
		{0, []string{"0/8 glasses (0%)", "CRITICAL"}},
		{3, []string{"3/8 glasses (38%)", "You need 5 more glasses."}},
		{6, []string{"6/8 glasses (75%)", "Just 2 more to go!"}},
		{8, []string{"8/8 glasses (100%)", "GOAL ACHIEVED"}},
	}
	for _, tt := range tests {
		got := BuildResponse(IntentHydration, input(withMetrics(testutil.NewTestMetrics(testutil.WithWater(tt.water)))), nil)
		for _, w := range tt.want {
			assert.Contains(t, got, w, "water %d", tt.water)
		}
	}

	hot := testutil.NewTestWeather(morning, testutil.WithTemp(36), testutil.WithHumidity(80))
	got := BuildResponse(IntentHydration, input(withWeather(hot)), nil)
	assert.Contains(t, got, "Increase to 10-12 glasses!")
	assert.Contains(t, got, "4-5 liters")
	assert.Contains(t, got, "High humidity")
}

func TestMood(t *testing.T) {
	got := BuildResponse(IntentMood, input(), nil)
	assert.Contains(t, got, "No mood entries yet!")

	m := testutil.NewTestMetrics(testutil.WithMoods(domain.MoodSad, domain.MoodStressed, domain.MoodHappy))
	got = BuildResponse(IntentMood, input(withMetrics(m)), nil)
	assert.Contains(t, got, "Latest: Happy")
	assert.Contains(t, got, "Total entries: 3")
	assert.Contains(t, got, "Positive: 1")
	assert.Contains(t, got, "Challenging: 2")
	assert.Contains(t, got, "NEED SUPPORT?")
}

func TestScore_Breakdown(t *testing.T) {
	m := testutil.NewTestMetrics(
		testutil.WithSteps(3000), testutil.WithWater(4), testutil.WithCalories(600),
		testutil.WithMoods(domain.MoodCalm), testutil.WithActivities(3),
	)
	got := BuildResponse(IntentScore, input(withMetrics(m)), nil)
	assert.True(t, strings.HasPrefix(got, "📊 WELLNESS SCORE: 54/100"))
	assert.Contains(t, got, "FAIR")
	assert.Contains(t, got, "Steps: 3,000/8,000 → 20/40 pts")
	assert.Contains(t, got, "Water: 4/8 → 20 pts")
	assert.Contains(t, got, "Calories: 600 kcal → 5/20 pts")
	assert.Contains(t, got, "Moods: 1 → 3 pts")
	assert.Contains(t, got, "Activities: 3 → 6 pts")
}

func TestNutrition(t *testing.T) {
	got := BuildResponse(IntentNutrition, input(withProfile(&domain.UserProfile{Name: "X", Age: 30})), nil)
	assert.Contains(t, got, "Profile incomplete!")

	got = BuildResponse(IntentNutrition, input(), nil)
	assert.Contains(t, got, "BMI: 24.2")
	assert.Contains(t, got, "Healthy Weight")

	heavy := testutil.NewTestProfile(testutil.WithBody(160, 80))
	cold := testutil.NewTestWeather(morning, testutil.WithTemp(4))
	got = BuildResponse(IntentNutrition, input(withProfile(heavy), withWeather(cold)), nil)
	assert.Contains(t, got, "Overweight")
	assert.Contains(t, got, "warm soups")
}

func TestMotivation_UsesRandomSource(t *testing.T) {
	in := input(withProfile(testutil.NewTestProfile(testutil.WithGoal(domain.GoalMuscleGain))))

	r := &testutil.ScriptedRandom{Picks: []int{1}}
	got := BuildResponse(IntentMotivation, in, r)
	assert.Contains(t, got, "Goal: Muscle Gain")
	assert.Equal(t, []int{3}, r.Calls)

	got = BuildResponse(IntentMotivation, in, &testutil.ScriptedRandom{Picks: []int{0}})
	assert.Contains(t, got, "Asha, you're at 0/100!")

	got = BuildResponse(IntentMotivation, input(withProfile(nil)), &testutil.ScriptedRandom{Picks: []int{1}})
	assert.Contains(t, got, "Goal: Better health")
}

func TestUnknown_UsesRandomSource(t *testing.T) {
	for i, want := range unknownReplies {
		got := BuildResponse(IntentUnknown, input(), &testutil.ScriptedRandom{Picks: []int{i}})
		assert.Equal(t, want, got)
	}
}

func TestSummary(t *testing.T) {
	m := testutil.NewTestMetrics(testutil.WithSteps(6000), testutil.WithMoods(domain.MoodFocused))
	in := input(withMetrics(m), withWeather(testutil.NewTestWeather(morning, testutil.WithCondition("Clouds"))))
	in.Badges = domain.NewBadgeSet(domain.BadgeActive, domain.BadgeEmotion)

	got := BuildResponse(IntentSummary, in, nil)
	assert.Contains(t, got, "for Asha")
	assert.Contains(t, got, "Steps: 6,000/8,000")
	assert.Contains(t, got, "Mood: Focused")
	assert.Contains(t, got, "Badges: 2/6")
	assert.Contains(t, got, "Weather: 22°C, Clouds")

	got = BuildResponse(IntentSummary, input(withProfile(nil)), nil)
	assert.NotContains(t, got, "for ")
	assert.Contains(t, got, "Mood: Not logged")
}

func TestHealth(t *testing.T) {
	p := testutil.NewTestProfile(testutil.WithHealthIssue(domain.HealthDiabetes), testutil.WithGoal(domain.GoalWeightLoss))
	got := BuildResponse(IntentHealth, input(withProfile(p)), nil)
	assert.Contains(t, got, "BMI: 24.2 (Normal)")
	assert.Contains(t, got, "Risk level: Low")
	assert.Contains(t, got, "BMR: 1,643 kcal/day")
	assert.Contains(t, got, "Managing Diabetes:\nLow GI foods")
	assert.Contains(t, got, "Weight Loss:\nCalorie deficit")

	got = BuildResponse(IntentHealth, input(withProfile(nil)), nil)
	assert.Contains(t, got, "Profile incomplete!")
}

func TestSleep(t *testing.T) {
	night := time.Date(2025, time.March, 15, 22, 30, 0, 0, time.UTC)
	m := testutil.NewTestMetrics(testutil.WithMoods(domain.MoodAnxious))
	in := input(withMetrics(m), withWeather(testutil.NewTestWeather(night, testutil.WithTemp(34))))
	in.Now = night

	got := BuildResponse(IntentSleep, in, nil)
	assert.Contains(t, got, "Start winding down now.")
	assert.Contains(t, got, "No screens 1h before bed")
	assert.Contains(t, got, "Warm night")
	assert.Contains(t, got, "You logged feeling anxious.")
}

func TestWeather(t *testing.T) {
	got := BuildResponse(IntentWeather, input(), nil)
	assert.Contains(t, got, "No recent weather data.")

	stale := testutil.NewTestWeather(morning.Add(-2 * time.Hour))
	assert.Equal(t, got, BuildResponse(IntentWeather, input(withWeather(stale)), nil))

	storm := testutil.NewTestWeather(morning.Add(-5*time.Minute), testutil.WithCondition("Thunderstorm"))
	got = BuildResponse(IntentWeather, input(withWeather(storm)), nil)
	assert.Contains(t, got, "WEATHER - New Delhi")
	assert.Contains(t, got, "Updated: 08:55")
	assert.Contains(t, got, "not advised (Extreme weather warning, indoor exercise only)")
	assert.Contains(t, got, "SEVERE WEATHER:")
}

func TestRespond(t *testing.T) {
	reply := Respond("I'm feeling really anxious today", input(), nil)
	require.Equal(t, IntentMood, reply.Intent)
	assert.Contains(t, reply.Text, "No mood entries yet!")

	reply = Respond("help", input(), nil)
	assert.Equal(t, IntentHelp, reply.Intent)
	assert.Contains(t, reply.Text, "HEALTH ASSISTANT GUIDE")
}
