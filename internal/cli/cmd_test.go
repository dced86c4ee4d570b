package cli

import (
	"bytes"
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/alexanderramin/aura/internal/contract"
	"github.com/alexanderramin/aura/internal/domain"
	"github.com/alexanderramin/aura/internal/service"
	"github.com/alexanderramin/aura/internal/testutil"
	"github.com/alexanderramin/aura/internal/weather"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2025, 3, 15, 9, 0, 0, 0, time.UTC)

type stubProvider struct{}

func (stubProvider) Fetch(_ context.Context, pincode string) (*domain.WeatherSnapshot, error) {
	return testutil.NewTestWeather(fixedNow, func(w *domain.WeatherSnapshot) { w.Pincode = pincode }), nil
}

// testApp wires a full App backed by an in-memory DB for CLI integration tests.
func testApp(t *testing.T) *App {
	t.Helper()
	database := testutil.NewTestDB(t)
	clock := func() time.Time { return fixedNow }

	store := service.NewSQLiteRepos(database).Weather
	cached := weather.NewCachedProvider(stubProvider{}, store, time.Hour, weather.WithClock(clock))

	return &App{
		UseCases: service.NewUseCases(database, cached, service.WithClock(clock)),
		Now:      clock,
	}
}

func seedProfile(t *testing.T, app *App, opts ...testutil.ProfileOption) {
	t.Helper()
	require.NoError(t, app.Profile.Save(context.Background(), testutil.NewTestProfile(opts...)))
}

var ansi = regexp.MustCompile(`\x1b\[[0-9;]*[a-zA-Z]`)

// executeCmd runs a cobra command and captures stdout/stderr without styling.
func executeCmd(t *testing.T, app *App, args ...string) (string, error) {
	t.Helper()
	root := NewRootCmd(app)
	buf := new(bytes.Buffer)
	root.SetOut(buf)
	root.SetErr(buf)
	root.SetArgs(args)
	err := root.Execute()
	return ansi.ReplaceAllString(buf.String(), ""), err
}

// --- profile ---

func TestProfileShow_Empty(t *testing.T) {
	app := testApp(t)

	out, err := executeCmd(t, app, "profile", "show")
	require.NoError(t, err)
	assert.Contains(t, out, "No profile yet")
}

func TestProfileSet_FlagsThenPartialUpdate(t *testing.T) {
	app := testApp(t)

	out, err := executeCmd(t, app, "profile", "set",
		"--name", "Asha", "--age", "25", "--gender", "male", "--height", "170", "--weight", "70",
		"--goal", "weight-loss")
	require.NoError(t, err)
	assert.Contains(t, out, "Profile saved.")
	assert.Contains(t, out, "24.2 (Normal)")
	assert.Contains(t, out, "Weight Loss")

	out, err = executeCmd(t, app, "profile", "set", "--weight", "80")
	require.NoError(t, err)
	assert.Contains(t, out, "27.7 (Overweight)")

	p, err := app.Profile.Get(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Asha", p.Name)
	assert.Equal(t, 80, p.WeightKg)
	assert.Equal(t, domain.GoalWeightLoss, p.Goal)
	assert.Equal(t, domain.HealthNone, p.HealthIssue)
}

func TestProfileSet_Errors(t *testing.T) {
	app := testApp(t)

	_, err := executeCmd(t, app, "profile", "set")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no profile fields given")

	_, err = executeCmd(t, app, "profile", "set", "--gender", "robot")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "must be one of")

	// Name and body metrics missing.
	_, err = executeCmd(t, app, "profile", "set", "--age", "30")
	require.Error(t, err)
	code, ok := contract.CodeOf(err)
	require.True(t, ok)
	assert.Equal(t, contract.ErrInvalidProfile, code)
}

// --- log ---

func TestLogActivity(t *testing.T) {
	app := testApp(t)

	out, err := executeCmd(t, app, "log", "activity", "--type", "running", "--minutes", "30")
	require.NoError(t, err)
	assert.Contains(t, out, "Logged 30m Running: +5,400 steps")
	assert.Contains(t, out, "Total steps: 5,400")
	assert.NotContains(t, out, "New badge")

	out, err = executeCmd(t, app, "log", "activity", "--type", "walking", "-m", "10")
	require.NoError(t, err)
	assert.Contains(t, out, "Total steps: 6,600")
	assert.Contains(t, out, "New badge: 🚶 Active Champ")
}

func TestLogActivity_Validation(t *testing.T) {
	app := testApp(t)

	_, err := executeCmd(t, app, "log", "activity", "--type", "skydiving", "--minutes", "30")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Walking, Running")

	_, err = executeCmd(t, app, "log", "activity", "--type", "yoga", "--minutes", "0")
	require.Error(t, err)
	code, _ := contract.CodeOf(err)
	assert.Equal(t, contract.ErrInvalidDuration, code)

	_, err = executeCmd(t, app, "log", "activity", "--minutes", "10")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `"type" not set`)
}

func TestLogWater_GoalAndBadge(t *testing.T) {
	app := testApp(t)

	var out string
	var err error
	for i := 0; i < domain.HydrationWaterThreshold; i++ {
		out, err = executeCmd(t, app, "log", "water")
		require.NoError(t, err)
	}
	assert.Contains(t, out, "Water: 8/8 glasses")
	assert.Contains(t, out, "Daily goal reached!")
	assert.Contains(t, out, "New badge: 💧 Hydration Hero")
}

func TestLogCalories(t *testing.T) {
	app := testApp(t)

	_, err := executeCmd(t, app, "log", "calories", "lots")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "whole number")

	out, err := executeCmd(t, app, "log", "calories", "1450")
	require.NoError(t, err)
	assert.Contains(t, out, "Calories today: 1,450 kcal")
}

func TestLogMoodAndList(t *testing.T) {
	app := testApp(t)

	out, err := executeCmd(t, app, "log", "mood", "--mood", "happy")
	require.NoError(t, err)
	assert.Contains(t, out, "Mood logged: Happy")

	_, err = executeCmd(t, app, "log", "activity", "--type", "Yoga", "--minutes", "20")
	require.NoError(t, err)

	out, err = executeCmd(t, app, "log", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "Recent Activities")
	assert.Contains(t, out, "Yoga")
	assert.Contains(t, out, "Recent Moods")
	assert.Contains(t, out, "Happy")
	assert.Contains(t, out, "Just now")
}

func TestLogList_Empty(t *testing.T) {
	app := testApp(t)

	out, err := executeCmd(t, app, "log", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "No activities logged yet.")
	assert.Contains(t, out, "No moods logged yet.")
}

// --- guidance ---

func TestGuide_WithoutProfile(t *testing.T) {
	app := testApp(t)

	out, err := executeCmd(t, app, "guide")
	require.NoError(t, err)
	assert.Contains(t, out, "Complete Profile")
	assert.NotContains(t, out, "Hydration")
}

func TestGuide_WithProfileAndWeather(t *testing.T) {
	app := testApp(t)
	seedProfile(t, app)

	_, err := executeCmd(t, app, "weather", "fetch", "110001")
	require.NoError(t, err)

	out, err := executeCmd(t, app, "guide")
	require.NoError(t, err)
	assert.Contains(t, out, "Hydration")
	assert.Contains(t, out, "Activity")
	assert.Contains(t, out, "Current Weather")
	assert.Contains(t, out, "New Delhi: 22°C")
	assert.Contains(t, out, "Wellness score:")
}

func TestScoreAndBadges(t *testing.T) {
	app := testApp(t)

	_, err := executeCmd(t, app, "log", "activity", "--type", "running", "--minutes", "40")
	require.NoError(t, err)

	out, err := executeCmd(t, app, "score")
	require.NoError(t, err)
	assert.Contains(t, out, "Wellness Score")
	assert.Contains(t, out, "7,200/8,000")

	out, err = executeCmd(t, app, "badges")
	require.NoError(t, err)
	assert.Contains(t, out, "✔ 🚶 Active Champ")
	assert.Contains(t, out, "(Drink 8 glasses of water)")
	assert.Contains(t, out, "1/6 earned")
}

func TestTipsAndDashboard(t *testing.T) {
	app := testApp(t)
	seedProfile(t, app)

	out, err := executeCmd(t, app, "tips")
	require.NoError(t, err)
	assert.Contains(t, out, "Health Tips")

	out, err = executeCmd(t, app, "dashboard")
	require.NoError(t, err)
	assert.Contains(t, out, "AURA DASHBOARD")
	assert.Contains(t, out, "Asha, 25")
}

// --- weather ---

func TestWeather_FetchAndShow(t *testing.T) {
	app := testApp(t)

	out, err := executeCmd(t, app, "weather", "show")
	require.NoError(t, err)
	assert.Contains(t, out, "No recent weather")

	out, err = executeCmd(t, app, "weather", "fetch", " 110001 ")
	require.NoError(t, err)
	assert.Contains(t, out, "New Delhi (110001)")
	assert.Contains(t, out, "22°C, feels like 22°C")

	out, err = executeCmd(t, app, "weather", "show")
	require.NoError(t, err)
	assert.Contains(t, out, "New Delhi (110001)")
	assert.Contains(t, out, "Just now")
}

func TestWeather_InvalidPincode(t *testing.T) {
	app := testApp(t)

	_, err := executeCmd(t, app, "weather", "fetch", "12ab")
	require.Error(t, err)
	code, ok := contract.CodeOf(err)
	require.True(t, ok)
	assert.Equal(t, contract.ErrInvalidPincode, code)
}

// --- health ---

func TestHealthBMI(t *testing.T) {
	app := testApp(t)

	_, err := executeCmd(t, app, "health", "bmi")
	require.Error(t, err)
	code, _ := contract.CodeOf(err)
	assert.Equal(t, contract.ErrProfileRequired, code)

	seedProfile(t, app)
	out, err := executeCmd(t, app, "health", "bmi")
	require.NoError(t, err)
	assert.Contains(t, out, "24.2")
	assert.Contains(t, out, "1,643 kcal/day")
	assert.Contains(t, out, "LOW")
}

func TestHealthCycle(t *testing.T) {
	app := testApp(t)
	seedProfile(t, app, testutil.WithGender(domain.GenderFemale))

	out, err := executeCmd(t, app, "health", "cycle", "--start", "2025-03-01")
	require.NoError(t, err)
	assert.Contains(t, out, "of 28")
	assert.Contains(t, out, "Next period")

	_, err = executeCmd(t, app, "health", "cycle", "--start", "03/01/2025")
	require.Error(t, err)
	code, _ := contract.CodeOf(err)
	assert.Equal(t, contract.ErrInvalidCycle, code)

	_, err = executeCmd(t, app, "health", "cycle", "--start", "2025-03-01", "--length", "50")
	require.Error(t, err)
	code, _ = contract.CodeOf(err)
	assert.Equal(t, contract.ErrInvalidCycle, code)
}

// --- quiz ---

func TestQuiz_StartAnswerStatus(t *testing.T) {
	app := testApp(t)

	out, err := executeCmd(t, app, "quiz", "start")
	require.NoError(t, err)
	assert.Contains(t, out, "Question 1/20")
	assert.Contains(t, out, domain.QuizBank[0].Statement)

	_, err = executeCmd(t, app, "quiz", "answer", "maybe")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "true or false")

	out, err = executeCmd(t, app, "quiz", "answer", "true")
	require.NoError(t, err)
	assert.Contains(t, out, "Question 2/20")

	// Non-interactive bare "quiz" prints the status.
	out, err = executeCmd(t, app, "quiz")
	require.NoError(t, err)
	assert.Contains(t, out, "Question 2/20")
}

func TestQuiz_CompleteThenAnswerFails(t *testing.T) {
	app := testApp(t)

	var out string
	var err error
	for _, q := range domain.QuizBank {
		arg := "false"
		if q.Answer {
			arg = "true"
		}
		out, err = executeCmd(t, app, "quiz", "answer", arg)
		require.NoError(t, err)
	}
	assert.Contains(t, out, "Quiz Complete")
	assert.Contains(t, out, "20/20 (100%)")
	assert.Contains(t, out, "New badge: 🧠 Mental Master")

	_, err = executeCmd(t, app, "quiz", "answer", "true")
	require.Error(t, err)
	code, _ := contract.CodeOf(err)
	assert.Equal(t, contract.ErrQuizComplete, code)
}

// --- chat ---

func TestChat_OneShotHistoryClear(t *testing.T) {
	app := testApp(t)
	seedProfile(t, app)

	out, err := executeCmd(t, app, "chat", "hello", "there")
	require.NoError(t, err)
	assert.Contains(t, out, "aura › ")
	assert.Contains(t, out, "Hi Asha!")

	out, err = executeCmd(t, app, "chat", "history")
	require.NoError(t, err)
	assert.Contains(t, out, "you › hello there")
	assert.Contains(t, out, "Hi Asha!")

	out, err = executeCmd(t, app, "chat", "clear")
	require.NoError(t, err)
	assert.Contains(t, out, "Chat history cleared.")

	out, err = executeCmd(t, app, "chat", "history")
	require.NoError(t, err)
	assert.Contains(t, out, "No messages yet.")
}

func TestChat_NoArgsNonInteractive(t *testing.T) {
	app := testApp(t)

	_, err := executeCmd(t, app, "chat")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no message given")
}

// --- reset / serve ---

func TestReset(t *testing.T) {
	app := testApp(t)
	seedProfile(t, app)

	_, err := executeCmd(t, app, "log", "water")
	require.NoError(t, err)

	_, err = executeCmd(t, app, "reset")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--yes")

	out, err := executeCmd(t, app, "reset", "--yes")
	require.NoError(t, err)
	assert.Contains(t, out, "Tracking data reset.")

	dash, err := app.Guidance.Dashboard(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0, dash.Metrics.Water)
	require.NotNil(t, dash.Profile)
	assert.Equal(t, "Asha", dash.Profile.Name)
}

func TestServe_RequiresAddress(t *testing.T) {
	app := testApp(t)

	_, err := executeCmd(t, app, "serve")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no listen address")
}

func TestErrorMessage(t *testing.T) {
	err := contract.NewError(contract.ErrInvalidMood, "unknown mood %q", "meh")
	assert.Equal(t, `unknown mood "meh"`, ErrorMessage(err))
	assert.Equal(t, "boom", ErrorMessage(errors.New("boom")))
}
