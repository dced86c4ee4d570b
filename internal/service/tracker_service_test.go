package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alexanderramin/aura/internal/contract"
	"github.com/alexanderramin/aura/internal/domain"
	"github.com/alexanderramin/aura/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func requireCode(t *testing.T, err error, want contract.ErrorCode) {
	t.Helper()
	require.Error(t, err)
	code, ok := contract.CodeOf(err)
	require.True(t, ok, "expected contract error, got %v", err)
	assert.Equal(t, want, code)
}

func TestTrackerService_LogActivity_CreditsStepsAndScores(t *testing.T) {
	env := newTestEnv(t)
	svc := NewTrackerService(env.repos, env.uow, WithClock(fixedClock))
	ctx := context.Background()

	resp, err := svc.LogActivity(ctx, contract.NewLogActivityRequest(domain.ActivityRunning, 30))
	require.NoError(t, err)

	assert.Equal(t, 5400, resp.Entry.StepsAwarded)
	assert.Equal(t, 5400, resp.TotalSteps)
	assert.Equal(t, 38, resp.Score) // 36 step points + 2 for the log entry
	assert.Empty(t, resp.NewBadges)
	assert.Equal(t, fixedNow, resp.Entry.LoggedAt)
	assert.NotEmpty(t, resp.Entry.ID)
}

func TestTrackerService_LogActivity_AwardsBadgeOnce(t *testing.T) {
	env := newTestEnv(t)
	svc := NewTrackerService(env.repos, env.uow, WithClock(fixedClock))
	ctx := context.Background()

	_, err := svc.LogActivity(ctx, contract.NewLogActivityRequest(domain.ActivityRunning, 30))
	require.NoError(t, err)

	resp, err := svc.LogActivity(ctx, contract.NewLogActivityRequest(domain.ActivityWalking, 5))
	require.NoError(t, err)
	assert.Equal(t, 6000, resp.TotalSteps)
	assert.Equal(t, []domain.BadgeID{domain.BadgeActive}, resp.NewBadges)

	resp, err = svc.LogActivity(ctx, contract.NewLogActivityRequest(domain.ActivityWalking, 5))
	require.NoError(t, err)
	assert.Empty(t, resp.NewBadges, "badge must not be re-awarded")

	earned, err := env.repos.Badges.List(ctx)
	require.NoError(t, err)
	assert.Len(t, earned, 1)
}

func TestTrackerService_LogActivity_Validation(t *testing.T) {
	env := newTestEnv(t)
	svc := NewTrackerService(env.repos, env.uow)
	ctx := context.Background()

	_, err := svc.LogActivity(ctx, contract.NewLogActivityRequest("Skydiving", 10))
	requireCode(t, err, contract.ErrInvalidActivity)

	_, err = svc.LogActivity(ctx, contract.NewLogActivityRequest(domain.ActivityYoga, 0))
	requireCode(t, err, contract.ErrInvalidDuration)

	_, err = svc.LogActivity(ctx, contract.NewLogActivityRequest(domain.ActivityYoga, MaxActivityMinutes+1))
	requireCode(t, err, contract.ErrInvalidDuration)
}

func TestTrackerService_LogActivity_AcceptsLooseTypeSpelling(t *testing.T) {
	env := newTestEnv(t)
	svc := NewTrackerService(env.repos, env.uow)

	resp, err := svc.LogActivity(context.Background(), contract.NewLogActivityRequest("swimming", 10))
	require.NoError(t, err)
	assert.Equal(t, domain.ActivitySwimming, resp.Entry.Type)
	assert.Equal(t, 1600, resp.Entry.StepsAwarded)
}

func TestTrackerService_LogActivity_RollsBackOnFailure(t *testing.T) {
	env := newTestEnv(t)
	boom := errors.New("disk full")
	// Exec 1 inserts the activity, exec 2 credits the steps.
	uow := &testutil.FailOnNthExecUoW{DB: env.db, FailOn: 2, Err: boom}
	svc := NewTrackerService(env.repos, uow)
	ctx := context.Background()

	_, err := svc.LogActivity(ctx, contract.NewLogActivityRequest(domain.ActivityGym, 20))
	require.ErrorIs(t, err, boom)

	activities, err := env.repos.Activities.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, activities, "activity insert must be rolled back")

	state, err := env.repos.Tracker.Get(ctx)
	require.NoError(t, err)
	assert.Zero(t, state.Steps)
}

func TestTrackerService_DrinkWater_CapsAtGoal(t *testing.T) {
	env := newTestEnv(t)
	svc := NewTrackerService(env.repos, env.uow, WithClock(fixedClock))
	ctx := context.Background()

	var last *contract.WaterResponse
	for i := 0; i < domain.WaterGoalGlasses; i++ {
		resp, err := svc.DrinkWater(ctx)
		require.NoError(t, err)
		assert.Equal(t, i+1, resp.Water)
		last = resp
	}
	assert.True(t, last.GoalReached)
	assert.Equal(t, []domain.BadgeID{domain.BadgeHydration}, last.NewBadges)
	assert.Equal(t, 40, last.Score)

	resp, err := svc.DrinkWater(ctx)
	require.NoError(t, err)
	assert.Equal(t, domain.WaterGoalGlasses, resp.Water)
	assert.True(t, resp.GoalReached)
	assert.Empty(t, resp.NewBadges)
}

func TestTrackerService_AddCalories(t *testing.T) {
	env := newTestEnv(t)
	svc := NewTrackerService(env.repos, env.uow)
	ctx := context.Background()

	_, err := svc.AddCalories(ctx, 0)
	requireCode(t, err, contract.ErrInvalidCalories)

	_, err = svc.AddCalories(ctx, 1200)
	require.NoError(t, err)
	resp, err := svc.AddCalories(ctx, 1800)
	require.NoError(t, err)
	assert.Equal(t, 3000, resp.Calories)
	assert.Equal(t, 20, resp.Score, "calorie points cap at 20")
}

func TestTrackerService_LogMood(t *testing.T) {
	env := newTestEnv(t)
	svc := NewTrackerService(env.repos, env.uow, WithClock(fixedClock))
	ctx := context.Background()

	_, err := svc.LogMood(ctx, contract.NewLogMoodRequest("Grumpy"))
	requireCode(t, err, contract.ErrInvalidMood)

	resp, err := svc.LogMood(ctx, contract.NewLogMoodRequest("happy"))
	require.NoError(t, err)
	assert.Equal(t, domain.MoodHappy, resp.Entry.Mood)
	assert.Contains(t, resp.Insight, "You've logged 1 mood entries.")
	assert.Contains(t, resp.Insight, "mostly positive")

	for _, m := range []domain.MoodLabel{domain.MoodSad, domain.MoodTired, domain.MoodAnxious} {
		_, err = svc.LogMood(ctx, contract.NewLogMoodRequest(m))
		require.NoError(t, err)
	}
	resp, err = svc.LogMood(ctx, contract.NewLogMoodRequest(domain.MoodStressed))
	require.NoError(t, err)
	assert.Contains(t, resp.Insight, "challenging emotions")
	assert.Equal(t, []domain.BadgeID{domain.BadgeEmotion}, resp.NewBadges)
}

func TestTrackerService_Recent_NewestFirst(t *testing.T) {
	env := newTestEnv(t)
	svc := NewTrackerService(env.repos, env.uow)
	ctx := context.Background()

	for i, typ := range domain.ActivityTypes {
		when := fixedNow.Add(time.Duration(i) * time.Minute)
		_, err := svc.LogActivity(ctx, contract.LogActivityRequest{Type: typ, Minutes: 10, Now: &when})
		require.NoError(t, err)
	}

	recent, err := svc.Recent(ctx, 0)
	require.NoError(t, err)
	require.Len(t, recent.Activities, contract.RecentLogLimit)
	assert.Equal(t, domain.ActivitySports, recent.Activities[0].Type)
	assert.Empty(t, recent.Moods)
}

func TestTrackerService_Reset_KeepsProfileAndWeather(t *testing.T) {
	env := newTestEnv(t)
	svc := NewTrackerService(env.repos, env.uow, WithClock(fixedClock))
	ctx := context.Background()

	env.saveProfile(t)
	require.NoError(t, env.repos.Weather.SaveWeather(ctx, testutil.NewTestWeather(fixedNow)))
	_, err := svc.LogActivity(ctx, contract.NewLogActivityRequest(domain.ActivityRunning, 40))
	require.NoError(t, err)
	_, err = svc.LogMood(ctx, contract.NewLogMoodRequest(domain.MoodCalm))
	require.NoError(t, err)
	require.NoError(t, env.repos.Chat.Append(ctx, &domain.ChatMessage{ID: "c1", Sender: domain.SenderUser, Text: "hi", SentAt: fixedNow}))

	require.NoError(t, svc.Reset(ctx))

	state, err := env.repos.Tracker.Get(ctx)
	require.NoError(t, err)
	assert.Zero(t, state.Steps)
	badges, err := env.repos.Badges.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, badges)
	moods, err := env.repos.Moods.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, moods)
	chat, err := env.repos.Chat.List(ctx, 0)
	require.NoError(t, err)
	assert.Empty(t, chat)

	_, err = env.repos.Profiles.Get(ctx)
	assert.NoError(t, err)
	_, err = env.repos.Weather.LatestWeather(ctx)
	assert.NoError(t, err)
}
