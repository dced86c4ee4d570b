package service

import (
	"context"
	"testing"
	"time"

	"github.com/alexanderramin/aura/internal/contract"
	"github.com/alexanderramin/aura/internal/domain"
	"github.com/alexanderramin/aura/internal/testutil"
	"github.com/alexanderramin/aura/internal/wellness"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"
)

func recTitles(recs []wellness.Recommendation) []string {
	out := make([]string, len(recs))
	for i, r := range recs {
		out[i] = r.Title
	}
	return out
}

func TestGuidanceService_Recommendations_NoProfile(t *testing.T) {
	env := newTestEnv(t)
	svc := NewGuidanceService(env.repos, WithClock(fixedClock))

	resp, err := svc.Recommendations(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{wellness.TitleCompleteProfile}, recTitles(resp.Recommendations))
	assert.Zero(t, resp.Score)
}

func TestGuidanceService_Recommendations_UsesFreshWeather(t *testing.T) {
	env := newTestEnv(t)
	svc := NewGuidanceService(env.repos, WithClock(fixedClock))
	ctx := context.Background()

	env.saveProfile(t)
	require.NoError(t, env.repos.Weather.SaveWeather(ctx,
		testutil.NewTestWeather(fixedNow.Add(-10*time.Minute), testutil.WithTemp(42))))

	resp, err := svc.Recommendations(ctx)
	require.NoError(t, err)
	require.NotNil(t, resp.Weather)
	assert.Equal(t, []string{
		wellness.TitleHydration, wellness.TitleActivity, wellness.TitleNutrition,
		wellness.TitleMorning, wellness.TitleHeatWarning, wellness.TitleCurrentWeather,
	}, recTitles(resp.Recommendations))
	assert.Contains(t, resp.Recommendations[0].Text, "4-5 liters")
}

func TestGuidanceService_Recommendations_StaleWeatherIgnored(t *testing.T) {
	env := newTestEnv(t)
	svc := NewGuidanceService(env.repos, WithClock(fixedClock))
	ctx := context.Background()

	env.saveProfile(t)
	require.NoError(t, env.repos.Weather.SaveWeather(ctx,
		testutil.NewTestWeather(fixedNow.Add(-2*time.Hour), testutil.WithTemp(42))))

	resp, err := svc.Recommendations(ctx)
	require.NoError(t, err)
	assert.Nil(t, resp.Weather)
	titles := recTitles(resp.Recommendations)
	assert.Equal(t, wellness.TitleAddWeather, titles[len(titles)-1])
	assert.NotContains(t, titles, wellness.TitleHeatWarning)
}

func TestGuidanceService_Dashboard(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	tracker := NewTrackerService(env.repos, env.uow, WithClock(fixedClock))
	svc := NewGuidanceService(env.repos, WithClock(fixedClock))

	env.saveProfile(t)
	_, err := tracker.LogActivity(ctx, contract.NewLogActivityRequest(domain.ActivityWalking, 50))
	require.NoError(t, err)
	for i := 0; i < 2; i++ {
		_, err = tracker.DrinkWater(ctx)
		require.NoError(t, err)
	}

	dash, err := svc.Dashboard(ctx)
	require.NoError(t, err)
	require.NotNil(t, dash.Profile)
	assert.Equal(t, 6000, dash.Metrics.Steps)
	assert.Equal(t, 0.75, dash.StepProgress)
	assert.Equal(t, 0.25, dash.WaterProgress)
	assert.Equal(t, 52, dash.Score)
	require.Len(t, dash.Badges, 1)
	assert.Equal(t, domain.BadgeActive, dash.Badges[0].ID)
	assert.Nil(t, dash.Weather)
	assert.Contains(t, dash.MoodInsight, "Start tracking your moods")
}

func TestGuidanceService_Dashboard_StepProgressCapped(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	require.NoError(t, env.repos.Tracker.AddSteps(ctx, 20000))

	dash, err := NewGuidanceService(env.repos).Dashboard(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1.0, dash.StepProgress)
}

func TestGuidanceService_Tips(t *testing.T) {
	env := newTestEnv(t)
	rng := &testutil.ScriptedRandom{Picks: []int{0, 0, 0, 0}}
	svc := NewGuidanceService(env.repos, WithRandom(rng))
	ctx := context.Background()

	_, err := svc.Tips(ctx)
	requireCode(t, err, contract.ErrProfileRequired)

	env.saveProfile(t)
	tips, err := svc.Tips(ctx)
	require.NoError(t, err)
	require.Len(t, tips, wellness.DefaultTipCount)
	assert.Equal(t, "Movement", tips[0].Topic)
	assert.Equal(t, []int{12, 11, 10, 9}, rng.Calls)
}

func TestGuidanceService_Tips_Concurrent(t *testing.T) {
	env := newTestEnv(t)
	env.saveProfile(t)
	svc := NewGuidanceService(env.repos)

	var g errgroup.Group
	for range 8 {
		g.Go(func() error {
			for range 20 {
				tips, err := svc.Tips(context.Background())
				if err != nil {
					return err
				}
				if len(tips) != wellness.DefaultTipCount {
					return assert.AnError
				}
			}
			return nil
		})
	}
	require.NoError(t, g.Wait())
}
