package wellness

import (
	"sync"
	"testing"
	"time"

	"github.com/alexanderramin/aura/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fixedRandom replays picks in order, then repeats the last one.
type fixedRandom struct {
	picks []int
	calls int
}

func (f *fixedRandom) IntN(n int) int {
	if len(f.picks) == 0 {
		return 0
	}
	i := f.calls
	if i >= len(f.picks) {
		i = len(f.picks) - 1
	}
	f.calls++
	return f.picks[i]
}

func TestAnalyzeHealth(t *testing.T) {
	report, ok := AnalyzeHealth(youngProfile())
	require.True(t, ok)
	assert.Equal(t, 24.2, report.BMI)
	assert.Equal(t, domain.BMINormal, report.Category)
	assert.Equal(t, domain.RiskLow, report.Risk)
	// 10*70 + 6.25*170 - 5*25 + 5 = 1642.5 -> 1643
	assert.Equal(t, 1643, report.BMR)
	assert.Equal(t, report.BMR, report.RecommendedCalories)

	female := youngProfile()
	female.Gender = domain.GenderFemale
	report, ok = AnalyzeHealth(female)
	require.True(t, ok)
	assert.Equal(t, 1477, report.BMR)

	_, ok = AnalyzeHealth(&domain.UserProfile{Age: 30})
	assert.False(t, ok)
	_, ok = AnalyzeHealth(nil)
	assert.False(t, ok)
}

func TestRiskFor(t *testing.T) {
	assert.Equal(t, domain.RiskModerate, RiskFor(domain.BMIUnderweight))
	assert.Equal(t, domain.RiskLow, RiskFor(domain.BMINormal))
	assert.Equal(t, domain.RiskModerate, RiskFor(domain.BMIOverweight))
	assert.Equal(t, domain.RiskHigh, RiskFor(domain.BMIObese))
}

func TestAnalyzeCycle(t *testing.T) {
	start := time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC)
	now := time.Date(2025, time.March, 10, 15, 30, 0, 0, time.UTC)

	report, err := AnalyzeCycle(start, 0, now)
	require.NoError(t, err)
	assert.Equal(t, 28, report.Length)
	assert.Equal(t, time.Date(2025, time.March, 29, 0, 0, 0, 0, time.UTC), report.NextPeriod)
	assert.Equal(t, time.Date(2025, time.March, 15, 0, 0, 0, 0, time.UTC), report.Ovulation)
	assert.Equal(t, time.Date(2025, time.March, 12, 0, 0, 0, 0, time.UTC), report.FertileStart)
	assert.Equal(t, time.Date(2025, time.March, 17, 0, 0, 0, 0, time.UTC), report.FertileEnd)
	assert.Equal(t, 10, report.CurrentDay)
	assert.Equal(t, PhaseFollicular, report.Phase)

	// Day counting wraps into the next cycle.
	report, err = AnalyzeCycle(start, 30, time.Date(2025, time.April, 2, 8, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.Equal(t, 3, report.CurrentDay)
	assert.Equal(t, PhaseMenstrual, report.Phase)
}

func TestAnalyzeCycle_Errors(t *testing.T) {
	now := time.Date(2025, time.March, 10, 0, 0, 0, 0, time.UTC)
	_, err := AnalyzeCycle(time.Time{}, 28, now)
	assert.ErrorIs(t, err, ErrCycleStartMissing)
	_, err = AnalyzeCycle(now.AddDate(0, 0, 1), 28, now)
	assert.ErrorIs(t, err, ErrCycleStartFuture)
}

func TestPhaseFor(t *testing.T) {
	for day, want := range map[int]CyclePhase{
		1: PhaseMenstrual, 5: PhaseMenstrual, 6: PhaseFollicular, 14: PhaseFollicular,
		15: PhaseOvulation, 18: PhaseOvulation, 19: PhaseLuteal, 28: PhaseLuteal,
	} {
		got, advice := PhaseFor(day)
		assert.Equal(t, want, got, "day %d", day)
		assert.NotEmpty(t, advice)
	}
}

func TestNormalizeCycleLength(t *testing.T) {
	assert.Equal(t, 28, NormalizeCycleLength(0))
	assert.Equal(t, 28, NormalizeCycleLength(20))
	assert.Equal(t, 21, NormalizeCycleLength(21))
	assert.Equal(t, 45, NormalizeCycleLength(45))
	assert.Equal(t, 28, NormalizeCycleLength(46))
}

func moods(labels ...domain.MoodLabel) *domain.Metrics {
	m := &domain.Metrics{}
	for _, l := range labels {
		m.Moods = append(m.Moods, domain.MoodEntry{Mood: l})
	}
	return m
}

func TestMoodInsight(t *testing.T) {
	assert.Equal(t, "Start tracking your moods to see insights about your emotional patterns.", MoodInsight(&domain.Metrics{}))

	got := MoodInsight(moods(domain.MoodHappy, domain.MoodCalm, domain.MoodSad))
	assert.Contains(t, got, "You've logged 3 mood entries. ")
	assert.Contains(t, got, "mostly positive")

	assert.Contains(t, MoodInsight(moods(domain.MoodStressed, domain.MoodTired)), "challenging emotions")
	assert.Contains(t, MoodInsight(moods(domain.MoodHappy, domain.MoodSad, domain.MoodNeutral)), "balanced")
}

func TestRecentMoodTrend_UsesLastSeven(t *testing.T) {
	m := moods(
		domain.MoodSad, domain.MoodSad, domain.MoodSad, domain.MoodSad, domain.MoodSad,
		domain.MoodHappy, domain.MoodHappy, domain.MoodHappy, domain.MoodHappy, domain.MoodHappy, domain.MoodSad, domain.MoodSad,
	)
	assert.Equal(t, TrendPositive, RecentMoodTrend(m))
	assert.Contains(t, MoodInsight(m), "You've logged 12 mood entries.")
}

func TestPickTips_DistinctAndScripted(t *testing.T) {
	// Each pick is relative to the unshuffled tail of the pool.
	tips := PickTips(&fixedRandom{picks: []int{0, 0, 0, 0}}, DefaultTipCount)
	require.Len(t, tips, 4)
	assert.Equal(t, []string{"Movement", "Sleep", "Stress", "Nutrition"},
		[]string{tips[0].Topic, tips[1].Topic, tips[2].Topic, tips[3].Topic})

	tips = PickTips(&fixedRandom{picks: []int{11, 10, 0, 0}}, DefaultTipCount)
	assert.Equal(t, "Digital Detox", tips[0].Topic)
	assert.Equal(t, "Movement", tips[1].Topic)

	seen := map[string]bool{}
	for _, tip := range PickTips(NewRandomSource(42), len(TipBank)+3) {
		assert.False(t, seen[tip.Topic], "duplicate tip %s", tip.Topic)
		seen[tip.Topic] = true
	}
	assert.Len(t, seen, len(TipBank))
	assert.Nil(t, PickTips(NewRandomSource(1), 0))
}

func TestPick_BoundsStubOutput(t *testing.T) {
	items := []string{"a", "b", "c"}
	assert.Equal(t, "b", Pick[string](&fixedRandom{picks: []int{4}}, items))
	assert.Equal(t, "c", Pick[string](&fixedRandom{picks: []int{-1}}, items))
	assert.Equal(t, "", Pick[string](&fixedRandom{}, nil))
}

func TestNewRandomSource_ConcurrentUse(t *testing.T) {
	r := NewRandomSource(7)
	var wg sync.WaitGroup
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range 200 {
				i := r.IntN(len(TipBank))
				assert.True(t, i >= 0 && i < len(TipBank))
			}
		}()
	}
	wg.Wait()
}
