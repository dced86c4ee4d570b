package wellness

import (
	"fmt"

	"github.com/alexanderramin/aura/internal/domain"
)

// MoodWindow is how many recent entries the trend looks at.
const MoodWindow = 7

// MoodTrend summarizes the polarity of recent moods.
type MoodTrend string

const (
	TrendNone     MoodTrend = "none"
	TrendPositive MoodTrend = "positive"
	TrendNegative MoodTrend = "challenging"
	TrendBalanced MoodTrend = "balanced"
)

// CountRecentMoods counts positive and negative labels in the last MoodWindow entries.
func CountRecentMoods(m *domain.Metrics) (positive, negative int) {
	for _, e := range m.RecentMoods(MoodWindow) {
		switch {
		case e.Mood.IsPositive():
			positive++
		case e.Mood.IsNegative():
			negative++
		}
	}
	return positive, negative
}

// RecentMoodTrend compares positive and negative labels in the last MoodWindow entries.
func RecentMoodTrend(m *domain.Metrics) MoodTrend {
	if len(m.RecentMoods(MoodWindow)) == 0 {
		return TrendNone
	}
	pos, neg := CountRecentMoods(m)
	switch {
	case pos > neg:
		return TrendPositive
	case neg > pos:
		return TrendNegative
	default:
		return TrendBalanced
	}
}

// MoodInsight is the one-paragraph summary shown on the mood page.
func MoodInsight(m *domain.Metrics) string {
	trend := RecentMoodTrend(m)
	if trend == TrendNone {
		return "Start tracking your moods to see insights about your emotional patterns."
	}
	insight := fmt.Sprintf("You've logged %d mood entries. ", len(m.Moods))
	switch trend {
	case TrendPositive:
		insight += "Your recent moods have been mostly positive! Keep up the great work with your wellness routine. 🌟"
	case TrendNegative:
		insight += "You seem to be experiencing some challenging emotions. Consider talking to someone, practicing self-care, or seeking professional support if needed. 💚"
	default:
		insight += "Your moods have been balanced. Continue monitoring your emotional wellbeing. 🧘"
	}
	return insight
}
