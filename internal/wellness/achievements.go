package wellness

import "github.com/alexanderramin/aura/internal/domain"

// badgeRules maps each catalog badge to its threshold check.
var badgeRules = map[domain.BadgeID]func(m *domain.Metrics, score int) bool{
	domain.BadgeActive: func(m *domain.Metrics, _ int) bool {
		return m.Steps >= domain.ActiveStepsThreshold
	},
	domain.BadgeHydration: func(m *domain.Metrics, _ int) bool {
		return m.Water >= domain.HydrationWaterThreshold
	},
	domain.BadgeEmotion: func(m *domain.Metrics, _ int) bool {
		return len(m.Moods) >= domain.EmotionMoodsThreshold
	},
	domain.BadgeMental: func(m *domain.Metrics, _ int) bool {
		return m.QuizScore >= domain.MentalQuizThreshold
	},
	domain.BadgeFitness: func(m *domain.Metrics, _ int) bool {
		return len(m.Activities) >= domain.FitnessActivityThreshold
	},
	domain.BadgeWellness: func(_ *domain.Metrics, score int) bool {
		return score >= domain.WellnessScoreThreshold
	},
}

// EvaluateAchievements checks every catalog threshold and adds newly earned
// badges to earned. It returns only the new ids, in catalog order. A nil
// earned set counts as empty and is left untouched.
func EvaluateAchievements(m *domain.Metrics, score int, earned domain.BadgeSet) []domain.BadgeID {
	if m == nil {
		m = &domain.Metrics{}
	}
	var awarded []domain.BadgeID
	for _, b := range domain.BadgeCatalog {
		if earned.Has(b.ID) {
			continue
		}
		rule, ok := badgeRules[b.ID]
		if !ok || !rule(m, score) {
			continue
		}
		if earned != nil {
			earned.Add(b.ID)
		}
		awarded = append(awarded, b.ID)
	}
	return awarded
}
