package wellness

import "github.com/alexanderramin/aura/internal/domain"

// conditionalAdvice pairs a fixed instruction with a clause that depends on
// the current conditions. The clause is empty when it does not apply.
type conditionalAdvice struct {
	core   string
	clause func(c Conditions) string
}

func (a conditionalAdvice) render(c Conditions) string {
	if a.clause == nil || !c.HasWeather() {
		return a.core
	}
	return a.core + a.clause(c)
}

var healthAdvice = map[domain.HealthIssue]conditionalAdvice{
	domain.HealthBP: {
		core: "Limit sodium, manage stress, monitor BP regularly.",
		clause: func(c Conditions) string {
			switch {
			case c.Hot():
				return " Heat and dehydration can swing your blood pressure; keep fluids up and skip the midday sun."
			case c.Cold():
				return " Cold weather can raise blood pressure; stay warm and check your readings more often."
			}
			return ""
		},
	},
	domain.HealthDiabetes: {
		core: "Low GI foods, regular meals, monitor blood sugar.",
		clause: func(c Conditions) string {
			switch {
			case c.Hot():
				return " Heat changes how your body uses insulin; test more often and keep medication cool."
			case c.Cold():
				return " Cold fingers can skew finger-prick readings; warm your hands before testing."
			}
			return ""
		},
	},
	domain.HealthPCOS: {
		core: "Regular exercise, balanced meals, manage weight.",
		clause: func(c Conditions) string {
			if !c.SafeOutdoor() {
				return " Outdoor conditions are poor today; keep your routine going with an indoor strength session."
			}
			return " Good day for an outdoor walk to support insulin sensitivity."
		},
	},
	domain.HealthThyroid: {
		core: "Follow medication schedule, regular check-ups.",
		clause: func(c Conditions) string {
			switch {
			case c.Cold():
				return " Thyroid conditions can heighten cold sensitivity; dress in layers."
			case c.Hot():
				return " Heat intolerance is common with thyroid imbalance; stay cool and hydrated."
			}
			return ""
		},
	},
	domain.HealthAsthma: {
		core: "Avoid triggers, breathing exercises, keep inhaler accessible.",
		clause: func(c Conditions) string {
			switch {
			case c.Category == domain.WeatherExtreme:
				return " Storms can stir up pollen and trigger attacks; stay indoors with windows closed."
			case c.Cold():
				return " Cold air can tighten airways; cover your nose and mouth outdoors."
			case c.Humid():
				return " High humidity can make breathing harder; keep your reliever inhaler close."
			}
			return ""
		},
	},
	domain.HealthHeart: {
		core: "Heart-healthy diet, moderate exercise, stress management.",
		clause: func(c Conditions) string {
			switch {
			case c.Hot():
				return " Hot weather strains the heart; avoid exertion during peak heat."
			case c.Cold():
				return " Cold weather makes the heart work harder; warm up indoors before any activity."
			}
			return ""
		},
	},
}

var goalAdvice = map[domain.Goal]conditionalAdvice{
	domain.GoalWeightLoss: {
		core: "Calorie deficit (300-500 kcal/day), strength + cardio, 7-8h sleep.",
		clause: func(c Conditions) string {
			if c.SafeOutdoor() {
				return " Conditions suit a longer outdoor walk today to add to your deficit."
			}
			return " Weather is not ideal outside; an indoor circuit keeps you on track."
		},
	},
	domain.GoalMuscleGain: {
		core: "Protein (1.6-2g/kg), progressive overload, adequate rest days.",
		clause: func(c Conditions) string {
			if c.Hot() {
				return " Hot weather increases fluid loss; add electrolytes around your sessions."
			}
			return ""
		},
	},
	domain.GoalMentalPeace: {
		core: "15 min daily meditation, journaling, limit screens before bed.",
		clause: func(c Conditions) string {
			switch {
			case c.Category == domain.WeatherRain:
				return " A rainy day suits an indoor meditation with the sound of the rain."
			case c.SafeOutdoor() && c.Category == domain.WeatherClear:
				return " Clear skies today; a short mindful walk outside can lift your mood."
			}
			return ""
		},
	},
	domain.GoalHealthyLifestyle: {
		core: "Balanced routine: move daily, eat mindfully, sleep well.",
		clause: func(c Conditions) string {
			if c.SafeOutdoor() {
				return " Take part of today's routine outdoors."
			}
			return " Keep moving indoors today."
		},
	},
	domain.GoalDiseaseManagement: {
		core: "Follow medical advice, consistent routine, track symptoms.",
		clause: func(c Conditions) string {
			if !c.SafeOutdoor() {
				return " Harsh weather can aggravate chronic conditions; limit exposure and keep medicines handy."
			}
			return ""
		},
	},
}

// HealthAdvice returns the advice for issue, or false for None and unknown issues.
func HealthAdvice(issue domain.HealthIssue, c Conditions) (string, bool) {
	a, ok := healthAdvice[issue]
	if !ok {
		return "", false
	}
	return a.render(c), true
}

// GoalAdvice returns the advice for goal, or false when no goal is set.
func GoalAdvice(goal domain.Goal, c Conditions) (string, bool) {
	a, ok := goalAdvice[goal]
	if !ok {
		return "", false
	}
	return a.render(c), true
}
