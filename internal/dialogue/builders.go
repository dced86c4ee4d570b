package dialogue

import (
	"fmt"
	"math"
	"strings"

	"github.com/alexanderramin/aura/internal/domain"
	"github.com/alexanderramin/aura/internal/wellness"
	"github.com/dustin/go-humanize"
)

// VeryLowStepThreshold marks the "move now" band of the exercise reply.
const VeryLowStepThreshold = 2000

func greetingReply(t turn) string {
	var b strings.Builder
	fmt.Fprintf(&b, "👋 Hi %s! I'm your offline health assistant.\n\n", displayName(t.Profile, "there"))
	fmt.Fprintf(&b, "It's %s", strings.ToLower(string(t.cond.TimeOfDay)))
	if t.cond.HasWeather() {
		fmt.Fprintf(&b, " and %d°C outside", t.cond.Temp())
	}
	b.WriteString(".\n\n💡 How can I help you today?\n\nTry asking:\n")
	b.WriteString("• \"Summarize my health\"\n• \"Should I exercise?\"\n• \"Am I hydrated?\"\n• \"What should I eat?\"")
	return b.String()
}

func exerciseReply(t turn) string {
	m := t.Metrics
	var b strings.Builder
	b.WriteString("💪 EXERCISE GUIDANCE\n\n📊 Your activity today:\n")
	fmt.Fprintf(&b, "👣 Steps: %s/%s\n", humanize.Comma(int64(m.Steps)), humanize.Comma(domain.StepGoal))
	fmt.Fprintf(&b, "🏃 Activities logged: %d\n\n", len(m.Activities))

	switch {
	case m.Steps < VeryLowStepThreshold:
		b.WriteString("⚠️ VERY LOW ACTIVITY!\nYou need to move urgently. A 15-minute walk is a great start.\n\n")
	case m.Steps < domain.ActiveStepsThreshold:
		b.WriteString("📈 Good start, but you can do more!\n\n")
	case m.Steps >= domain.StepGoal:
		b.WriteString("🔥 EXCELLENT! You've hit your goal!\n\n")
	default:
		fmt.Fprintf(&b, "✅ Almost there! Just %s steps to go!\n\n", humanize.Comma(int64(domain.StepGoal-m.Steps)))
	}

	if t.Profile.Complete() {
		plan := wellness.ActivityPlanForAge(t.Profile.Age)
		fmt.Fprintf(&b, "🎯 Recommended for age %d:\n• Outdoors: %s\n• Indoors: %s\n", t.Profile.Age, plan.Outdoor, plan.Indoor)
	} else {
		b.WriteString("👤 Complete your profile to get age-based workout suggestions.\n")
	}

	if t.cond.HasWeather() {
		fmt.Fprintf(&b, "\n🌤️ WEATHER (%d°C, %s):\n", t.cond.Temp(), t.Weather.Condition)
		if reason := wellness.IndoorReason(t.cond); reason != "" {
			fmt.Fprintf(&b, "🏠 %s. Exercise indoors today.\n", reason)
		} else {
			fmt.Fprintf(&b, "✅%s\n", wellness.OutdoorTiming(t.cond))
		}
	}
	return strings.TrimRight(b.String(), "\n")
}

func hydrationReply(t turn) string {
	water := t.Metrics.Water
	remaining := max(domain.WaterGoalGlasses-water, 0)
	pct := int(math.Round(float64(water) / domain.WaterGoalGlasses * 100))

	var b strings.Builder
	fmt.Fprintf(&b, "💧 HYDRATION ANALYSIS\n\n📊 Current: %d/%d glasses (%d%%)\n\n", water, domain.WaterGoalGlasses, pct)
	switch {
	case water <= 0:
		b.WriteString("🚨 CRITICAL - NO WATER LOGGED!\n\n→ Drink 2 glasses RIGHT NOW\n→ Set hourly reminders")
	case water < 4:
		fmt.Fprintf(&b, "⚠️ BELOW TARGET!\n\nYou need %d more glasses.\n→ Drink 1 glass every hour", remaining)
	case water < domain.WaterGoalGlasses:
		fmt.Fprintf(&b, "✅ GOOD PROGRESS!\n\nJust %d more to go!", remaining)
	default:
		b.WriteString("🎉 GOAL ACHIEVED!\n\nPerfect hydration today!")
	}

	if t.cond.HasWeather() {
		amount, caveat := wellness.HydrationRange(t.cond)
		if t.cond.Hot() {
			fmt.Fprintf(&b, "\n\n🌡️ Hot weather (%d°C) - Increase to 10-12 glasses!", t.cond.Temp())
		}
		fmt.Fprintf(&b, "\n\n🌤️ Today's target: %s.%s", amount, caveat)
	}
	return b.String()
}

func moodReply(t turn) string {
	latest, ok := t.Metrics.LatestMood()
	if !ok {
		return "🧠 MOOD TRACKING\n\n❌ No mood entries yet!\n\n→ Log your first mood with: aura log mood --mood Happy\n\n💡 Tip: Track mood 2-3 times daily for best insights."
	}

	pos, neg := wellness.CountRecentMoods(t.Metrics)
	var b strings.Builder
	fmt.Fprintf(&b, "🧠 EMOTIONAL WELLNESS\n\n📊 Latest: %s\n📅 Total entries: %d\n\n", latest.Mood, len(t.Metrics.Moods))
	fmt.Fprintf(&b, "📈 Recent trend (last %d):\n✅ Positive: %d\n⚠️ Challenging: %d\n\n", wellness.MoodWindow, pos, neg)
	switch wellness.RecentMoodTrend(t.Metrics) {
	case wellness.TrendPositive:
		b.WriteString("🌟 EXCELLENT! Your mood is mostly positive!")
	case wellness.TrendNegative:
		b.WriteString("💙 NEED SUPPORT?\n\n→ Talk to a friend\n→ Practice deep breathing (inhale-4, hold-4, exhale-6)\n→ Consider professional help if needed")
	default:
		b.WriteString("🧘 Your moods have been balanced. Keep checking in with yourself.")
	}
	return b.String()
}

func scoreReply(t turn) string {
	m := t.Metrics
	bd := wellness.BreakdownScore(m)

	var b strings.Builder
	fmt.Fprintf(&b, "📊 WELLNESS SCORE: %d/100\n\n", t.score)
	switch {
	case t.score >= domain.WellnessScoreThreshold:
		b.WriteString("🌟 EXCELLENT - Wellness Warrior!\n\n")
	case t.score >= 60:
		b.WriteString("💪 GOOD - On the right track!\n\n")
	default:
		b.WriteString("📈 FAIR - Room to improve!\n\n")
	}
	b.WriteString("📋 Breakdown:\n")
	fmt.Fprintf(&b, "👣 Steps: %s/%s → %s/40 pts\n", humanize.Comma(int64(m.Steps)), humanize.Comma(domain.StepGoal), points(bd.Steps))
	fmt.Fprintf(&b, "💧 Water: %d/%d → %s pts\n", m.Water, domain.WaterGoalGlasses, points(bd.Water))
	fmt.Fprintf(&b, "🔥 Calories: %s kcal → %s/20 pts\n", humanize.Comma(int64(m.Calories)), points(bd.Calories))
	fmt.Fprintf(&b, "😊 Moods: %d → %s pts\n", len(m.Moods), points(bd.Moods))
	fmt.Fprintf(&b, "🏃 Activities: %d → %s pts", len(m.Activities), points(bd.Activities))
	return b.String()
}

func nutritionReply(t turn) string {
	if !t.Profile.HasBodyMetrics() {
		return "🍎 NUTRITION\n\n❌ Profile incomplete!\n\n→ Add your height & weight with: aura profile set\n→ Get a personalized diet plan"
	}

	bmi := t.Profile.BMI()
	var b strings.Builder
	fmt.Fprintf(&b, "🍎 NUTRITION PLAN\n\n📊 BMI: %.1f\n\n", domain.RoundBMI(bmi))
	switch domain.CategorizeBMI(bmi) {
	case domain.BMIUnderweight:
		b.WriteString("📉 Underweight\n\nEat more:\n• Protein-rich foods\n• Healthy fats\n• 5-6 small meals daily")
	case domain.BMINormal:
		b.WriteString("✅ Healthy Weight\n\nMaintain with:\n• Balanced diet\n• Vegetables & fruits\n• Regular meals")
	default:
		b.WriteString("📈 Overweight\n\nFocus on:\n• Calorie deficit\n• High protein, high fiber\n• Reduce sugar & processed foods")
	}

	switch {
	case t.cond.Hot():
		fmt.Fprintf(&b, "\n\n🌡️ It's %d°C: favor hydrating foods like cucumber, watermelon and coconut water.", t.cond.Temp())
	case t.cond.Cold():
		fmt.Fprintf(&b, "\n\n❄️ It's %d°C: warm soups, ginger tea and oats will keep you going.", t.cond.Temp())
	}
	if t.Metrics.Calories > 0 {
		fmt.Fprintf(&b, "\n\n🔥 Logged today: %s kcal", humanize.Comma(int64(t.Metrics.Calories)))
	}
	return b.String()
}

func motivationReply(t turn) string {
	name := displayName(t.Profile, "Friend")
	goal := "Better health"
	if t.Profile != nil && t.Profile.Goal != domain.GoalNone {
		goal = string(t.Profile.Goal)
	}
	m := t.Metrics
	quotes := []string{
		fmt.Sprintf("💪 YOU'VE GOT THIS!\n\n%s, you're at %d/100!\n\nEvery step counts - keep pushing! 🔥", name, t.score),
		fmt.Sprintf("🌟 YOUR FUTURE SELF WILL THANK YOU!\n\nGoal: %s\n\nYou're building something incredible! 💎", goal),
		fmt.Sprintf("⚡ DON'T QUIT!\n\nYou've logged:\n• %s steps\n• %d glasses water\n• %d activities\n\nThat's dedication! 🏆",
			humanize.Comma(int64(m.Steps)), m.Water, len(m.Activities)),
	}
	return wellness.Pick(t.rng, quotes)
}

func summaryReply(t turn) string {
	m := t.Metrics
	var b strings.Builder
	b.WriteString("📋 DAILY SUMMARY\n")
	if t.Profile != nil && t.Profile.Name != "" {
		fmt.Fprintf(&b, "for %s\n", t.Profile.Name)
	}
	mood := "Not logged"
	if latest, ok := m.LatestMood(); ok {
		mood = string(latest.Mood)
	}
	fmt.Fprintf(&b, "\n🎯 Score: %d/100\n\n📈 Today:\n", t.score)
	fmt.Fprintf(&b, "👣 Steps: %s/%s\n", humanize.Comma(int64(m.Steps)), humanize.Comma(domain.StepGoal))
	fmt.Fprintf(&b, "💧 Water: %d/%d\n", m.Water, domain.WaterGoalGlasses)
	fmt.Fprintf(&b, "🔥 Calories: %s kcal\n", humanize.Comma(int64(m.Calories)))
	fmt.Fprintf(&b, "😊 Mood: %s\n", mood)
	fmt.Fprintf(&b, "🏆 Badges: %d/%d", len(t.Badges.Ordered()), len(domain.BadgeCatalog))
	if t.cond.HasWeather() {
		fmt.Fprintf(&b, "\n\n🌤️ Weather: %d°C, %s", t.cond.Temp(), t.Weather.Condition)
	}
	return b.String()
}

func healthReply(t turn) string {
	report, ok := wellness.AnalyzeHealth(t.Profile)
	if !ok {
		return "🩺 HEALTH CHECK\n\n❌ Profile incomplete!\n\n→ Add your age, height & weight with: aura profile set\n→ Then ask me about your BMI and BMR"
	}

	var b strings.Builder
	b.WriteString("🩺 HEALTH CHECK\n\n")
	fmt.Fprintf(&b, "📊 BMI: %.1f (%s)\n", report.BMI, report.Category)
	fmt.Fprintf(&b, "⚖️ Risk level: %s\n", report.Risk)
	fmt.Fprintf(&b, "🔥 BMR: %s kcal/day\n", humanize.Comma(int64(report.BMR)))
	if advice, ok := wellness.HealthAdvice(t.Profile.HealthIssue, t.cond); ok {
		fmt.Fprintf(&b, "\n💊 Managing %s:\n%s\n", t.Profile.HealthIssue, advice)
	}
	if advice, ok := wellness.GoalAdvice(t.Profile.Goal, t.cond); ok {
		fmt.Fprintf(&b, "\n🎯 %s:\n%s\n", t.Profile.Goal, advice)
	}
	return strings.TrimRight(b.String(), "\n")
}

func sleepReply(t turn) string {
	var b strings.Builder
	b.WriteString("🌙 SLEEP GUIDANCE\n\n")
	switch t.cond.TimeOfDay {
	case domain.Night:
		b.WriteString("It's getting late. Start winding down now.\n\n")
	case domain.Evening:
		b.WriteString("Evening is the time to prepare for good sleep: dim the lights and skip caffeine.\n\n")
	default:
		b.WriteString("Good sleep starts in the daytime: get sunlight early and keep naps under 30 minutes.\n\n")
	}
	fmt.Fprintf(&b, "🛏️ Routine:\n%s", wellness.SleepHygieneText(t.cond))

	if latest, ok := t.Metrics.LatestMood(); ok {
		switch latest.Mood {
		case domain.MoodStressed, domain.MoodAnxious:
			fmt.Fprintf(&b, "\n\n🧘 You logged feeling %s. Try 5 minutes of slow breathing or journaling before bed.",
				strings.ToLower(string(latest.Mood)))
		case domain.MoodTired:
			b.WriteString("\n\n😴 You logged feeling tired. An earlier bedtime tonight will help more than caffeine tomorrow.")
		}
	}
	return b.String()
}

func weatherReply(t turn) string {
	if !t.cond.HasWeather() {
		return "🌤️ WEATHER\n\n❌ No recent weather data.\n\n→ Fetch it with: aura weather fetch <6-digit pincode>\n→ Then I can tailor exercise, hydration and food advice to the conditions."
	}

	w := t.Weather
	var b strings.Builder
	fmt.Fprintf(&b, "🌤️ WEATHER - %s\n\n", domain.CoalesceStr(w.Location, "Your area"))
	fmt.Fprintf(&b, "🌡️ %d°C (feels like %d°C)\n", w.TempC, w.FeelsLikeC)
	fmt.Fprintf(&b, "☁️ %s\n", domain.CoalesceStr(w.Description, w.Condition))
	fmt.Fprintf(&b, "💧 Humidity: %d%%\n", w.Humidity)
	fmt.Fprintf(&b, "🕒 Updated: %s\n\n", t.cond.UpdatedAt())

	if reason := wellness.IndoorReason(t.cond); reason != "" {
		fmt.Fprintf(&b, "🏠 Outdoor exercise: not advised (%s)\n", reason)
	} else {
		fmt.Fprintf(&b, "✅ Outdoor exercise: OK.%s\n", wellness.OutdoorTiming(t.cond))
	}
	amount, caveat := wellness.HydrationRange(t.cond)
	fmt.Fprintf(&b, "💧 Drink %s today.%s", amount, caveat)

	if alert, ok := wellness.WeatherAlert(t.cond); ok {
		fmt.Fprintf(&b, "\n\n%s %s: %s", alert.Icon, strings.ToUpper(alert.Title), alert.Text)
	}
	return b.String()
}

func helpReply(turn) string {
	return "🤖 HEALTH ASSISTANT GUIDE\n\n💬 Ask me about:\n\n" +
		"💪 Exercise & Activity\n💧 Hydration Status\n📊 Wellness Score\n🍎 Nutrition Advice\n" +
		"🧠 Mood Analysis\n📋 Daily Summary\n🩺 BMI & Health\n🌙 Sleep\n🌤️ Weather\n🔥 Motivation\n\n" +
		"🔒 100% PRIVATE:\nAll analysis happens locally. Your data never leaves your device.\n\n" +
		"Just ask naturally - I understand!"
}

var unknownReplies = []string{
	"🤔 I'm not quite sure what you're asking.\n\n💡 Try:\n\n• \"How's my wellness score?\"\n• \"Should I exercise now?\"\n• \"Am I drinking enough water?\"\n• \"What should I eat?\"\n• \"Give me a daily summary\"\n\nOr type \"help\" for all commands!",
	"🤷 I didn't catch that.\n\nI can talk about exercise, water, mood, food, sleep, weather and your wellness score.\n\nType \"help\" to see everything I know.",
	"😅 That one's outside what I can answer.\n\n💡 Ask something like \"How am I doing?\" or \"What's the weather like for a run?\"\n\nOr type \"help\" for all commands!",
}

func unknownReply(t turn) string {
	return wellness.Pick(t.rng, unknownReplies)
}

func displayName(p *domain.UserProfile, fallback string) string {
	if p == nil {
		return fallback
	}
	return domain.CoalesceStr(p.Name, fallback)
}

// points renders a contribution with at most one decimal.
func points(v float64) string {
	return humanize.FtoaWithDigits(v, 1)
}
