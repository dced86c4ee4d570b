package dialogue

import (
	"regexp"
	"strings"
)

// Intent is the coarse category of a chat message.
type Intent string

const (
	IntentGreeting   Intent = "greeting"
	IntentExercise   Intent = "exercise"
	IntentHydration  Intent = "hydration"
	IntentMood       Intent = "mood"
	IntentScore      Intent = "score"
	IntentNutrition  Intent = "nutrition"
	IntentMotivation Intent = "motivation"
	IntentSummary    Intent = "summary"
	IntentHealth     Intent = "health"
	IntentSleep      Intent = "sleep"
	IntentWeather    Intent = "weather"
	IntentHelp       Intent = "help"
	IntentUnknown    Intent = "unknown"
)

type intentRule struct {
	intent  Intent
	pattern *regexp.Regexp
}

// intentRules are evaluated in order; the first match wins. Reordering
// changes how ambiguous messages resolve.
var intentRules = []intentRule{
	{IntentGreeting, regexp.MustCompile(`^(hi|hello|hey|sup|yo|hola|namaste)\b`)},
	{IntentExercise, regexp.MustCompile(`(exercise|workout|train|activity|should i (walk|run|gym))`)},
	{IntentHydration, regexp.MustCompile(`(water|hydrat|drink|thirsty)`)},
	{IntentMood, regexp.MustCompile(`(mood|feel|emotion|mental|stress|anxious|happy|sad)`)},
	{IntentScore, regexp.MustCompile(`(score|progress|doing|performance|how am i)`)},
	{IntentNutrition, regexp.MustCompile(`(\beat(s|ing|en)?\b|food|diet|nutrition|meal|calor|hungry)`)},
	{IntentMotivation, regexp.MustCompile(`(motivat|inspire|lazy|give up|tired|can't|discourage)`)},
	{IntentSummary, regexp.MustCompile(`(summar|report|today|overview|status)`)},
	{IntentHealth, regexp.MustCompile(`(bmi|bmr|health|weight|blood pressure|diabetes|thyroid|asthma|pcos)`)},
	{IntentSleep, regexp.MustCompile(`(sleep|insomnia|bedtime|bed time|nap)`)},
	{IntentWeather, regexp.MustCompile(`(weather|temperature|forecast|rain|outside|humid|heat)`)},
	{IntentHelp, regexp.MustCompile(`(help|what can|commands|guide|how to use)`)},
}

// Intents lists every intent in rule order, followed by IntentUnknown.
func Intents() []Intent {
	out := make([]Intent, 0, len(intentRules)+1)
	for _, r := range intentRules {
		out = append(out, r.intent)
	}
	return append(out, IntentUnknown)
}

// ClassifyIntent returns the first rule matching the lowercased, trimmed text.
func ClassifyIntent(text string) Intent {
	msg := strings.ToLower(strings.TrimSpace(text))
	if msg == "" {
		return IntentUnknown
	}
	for _, r := range intentRules {
		if r.pattern.MatchString(msg) {
			return r.intent
		}
	}
	return IntentUnknown
}

// ParseIntent accepts an intent name, for hosts that let the caller force one.
func ParseIntent(s string) (Intent, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	for _, in := range Intents() {
		if string(in) == s {
			return in, true
		}
	}
	return "", false
}
