package dialogue

import (
	"time"

	"github.com/alexanderramin/aura/internal/domain"
	"github.com/alexanderramin/aura/internal/wellness"
)

// Input is the state snapshot a reply is built from. Builders only read it.
type Input struct {
	Profile *domain.UserProfile
	Metrics *domain.Metrics
	Badges  domain.BadgeSet
	Weather *domain.WeatherSnapshot
	Now     time.Time
}

// Reply is a classified message and the text built for it.
type Reply struct {
	Intent Intent `json:"intent"`
	Text   string `json:"text"`
}

// turn carries the derived values every builder shares.
type turn struct {
	Input
	cond  wellness.Conditions
	score int
	rng   wellness.RandomSource
}

type builder func(t turn) string

var builders = map[Intent]builder{
	IntentGreeting:   greetingReply,
	IntentExercise:   exerciseReply,
	IntentHydration:  hydrationReply,
	IntentMood:       moodReply,
	IntentScore:      scoreReply,
	IntentNutrition:  nutritionReply,
	IntentMotivation: motivationReply,
	IntentSummary:    summaryReply,
	IntentHealth:     healthReply,
	IntentSleep:      sleepReply,
	IntentWeather:    weatherReply,
	IntentHelp:       helpReply,
	IntentUnknown:    unknownReply,
}

// BuildResponse renders the reply for intent. Unrecognized intents get the
// unknown reply. r is only consulted by the motivation and unknown builders.
func BuildResponse(intent Intent, in Input, r wellness.RandomSource) string {
	if in.Metrics == nil {
		in.Metrics = &domain.Metrics{}
	}
	if in.Badges == nil {
		in.Badges = domain.NewBadgeSet()
	}
	if r == nil {
		r = wellness.NewRandomSource(0)
	}
	b, ok := builders[intent]
	if !ok {
		b = unknownReply
	}
	return b(turn{
		Input: in,
		cond:  wellness.ReadConditions(in.Weather, in.Now),
		score: wellness.CalculateScore(in.Metrics),
		rng:   r,
	})
}

// Respond classifies text and builds the matching reply.
func Respond(text string, in Input, r wellness.RandomSource) Reply {
	intent := ClassifyIntent(text)
	return Reply{Intent: intent, Text: BuildResponse(intent, in, r)}
}
