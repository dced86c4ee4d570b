package dialogue

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassifyIntent(t *testing.T) {
	tests := []struct {
		msg  string
		want Intent
	}{
		{"hi", IntentGreeting},
		{"  Hello there  ", IntentGreeting},
		{"namaste!", IntentGreeting},
		{"Should I exercise?", IntentExercise},
		{"should i run now", IntentExercise},
		{"Am I hydrated?", IntentHydration},
		{"I'm feeling really anxious today", IntentMood},
		{"How's my wellness score?", IntentScore},
		{"How am I doing", IntentScore},
		{"What should I eat?", IntentNutrition},
		{"I feel lazy", IntentMood}, // feel is matched before lazy
		{"so lazy", IntentMotivation},
		{"Summarize my health", IntentSummary},
		{"give me a daily summary", IntentSummary},
		{"what is my bmi", IntentHealth},
		{"I have insomnia", IntentSleep},
		{"is it going to rain", IntentWeather},
		{"what's the weather like", IntentWeather},
		{"How's the weather for a run?", IntentWeather},
		{"is the heat bad", IntentWeather},
		{"what are you eating", IntentNutrition},
		{"a great day", IntentUnknown},
		{"help", IntentHelp},
		{"what can you do", IntentHelp},
		{"purple elephants", IntentUnknown},
		{"", IntentUnknown},
		{"   ", IntentUnknown},
	}
	for _, tt := range tests {
		t.Run(tt.msg, func(t *testing.T) {
			assert.Equal(t, tt.want, ClassifyIntent(tt.msg))
		})
	}
}

func TestClassifyIntent_FirstRuleWins(t *testing.T) {
	// exercise precedes motivation
	assert.Equal(t, IntentExercise, ClassifyIntent("too tired to exercise"))
	// hydration precedes nutrition
	assert.Equal(t, IntentHydration, ClassifyIntent("what should I drink with my meal"))
	// greeting is anchored to the start
	assert.Equal(t, IntentHydration, ClassifyIntent("say hi to water"))
	// "yo" must be a whole word at the start
	assert.Equal(t, IntentUnknown, ClassifyIntent("yogurt"))
}

func TestIntents_OrderAndParse(t *testing.T) {
	all := Intents()
	assert.Equal(t, IntentGreeting, all[0])
	assert.Equal(t, IntentHelp, all[len(all)-2])
	assert.Equal(t, IntentUnknown, all[len(all)-1])

	for _, in := range all {
		got, ok := ParseIntent(string(in))
		assert.True(t, ok)
		assert.Equal(t, in, got)
	}
	_, ok := ParseIntent("dance")
	assert.False(t, ok)
}
