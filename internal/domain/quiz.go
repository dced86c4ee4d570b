package domain

type QuizQuestion struct {
	Statement string
	Answer    bool
}

// QuizBank is the fixed true/false question bank.
var QuizBank = []QuizQuestion{
	{"Regular exercise improves cardiovascular health", true},
	{"Skipping meals boosts metabolism", false},
	{"Drinking water aids digestion", true},
	{"Chronic stress has no physical effects", false},
	{"Walking daily improves mental clarity", true},
	{"Yoga increases stress and anxiety", false},
	{"Meditation can improve focus and concentration", true},
	{"Fast food strengthens the immune system", false},
	{"A balanced diet increases energy levels", true},
	{"Working without breaks prevents burnout", false},
	{"Quality sleep improves memory retention", true},
	{"High caffeine intake reduces long-term anxiety", false},
	{"Proper hydration improves skin health", true},
	{"Mental health directly affects physical health", true},
	{"Suppressing emotions is always healthy", false},
	{"Rest days are essential for muscle recovery", true},
	{"Anxiety is always a sign of personal weakness", false},
	{"Deep breathing exercises can calm the nervous system", true},
	{"A sedentary lifestyle has no health risks", false},
	{"Consistency is key to achieving fitness goals", true},
}

// QuizState tracks progress through QuizBank.
type QuizState struct {
	Index int `json:"index"`
	Score int `json:"score"`
}

// Done reports whether every question has been answered.
func (q QuizState) Done() bool {
	return q.Index >= len(QuizBank)
}

// Current returns the question at the current index.
func (q QuizState) Current() (QuizQuestion, bool) {
	if q.Done() || q.Index < 0 {
		return QuizQuestion{}, false
	}
	return QuizBank[q.Index], true
}

// Answer scores the current question and advances. It reports whether the
// answer was correct; answering a finished quiz changes nothing.
func (q *QuizState) Answer(answer bool) bool {
	cur, ok := q.Current()
	if !ok {
		return false
	}
	correct := cur.Answer == answer
	if correct {
		q.Score++
	}
	q.Index++
	return correct
}
