package app

import (
	"math"

	"github.com/alexanderramin/aura/internal/domain"
)

// QuizStatus is the host view of quiz progress.
type QuizStatus struct {
	Index      int    `json:"index"`
	Score      int    `json:"score"`
	Total      int    `json:"total"`
	Question   string `json:"question,omitempty"`
	Done       bool   `json:"done"`
	Percentage int    `json:"percentage"`
	Verdict    string `json:"verdict,omitempty"`
}

type QuizAnswerResponse struct {
	Correct   bool             `json:"correct"`
	Expected  bool             `json:"expected"`
	Status    QuizStatus       `json:"status"`
	NewBadges []domain.BadgeID `json:"new_badges"`
}

// NewQuizStatus describes q. Percentage and Verdict are set once the quiz
// is done.
func NewQuizStatus(q domain.QuizState) QuizStatus {
	s := QuizStatus{
		Index: q.Index,
		Score: q.Score,
		Total: len(domain.QuizBank),
		Done:  q.Done(),
	}
	if cur, ok := q.Current(); ok {
		s.Question = cur.Statement
	}
	if s.Done {
		s.Percentage = int(math.Round(float64(q.Score) / float64(s.Total) * 100))
		s.Verdict = QuizVerdict(s.Percentage)
	}
	return s
}

func QuizVerdict(percentage int) string {
	switch {
	case percentage >= 70:
		return "Excellent! You have great health knowledge!"
	case percentage >= 50:
		return "Good job! Keep learning about health and wellness!"
	default:
		return "Keep exploring health topics to improve your knowledge!"
	}
}
