package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/aura/internal/contract"
)

func FormatQuizStatus(s *contract.QuizStatus) string {
	var b strings.Builder
	if s.Done {
		b.WriteString(Header("Quiz Complete"))
		b.WriteString("\n")
		fmt.Fprintf(&b, "Score: %s (%d%%)\n", Bold(fmt.Sprintf("%d/%d", s.Score, s.Total)), s.Percentage)
		fmt.Fprintf(&b, "%s\n", s.Verdict)
		return b.String()
	}
	b.WriteString(Dim(fmt.Sprintf("Question %d/%d · score %d", s.Index+1, s.Total, s.Score)) + "\n")
	fmt.Fprintf(&b, "%s\n", Bold(s.Question))
	b.WriteString(Dim("Answer with `aura quiz answer true|false`") + "\n")
	return b.String()
}

func FormatQuizAnswer(resp *contract.QuizAnswerResponse) string {
	var b strings.Builder
	if resp.Correct {
		b.WriteString(StyleGreen.Render("✔ Correct!") + "\n")
	} else {
		fmt.Fprintf(&b, "%s The answer is %t.\n", StyleRed.Render("✖ Not quite."), resp.Expected)
	}
	b.WriteString(FormatNewBadges(resp.NewBadges))
	b.WriteString("\n")
	b.WriteString(FormatQuizStatus(&resp.Status))
	return b.String()
}
