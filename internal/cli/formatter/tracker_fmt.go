package formatter

import (
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/aura/internal/contract"
	"github.com/alexanderramin/aura/internal/domain"
)

func FormatActivityLogged(resp *contract.LogActivityResponse) string {
	var b strings.Builder
	e := resp.Entry
	fmt.Fprintf(&b, "%s Logged %s %s: +%s steps\n",
		StyleGreen.Render("✔"), FormatMinutes(e.Minutes), e.Type, Count(e.StepsAwarded))
	fmt.Fprintf(&b, "  Total steps: %s · Score: %s/100\n",
		Count(resp.TotalSteps), ScoreStyle(resp.Score).Render(fmt.Sprintf("%d", resp.Score)))
	b.WriteString(FormatNewBadges(resp.NewBadges))
	return b.String()
}

func FormatWater(resp *contract.WaterResponse) string {
	var b strings.Builder
	fmt.Fprintf(&b, "💧 Water: %d/%d glasses", resp.Water, domain.WaterGoalGlasses)
	if resp.GoalReached {
		b.WriteString(" " + StyleGreen.Render("Daily goal reached!"))
	}
	fmt.Fprintf(&b, "\n  Score: %s/100\n", ScoreStyle(resp.Score).Render(fmt.Sprintf("%d", resp.Score)))
	b.WriteString(FormatNewBadges(resp.NewBadges))
	return b.String()
}

func FormatCalories(resp *contract.CaloriesResponse) string {
	var b strings.Builder
	fmt.Fprintf(&b, "🍽️ Calories today: %s kcal\n", Count(resp.Calories))
	fmt.Fprintf(&b, "  Score: %s/100\n", ScoreStyle(resp.Score).Render(fmt.Sprintf("%d", resp.Score)))
	b.WriteString(FormatNewBadges(resp.NewBadges))
	return b.String()
}

func FormatMoodLogged(resp *contract.LogMoodResponse) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s Mood logged: %s\n", StyleGreen.Render("✔"), Bold(string(resp.Entry.Mood)))
	fmt.Fprintf(&b, "  %s\n", resp.Insight)
	b.WriteString(FormatNewBadges(resp.NewBadges))
	return b.String()
}

// FormatRecentLogs renders the newest activity and mood entries as two tables.
func FormatRecentLogs(logs *contract.RecentLogs, now time.Time) string {
	var b strings.Builder

	b.WriteString(Header("Recent Activities"))
	b.WriteString("\n")
	if len(logs.Activities) == 0 {
		b.WriteString(Dim("No activities logged yet.") + "\n")
	} else {
		rows := make([][]string, 0, len(logs.Activities))
		for _, a := range logs.Activities {
			rows = append(rows, []string{
				string(a.Type), FormatMinutes(a.Minutes), Count(a.StepsAwarded), HumanTimestampFrom(a.LoggedAt, now),
			})
		}
		b.WriteString(RenderTable([]string{"TYPE", "TIME", "STEPS", "WHEN"}, rows))
	}

	b.WriteString("\n")
	b.WriteString(Header("Recent Moods"))
	b.WriteString("\n")
	if len(logs.Moods) == 0 {
		b.WriteString(Dim("No moods logged yet.") + "\n")
	} else {
		rows := make([][]string, 0, len(logs.Moods))
		for _, m := range logs.Moods {
			rows = append(rows, []string{string(m.Mood), HumanTimestampFrom(m.LoggedAt, now)})
		}
		b.WriteString(RenderTable([]string{"MOOD", "WHEN"}, rows))
	}
	return b.String()
}
