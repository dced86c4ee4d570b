package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/aura/internal/contract"
	"github.com/alexanderramin/aura/internal/domain"
	"github.com/alexanderramin/aura/internal/wellness"
)

const barWidth = 20

func FormatRecommendations(resp *contract.GuidanceResponse) string {
	var b strings.Builder
	b.WriteString(Header("Recommendations"))
	b.WriteString("\n")
	for _, r := range resp.Recommendations {
		fmt.Fprintf(&b, "%s %s\n", r.Icon, Bold(r.Title))
		fmt.Fprintf(&b, "   %s\n\n", r.Text)
	}
	fmt.Fprintf(&b, "Wellness score: %s/100\n", ScoreStyle(resp.Score).Render(fmt.Sprintf("%d", resp.Score)))
	return b.String()
}

// FormatScore renders the score with each input's progress.
func FormatScore(dash *contract.DashboardResponse) string {
	m := dash.Metrics
	var b strings.Builder
	b.WriteString(Header("Wellness Score"))
	b.WriteString("\n")
	fmt.Fprintf(&b, "%s %s/100\n\n", Dim(fmt.Sprintf("%-*s", labelWidth, "Score")),
		ScoreStyle(dash.Score).Render(fmt.Sprintf("%d", dash.Score)))
	fmt.Fprintf(&b, "%s %s %s/%s\n", Dim(fmt.Sprintf("%-*s", labelWidth, "Steps")),
		RenderProgress(dash.StepProgress, barWidth), Count(m.Steps), Count(domain.StepGoal))
	fmt.Fprintf(&b, "%s %s %d/%d\n", Dim(fmt.Sprintf("%-*s", labelWidth, "Water")),
		RenderProgress(dash.WaterProgress, barWidth), m.Water, domain.WaterGoalGlasses)
	kv(&b, "Calories", Count(m.Calories)+" kcal")
	kv(&b, "Moods", fmt.Sprintf("%d logged", len(m.Moods)))
	kv(&b, "Activities", fmt.Sprintf("%d logged", len(m.Activities)))
	return b.String()
}

// FormatBadges lists the whole catalog, marking the earned badges.
func FormatBadges(earned []domain.Badge) string {
	have := make(map[domain.BadgeID]bool, len(earned))
	for _, e := range earned {
		have[e.ID] = true
	}

	var b strings.Builder
	b.WriteString(Header("Badges"))
	b.WriteString("\n")
	for _, badge := range domain.BadgeCatalog {
		if have[badge.ID] {
			fmt.Fprintf(&b, "%s %s %s\n", StyleGreen.Render("✔"), badge.Icon, Bold(badge.Name))
			continue
		}
		fmt.Fprintf(&b, "%s %s %s %s\n", Dim("○"), badge.Icon, badge.Name, Dim("("+badge.Rule+")"))
	}
	fmt.Fprintf(&b, "\n%d/%d earned\n", len(earned), len(domain.BadgeCatalog))
	return b.String()
}

func FormatTips(tips []wellness.Tip) string {
	var b strings.Builder
	b.WriteString(Header("Health Tips"))
	b.WriteString("\n")
	for _, t := range tips {
		fmt.Fprintf(&b, "%s %s: %s\n", t.Icon, Bold(t.Topic), t.Text)
	}
	return b.String()
}

// FormatDashboard renders the full summary inside a box.
func FormatDashboard(dash *contract.DashboardResponse) string {
	var b strings.Builder
	if dash.Profile != nil {
		fmt.Fprintf(&b, "%s, %d · BMI %.1f (%s)\n\n", Bold(dash.Profile.Name), dash.Profile.Age,
			domain.RoundBMI(dash.Profile.BMI()), dash.Profile.BMICategory())
	} else {
		b.WriteString(Dim("No profile yet. Run `aura profile set` to personalize guidance.") + "\n\n")
	}

	b.WriteString(FormatScore(dash))
	b.WriteString("\n")

	names := make([]string, 0, len(dash.Badges))
	for _, badge := range dash.Badges {
		names = append(names, badge.Icon+" "+badge.Name)
	}
	if len(names) == 0 {
		kv(&b, "Badges", Dim("none yet"))
	} else {
		kv(&b, "Badges", strings.Join(names, ", "))
	}

	if dash.Weather != nil {
		w := dash.Weather
		kv(&b, "Weather", fmt.Sprintf("%s %d°C, %s", domain.CoalesceStr(w.Location, "Your area"), w.TempC, w.Condition))
	} else {
		kv(&b, "Weather", Dim("no current data"))
	}
	b.WriteString("\n" + dash.MoodInsight)

	return RenderBox("Aura Dashboard", b.String())
}
