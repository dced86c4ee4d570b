package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/aura/internal/wellness"
)

func FormatHealthReport(r *wellness.HealthReport) string {
	var b strings.Builder
	b.WriteString(Header("Health Analysis"))
	b.WriteString("\n")
	kv(&b, "BMI", fmt.Sprintf("%.1f", r.BMI))
	kv(&b, "Category", string(r.Category))
	kv(&b, "Risk", RiskIndicator(r.Risk))
	kv(&b, "BMR", Count(r.BMR)+" kcal/day")
	kv(&b, "Calories", Count(r.RecommendedCalories)+" kcal/day recommended")
	return b.String()
}

func FormatCycleReport(r *wellness.CycleReport) string {
	const day = "Mon, Jan 2"
	var b strings.Builder
	b.WriteString(Header("Cycle"))
	b.WriteString("\n")
	kv(&b, "Cycle day", fmt.Sprintf("%d of %d", r.CurrentDay, r.Length))
	kv(&b, "Phase", StylePurple.Render(string(r.Phase)))
	kv(&b, "Next period", r.NextPeriod.Format(day))
	kv(&b, "Ovulation", r.Ovulation.Format(day))
	kv(&b, "Fertile", r.FertileStart.Format(day)+" - "+r.FertileEnd.Format(day))
	fmt.Fprintf(&b, "\n%s\n", r.PhaseAdvice)
	return b.String()
}
