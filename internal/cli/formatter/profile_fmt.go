package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/aura/internal/domain"
)

const labelWidth = 12

// kv renders one "label  value" line with the label dimmed and padded.
func kv(b *strings.Builder, label, value string) {
	fmt.Fprintf(b, "%s %s\n", Dim(fmt.Sprintf("%-*s", labelWidth, label)), value)
}

// FormatProfile renders the saved profile with its BMI.
func FormatProfile(p *domain.UserProfile) string {
	var b strings.Builder
	b.WriteString(Header("Profile"))
	b.WriteString("\n")
	kv(&b, "Name", Bold(p.Name))
	kv(&b, "Age", fmt.Sprintf("%d", p.Age))
	kv(&b, "Gender", string(p.Gender))
	kv(&b, "Height", fmt.Sprintf("%d cm", p.HeightCm))
	kv(&b, "Weight", fmt.Sprintf("%d kg", p.WeightKg))
	if p.HasBodyMetrics() {
		kv(&b, "BMI", fmt.Sprintf("%.1f (%s)", domain.RoundBMI(p.BMI()), p.BMICategory()))
	}
	kv(&b, "Blood group", domain.CoalesceStr(p.BloodGroup, "-"))
	kv(&b, "Health", string(p.HealthIssue))
	kv(&b, "Goal", domain.CoalesceStr(string(p.Goal), "-"))
	return b.String()
}
