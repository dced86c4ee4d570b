package cli

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/aura/internal/domain"
	"github.com/spf13/pflag"
)

// enumValue is a pflag.Value restricted to a fixed label set. Parsing is
// case-insensitive and ignores spaces, dashes and underscores.
type enumValue[T ~string] struct {
	value   *T
	options []T
	parse   func(string) (T, bool)
	kind    string
}

var _ pflag.Value = (*enumValue[domain.MoodLabel])(nil)

func newEnumValue[T ~string](p *T, options []T, parse func(string) (T, bool), kind string) *enumValue[T] {
	return &enumValue[T]{value: p, options: options, parse: parse, kind: kind}
}

func (e *enumValue[T]) String() string {
	if e.value == nil {
		return ""
	}
	return string(*e.value)
}

func (e *enumValue[T]) Set(s string) error {
	v, ok := e.parse(s)
	if !ok {
		return fmt.Errorf("must be one of: %s", e.choices())
	}
	*e.value = v
	return nil
}

func (e *enumValue[T]) Type() string { return e.kind }

func (e *enumValue[T]) choices() string {
	labels := make([]string, len(e.options))
	for i, o := range e.options {
		labels[i] = string(o)
	}
	return strings.Join(labels, ", ")
}

func activityTypeFlag(p *domain.ActivityType) *enumValue[domain.ActivityType] {
	return newEnumValue(p, domain.ActivityTypes, domain.ParseActivityType, "activity")
}

func moodFlag(p *domain.MoodLabel) *enumValue[domain.MoodLabel] {
	return newEnumValue(p, domain.MoodLabels, domain.ParseMoodLabel, "mood")
}

func genderFlag(p *domain.Gender) *enumValue[domain.Gender] {
	return newEnumValue(p, []domain.Gender{domain.GenderMale, domain.GenderFemale, domain.GenderOther},
		domain.ParseGender, "gender")
}

func healthIssueFlag(p *domain.HealthIssue) *enumValue[domain.HealthIssue] {
	return newEnumValue(p, domain.HealthIssues, domain.ParseHealthIssue, "issue")
}

func goalFlag(p *domain.Goal) *enumValue[domain.Goal] {
	return newEnumValue(p, domain.Goals, domain.ParseGoal, "goal")
}
