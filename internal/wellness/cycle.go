package wellness

import (
	"errors"
	"time"
)

// Cycle length bounds in days.
const (
	DefaultCycleLength = 28
	MinCycleLength     = 21
	MaxCycleLength     = 45
)

var (
	ErrCycleStartMissing = errors.New("period start date is required")
	ErrCycleStartFuture  = errors.New("period start date is in the future")
)

type CyclePhase string

const (
	PhaseMenstrual  CyclePhase = "Menstrual Phase"
	PhaseFollicular CyclePhase = "Follicular Phase"
	PhaseOvulation  CyclePhase = "Ovulation Phase"
	PhaseLuteal     CyclePhase = "Luteal Phase"
)

// CycleReport is the projected cycle for a start date.
type CycleReport struct {
	Start        time.Time  `json:"start"`
	Length       int        `json:"length"`
	NextPeriod   time.Time  `json:"next_period"`
	Ovulation    time.Time  `json:"ovulation"`
	FertileStart time.Time  `json:"fertile_start"`
	FertileEnd   time.Time  `json:"fertile_end"`
	CurrentDay   int        `json:"current_day"`
	Phase        CyclePhase `json:"phase"`
	PhaseAdvice  string     `json:"phase_advice"`
}

// NormalizeCycleLength falls back to the default outside the accepted range.
func NormalizeCycleLength(length int) int {
	if length < MinCycleLength || length > MaxCycleLength {
		return DefaultCycleLength
	}
	return length
}

// PhaseFor maps a 1-based cycle day to its phase and advice.
func PhaseFor(day int) (CyclePhase, string) {
	switch {
	case day <= 5:
		return PhaseMenstrual, "Rest, gentle movement, iron-rich foods, stay hydrated"
	case day <= 14:
		return PhaseFollicular, "High energy period - great for intense workouts and new challenges"
	case day <= 18:
		return PhaseOvulation, "Peak energy and mood - social activities and communication excel"
	default:
		return PhaseLuteal, "Energy may decrease - focus on self-care, reduce caffeine, increase magnesium"
	}
}

// AnalyzeCycle projects the next period, ovulation and fertile window from
// the last period start. Dates are calendar days in start's location.
func AnalyzeCycle(start time.Time, length int, now time.Time) (CycleReport, error) {
	if start.IsZero() {
		return CycleReport{}, ErrCycleStartMissing
	}
	start = truncateDay(start)
	today := truncateDay(now.In(start.Location()))
	if start.After(today) {
		return CycleReport{}, ErrCycleStartFuture
	}
	length = NormalizeCycleLength(length)

	ovulation := start.AddDate(0, 0, length-14)
	elapsed := daysBetween(start, today)
	day := elapsed%length + 1
	phase, advice := PhaseFor(day)

	return CycleReport{
		Start:        start,
		Length:       length,
		NextPeriod:   start.AddDate(0, 0, length),
		Ovulation:    ovulation,
		FertileStart: ovulation.AddDate(0, 0, -3),
		FertileEnd:   ovulation.AddDate(0, 0, 2),
		CurrentDay:   day,
		Phase:        phase,
		PhaseAdvice:  advice,
	}, nil
}

func truncateDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// daysBetween counts calendar days, immune to DST shifts.
func daysBetween(from, to time.Time) int {
	a := time.Date(from.Year(), from.Month(), from.Day(), 0, 0, 0, 0, time.UTC)
	b := time.Date(to.Year(), to.Month(), to.Day(), 0, 0, 0, 0, time.UTC)
	return int(b.Sub(a).Hours() / 24)
}
