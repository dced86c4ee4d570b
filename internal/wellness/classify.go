package wellness

import (
	"strings"
	"time"

	"github.com/alexanderramin/aura/internal/domain"
)

// Outdoor safety limits in °C.
const (
	MinOutdoorTempC = 5
	MaxOutdoorTempC = 40
)

var weatherKeywords = []struct {
	category domain.WeatherCategory
	words    []string
}{
	{domain.WeatherRain, []string{"rain", "drizzle", "shower"}},
	{domain.WeatherExtreme, []string{"thunder", "storm"}},
	{domain.WeatherExtreme, []string{"snow", "sleet", "hail"}},
	{domain.WeatherClouds, []string{"cloud", "overcast", "mist", "fog"}},
	{domain.WeatherClear, []string{"clear", "sun"}},
}

// ClassifyWeatherCondition maps a provider condition string to a category.
// The first matching keyword group wins.
func ClassifyWeatherCondition(condition string) domain.WeatherCategory {
	cond := strings.ToLower(condition)
	if cond == "" {
		return domain.WeatherUnknown
	}
	for _, group := range weatherKeywords {
		for _, w := range group.words {
			if strings.Contains(cond, w) {
				return group.category
			}
		}
	}
	return domain.WeatherUnknown
}

// ClassifyTemperature buckets a temperature with exclusive upper bounds.
func ClassifyTemperature(celsius float64) domain.TemperatureCategory {
	switch {
	case celsius < 10:
		return domain.TempCold
	case celsius < 18:
		return domain.TempCool
	case celsius < 25:
		return domain.TempModerate
	case celsius < 32:
		return domain.TempWarm
	case celsius < 40:
		return domain.TempHot
	default:
		return domain.TempExtreme
	}
}

// IsSafeForOutdoor reports whether outdoor exercise is advisable.
func IsSafeForOutdoor(category domain.WeatherCategory, celsius float64) bool {
	if category == domain.WeatherExtreme {
		return false
	}
	if celsius < MinOutdoorTempC || celsius > MaxOutdoorTempC {
		return false
	}
	return category != domain.WeatherRain
}

// TimeOfDayAt buckets an hour in 0..23.
func TimeOfDayAt(hour int) domain.TimeOfDay {
	switch {
	case hour < 12:
		return domain.Morning
	case hour < 17:
		return domain.Afternoon
	case hour < 21:
		return domain.Evening
	default:
		return domain.Night
	}
}

// SeasonOf uses the Indian calendar convention: March-June summer,
// July-September monsoon, winter otherwise.
func SeasonOf(month time.Month) domain.Season {
	switch {
	case month >= time.March && month <= time.June:
		return domain.SeasonSummer
	case month >= time.July && month <= time.September:
		return domain.SeasonMonsoon
	default:
		return domain.SeasonWinter
	}
}

// Conditions is the classified environment for one engine call.
type Conditions struct {
	Now          time.Time
	Weather      *domain.WeatherSnapshot // nil when absent or stale
	Category     domain.WeatherCategory
	TempCategory domain.TemperatureCategory
	TimeOfDay    domain.TimeOfDay
	Season       domain.Season
}

// ReadConditions classifies the clock and, when still valid at now, the snapshot.
func ReadConditions(weather *domain.WeatherSnapshot, now time.Time) Conditions {
	c := Conditions{
		Now:       now,
		Weather:   weather.Valid(now),
		Category:  domain.WeatherUnknown,
		TimeOfDay: TimeOfDayAt(now.Hour()),
		Season:    SeasonOf(now.Month()),
	}
	if c.Weather != nil {
		c.Category = ClassifyWeatherCondition(c.Weather.Condition)
		c.TempCategory = ClassifyTemperature(float64(c.Weather.TempC))
	}
	return c
}

func (c Conditions) HasWeather() bool {
	return c.Weather != nil
}

// UpdatedAt formats the snapshot fetch time as HH:MM in the clock's zone.
func (c Conditions) UpdatedAt() string {
	if c.Weather == nil {
		return ""
	}
	return c.Weather.FetchedAt.In(c.Now.Location()).Format("15:04")
}

// Temp returns the snapshot temperature; zero without weather.
func (c Conditions) Temp() int {
	if c.Weather == nil {
		return 0
	}
	return c.Weather.TempC
}

// SafeOutdoor is only meaningful when HasWeather is true.
func (c Conditions) SafeOutdoor() bool {
	return c.HasWeather() && IsSafeForOutdoor(c.Category, float64(c.Temp()))
}

// Hot reports hot or extreme temperatures.
func (c Conditions) Hot() bool {
	return c.HasWeather() && (c.TempCategory == domain.TempHot || c.TempCategory == domain.TempExtreme)
}

func (c Conditions) Cold() bool {
	return c.HasWeather() && c.TempCategory == domain.TempCold
}

func (c Conditions) Humid() bool {
	return c.HasWeather() && c.Weather.Humidity > 70
}
