package wellness

import (
	"testing"
	"time"

	"github.com/alexanderramin/aura/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestClassifyWeatherCondition(t *testing.T) {
	tests := []struct {
		condition string
		want      domain.WeatherCategory
	}{
		{"Heavy Thunderstorm", domain.WeatherExtreme},
		{"Rain", domain.WeatherRain},
		{"light drizzle", domain.WeatherRain},
		{"Thunderstorm with rain", domain.WeatherRain}, // rain group is checked first
		{"Snow", domain.WeatherExtreme},
		{"Hail", domain.WeatherExtreme},
		{"Overcast clouds", domain.WeatherClouds},
		{"Mist", domain.WeatherClouds},
		{"Clear", domain.WeatherClear},
		{"Sunny", domain.WeatherClear},
		{"Haze", domain.WeatherUnknown},
		{"", domain.WeatherUnknown},
	}
	for _, tt := range tests {
		t.Run(tt.condition, func(t *testing.T) {
			assert.Equal(t, tt.want, ClassifyWeatherCondition(tt.condition))
		})
	}
}

func TestClassifyTemperature_Boundaries(t *testing.T) {
	tests := []struct {
		temp float64
		want domain.TemperatureCategory
	}{
		{-5, domain.TempCold},
		{9.9, domain.TempCold},
		{10, domain.TempCool},
		{17, domain.TempCool},
		{18, domain.TempModerate},
		{24, domain.TempModerate},
		{25, domain.TempWarm},
		{31, domain.TempWarm},
		{32, domain.TempHot},
		{39, domain.TempHot},
		{40, domain.TempExtreme},
		{41, domain.TempExtreme},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ClassifyTemperature(tt.temp), "temp %v", tt.temp)
	}
}

func TestIsSafeForOutdoor(t *testing.T) {
	assert.False(t, IsSafeForOutdoor(domain.WeatherRain, 22))
	assert.False(t, IsSafeForOutdoor(domain.WeatherClear, 4))
	assert.True(t, IsSafeForOutdoor(domain.WeatherClear, 22))
	assert.False(t, IsSafeForOutdoor(domain.WeatherExtreme, 22))
	assert.False(t, IsSafeForOutdoor(domain.WeatherClear, 41))
	assert.True(t, IsSafeForOutdoor(domain.WeatherClear, 40))
	assert.True(t, IsSafeForOutdoor(domain.WeatherClouds, 5))
	assert.True(t, IsSafeForOutdoor(domain.WeatherUnknown, 20))
}

func TestTimeOfDayAt(t *testing.T) {
	assert.Equal(t, domain.Morning, TimeOfDayAt(0))
	assert.Equal(t, domain.Morning, TimeOfDayAt(11))
	assert.Equal(t, domain.Afternoon, TimeOfDayAt(12))
	assert.Equal(t, domain.Afternoon, TimeOfDayAt(16))
	assert.Equal(t, domain.Evening, TimeOfDayAt(17))
	assert.Equal(t, domain.Evening, TimeOfDayAt(20))
	assert.Equal(t, domain.Night, TimeOfDayAt(21))
	assert.Equal(t, domain.Night, TimeOfDayAt(23))
}

func TestSeasonOf(t *testing.T) {
	want := map[time.Month]domain.Season{
		time.January: domain.SeasonWinter, time.February: domain.SeasonWinter,
		time.March: domain.SeasonSummer, time.June: domain.SeasonSummer,
		time.July: domain.SeasonMonsoon, time.September: domain.SeasonMonsoon,
		time.October: domain.SeasonWinter, time.December: domain.SeasonWinter,
	}
	for month, season := range want {
		assert.Equal(t, season, SeasonOf(month), month.String())
	}
}

func TestReadConditions_StaleWeatherIsAbsent(t *testing.T) {
	now := time.Date(2025, time.May, 10, 9, 0, 0, 0, time.UTC)
	stale := &domain.WeatherSnapshot{TempC: 42, Condition: "Clear", FetchedAt: now.Add(-61 * time.Minute)}

	c := ReadConditions(stale, now)
	assert.False(t, c.HasWeather())
	assert.Equal(t, domain.WeatherUnknown, c.Category)
	assert.False(t, c.Hot())
	assert.False(t, c.SafeOutdoor())
	assert.Equal(t, domain.SeasonSummer, c.Season)
	assert.Equal(t, domain.Morning, c.TimeOfDay)

	fresh := *stale
	fresh.FetchedAt = now.Add(-59 * time.Minute)
	c = ReadConditions(&fresh, now)
	assert.True(t, c.HasWeather())
	assert.Equal(t, domain.TempExtreme, c.TempCategory)
	assert.True(t, c.Hot())
}

func TestConditions_UpdatedAtUsesClockZone(t *testing.T) {
	ist := time.FixedZone("IST", 5*3600+1800)
	now := time.Date(2025, time.May, 10, 9, 0, 0, 0, ist)
	w := &domain.WeatherSnapshot{TempC: 30, Condition: "Clear", FetchedAt: now.Add(-10 * time.Minute).UTC()}

	c := ReadConditions(w, now)
	assert.Equal(t, "08:50", c.UpdatedAt())
	assert.Equal(t, domain.Morning, c.TimeOfDay)

	assert.Empty(t, ReadConditions(nil, now).UpdatedAt())
}
