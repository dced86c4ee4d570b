package formatter

import (
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/aura/internal/domain"
)

func FormatWeather(w *domain.WeatherSnapshot, now time.Time) string {
	var b strings.Builder
	b.WriteString(Header("Weather"))
	b.WriteString("\n")
	kv(&b, "Location", fmt.Sprintf("%s (%s)", domain.CoalesceStr(w.Location, "Your area"), w.Pincode))
	kv(&b, "Temperature", fmt.Sprintf("%d°C, feels like %d°C", w.TempC, w.FeelsLikeC))
	kv(&b, "Humidity", fmt.Sprintf("%d%%", w.Humidity))
	kv(&b, "Condition", fmt.Sprintf("%s (%s)", w.Condition, w.Description))
	kv(&b, "Updated", HumanTimestampFrom(w.FetchedAt, now))
	return b.String()
}
