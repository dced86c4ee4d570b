package domain

import "time"

// WeatherValidity is how long a fetched snapshot may be used.
const WeatherValidity = time.Hour

// WeatherSnapshot is one fetched observation for a location.
type WeatherSnapshot struct {
	Pincode     string    `json:"pincode"`
	Location    string    `json:"location"`
	TempC       int       `json:"temp_c"`
	FeelsLikeC  int       `json:"feels_like_c"`
	Humidity    int       `json:"humidity"`
	Condition   string    `json:"condition"`
	Description string    `json:"description"`
	FetchedAt   time.Time `json:"fetched_at"`
}

// FreshAt reports whether the snapshot is still usable at now.
func (w *WeatherSnapshot) FreshAt(now time.Time) bool {
	if w == nil || w.FetchedAt.IsZero() {
		return false
	}
	return now.Sub(w.FetchedAt) < WeatherValidity
}

// Valid returns w when it is fresh at now, otherwise nil. Callers treat
// a stale snapshot exactly like a missing one.
func (w *WeatherSnapshot) Valid(now time.Time) *WeatherSnapshot {
	if w.FreshAt(now) {
		return w
	}
	return nil
}
