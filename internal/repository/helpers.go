package repository

import (
	"fmt"
	"time"
)

// timeLayout keeps sub-second precision so entries logged in the same
// second still sort in insertion order.
const timeLayout = time.RFC3339Nano

func formatTime(t time.Time) string {
	return t.UTC().Format(timeLayout)
}

func parseTime(s string) (time.Time, error) {
	t, err := time.Parse(timeLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("parsing timestamp %q: %w", s, err)
	}
	return t, nil
}

// nowUTC returns the current UTC time in storage format.
func nowUTC() string {
	return formatTime(time.Now())
}
