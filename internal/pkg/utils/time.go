package utils

import (
	"giya-service/internal/pkg/constvars"
	"time"
)

// LoadLocation falls back to UTC when the zone database has no entry.
func LoadLocation(timezone string) *time.Location {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

func StartOfDay(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, t.Location())
}

func ParseDate(value string, loc *time.Location) (time.Time, error) {
	return time.ParseInLocation(constvars.DateLayout, value, loc)
}

func FormatDate(t time.Time) string {
	return t.Format(constvars.DateLayout)
}
