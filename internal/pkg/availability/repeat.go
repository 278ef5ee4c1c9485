package availability

import (
	"fmt"
	"sort"
	"time"

	"giya-service/internal/pkg/schemas"
)

type RepeatMode string

const (
	RepeatNone   RepeatMode = ""
	RepeatDaily  RepeatMode = "daily"
	RepeatWeekly RepeatMode = "weekly"
)

const (
	dailyRepeatDays   = 30
	weeklyRepeatWeeks = 4
)

func ParseRepeatMode(value string) (RepeatMode, error) {
	switch RepeatMode(value) {
	case RepeatNone, RepeatDaily, RepeatWeekly:
		return RepeatMode(value), nil
	}
	return RepeatNone, fmt.Errorf("unknown repeat mode %q", value)
}

// RemapWeekday converts a Sunday-first weekday to the backend's Monday-first
// index, so Sunday becomes 6 and Monday becomes 0.
func RemapWeekday(day time.Weekday) int {
	return (int(day) + 6) % 7
}

// Occurrences lists the calendar days a selection for date is written to.
// Daily covers date through date+30, weekly covers date through date+28 in
// steps of seven days.
func Occurrences(date time.Time, mode RepeatMode) []time.Time {
	day := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	switch mode {
	case RepeatDaily:
		out := make([]time.Time, 0, dailyRepeatDays+1)
		for i := 0; i <= dailyRepeatDays; i++ {
			out = append(out, day.AddDate(0, 0, i))
		}
		return out
	case RepeatWeekly:
		out := make([]time.Time, 0, weeklyRepeatWeeks+1)
		for i := 0; i <= weeklyRepeatWeeks; i++ {
			out = append(out, day.AddDate(0, 0, 7*i))
		}
		return out
	default:
		return []time.Time{day}
	}
}

// BuildCreates returns one schedule payload per new slot and occurrence.
// Every slot lasts one hour.
func BuildCreates(plan Plan, date time.Time, mode RepeatMode) []schemas.SchedulePayload {
	occurrences := Occurrences(date, mode)
	payloads := make([]schemas.SchedulePayload, 0, len(occurrences)*len(plan.New))
	for _, occurrence := range occurrences {
		for _, slot := range plan.New {
			local := slot.In(date.Location())
			start := time.Date(occurrence.Year(), occurrence.Month(), occurrence.Day(), local.Hour(), local.Minute(), 0, 0, occurrence.Location())
			payloads = append(payloads, schemas.SchedulePayload{
				DayOfWeek: RemapWeekday(occurrence.Weekday()),
				StartTime: schemas.NewClockTime(start),
				EndTime:   schemas.NewClockTime(start.Add(time.Hour)),
			})
		}
	}
	return payloads
}

// BuildDeletes returns the schedule ids to remove. Repeating submissions
// only ever add slots.
func BuildDeletes(plan Plan, mode RepeatMode) []int {
	if mode != RepeatNone {
		return nil
	}
	ids := make([]int, 0, len(plan.Deleted))
	for _, slot := range plan.Deleted {
		ids = append(ids, slot.ScheduleID.Int())
	}
	return ids
}

// ValidateTargetDate rejects dates before today in loc.
func ValidateTargetDate(date, now time.Time, loc *time.Location) error {
	target := date.In(loc)
	today := now.In(loc)
	targetDay := time.Date(target.Year(), target.Month(), target.Day(), 0, 0, 0, 0, loc)
	todayDay := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, loc)
	if targetDay.Before(todayDay) {
		return fmt.Errorf("date %s is in the past", targetDay.Format("2006-01-02"))
	}
	return nil
}

// SelectionFromSaved turns every saved slot of every date into a start time,
// the initial selection of the editor.
func SelectionFromSaved(saved schemas.ProfessionalTimeslots, loc *time.Location) []time.Time {
	out := []time.Time{}
	for dateKey, slots := range saved {
		day, err := time.ParseInLocation("2006-01-02", dateKey, loc)
		if err != nil {
			continue
		}
		for _, slot := range slots {
			out = append(out, slot.StartTime.On(day))
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Before(out[j]) })
	return out
}
