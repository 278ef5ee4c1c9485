package availability

import (
	"time"

	"giya-service/internal/pkg/schemas"
)

const shortClockLayout = "15:04"

// Plan is the outcome of reconciling a selection with the saved slots of a
// single date.
type Plan struct {
	Kept    []schemas.TimeSlot
	New     []time.Time
	Deleted []schemas.TimeSlot
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.In(a.Location()).Date()
	return ay == by && am == bm && ad == bd
}

// Diff compares selected start times against saved slots for date. Only
// selections that fall on date count, and both sides are matched by their
// HH:mm start.
func Diff(date time.Time, selected []time.Time, saved []schemas.TimeSlot) Plan {
	onDate := make([]time.Time, 0, len(selected))
	selectedKeys := make(map[string]bool, len(selected))
	for _, s := range selected {
		if !sameDay(date, s) {
			continue
		}
		key := s.In(date.Location()).Format(shortClockLayout)
		if selectedKeys[key] {
			continue
		}
		selectedKeys[key] = true
		onDate = append(onDate, s)
	}

	savedKeys := make(map[string]bool, len(saved))
	plan := Plan{}
	for _, slot := range saved {
		key := slot.StartTime.Short()
		savedKeys[key] = true
		if selectedKeys[key] {
			plan.Kept = append(plan.Kept, slot)
		} else {
			plan.Deleted = append(plan.Deleted, slot)
		}
	}

	for _, s := range onDate {
		if !savedKeys[s.In(date.Location()).Format(shortClockLayout)] {
			plan.New = append(plan.New, s)
		}
	}
	return plan
}
