// Package availability plans how a professional's hourly slot selection
// for one date is synchronized with the slots the backend already holds.
package availability

import (
	"fmt"
	"time"
)

// Band is a block of bookable start hours, half-open on End.
type Band struct {
	Name  string
	Start int
	End   int
}

var (
	Morning   = Band{Name: "morning", Start: 8, End: 12}
	Afternoon = Band{Name: "afternoon", Start: 13, End: 17}
	Evening   = Band{Name: "evening", Start: 18, End: 21}
)

// Bands lists every band in display order.
var Bands = []Band{Morning, Afternoon, Evening}

func BandByName(name string) (Band, error) {
	for _, band := range Bands {
		if band.Name == name {
			return band, nil
		}
	}
	return Band{}, fmt.Errorf("unknown band %q", name)
}

// Slots returns the start of every hour of the band on date.
func (b Band) Slots(date time.Time) []time.Time {
	slots := make([]time.Time, 0, b.End-b.Start)
	for hour := b.Start; hour < b.End; hour++ {
		slots = append(slots, time.Date(date.Year(), date.Month(), date.Day(), hour, 0, 0, 0, date.Location()))
	}
	return slots
}

func contains(selected []time.Time, t time.Time) bool {
	for _, s := range selected {
		if s.Equal(t) {
			return true
		}
	}
	return false
}

// BandFullySelected reports whether every hour of band on date is selected.
func BandFullySelected(selected []time.Time, date time.Time, band Band) bool {
	for _, slot := range band.Slots(date) {
		if !contains(selected, slot) {
			return false
		}
	}
	return true
}

// ToggleBand clears the band when all of its hours are selected and fills in
// the missing hours otherwise. The input slice is not modified.
func ToggleBand(selected []time.Time, date time.Time, band Band) []time.Time {
	slots := band.Slots(date)
	if BandFullySelected(selected, date, band) {
		out := make([]time.Time, 0, len(selected))
		for _, s := range selected {
			if !contains(slots, s) {
				out = append(out, s)
			}
		}
		return out
	}

	out := make([]time.Time, len(selected), len(selected)+len(slots))
	copy(out, selected)
	for _, slot := range slots {
		if !contains(out, slot) {
			out = append(out, slot)
		}
	}
	return out
}

// BandState is the per-band view rendered by the editor.
type BandState struct {
	Name        string      `json:"name"`
	Hours       []time.Time `json:"hours"`
	AllSelected bool        `json:"all_selected"`
}

func BandStates(selected []time.Time, date time.Time) []BandState {
	states := make([]BandState, 0, len(Bands))
	for _, band := range Bands {
		states = append(states, BandState{
			Name:        band.Name,
			Hours:       band.Slots(date),
			AllSelected: BandFullySelected(selected, date, band),
		})
	}
	return states
}
