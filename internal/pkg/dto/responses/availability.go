package responses

import (
	"giya-service/internal/pkg/availability"
	"giya-service/internal/pkg/schemas"
	"time"
)

type AvailabilityEditor struct {
	Date       string                   `json:"date"`
	SavedSlots []schemas.TimeSlot       `json:"saved_slots"`
	Selected   []time.Time              `json:"selected_slots"`
	Bands      []availability.BandState `json:"bands"`
}

type ToggleBand struct {
	Selected []time.Time              `json:"selected_slots"`
	Bands    []availability.BandState `json:"bands"`
}

type SubmitAvailability struct {
	Date       string `json:"date"`
	RepeatType string `json:"repeat_type"`
	Created    int    `json:"created"`
	Deleted    int    `json:"deleted"`
}
