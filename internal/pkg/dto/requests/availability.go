package requests

import "time"

type AvailabilityQuery struct {
	Date string `schema:"date" validate:"omitempty,datetime=2006-01-02"`
}

type ToggleBand struct {
	Date     string      `json:"date" schema:"date" validate:"required,datetime=2006-01-02"`
	Band     string      `json:"band" schema:"band" validate:"required,oneof=morning afternoon evening"`
	Selected []time.Time `json:"selected_slots" schema:"selected_slots"`
}

type SubmitAvailability struct {
	Date          string      `json:"date" schema:"date" validate:"required,datetime=2006-01-02"`
	RepeatType    string      `json:"repeat_type" schema:"repeat_type" validate:"omitempty,oneof=daily weekly"`
	SelectedSlots []time.Time `json:"selected_slots" schema:"selected_slots"`
}
