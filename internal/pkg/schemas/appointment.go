package schemas

import "time"

type TimeSlot struct {
	ScheduleID FlexInt   `json:"schedule_id" validate:"required"`
	StartTime  ClockTime `json:"start_time"`
	EndTime    ClockTime `json:"end_time"`
}

// ProfessionalTimeslots maps a "yyyy-MM-dd" date to the slots saved for it.
type ProfessionalTimeslots map[string][]TimeSlot

// AvailableTimeslots is one entry of the backend listing, keyed by the
// professional's e-mail.
type AvailableTimeslots map[string]ProfessionalTimeslots

// ForEmail finds the entry that belongs to email.
func ForEmail(entries []AvailableTimeslots, email string) (ProfessionalTimeslots, bool) {
	for _, entry := range entries {
		if slots, ok := entry[email]; ok && slots != nil {
			return slots, true
		}
	}
	return nil, false
}

type AppointmentCarer struct {
	ID   FlexInt `json:"id" validate:"required"`
	User User    `json:"user"`
}

type AppointmentProfessional struct {
	ID         FlexInt    `json:"id" validate:"required"`
	User       User       `json:"user"`
	Profession Profession `json:"profession" validate:"required,oneof=counselor psychologist"`
}

type Schedule struct {
	ID               FlexInt   `json:"id" validate:"required"`
	DayOfWeek        int       `json:"day_of_week" validate:"gte=0,lte=6"`
	DayOfWeekDisplay string    `json:"day_of_week_display"`
	StartTime        ClockTime `json:"start_time"`
	EndTime          ClockTime `json:"end_time"`
	Professional     FlexInt   `json:"professional"`
}

type Appointment struct {
	ID              FlexInt                 `json:"id" validate:"required"`
	Carer           AppointmentCarer        `json:"carer"`
	Professional    AppointmentProfessional `json:"professional"`
	Schedule        Schedule                `json:"schedule"`
	AppointmentTime time.Time               `json:"appointment_time" validate:"required"`
	Status          AppointmentStatus       `json:"status" validate:"required,oneof=pending confirmed canceled completed"`
	CallCode        string                  `json:"call_code"`
}

// Shift moves the appointment time by the configured display offset.
func (a *Appointment) Shift(offset time.Duration) {
	a.AppointmentTime = a.AppointmentTime.Add(offset)
}

func (a Appointment) Upcoming(now time.Time) bool {
	return !a.AppointmentTime.Before(now) && a.Status != AppointmentStatusCanceled && a.Status != AppointmentStatusCompleted
}
