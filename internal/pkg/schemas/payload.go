package schemas

type LoginPayload struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type RegisterPayload struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Password  string `json:"password"`
}

// SchedulePayload creates one weekly availability record.
type SchedulePayload struct {
	DayOfWeek int       `json:"day_of_week"`
	StartTime ClockTime `json:"start_time"`
	EndTime   ClockTime `json:"end_time"`
}

type AppointmentPayload struct {
	ProfessionalID  int    `json:"professional_id"`
	ScheduleID      int    `json:"schedule_id"`
	AppointmentDate string `json:"appointment_date"`
}

// ReportPayload files one reason against a product. ReportedBy is left out
// when the reporter has no carer profile.
type ReportPayload struct {
	ReportedItem int    `json:"reported_item"`
	ReportedBy   *int   `json:"reported_by,omitempty"`
	Reason       string `json:"reason"`
}

type PricingPayload struct {
	Price float64 `json:"price"`
}
