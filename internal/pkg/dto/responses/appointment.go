package responses

import "giya-service/internal/pkg/schemas"

type AppointmentGroups struct {
	Upcoming []schemas.Appointment `json:"upcoming"`
	Past     []schemas.Appointment `json:"past"`
}

type ProfessionalTimeslots struct {
	Date  string             `json:"date"`
	Slots []schemas.TimeSlot `json:"slots"`
}

type ProfessionalDetail struct {
	Professional schemas.Professional `json:"professional"`
	Toolkits     []schemas.Toolkit    `json:"toolkits,omitempty"`
}

type CounselingToken struct {
	Token string `json:"token"`
}
