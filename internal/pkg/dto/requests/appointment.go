package requests

type BookAppointment struct {
	ScheduleID      int    `json:"schedule_id" schema:"schedule_id" validate:"required,gt=0"`
	AppointmentDate string `json:"appointment_date" schema:"appointment_date" validate:"required,datetime=2006-01-02"`
}

type CounselingCode struct {
	Code string `json:"code" schema:"code" validate:"required"`
}

type TimeslotQuery struct {
	Date string `schema:"date" validate:"omitempty,datetime=2006-01-02"`
}
