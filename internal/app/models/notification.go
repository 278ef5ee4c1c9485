package models

import "time"

const (
	EventAppointmentBooked   = "appointment.booked"
	EventAppointmentCanceled = "appointment.canceled"
	EventProductReported     = "product.reported"
	EventProductFavorited    = "product.favorited"
)

type NotificationEvent struct {
	Event      string                 `json:"event"`
	ActorID    int                    `json:"actor_id"`
	TargetID   int                    `json:"target_id"`
	OccurredAt time.Time              `json:"occurred_at"`
	Data       map[string]interface{} `json:"data,omitempty"`
}
