package constvars

const (
	RoleCarer        = "carer"
	RoleProfessional = "professional"
	RoleAdmin        = "admin"
)

const (
	ProfessionCounselor    = "counselor"
	ProfessionPsychologist = "psychologist"
)

const (
	AppointmentStatusPending   = "pending"
	AppointmentStatusConfirmed = "confirmed"
	AppointmentStatusCanceled  = "canceled"
	AppointmentStatusCompleted = "completed"
)

// RouteScopeAdmin and its siblings are the URL prefixes gated by role.
const (
	RouteScopeAdmin     = "/admin"
	RouteScopeCounselor = "/counselor"
	RouteScopeCarer     = "/carer"
)
