package constvars

const (
	// Auth messages
	LoginSuccessMessage    = "successfully login"
	LogoutSuccessMessage   = "successfully logout"
	RegisterSuccessMessage = "account registered successfully"

	// User messages
	GetProfessionalsSuccessMessage = "get professionals successfully"
	GetProfessionalSuccessMessage  = "get professional successfully"
	CreateUserSuccessMessage       = "user created successfully"
	UpdateUserSuccessMessage       = "user updated successfully"
	UpdateSettingsSuccessMessage   = "settings updated successfully"
	UpdatePricingSuccessMessage    = "pricing updated successfully"

	// Appointment messages
	CreateAppointmentSuccessMessage = "appointment booked successfully"
	CancelAppointmentSuccessMessage = "appointment canceled successfully"
	GetTimeslotsSuccessMessage      = "get timeslots successfully"
	GetCounselingTokenMessage       = "get counseling room token successfully"

	// Availability messages
	GetAvailabilitySuccessMessage  = "get availability successfully"
	ToggleBandSuccessMessage       = "band selection updated"
	SaveAvailabilitySuccessMessage = "Saved!"

	// Marketplace messages
	GetProductsSuccessMessage       = "get products successfully"
	GetProductSuccessMessage        = "get product successfully"
	CreateProductSuccessMessage     = "product created successfully"
	UpdateProductSuccessMessage     = "product updated successfully"
	GetCategoriesSuccessMessage     = "get categories successfully"
	GetReportReasonsSuccessMessage  = "get report reasons successfully"
	ReportProductSuccessMessage     = "product reported successfully"
	ToggleFavoriteSuccessMessage    = "favorite updated successfully"
	GetFavoritesSuccessMessage      = "get favorites successfully"
	GetReportsSuccessMessage        = "get product reports successfully"
	DismissReportSuccessMessage     = "product report dismissed"
	GetToolkitsSuccessMessage       = "get toolkits successfully"
	GetToolkitSuccessMessage        = "get toolkit successfully"
	CreateToolkitSuccessMessage     = "toolkit created successfully"
	UpdateToolkitSuccessMessage     = "toolkit updated successfully"
	StageUploadSuccessMessage       = "file uploaded successfully"
	GetCurrentUserSuccessMessage    = "get current user successfully"
	GetHomeSuccessMessage           = "get home successfully"
	GetAppointmentsCalendarMessages = "get appointments calendar successfully"
)
