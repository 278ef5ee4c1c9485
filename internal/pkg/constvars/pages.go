package constvars

// Page paths, relative to the versioned mount, whose cached responses are
// dropped after a mutation.
const (
	PageMe                   = "/me"
	PageFeaturedMarketplace  = "/marketplace/featured"
	PageAdminUsers           = "/admin/users"
	PageAdminToolkits        = "/admin/toolkits"
	PageAdminReports         = "/admin/reports"
	PageAdminProfile         = "/admin/profile"
	PageCounselorHome        = "/counselor/home"
	PageCounselorSchedules   = "/counselor/schedules"
	PageCounselorMarketplace = "/counselor/marketplace"
	PageCounselorProfile     = "/counselor/profile"
	PageCarerHome            = "/carer/home"
	PageCarerProfessionals   = "/carer/professionals"
	PageCarerAppointments    = "/carer/profile/appointments"
	PageCarerFavorites       = "/carer/profile/favorites"
	PageCarerMyProducts      = "/carer/profile/my-products"
	PageCarerMarketplace     = "/carer/marketplace"
	PageCarerToolkits        = "/carer/toolkits"
)

