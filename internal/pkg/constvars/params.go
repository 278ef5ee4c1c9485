package constvars

const (
	URLParamID   = "id"
	URLParamCode = "code"
)

const (
	URLQueryParamPage           = "page"
	URLQueryParamPageSize       = "page_size"
	URLQueryParamPath           = "path"
	URLQueryParamCategory       = "category"
	URLQueryParamCarerID        = "carer_id"
	URLQueryParamProfessionalID = "professional_id"
	URLQueryParamUserType       = "user_type"
	URLQueryParamStartDate      = "start_date"
	URLQueryParamEndDate        = "end_date"
	URLQueryParamCode           = "code"
)

const (
	UserTypeProfessional = "professional"
)
