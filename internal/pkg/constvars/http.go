package constvars

const (
	MethodGet    = "GET"
	MethodPost   = "POST"
	MethodPut    = "PUT"
	MethodPatch  = "PATCH"
	MethodDelete = "DELETE"
)

const (
	MIMEApplicationJSON = "application/json"
	MIMEApplicationForm = "application/x-www-form-urlencoded"
	MIMEMultipartForm   = "multipart/form-data"
	MIMEImagePNG        = "image/png"
	MIMEImageJPG        = "image/jpg"
	MIMEImageJPEG       = "image/jpeg"
	MIMEVideoMP4        = "video/mp4"
)

const (
	StatusOK                  = 200
	StatusCreated             = 201
	StatusNoContent           = 204
	StatusSeeOther            = 303
	StatusBadRequest          = 400
	StatusUnauthorized        = 401
	StatusForbidden           = 403
	StatusNotFound            = 404
	StatusConflict            = 409
	StatusRequestTooLarge     = 413
	StatusUnsupportedMedia    = 415
	StatusTooManyRequests     = 429
	StatusInternalServerError = 500
	StatusBadGateway          = 502
	StatusGatewayTimeout      = 504
)

const (
	HeaderAuthorization     = "Authorization"
	HeaderCacheControl      = "Cache-Control"
	HeaderPragma            = "Pragma"
	HeaderAccept            = "Accept"
	HeaderContentType       = "Content-Type"
	HeaderXRequestID        = "X-Request-ID"
	HeaderXPageCache        = "X-Page-Cache"
	HeaderXRevalidateSecret = "X-Revalidate-Secret"
)

const (
	AuthorizationTokenPrefix = "Token "
	CacheControlNoStore      = "no-store"
	PragmaNoCache            = "no-cache"
)
