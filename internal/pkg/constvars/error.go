package constvars

// Validation messages for form fields, keyed by validator tag
var CustomValidationErrorMessages = map[string]string{
	"required":     "is required",
	"email":        "must be a valid email",
	"url":          "must be a valid url",
	"numeric":      "must be a number",
	"min":          "must be at least %s",
	"max":          "maximum at %s",
	"gt":           "must be greater than %s",
	"gte":          "must be at least %s",
	"oneof":        "must be one of %s",
	"datetime":     "must follow the %s format",
	"eqfield":      "does not match",
	"not_past_day": "date must be today or later",
}

// TagsWithParams lists the tags whose message embeds the validator param
var TagsWithParams = map[string]bool{
	"min":      true,
	"max":      true,
	"gt":       true,
	"gte":      true,
	"oneof":    true,
	"datetime": true,
}

// Error messages for clients
const (
	ErrClientCannotProcessRequest          = "failed to process your request"
	ErrClientInvalidUsernameOrPassword     = "invalid username or password"
	ErrClientSomethingWrongWithApplication = "there is something wrong with the application"
	ErrClientServerLongRespond             = "the app taking too long to respond"
	ErrClientNotAuthorized                 = "you can't access this feature"
	ErrClientNotLoggedIn                   = "your session ended, please login again"
	ErrClientBackendUnavailable            = "the counselling service is unavailable right now"
	ErrClientUnexpectedBackendResponse     = "unexpected response from the counselling service"
	ErrClientInvalidFileType               = "file type is not accepted, use png, jpg, jpeg or mp4"
	ErrClientFileTooLarge                  = "file is too large"
	ErrClientUploadNotFound                = "uploaded file not found, please upload it again"
	ErrClientSubmissionInProgress          = "a submission is already in progress, please wait"
	ErrClientAvailabilityNotSaved          = "failed to save availability"
	ErrClientReportNotFound                = "report not found"
	ErrClientTooManyRequests               = "too many requests, you are temporarily blocked"
	ErrClientMissingRevalidatePath         = "Missing tag param"
	ErrClientSelectReason                  = "select at least one reason"
	ErrClientNotProductOwner               = "you can only edit your own products"
	ErrClientChooseFile                    = "choose a file to upload"
)

// Error messages for developers
const (
	ErrDevInvalidInput              = "invalid input"
	ErrDevCannotParseJSON           = "cannot parse JSON"
	ErrDevCannotMarshalJSON         = "cannot marshal JSON"
	ErrDevCannotParseMultipartForm  = "cannot parse multipart form"
	ErrDevCannotParseForm           = "cannot parse form values"
	ErrDevCannotParseDate           = "cannot parse date %s"
	ErrDevURLParamIDValidation      = "url param %s must be a positive number"
	ErrDevValidationFailed          = "validation failed"
	ErrDevCreateHTTPRequest         = "failed to create HTTP request"
	ErrDevSendHTTPRequest           = "failed to send HTTP request"
	ErrDevBackendStatus             = "backend responded %d for %s %s"
	ErrDevBackendDecode             = "failed to decode backend %s response"
	ErrDevBackendSchema             = "backend %s response does not match schema"
	ErrDevServerDeadlineExceeded    = "deadline exceeded"
	ErrDevServerProcess             = "server failed to process the request"
	ErrDevMissingSession            = "session missing from context"
	ErrDevMissingProfessional       = "session has no professional identity"
	ErrDevMissingCarer              = "session has no carer identity"
	ErrDevAvailabilityPartial       = "availability submission failed after issuing %d calls"
	ErrDevAvailabilityLocked        = "availability submission lock held for %s"
	ErrDevRepeatMode                = "unknown repeat mode %q"
	ErrDevPastTargetDate            = "target date %s is in the past"
	ErrDevNotProductOwner           = "session does not own product %d"
	ErrDevFileType                  = "file content type %s not in %v"
	ErrDevFileOpen                  = "failed to open uploaded file"
	ErrDevUploadMissing             = "staged upload %s not found"
	ErrDevRoleEnforce               = "role enforcer failed"
	ErrDevRevalidateSecret          = "revalidate secret mismatch"
	ErrDevReportNotFound            = "product report %s not found"
	ErrDevNotificationPublish       = "failed to publish notification to queue %s"
	ErrDevAuthSigningMethod         = "unexpected signing method"
	ErrDevAuthTokenInvalid          = "invalid token"
	ErrDevAuthTokenMissing          = "token missing"
	ErrDevAuthInvalidSession        = "invalid session"
	ErrDevAuthGenerateToken         = "failed to generate token"
	ErrDevAuthInvalidCredentials    = "backend rejected credentials"
	ErrDevDBFailedToInsertDocument  = "failed to insert document into database"
	ErrDevDBFailedToFindDocument    = "failed when do find document on database"
	ErrDevDBFailedToDeleteDocument  = "failed to delete document from database"
	ErrDevDBFailedToIterateDocument = "failed to iterate documents"
	ErrDevDBStringNotObjectID       = "given ID is not valid object ID"
	ErrDevRedisGetNoData            = "no data in redis for key %s"
	ErrDevRedisSetData              = "failed to set data into redis"
	ErrDevRedisDeleteData           = "failed to delete data from redis"
	ErrDevRedisIncrement            = "failed to increment value in redis"
	ErrDevRedisAddToSet             = "failed to add members to redis set"
	ErrDevRedisSetMembers           = "failed to read redis set members"
	ErrDevRedisUnlock               = "failed to release redis lock"
	ErrDevMinioCreateObject         = "failed to create object in bucket %s"
	ErrDevMinioGetObject            = "failed to get object from bucket %s"
	ErrDevMinioPresignObject        = "failed to presign object in bucket %s"
	ErrDevMinioRemoveObject         = "failed to remove object from bucket %s"
)

const (
	ErrFileLocationUnknown = "file location unknown"
	ErrFunctionNameUnknown = "function name unknown"
)
