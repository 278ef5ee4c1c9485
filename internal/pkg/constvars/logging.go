package constvars

const (
	LoggingRequestIDKey      = "request_id"
	LoggingUserIDKey         = "user_id"
	LoggingRoleKey           = "role"
	LoggingQueryParamsKey    = "query_params"
	LoggingMethodKey         = "method"
	LoggingEndpointKey       = "endpoint"
	LoggingRemoteAddrKey     = "remote_addr"
	LoggingUserAgentKey      = "user_agent"
	LoggingQueryKey          = "query"
	LoggingStatusCodeKey     = "status_code"
	LoggingDurationKey       = "duration"
	LoggingSuccessKey        = "success"
	LoggingOperationKey      = "operation"
	LoggingRedisKey          = "redis_key"
	LoggingLockValueKey      = "lock_value"
	LoggingLockExpirationKey = "lock_expiration"
	LoggingLockStoredKey     = "lock_stored_value"
	LoggingLockExpectedKey   = "lock_expected_value"
	LoggingQueueKey          = "queue"
	LoggingUploadIDKey       = "upload_id"
	LoggingCountKey          = "count"
	LoggingBackendURLKey     = "backend_url"
	LoggingPathKey           = "path"
	LoggingObjectNameKey     = "object_name"
	LoggingEventKey          = "event"
	LoggingProductIDKey      = "product_id"
	LoggingProfessionalIDKey = "professional_id"
	LoggingDateKey           = "date"
	LoggingRepeatTypeKey     = "repeat_type"
	LoggingCreatedCountKey   = "created_count"
	LoggingDeletedCountKey   = "deleted_count"
	LoggingToolkitIDKey      = "toolkit_id"
	LoggingReportIDKey       = "report_id"
)
