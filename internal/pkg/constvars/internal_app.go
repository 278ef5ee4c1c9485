package constvars

import "time"

type ContextKey string

const (
	CONTEXT_REQUEST_ID_KEY           ContextKey = "request_id"
	CONTEXT_SESSION_DATA_KEY         ContextKey = "session_data"
	CONTEXT_IS_CLIENT_REQUEST_ID_KEY ContextKey = "is_client_request_id"
	CONTEXT_BACKEND_TOKEN_KEY        ContextKey = "backend_token"
)

const (
	REQUEST_ID_PREFIX = "GIYA_BFF_"
)

const (
	AppServiceName       = "giya-service"
	AppEnvDevelopment    = "development"
	AppEnvProduction     = "production"
	AccessLogFileName    = "access.log"
	RabbitMQHeartbeat    = 10 * time.Second
	RabbitMQURIScheme    = "amqp"
	RabbitMQDefaultVhost = "/"
)

const (
	AppPaginationUrlFormat = "%s?page=%d&page_size=%d"
	DateLayout             = "2006-01-02"
)

const (
	SessionCookieName        = "giya_session"
	SessionRedisKeyPrefix    = "session:"
	PageCacheRedisKeyPrefix  = "pagecache:entry:"
	PageCacheIndexKeyPrefix  = "pagecache:index:"
	AvailabilityLockPrefix   = "availability:submit:"
	UploadWorkerLeaderLock   = "uploads:prune:leader"
	StagedUploadObjectPrefix = "staged/"
	UploadLimiterGroup       = "UPLOADS"
)

const (
	ResourceAuth         = "auth"
	ResourceUsers        = "users"
	ResourceAppointments = "appointments"
	ResourceMarketplace  = "marketplace"
	ResourceToolkits     = "toolkits"
	ResourceTimeslots    = "available timeslots"
)
