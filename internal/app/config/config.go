package config

import (
	"giya-service/internal/pkg/constvars"
	"giya-service/internal/pkg/utils"

	"github.com/joho/godotenv"
)

func init() {
	godotenv.Load()
}

func NewDriverConfig() *DriverConfig {
	return &DriverConfig{
		MongoDB: MongoDB{
			Port:     utils.GetEnvString("MONGODB_PORT", "27017"),
			Host:     utils.GetEnvString("MONGODB_HOST", "localhost"),
			DbName:   utils.GetEnvString("MONGODB_DB_NAME", "giya"),
			Username: utils.GetEnvString("MONGODB_USERNAME", ""),
			Password: utils.GetEnvString("MONGODB_PASSWORD", ""),
		},
		Redis: Redis{
			Host:     utils.GetEnvString("REDIS_HOST", "localhost"),
			Port:     utils.GetEnvString("REDIS_PORT", "6379"),
			Password: utils.GetEnvString("REDIS_PASSWORD", ""),
			DB:       utils.GetEnvInt("REDIS_DB", 0),
		},
		Logger: Logger{
			Level:               utils.GetEnvString("LOGGER_LEVEL", "debug"),
			OutputFileName:      utils.GetEnvString("LOGGER_OUTPUT_FILENAME", "logger.log"),
			OutputErrorFileName: utils.GetEnvString("LOGGER_OUTPUT_ERROR_FILENAME", "logger_error.log"),
		},
		RabbitMQ: RabbitMQ{
			Port:     utils.GetEnvString("RABBITMQ_PORT", "5672"),
			Host:     utils.GetEnvString("RABBITMQ_HOST", "localhost"),
			Username: utils.GetEnvString("RABBITMQ_USERNAME", "guest"),
			Password: utils.GetEnvString("RABBITMQ_PASSWORD", "guest"),
			Vhost:    utils.GetEnvString("RABBITMQ_VHOST", constvars.RabbitMQDefaultVhost),
		},
		Minio: Minio{
			Port:     utils.GetEnvString("MINIO_PORT", "9000"),
			Host:     utils.GetEnvString("MINIO_HOST", "localhost"),
			Username: utils.GetEnvString("MINIO_USERNAME", "minioadmin"),
			Password: utils.GetEnvString("MINIO_PASSWORD", "minioadmin"),
			UseSSL:   utils.GetEnvBool("MINIO_USE_SSL", false),
		},
	}
}

func NewInternalConfig() *InternalConfig {
	return &InternalConfig{
		App: App{
			Env:                        utils.GetEnvString("APP_ENV", "development"),
			Port:                       utils.GetEnvString("APP_PORT", "8080"),
			Version:                    utils.GetEnvString("APP_VERSION", "v1"),
			Address:                    utils.GetEnvString("APP_ADDRESS", "localhost"),
			Timezone:                   utils.GetEnvString("APP_TIMEZONE", "Asia/Manila"),
			EndpointPrefix:             utils.GetEnvString("APP_ENDPOINT_PREFIX", "/api"),
			FrontendDomain:             utils.GetEnvString("APP_FRONTEND_DOMAIN", "http://localhost:3000"),
			RevalidateSecret:           utils.GetEnvString("APP_REVALIDATE_SECRET", ""),
			MaxRequests:                utils.GetEnvInt("APP_MAX_REQUEST", 100),
			ShutdownTimeoutInSeconds:   utils.GetEnvInt("APP_SHUTDOWN_TIMEOUT_IN_SECONDS", 10),
			MaxTimeRequestsPerSeconds:  utils.GetEnvInt("APP_MAX_TIME_REQUESTS_PER_SECONDS", 60),
			RequestBodyLimitInMegabyte: utils.GetEnvInt("APP_REQUEST_BODY_LIMIT_IN_MEGABYTE", 32),
			RequestTimeoutInSeconds:    utils.GetEnvInt("APP_REQUEST_TIMEOUT_IN_SECONDS", 10),
			LoginRateLimit:             utils.GetEnvInt("APP_LOGIN_RATE_LIMIT", 5),
			LoginRateBurst:             utils.GetEnvInt("APP_LOGIN_RATE_BURST", 10),
			LoginBlockTimeInMinutes:    utils.GetEnvInt("APP_LOGIN_BLOCK_TIME_IN_MINUTES", 5),
		},
		Backend: AppBackend{
			BaseUrl:                   utils.GetEnvString("BACKEND_BASE_URL", "http://localhost:8000/api"),
			HTTPTimeoutInSeconds:      utils.GetEnvInt("BACKEND_HTTP_TIMEOUT_IN_SECONDS", 15),
			AppointmentTimeShiftHours: utils.GetEnvInt("BACKEND_APPOINTMENT_TIME_SHIFT_HOURS", -8),
		},
		JWT: AppJWT{
			Secret:        utils.GetEnvString("JWT_SECRET", "anyjwt"),
			ExpTimeInHour: utils.GetEnvInt("JWT_EXP_TIME_IN_HOUR", 24),
		},
		Session: AppSession{
			ExpiredTimeInHours: utils.GetEnvInt("SESSION_EXPIRED_TIME_IN_HOURS", 24),
			CookieSecure:       utils.GetEnvBool("SESSION_COOKIE_SECURE", false),
		},
		PageCache: AppPageCache{
			TTLInSeconds: utils.GetEnvInt("PAGE_CACHE_TTL_IN_SECONDS", 60),
		},
		Availability: AppAvailability{
			SubmitTimeoutInSeconds: utils.GetEnvInt("AVAILABILITY_SUBMIT_TIMEOUT_IN_SECONDS", 30),
			LockTTLInSeconds:       utils.GetEnvInt("AVAILABILITY_LOCK_TTL_IN_SECONDS", 60),
		},
		Minio: AppMinio{
			BucketName:                  utils.GetEnvString("MINIO_BUCKET_NAME", "giya-uploads"),
			UploadMaxSizeInMB:           utils.GetEnvInt64("MINIO_UPLOAD_MAX_SIZE_IN_MB", 25),
			PreSignedUrlExpiryInMinutes: utils.GetEnvInt("MINIO_PRESIGNED_URL_EXPIRY_IN_MINUTES", 60),
			StagedUploadTTLInHours:      utils.GetEnvInt("MINIO_STAGED_UPLOAD_TTL_IN_HOURS", 24),
			PruneCronSpec:               utils.GetEnvString("MINIO_PRUNE_CRON_SPEC", "@hourly"),
			UploadQuota:                 utils.GetEnvInt("MINIO_UPLOAD_QUOTA", 30),
			UploadWindowInSeconds:       utils.GetEnvInt("MINIO_UPLOAD_WINDOW_IN_SECONDS", 600),
		},
		RabbitMQ: AppRabbitMQ{
			NotificationQueue: utils.GetEnvString("RABBITMQ_NOTIFICATION_QUEUE", "giya_notifications"),
		},
		MongoDB: AppMongoDB{
			GiyaDBName: utils.GetEnvString("MONGODB_DB_NAME", "giya"),
		},
	}
}
