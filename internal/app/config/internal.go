package config

import (
	"path"
	"time"
)

type InternalConfig struct {
	App          App
	Backend      AppBackend
	JWT          AppJWT
	Session      AppSession
	PageCache    AppPageCache
	Availability AppAvailability
	Minio        AppMinio
	RabbitMQ     AppRabbitMQ
	MongoDB      AppMongoDB
}

type App struct {
	Env                        string
	Port                       string
	Version                    string
	Address                    string
	Timezone                   string
	EndpointPrefix             string
	FrontendDomain             string
	RevalidateSecret           string
	MaxRequests                int
	ShutdownTimeoutInSeconds   int
	MaxTimeRequestsPerSeconds  int
	RequestBodyLimitInMegabyte int
	RequestTimeoutInSeconds    int
	// LoginRateLimit and LoginRateBurst feed the per-IP limiter on /auth/login
	LoginRateLimit          int
	LoginRateBurst          int
	LoginBlockTimeInMinutes int
}

// AppBackend points at the counselling REST API this service fronts.
type AppBackend struct {
	BaseUrl                   string
	HTTPTimeoutInSeconds      int
	AppointmentTimeShiftHours int
}

type AppJWT struct {
	Secret        string
	ExpTimeInHour int
}

type AppSession struct {
	ExpiredTimeInHours int
	CookieSecure       bool
}

type AppPageCache struct {
	TTLInSeconds int
}

type AppAvailability struct {
	SubmitTimeoutInSeconds int
	LockTTLInSeconds       int
}

type AppMinio struct {
	BucketName                  string
	UploadMaxSizeInMB           int64
	PreSignedUrlExpiryInMinutes int
	StagedUploadTTLInHours      int
	PruneCronSpec               string
	// UploadQuota caps staged uploads per user inside UploadWindowInSeconds
	UploadQuota           int
	UploadWindowInSeconds int
}

type AppRabbitMQ struct {
	NotificationQueue string
}

type AppMongoDB struct {
	GiyaDBName string
}

// LoginRatePeriod spaces LoginRateLimit attempts evenly over a minute.
func (a App) LoginRatePeriod() time.Duration {
	if a.LoginRateLimit <= 0 {
		return time.Minute
	}
	return time.Minute / time.Duration(a.LoginRateLimit)
}

// MountPrefix joins the endpoint prefix and version, such as /api/v1.
func (a App) MountPrefix() string {
	return path.Join("/", a.EndpointPrefix, a.Version)
}

func (a App) RequestTimeout() time.Duration {
	return time.Duration(a.RequestTimeoutInSeconds) * time.Second
}

func (a AppAvailability) SubmitTimeout() time.Duration {
	return time.Duration(a.SubmitTimeoutInSeconds) * time.Second
}

func (a AppAvailability) LockTTL() time.Duration {
	return time.Duration(a.LockTTLInSeconds) * time.Second
}

func (s AppSession) TTL() time.Duration {
	return time.Duration(s.ExpiredTimeInHours) * time.Hour
}

func (p AppPageCache) TTL() time.Duration {
	return time.Duration(p.TTLInSeconds) * time.Second
}

func (m AppMinio) PresignExpiry() time.Duration {
	return time.Duration(m.PreSignedUrlExpiryInMinutes) * time.Minute
}

func (m AppMinio) StagedUploadTTL() time.Duration {
	return time.Duration(m.StagedUploadTTLInHours) * time.Hour
}

func (b AppBackend) AppointmentTimeShift() time.Duration {
	return time.Duration(b.AppointmentTimeShiftHours) * time.Hour
}
