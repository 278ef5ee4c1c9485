package middlewares

import (
	"giya-service/internal/app/config"
	"giya-service/internal/pkg/utils"
	"net/http"
	"time"

	"github.com/sirupsen/logrus"
)

// RequestLogger writes one access-log line per request.
func (m *Middlewares) RequestLogger(appConfig config.App, log *logrus.Logger) func(next http.Handler) http.Handler {
	tz := utils.LoadLocation(appConfig.Timezone)
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			rec := &responseRecorder{ResponseWriter: w, statusCode: http.StatusOK}
			next.ServeHTTP(rec, r)

			log.WithFields(logrus.Fields{
				"time":        time.Now().In(tz).Format(time.RFC3339),
				"remote_addr": r.RemoteAddr,
				"method":      r.Method,
				"uri":         r.RequestURI,
				"status":      rec.statusCode,
				"duration":    time.Since(start).String(),
				"request_id":  utils.GetRequestID(r.Context()),
			}).Info("access")
		})
	}
}
