package middlewares

import (
	"bytes"
	"giya-service/internal/app/models"
	"giya-service/internal/pkg/constvars"
	"giya-service/internal/pkg/utils"
	"net/http"
	"strconv"
	"time"

	"go.uber.org/zap"
)

const (
	pageCacheHit  = "HIT"
	pageCacheMiss = "MISS"
)

type bodyRecorder struct {
	http.ResponseWriter
	statusCode int
	body       bytes.Buffer
}

func (rec *bodyRecorder) WriteHeader(code int) {
	rec.statusCode = code
	rec.ResponseWriter.WriteHeader(code)
}

func (rec *bodyRecorder) Write(b []byte) (int, error) {
	rec.body.Write(b)
	return rec.ResponseWriter.Write(b)
}

// CachePage serves GET responses from the page cache. Entries are keyed by
// the path below the mount prefix, the raw query and the viewer, and only
// 200 responses are stored.
func (m *Middlewares) CachePage(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			next.ServeHTTP(w, r)
			return
		}

		ctx := r.Context()
		requestID := utils.GetRequestID(ctx)
		scoped := utils.ScopedPath(r.URL.Path, m.InternalConfig.App.MountPrefix())
		userKey := ""
		if session, ok := models.SessionFromContext(ctx); ok {
			userKey = strconv.Itoa(session.UserID)
		}

		page, err := m.PageCache.Lookup(ctx, scoped, r.URL.RawQuery, userKey)
		if err != nil {
			m.Log.Warn("CachePage lookup failed",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.String(constvars.LoggingPathKey, scoped),
				zap.Error(err),
			)
		}
		if page != nil {
			w.Header().Set(constvars.HeaderContentType, page.ContentType)
			w.Header().Set(constvars.HeaderXPageCache, pageCacheHit)
			w.WriteHeader(page.StatusCode)
			_, _ = w.Write(page.Body)
			return
		}

		w.Header().Set(constvars.HeaderXPageCache, pageCacheMiss)
		rec := &bodyRecorder{ResponseWriter: w, statusCode: http.StatusOK}
		next.ServeHTTP(rec, r)
		if rec.statusCode != http.StatusOK {
			return
		}

		err = m.PageCache.Store(ctx, scoped, r.URL.RawQuery, userKey, &models.CachedPage{
			StatusCode:  rec.statusCode,
			ContentType: rec.Header().Get(constvars.HeaderContentType),
			Body:        rec.body.Bytes(),
			StoredAt:    time.Now(),
		})
		if err != nil {
			m.Log.Warn("CachePage store failed",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.String(constvars.LoggingPathKey, scoped),
				zap.Error(err),
			)
		}
	})
}
