package middlewares

import (
	"errors"
	"giya-service/internal/pkg/constvars"
	"giya-service/internal/pkg/exceptions"
	"giya-service/internal/pkg/utils"
	"net"
	"net/http"
	"sync"
	"time"

	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// RateLimiter is a per-IP token bucket. An IP that runs out of tokens is
// blocked for blockTime.
type RateLimiter struct {
	limiters  map[string]*rate.Limiter
	blocked   map[string]time.Time
	mu        sync.Mutex
	requests  int
	per       time.Duration
	blockTime time.Duration
	log       *zap.Logger
	now       func() time.Time
}

func NewRateLimiter(rps int, per, blockTime time.Duration, log *zap.Logger) *RateLimiter {
	return &RateLimiter{
		limiters:  make(map[string]*rate.Limiter),
		blocked:   make(map[string]time.Time),
		requests:  rps,
		per:       per,
		blockTime: blockTime,
		log:       log,
		now:       time.Now,
	}
}

func (r *RateLimiter) Limit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		ip, _, err := net.SplitHostPort(req.RemoteAddr)
		if err != nil {
			utils.BuildErrorResponse(r.log, w, exceptions.ErrServerProcess(err))
			return
		}

		r.mu.Lock()

		if blockedUntil, found := r.blocked[ip]; found {
			if r.now().Before(blockedUntil) {
				r.mu.Unlock()

				utils.BuildErrorResponse(r.log, w, exceptions.ErrTooManyRequests(errors.New("ip is blocked")))
				return
			}

			delete(r.blocked, ip)
			delete(r.limiters, ip)
		}

		limiter, exists := r.limiters[ip]
		if !exists {
			limiter = rate.NewLimiter(rate.Every(r.per), r.requests)
			r.limiters[ip] = limiter
		}

		r.mu.Unlock()

		if !limiter.Allow() {
			r.mu.Lock()
			r.blocked[ip] = r.now().Add(r.blockTime)
			r.mu.Unlock()

			utils.LogSecurityEvent(r.log, "rate_limit_block", utils.GetRequestID(req.Context()), "medium",
				zap.String(constvars.LoggingRemoteAddrKey, ip),
				zap.Duration("block_time", r.blockTime),
			)
			utils.BuildErrorResponse(r.log, w, exceptions.ErrTooManyRequests(errors.New("rate limit exceeded")))
			return
		}

		next.ServeHTTP(w, req)
	})
}
