package middlewares

import (
	"context"
	"giya-service/internal/app/config"
	"giya-service/internal/app/drivers/rbac"
	"giya-service/internal/app/models"
	"giya-service/internal/app/services/shared/pagecache"
	"giya-service/internal/app/services/shared/redis/redistest"
	"giya-service/internal/pkg/constvars"
	"giya-service/internal/pkg/dto/requests"
	"giya-service/internal/pkg/dto/responses"
	"giya-service/internal/pkg/exceptions"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type MockAuthUsecase struct {
	mock.Mock
}

func (m *MockAuthUsecase) Login(ctx context.Context, request *requests.Login) (*responses.Login, error) {
	args := m.Called(ctx, request)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*responses.Login), args.Error(1)
}

func (m *MockAuthUsecase) Register(ctx context.Context, request *requests.Register) error {
	return m.Called(ctx, request).Error(0)
}

func (m *MockAuthUsecase) Logout(ctx context.Context, sessionID string) error {
	return m.Called(ctx, sessionID).Error(0)
}

func (m *MockAuthUsecase) ResolveSession(ctx context.Context, token string) (*models.Session, error) {
	args := m.Called(ctx, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Session), args.Error(1)
}

func newMiddlewares(t *testing.T, authUsecase *MockAuthUsecase) *Middlewares {
	t.Helper()
	enforcer, err := rbac.NewRouteEnforcer()
	require.NoError(t, err)
	internalConfig := &config.InternalConfig{
		App:       config.App{EndpointPrefix: "/api", Version: "v1", RequestTimeoutInSeconds: 5},
		PageCache: config.AppPageCache{TTLInSeconds: 60},
	}
	return NewMiddlewares(zap.NewNop(), authUsecase, pagecache.NewPageCache(redistest.New(), time.Minute), enforcer, internalConfig)
}

var okHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
})

func TestRoleGate(t *testing.T) {
	authUsecase := new(MockAuthUsecase)
	authUsecase.On("ResolveSession", mock.Anything, "carer-token").Return(&models.Session{UserID: 5, Role: constvars.RoleCarer}, nil)
	authUsecase.On("ResolveSession", mock.Anything, "stale").Return(nil, exceptions.ErrInvalidSession(nil))
	m := newMiddlewares(t, authUsecase)
	handler := m.RoleGate(okHandler)

	cases := []struct {
		name     string
		path     string
		token    string
		cookie   bool
		status   int
		location string
	}{
		{name: "carer in carer scope", path: "/api/v1/carer/home", token: "carer-token", status: http.StatusOK},
		{name: "carer through the cookie", path: "/api/v1/carer/toolkits/3", token: "carer-token", cookie: true, status: http.StatusOK},
		{name: "carer in admin scope", path: "/api/v1/admin/users", token: "carer-token", status: http.StatusSeeOther, location: "/api/v1/logout"},
		{name: "no session", path: "/api/v1/counselor/home", status: http.StatusSeeOther, location: "/api/v1/logout"},
		{name: "stale session", path: "/api/v1/carer/home", token: "stale", status: http.StatusSeeOther, location: "/api/v1/logout"},
		{name: "outside the gated scopes", path: "/api/v1/marketplace/featured", status: http.StatusOK},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tc.path, nil)
			if tc.token != "" && tc.cookie {
				req.AddCookie(&http.Cookie{Name: constvars.SessionCookieName, Value: tc.token})
			} else if tc.token != "" {
				req.Header.Set(constvars.HeaderAuthorization, "Bearer "+tc.token)
			}
			rr := httptest.NewRecorder()
			handler.ServeHTTP(rr, req)

			assert.Equal(t, tc.status, rr.Code)
			assert.Equal(t, tc.location, rr.Header().Get("Location"))
		})
	}
}

func TestAuthenticate(t *testing.T) {
	authUsecase := new(MockAuthUsecase)
	authUsecase.On("ResolveSession", mock.Anything, "tok").Return(&models.Session{UserID: 9, Role: constvars.RoleAdmin}, nil)
	m := newMiddlewares(t, authUsecase)

	var seen *models.Session
	handler := m.Authenticate(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen, _ = models.SessionFromContext(r.Context())
	}))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/me", nil)
	req.Header.Set(constvars.HeaderAuthorization, "Bearer tok")
	handler.ServeHTTP(httptest.NewRecorder(), req)
	require.NotNil(t, seen)
	assert.Equal(t, 9, seen.UserID)

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/v1/me", nil))
	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}

func TestCachePage(t *testing.T) {
	m := newMiddlewares(t, new(MockAuthUsecase))
	calls := 0
	handler := m.CachePage(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.Header().Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)
		_, _ = w.Write([]byte(`{"success":true}`))
	}))

	get := func() *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/marketplace/featured?category=toys", nil)
		req = req.WithContext(models.WithSession(req.Context(), &models.Session{UserID: 5}))
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, req)
		return rr
	}

	first := get()
	assert.Equal(t, "MISS", first.Header().Get(constvars.HeaderXPageCache))
	second := get()
	assert.Equal(t, "HIT", second.Header().Get(constvars.HeaderXPageCache))
	assert.Equal(t, `{"success":true}`, second.Body.String())
	assert.Equal(t, 1, calls)

	require.NoError(t, m.PageCache.Invalidate(context.Background(), constvars.PageFeaturedMarketplace))
	third := get()
	assert.Equal(t, "MISS", third.Header().Get(constvars.HeaderXPageCache))
	assert.Equal(t, 2, calls)
}

func TestRateLimiter(t *testing.T) {
	limiter := NewRateLimiter(2, time.Minute, 5*time.Minute, zap.NewNop())
	now := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)
	limiter.now = func() time.Time { return now }
	handler := limiter.Limit(okHandler)

	hit := func(addr string) int {
		req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", nil)
		req.RemoteAddr = addr
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, req)
		return rr.Code
	}

	assert.Equal(t, http.StatusOK, hit("10.0.0.1:5000"))
	assert.Equal(t, http.StatusOK, hit("10.0.0.1:5001"))
	assert.Equal(t, http.StatusTooManyRequests, hit("10.0.0.1:5002"))
	assert.Equal(t, http.StatusOK, hit("10.0.0.2:5000"))

	now = now.Add(6 * time.Minute)
	assert.Equal(t, http.StatusOK, hit("10.0.0.1:5003"))
}
