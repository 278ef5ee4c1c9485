package routers

import (
	"giya-service/internal/app/config"
	"giya-service/internal/app/delivery/http/controllers"
	"giya-service/internal/app/delivery/http/middlewares"
	"giya-service/internal/app/drivers/rbac"
	"giya-service/internal/app/services/shared/pagecache"
	"giya-service/internal/app/services/shared/redis/redistest"
	"giya-service/internal/pkg/forms"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestRouter(t *testing.T) *chi.Mux {
	t.Helper()

	internalConfig := &config.InternalConfig{
		App: config.App{
			EndpointPrefix:             "/api",
			Version:                    "v1",
			FrontendDomain:             "http://localhost:3000",
			MaxRequests:                100,
			MaxTimeRequestsPerSeconds:  60,
			RequestBodyLimitInMegabyte: 10,
			RequestTimeoutInSeconds:    5,
			LoginRateLimit:             5,
			LoginRateBurst:             10,
			LoginBlockTimeInMinutes:    5,
		},
		PageCache: config.AppPageCache{TTLInSeconds: 60},
	}

	enforcer, err := rbac.NewRouteEnforcer()
	require.NoError(t, err)

	logger := zap.NewNop()
	accessLog := logrus.New()
	accessLog.SetOutput(io.Discard)

	pageCache := pagecache.NewPageCache(redistest.New(), time.Minute)
	m := middlewares.NewMiddlewares(logger, nil, pageCache, enforcer, internalConfig)
	binder := forms.NewBinder(1 << 20)

	router := chi.NewRouter()
	SetupRoutes(router, internalConfig, accessLog, m, &Controllers{
		Auth:         controllers.NewAuthController(logger, nil, binder, internalConfig),
		User:         controllers.NewUserController(logger, nil, binder, internalConfig),
		Appointment:  controllers.NewAppointmentController(logger, nil, binder, internalConfig),
		Availability: controllers.NewAvailabilityController(logger, nil, binder, internalConfig),
		Marketplace:  controllers.NewMarketplaceController(logger, nil, binder, internalConfig),
		Toolkit:      controllers.NewToolkitController(logger, nil, binder, internalConfig),
		Report:       controllers.NewReportController(logger, nil, internalConfig),
		Upload:       controllers.NewUploadController(logger, nil, binder, internalConfig),
		Revalidate:   controllers.NewRevalidateController(logger, pageCache, internalConfig),
	})
	return router
}

func TestSetupRoutes_RegistersPages(t *testing.T) {
	router := newTestRouter(t)

	registered := map[string]bool{}
	err := chi.Walk(router, func(method, route string, _ http.Handler, _ ...func(http.Handler) http.Handler) error {
		registered[method+" "+strings.TrimSuffix(route, "/")] = true
		return nil
	})
	require.NoError(t, err)

	for _, want := range []string{
		"POST /api/revalidate",
		"POST /api/v1/auth/login",
		"POST /api/v1/auth/register",
		"GET /api/v1/logout",
		"POST /api/v1/logout",
		"GET /api/v1/marketplace/featured",
		"POST /api/v1/uploads",
		"GET /api/v1/me",
		"GET /api/v1/admin/users",
		"PATCH /api/v1/admin/users/{id}",
		"DELETE /api/v1/admin/reports/{id}",
		"PATCH /api/v1/admin/toolkits/{id}",
		"POST /api/v1/counselor/home/counseling",
		"POST /api/v1/counselor/schedules/availability/toggle-band",
		"PUT /api/v1/counselor/settings/pricing",
		"POST /api/v1/counselor/marketplace/product/{id}/report",
		"GET /api/v1/carer/home/counseling/{code}",
		"POST /api/v1/carer/professionals/{id}/book",
		"POST /api/v1/carer/profile/appointments/{id}/cancel",
		"PATCH /api/v1/carer/profile/my-products/{id}",
		"GET /api/v1/carer/marketplace/product/{id}",
	} {
		assert.True(t, registered[want], "missing route %s", want)
	}
}

func TestSetupRoutes_RoleAreasRedirectWithoutSession(t *testing.T) {
	router := newTestRouter(t)

	for _, target := range []string{"/api/v1/admin/users", "/api/v1/counselor/home", "/api/v1/carer/home"} {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))

		assert.Equal(t, http.StatusSeeOther, rec.Code, target)
		assert.Equal(t, "/api/v1/logout", rec.Header().Get("Location"), target)
	}
}

func TestSetupRoutes_AuthenticatedAreaRejectsAnonymous(t *testing.T) {
	router := newTestRouter(t)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/me", nil))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
