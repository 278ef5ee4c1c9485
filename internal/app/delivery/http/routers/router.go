package routers

import (
	"giya-service/internal/app/config"
	"giya-service/internal/app/delivery/http/controllers"
	"giya-service/internal/app/delivery/http/middlewares"
	"path"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
	"github.com/sirupsen/logrus"
)

type Controllers struct {
	Auth         *controllers.AuthController
	User         *controllers.UserController
	Appointment  *controllers.AppointmentController
	Availability *controllers.AvailabilityController
	Marketplace  *controllers.MarketplaceController
	Toolkit      *controllers.ToolkitController
	Report       *controllers.ReportController
	Upload       *controllers.UploadController
	Revalidate   *controllers.RevalidateController
}

func SetupRoutes(
	router *chi.Mux,
	internalConfig *config.InternalConfig,
	accessLog *logrus.Logger,
	middlewares *middlewares.Middlewares,
	controllers *Controllers,
) {

	corsOptions := cors.Options{
		AllowedOrigins:   []string{internalConfig.App.FrontendDomain},
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token", "X-Revalidate-Secret"},
		ExposedHeaders:   []string{"Link", "X-Page-Cache"},
		AllowCredentials: true,
		MaxAge:           300,
	}
	router.Use(cors.Handler(corsOptions))

	// Rate limiting middleware using httprate
	window := time.Duration(internalConfig.App.MaxTimeRequestsPerSeconds) * time.Second
	router.Use(httprate.LimitByIP(internalConfig.App.MaxRequests, window))
	router.Use(middleware.RequestSize(int64(internalConfig.App.RequestBodyLimitInMegabyte) << 20))

	router.Use(middlewares.RequestIDMiddleware)
	router.Use(middlewares.Logging(middlewares.Log))
	router.Use(middlewares.RequestLogger(internalConfig.App, accessLog))
	router.Use(middlewares.ErrorHandler)

	router.Post(path.Join("/", internalConfig.App.EndpointPrefix, "revalidate"), controllers.Revalidate.Revalidate)

	router.Route(internalConfig.App.MountPrefix(), func(r chi.Router) {
		r.Route("/auth", func(r chi.Router) {
			attachAuthRoutes(r, internalConfig, middlewares, controllers.Auth)
		})
		r.Get("/logout", controllers.Auth.Logout)
		r.Post("/logout", controllers.Auth.Logout)

		r.Route("/marketplace", func(r chi.Router) {
			r.Get("/featured", controllers.Marketplace.ListProducts)
			r.Get("/categories", controllers.Marketplace.Categories)
		})

		r.Group(func(r chi.Router) {
			r.Use(middlewares.Authenticate)
			r.Post("/uploads", controllers.Upload.Stage)
			r.Get("/me", controllers.User.GetCurrentUser)
		})

		r.Route("/admin", func(r chi.Router) {
			r.Use(middlewares.RoleGate, middlewares.CachePage)
			attachAdminRoutes(r, controllers)
		})

		r.Route("/counselor", func(r chi.Router) {
			r.Use(middlewares.RoleGate, middlewares.CachePage)
			attachCounselorRoutes(r, controllers)
		})

		r.Route("/carer", func(r chi.Router) {
			r.Use(middlewares.RoleGate, middlewares.CachePage)
			attachCarerRoutes(r, controllers)
		})
	})
}
