package routers

import (
	"giya-service/internal/app/config"
	"giya-service/internal/app/delivery/http/controllers"
	"giya-service/internal/app/delivery/http/middlewares"
	"time"

	"github.com/go-chi/chi/v5"
)

func attachAuthRoutes(router chi.Router, internalConfig *config.InternalConfig, m *middlewares.Middlewares, authController *controllers.AuthController) {
	loginLimiter := middlewares.NewRateLimiter(
		internalConfig.App.LoginRateBurst,
		internalConfig.App.LoginRatePeriod(),
		time.Duration(internalConfig.App.LoginBlockTimeInMinutes)*time.Minute,
		m.Log,
	)

	router.With(loginLimiter.Limit).Post("/login", authController.Login)
	router.Post("/register", authController.Register)
}
