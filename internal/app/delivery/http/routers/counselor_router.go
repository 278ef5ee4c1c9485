package routers

import (
	"github.com/go-chi/chi/v5"
)

func attachCounselorRoutes(router chi.Router, c *Controllers) {
	router.Get("/home", c.Appointment.Home)
	router.Post("/home/counseling", c.Appointment.JoinCounseling)

	router.Route("/schedules", func(r chi.Router) {
		r.Get("/", c.Appointment.Calendar)
		r.Get("/availability", c.Availability.Editor)
		r.Post("/availability", c.Availability.Submit)
		r.Post("/availability/toggle-band", c.Availability.ToggleBand)
	})

	router.Route("/marketplace", func(r chi.Router) {
		attachMarketplaceRoutes(r, c.Marketplace)
	})

	router.Get("/profile", c.User.GetCurrentUser)
	router.Put("/settings", c.User.UpdateSettings)
	router.Put("/settings/pricing", c.User.UpdatePricing)
}
