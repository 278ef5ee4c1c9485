package routers

import (
	"github.com/go-chi/chi/v5"
)

func attachCarerRoutes(router chi.Router, c *Controllers) {
	router.Get("/home", c.Appointment.Home)
	router.Get("/home/counseling/{code}", c.Appointment.JoinCounselingByCode)

	router.Route("/professionals", func(r chi.Router) {
		r.Get("/", c.User.ListProfessionals)
		r.Get("/{id}", c.User.GetProfessional)
		r.Get("/{id}/timeslots", c.Appointment.Timeslots)
		r.Post("/{id}/book", c.Appointment.Book)
	})

	router.Route("/profile", func(r chi.Router) {
		r.Get("/appointments", c.Appointment.Home)
		r.Post("/appointments/{id}/cancel", c.Appointment.Cancel)
		r.Get("/favorites", c.Marketplace.Favorites)
		r.Get("/my-products", c.Marketplace.MyProducts)
		r.Post("/my-products", c.Marketplace.CreateProduct)
		r.Patch("/my-products/{id}", c.Marketplace.UpdateProduct)
	})

	router.Route("/toolkits", func(r chi.Router) {
		r.Get("/", c.Toolkit.ListToolkits)
		r.Get("/{id}", c.Toolkit.GetToolkit)
	})

	router.Route("/marketplace", func(r chi.Router) {
		attachMarketplaceRoutes(r, c.Marketplace)
	})

	router.Put("/settings", c.User.UpdateSettings)
}
