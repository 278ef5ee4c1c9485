package routers

import (
	"github.com/go-chi/chi/v5"
)

func attachAdminRoutes(router chi.Router, c *Controllers) {
	router.Route("/users", func(r chi.Router) {
		r.Get("/", c.User.ListProfessionals)
		r.Post("/", c.User.CreateProfessional)
		r.Patch("/{id}", c.User.AdminUpdateUser)
	})

	router.Route("/toolkits", func(r chi.Router) {
		r.Get("/", c.Toolkit.ListToolkits)
		r.Post("/", c.Toolkit.CreateToolkit)
		r.Get("/{id}", c.Toolkit.GetToolkit)
		r.Patch("/{id}", c.Toolkit.UpdateToolkit)
	})

	router.Route("/reports", func(r chi.Router) {
		r.Get("/", c.Report.ListReports)
		r.Delete("/{id}", c.Report.DismissReport)
	})

	router.Get("/profile", c.User.GetCurrentUser)
	router.Put("/settings", c.User.UpdateSettings)
}
