package routers

import (
	"giya-service/internal/app/delivery/http/controllers"

	"github.com/go-chi/chi/v5"
)

// attachMarketplaceRoutes mounts the browsing pages shared by counselors and
// carers.
func attachMarketplaceRoutes(router chi.Router, marketplaceController *controllers.MarketplaceController) {
	router.Get("/", marketplaceController.ListProducts)
	router.Route("/product/{id}", func(r chi.Router) {
		r.Get("/", marketplaceController.GetProduct)
		r.Post("/favorite", marketplaceController.ToggleFavorite)
		r.Get("/report", marketplaceController.ReportForm)
		r.Post("/report", marketplaceController.ReportProduct)
	})
}
