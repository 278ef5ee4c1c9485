package responses

import "giya-service/internal/pkg/schemas"

type ProductDetail struct {
	Product    schemas.Product `json:"product"`
	IsFavorite bool            `json:"is_favorite"`
	IsOwner    bool            `json:"is_owner"`
}

type ProductReportForm struct {
	Product schemas.Product  `json:"product"`
	Reasons []schemas.Option `json:"reasons"`
}

type ReportProduct struct {
	ProductID int      `json:"product_id"`
	Reasons   []string `json:"reasons"`
}
