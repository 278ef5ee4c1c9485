package responses

import "time"

type ProductReport struct {
	ID              string    `json:"id"`
	ProductID       int       `json:"product_id"`
	ProductName     string    `json:"product_name"`
	ProductCategory string    `json:"product_category"`
	Reasons         []string  `json:"reasons"`
	ReporterUserID  int       `json:"reporter_user_id"`
	ReporterRole    string    `json:"reporter_role"`
	ReportedAt      time.Time `json:"reported_at"`
}
