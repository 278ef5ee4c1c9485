package constvars

const (
	MongoCollectionProductReports = "product_reports"
)
