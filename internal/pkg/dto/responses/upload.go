package responses

type StagedUpload struct {
	ID          string `json:"id"`
	URL         string `json:"url"`
	ContentType string `json:"content_type"`
	File        string `json:"file"`
}

type Revalidate struct {
	Revalidated bool  `json:"revalidated"`
	Now         int64 `json:"now"`
}
