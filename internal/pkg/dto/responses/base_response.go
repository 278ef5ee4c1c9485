package responses

// ResponseDTO is the envelope of every non-raw response. Error responses
// use exceptions.CustomError instead.
type ResponseDTO struct {
	Success    bool        `json:"success"`
	Message    string      `json:"message,omitempty"`
	Data       interface{} `json:"data,omitempty"`
	Pagination *Pagination `json:"pagination,omitempty"`
}

// Pagination describes a page of a locally stored listing. Next and
// Previous follow the backend's own paginated shape.
type Pagination struct {
	Total      int    `json:"total"`
	Page       int    `json:"page"`
	PageSize   int    `json:"page_size"`
	TotalPages int    `json:"total_pages"`
	NextURL    string `json:"next,omitempty"`
	PrevURL    string `json:"previous,omitempty"`
}
