package models

import "time"

type StagedUpload struct {
	ID           string
	ObjectName   string
	ContentType  string
	OriginalName string
	Size         int64
	CreatedAt    time.Time
}

// CachedPage is a rendered GET response held in the page cache.
type CachedPage struct {
	StatusCode  int       `json:"status_code"`
	ContentType string    `json:"content_type"`
	Body        []byte    `json:"body"`
	StoredAt    time.Time `json:"stored_at"`
}
