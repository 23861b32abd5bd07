package dto

import "time"

// RegisterMediaRequest records an object already uploaded to the blob store.
type RegisterMediaRequest struct {
	Key     string `json:"key"`
	AltText string `json:"alt_text"`
}

// MediaResponse is a gallery asset.
type MediaResponse struct {
	ID          string    `json:"id"`
	Key         string    `json:"key"`
	ContentType string    `json:"content_type,omitempty"`
	SizeBytes   int64     `json:"size_bytes,omitempty"`
	AltText     string    `json:"alt_text,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}
