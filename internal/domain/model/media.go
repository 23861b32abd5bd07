package model

import "time"

// MediaAsset references an object uploaded to the external blob store.
// ContentType and SizeBytes are snapshots taken when the record was created.
type MediaAsset struct {
	ID          string
	Key         string
	ContentType string
	SizeBytes   int64
	AltText     string
	CreatedAt   time.Time
}
