package repository

import (
	"context"

	"github.com/primedecor/backend/internal/domain/model"
)

// MediaRepository persists gallery asset records.
type MediaRepository interface {
	Create(ctx context.Context, asset model.MediaAsset) (*model.MediaAsset, error)
	GetByID(ctx context.Context, id string) (*model.MediaAsset, error)
	List(ctx context.Context, filter PageFilter) ([]model.MediaAsset, int, error)
	Delete(ctx context.Context, id string) error
}
