package usecase

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/primedecor/backend/internal/adapter/blobstore"
	domainErrors "github.com/primedecor/backend/internal/domain/errors"
	"github.com/primedecor/backend/internal/domain/model"
	"github.com/primedecor/backend/internal/domain/repository"
)

// MediaUseCase manages gallery asset records. Uploads happen directly
// against the blob store; this service only records and verifies them.
type MediaUseCase struct {
	media  repository.MediaRepository
	blobs  blobstore.Client
	logger *slog.Logger
}

// NewMediaUseCase constructs MediaUseCase.
func NewMediaUseCase(media repository.MediaRepository, blobs blobstore.Client, logger *slog.Logger) *MediaUseCase {
	return &MediaUseCase{media: media, blobs: blobs, logger: logger}
}

// Register records an uploaded object as a gallery asset. The object must
// already exist in the blob store; its content type and size are snapshotted
// from there.
func (u *MediaUseCase) Register(ctx context.Context, key, altText string) (*model.MediaAsset, error) {
	if strings.TrimSpace(key) == "" {
		return nil, domainErrors.NewValidation("key is required")
	}

	info, err := u.blobs.Stat(ctx, key)
	if err != nil {
		if errors.Is(err, blobstore.ErrObjectNotFound) {
			return nil, domainErrors.NewValidation("object %q does not exist in the blob store", key)
		}
		return nil, err
	}

	return u.media.Create(ctx, model.MediaAsset{
		Key:         key,
		ContentType: info.ContentType,
		SizeBytes:   info.Size,
		AltText:     altText,
	})
}

// List returns gallery assets, newest first.
func (u *MediaUseCase) List(ctx context.Context, filter repository.PageFilter) ([]model.MediaAsset, int, error) {
	filter.Limit, filter.Offset = ClampPage(filter.Limit, filter.Offset)
	return u.media.List(ctx, filter)
}

// Delete removes the asset record and best-effort deletes the blob. A blob
// delete failure is logged, not surfaced; the record is already gone.
func (u *MediaUseCase) Delete(ctx context.Context, id string) error {
	asset, err := u.media.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := u.media.Delete(ctx, id); err != nil {
		return err
	}

	if err := u.blobs.Delete(ctx, asset.Key); err != nil {
		u.logger.Error("blob delete failed after asset removal",
			slog.String("key", asset.Key),
			slog.String("error", err.Error()),
		)
	}
	return nil
}
