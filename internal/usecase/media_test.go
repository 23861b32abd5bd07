package usecase

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/primedecor/backend/internal/adapter/blobstore"
	domainErrors "github.com/primedecor/backend/internal/domain/errors"
	"github.com/primedecor/backend/internal/domain/model"
	"github.com/primedecor/backend/internal/domain/repository"
)

type stubBlobClient struct {
	statFn   func(context.Context, string) (*blobstore.ObjectInfo, error)
	deleteFn func(context.Context, string) error
}

func (s *stubBlobClient) Stat(ctx context.Context, key string) (*blobstore.ObjectInfo, error) {
	return s.statFn(ctx, key)
}

func (s *stubBlobClient) Delete(ctx context.Context, key string) error {
	return s.deleteFn(ctx, key)
}

type stubMediaRepository struct {
	createFn func(context.Context, model.MediaAsset) (*model.MediaAsset, error)
	getFn    func(context.Context, string) (*model.MediaAsset, error)
	deleteFn func(context.Context, string) error
}

func (s *stubMediaRepository) Create(ctx context.Context, a model.MediaAsset) (*model.MediaAsset, error) {
	return s.createFn(ctx, a)
}

func (s *stubMediaRepository) GetByID(ctx context.Context, id string) (*model.MediaAsset, error) {
	return s.getFn(ctx, id)
}

func (s *stubMediaRepository) List(context.Context, repository.PageFilter) ([]model.MediaAsset, int, error) {
	panic("not implemented")
}

func (s *stubMediaRepository) Delete(ctx context.Context, id string) error {
	return s.deleteFn(ctx, id)
}

func mediaLogger() *slog.Logger {
	return slog.New(slog.NewJSONHandler(io.Discard, nil))
}

func TestMediaRegisterSnapshotsBlobMetadata(t *testing.T) {
	blobs := &stubBlobClient{statFn: func(_ context.Context, key string) (*blobstore.ObjectInfo, error) {
		return &blobstore.ObjectInfo{Key: key, ContentType: "image/png", Size: 512}, nil
	}}
	media := &stubMediaRepository{createFn: func(_ context.Context, a model.MediaAsset) (*model.MediaAsset, error) {
		a.ID = "m1"
		return &a, nil
	}}

	uc := NewMediaUseCase(media, blobs, mediaLogger())
	asset, err := uc.Register(context.Background(), "gallery/sofa.png", "grey sofa")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if asset.ContentType != "image/png" || asset.SizeBytes != 512 || asset.AltText != "grey sofa" {
		t.Fatalf("unexpected asset %+v", asset)
	}
}

func TestMediaRegisterRejectsMissingObject(t *testing.T) {
	blobs := &stubBlobClient{statFn: func(context.Context, string) (*blobstore.ObjectInfo, error) {
		return nil, blobstore.ErrObjectNotFound
	}}
	media := &stubMediaRepository{createFn: func(context.Context, model.MediaAsset) (*model.MediaAsset, error) {
		t.Fatal("create must not be called")
		return nil, nil
	}}

	uc := NewMediaUseCase(media, blobs, mediaLogger())
	if _, err := uc.Register(context.Background(), "nope.png", ""); !errors.Is(err, domainErrors.ErrValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestMediaDeleteBestEffortBlobRemoval(t *testing.T) {
	blobDeleted := false
	blobs := &stubBlobClient{deleteFn: func(_ context.Context, key string) error {
		blobDeleted = true
		if key != "gallery/old.png" {
			t.Fatalf("unexpected key %q", key)
		}
		return errors.New("store unreachable")
	}}
	media := &stubMediaRepository{
		getFn: func(context.Context, string) (*model.MediaAsset, error) {
			return &model.MediaAsset{ID: "m1", Key: "gallery/old.png"}, nil
		},
		deleteFn: func(context.Context, string) error { return nil },
	}

	uc := NewMediaUseCase(media, blobs, mediaLogger())
	// The blob store failing must not surface: the record is gone.
	if err := uc.Delete(context.Background(), "m1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !blobDeleted {
		t.Fatal("expected blob delete attempt")
	}
}
