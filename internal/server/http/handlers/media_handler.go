package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/primedecor/backend/internal/domain/errors"
	"github.com/primedecor/backend/internal/domain/model"
	"github.com/primedecor/backend/internal/domain/repository"
	"github.com/primedecor/backend/internal/server/http/dto"
)

// MediaHandler manages the public gallery and admin asset registration.
type MediaHandler struct {
	facade MediaFacade
}

// NewMediaHandler constructs MediaHandler.
func NewMediaHandler(facade MediaFacade) *MediaHandler {
	return &MediaHandler{facade: facade}
}

// Gallery handles GET /api/gallery.
func (h *MediaHandler) Gallery(c *gin.Context) {
	limit, offset := pageParams(c)
	filter := repository.PageFilter{Limit: limit, Offset: offset}

	assets, total, err := h.facade.MediaAssets(c.Request.Context(), filter)
	if err != nil {
		abortError(c, http.StatusInternalServerError, internalErrorMessage)
		return
	}

	items := make([]dto.MediaResponse, 0, len(assets))
	for _, a := range assets {
		items = append(items, toMediaResponse(a))
	}
	c.JSON(http.StatusOK, dto.ListResponse[dto.MediaResponse]{
		Items:  items,
		Total:  total,
		Limit:  filter.Limit,
		Offset: filter.Offset,
	})
}

// Register handles POST /api/admin/media.
func (h *MediaHandler) Register(c *gin.Context) {
	var req dto.RegisterMediaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badJSON(c)
		return
	}

	asset, err := h.facade.RegisterMedia(c.Request.Context(), req.Key, req.AltText)
	if err != nil {
		switch {
		case errors.Is(err, domainErrors.ErrValidation),
			errors.Is(err, domainErrors.ErrNotFound):
			abortError(c, http.StatusBadRequest, err.Error())
		default:
			abortError(c, http.StatusInternalServerError, internalErrorMessage)
		}
		return
	}
	c.JSON(http.StatusCreated, toMediaResponse(*asset))
}

// Delete handles DELETE /api/admin/media/:id.
func (h *MediaHandler) Delete(c *gin.Context) {
	if err := h.facade.DeleteMedia(c.Request.Context(), c.Param("id")); err != nil {
		if errors.Is(err, domainErrors.ErrNotFound) {
			abortError(c, http.StatusNotFound, "media asset not found")
			return
		}
		abortError(c, http.StatusInternalServerError, internalErrorMessage)
		return
	}
	c.Status(http.StatusNoContent)
}

func toMediaResponse(asset model.MediaAsset) dto.MediaResponse {
	return dto.MediaResponse{
		ID:          asset.ID,
		Key:         asset.Key,
		ContentType: asset.ContentType,
		SizeBytes:   asset.SizeBytes,
		AltText:     asset.AltText,
		CreatedAt:   asset.CreatedAt,
	}
}
