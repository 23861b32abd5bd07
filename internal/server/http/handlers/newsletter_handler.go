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

// NewsletterHandler manages subscription endpoints.
type NewsletterHandler struct {
	facade ContentFacade
}

// NewNewsletterHandler constructs NewsletterHandler.
func NewNewsletterHandler(facade ContentFacade) *NewsletterHandler {
	return &NewsletterHandler{facade: facade}
}

// Subscribe handles POST /api/newsletter/subscribe.
func (h *NewsletterHandler) Subscribe(c *gin.Context) {
	var req dto.SubscribeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badJSON(c)
		return
	}

	subscriber, err := h.facade.Subscribe(c.Request.Context(), req.Email)
	if err != nil {
		if errors.Is(err, domainErrors.ErrValidation) {
			abortError(c, http.StatusBadRequest, err.Error())
			return
		}
		abortError(c, http.StatusInternalServerError, internalErrorMessage)
		return
	}
	c.JSON(http.StatusOK, toSubscriberResponse(*subscriber))
}

// Unsubscribe handles POST /api/newsletter/unsubscribe.
func (h *NewsletterHandler) Unsubscribe(c *gin.Context) {
	var req dto.SubscribeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badJSON(c)
		return
	}

	if err := h.facade.Unsubscribe(c.Request.Context(), req.Email); err != nil {
		switch {
		case errors.Is(err, domainErrors.ErrValidation):
			abortError(c, http.StatusBadRequest, err.Error())
		case errors.Is(err, domainErrors.ErrNotFound):
			abortError(c, http.StatusNotFound, "subscription not found")
		default:
			abortError(c, http.StatusInternalServerError, internalErrorMessage)
		}
		return
	}
	c.Status(http.StatusNoContent)
}

// List handles GET /api/admin/subscribers.
func (h *NewsletterHandler) List(c *gin.Context) {
	limit, offset := pageParams(c)
	filter := repository.PageFilter{Limit: limit, Offset: offset}

	subscribers, total, err := h.facade.Subscribers(c.Request.Context(), filter)
	if err != nil {
		abortError(c, http.StatusInternalServerError, internalErrorMessage)
		return
	}

	items := make([]dto.SubscriberResponse, 0, len(subscribers))
	for _, s := range subscribers {
		items = append(items, toSubscriberResponse(s))
	}
	c.JSON(http.StatusOK, dto.ListResponse[dto.SubscriberResponse]{
		Items:  items,
		Total:  total,
		Limit:  filter.Limit,
		Offset: filter.Offset,
	})
}

func toSubscriberResponse(subscriber model.Subscriber) dto.SubscriberResponse {
	return dto.SubscriberResponse{
		ID:           subscriber.ID,
		Email:        subscriber.Email,
		Active:       subscriber.Active,
		SubscribedAt: subscriber.SubscribedAt,
	}
}
