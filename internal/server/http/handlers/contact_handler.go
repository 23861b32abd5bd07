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

// ContactHandler manages the public contact form and its back office.
type ContactHandler struct {
	facade ContentFacade
}

// NewContactHandler constructs ContactHandler.
func NewContactHandler(facade ContentFacade) *ContactHandler {
	return &ContactHandler{facade: facade}
}

// Submit handles POST /api/contact.
func (h *ContactHandler) Submit(c *gin.Context) {
	var req dto.ContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badJSON(c)
		return
	}

	contact, err := h.facade.SubmitContact(c.Request.Context(), model.ContactMessage{
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		Subject: req.Subject,
		Message: req.Message,
	})
	if err != nil {
		if errors.Is(err, domainErrors.ErrValidation) {
			abortError(c, http.StatusBadRequest, err.Error())
			return
		}
		abortError(c, http.StatusInternalServerError, internalErrorMessage)
		return
	}
	c.JSON(http.StatusCreated, toContactResponse(*contact))
}

// List handles GET /api/admin/contacts.
func (h *ContactHandler) List(c *gin.Context) {
	limit, offset := pageParams(c)
	filter := repository.PageFilter{Limit: limit, Offset: offset}

	contacts, total, err := h.facade.Contacts(c.Request.Context(), filter)
	if err != nil {
		abortError(c, http.StatusInternalServerError, internalErrorMessage)
		return
	}

	items := make([]dto.ContactResponse, 0, len(contacts))
	for _, m := range contacts {
		items = append(items, toContactResponse(m))
	}
	c.JSON(http.StatusOK, dto.ListResponse[dto.ContactResponse]{
		Items:  items,
		Total:  total,
		Limit:  filter.Limit,
		Offset: filter.Offset,
	})
}

// UpdateStatus handles PUT /api/admin/contacts/:id/status.
func (h *ContactHandler) UpdateStatus(c *gin.Context) {
	var req dto.StatusUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badJSON(c)
		return
	}

	err := h.facade.UpdateContactStatus(c.Request.Context(), c.Param("id"), model.ContactStatus(req.Status))
	if err != nil {
		switch {
		case errors.Is(err, domainErrors.ErrValidation):
			abortError(c, http.StatusBadRequest, err.Error())
		case errors.Is(err, domainErrors.ErrNotFound):
			abortError(c, http.StatusNotFound, "contact message not found")
		default:
			abortError(c, http.StatusInternalServerError, internalErrorMessage)
		}
		return
	}
	c.Status(http.StatusNoContent)
}

func toContactResponse(contact model.ContactMessage) dto.ContactResponse {
	return dto.ContactResponse{
		ID:        contact.ID,
		Name:      contact.Name,
		Email:     contact.Email,
		Phone:     contact.Phone,
		Subject:   contact.Subject,
		Message:   contact.Message,
		Status:    string(contact.Status),
		CreatedAt: contact.CreatedAt,
	}
}
