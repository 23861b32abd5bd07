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

// QuoteHandler manages quote requests.
type QuoteHandler struct {
	facade ContentFacade
}

// NewQuoteHandler constructs QuoteHandler.
func NewQuoteHandler(facade ContentFacade) *QuoteHandler {
	return &QuoteHandler{facade: facade}
}

// Submit handles POST /api/quotes.
func (h *QuoteHandler) Submit(c *gin.Context) {
	var req dto.QuoteRequestPayload
	if err := c.ShouldBindJSON(&req); err != nil {
		badJSON(c)
		return
	}

	quote, err := h.facade.SubmitQuote(c.Request.Context(), model.QuoteRequest{
		Name:        req.Name,
		Email:       req.Email,
		Phone:       req.Phone,
		ProjectType: req.ProjectType,
		Budget:      req.Budget,
		Message:     req.Message,
	})
	if err != nil {
		if errors.Is(err, domainErrors.ErrValidation) {
			abortError(c, http.StatusBadRequest, err.Error())
			return
		}
		abortError(c, http.StatusInternalServerError, internalErrorMessage)
		return
	}
	c.JSON(http.StatusCreated, toQuoteResponse(*quote))
}

// List handles GET /api/admin/quotes.
func (h *QuoteHandler) List(c *gin.Context) {
	limit, offset := pageParams(c)
	filter := repository.PageFilter{Limit: limit, Offset: offset}

	quotes, total, err := h.facade.Quotes(c.Request.Context(), filter)
	if err != nil {
		abortError(c, http.StatusInternalServerError, internalErrorMessage)
		return
	}

	items := make([]dto.QuoteResponse, 0, len(quotes))
	for _, q := range quotes {
		items = append(items, toQuoteResponse(q))
	}
	c.JSON(http.StatusOK, dto.ListResponse[dto.QuoteResponse]{
		Items:  items,
		Total:  total,
		Limit:  filter.Limit,
		Offset: filter.Offset,
	})
}

// UpdateStatus handles PUT /api/admin/quotes/:id/status.
func (h *QuoteHandler) UpdateStatus(c *gin.Context) {
	var req dto.StatusUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badJSON(c)
		return
	}

	err := h.facade.UpdateQuoteStatus(c.Request.Context(), c.Param("id"), model.QuoteStatus(req.Status))
	if err != nil {
		switch {
		case errors.Is(err, domainErrors.ErrValidation):
			abortError(c, http.StatusBadRequest, err.Error())
		case errors.Is(err, domainErrors.ErrNotFound):
			abortError(c, http.StatusNotFound, "quote request not found")
		default:
			abortError(c, http.StatusInternalServerError, internalErrorMessage)
		}
		return
	}
	c.Status(http.StatusNoContent)
}

func toQuoteResponse(quote model.QuoteRequest) dto.QuoteResponse {
	return dto.QuoteResponse{
		ID:          quote.ID,
		Name:        quote.Name,
		Email:       quote.Email,
		Phone:       quote.Phone,
		ProjectType: quote.ProjectType,
		Budget:      quote.Budget,
		Message:     quote.Message,
		Status:      string(quote.Status),
		CreatedAt:   quote.CreatedAt,
	}
}
