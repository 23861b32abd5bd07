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

// ProductHandler manages catalog endpoints.
type ProductHandler struct {
	facade CatalogFacade
}

// NewProductHandler constructs ProductHandler.
func NewProductHandler(facade CatalogFacade) *ProductHandler {
	return &ProductHandler{facade: facade}
}

// List handles GET /api/products.
func (h *ProductHandler) List(c *gin.Context) {
	limit, offset := pageParams(c)
	filter := repository.ProductFilter{
		Category: c.Query("category"),
		Limit:    limit,
		Offset:   offset,
	}

	products, total, err := h.facade.Products(c.Request.Context(), filter)
	if err != nil {
		abortError(c, http.StatusInternalServerError, internalErrorMessage)
		return
	}

	items := make([]dto.ProductResponse, 0, len(products))
	for _, p := range products {
		items = append(items, toProductResponse(p))
	}
	c.JSON(http.StatusOK, dto.ListResponse[dto.ProductResponse]{
		Items:  items,
		Total:  total,
		Limit:  filter.Limit,
		Offset: filter.Offset,
	})
}

// Get handles GET /api/products/:id.
func (h *ProductHandler) Get(c *gin.Context) {
	product, err := h.facade.Product(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, domainErrors.ErrNotFound) {
			abortError(c, http.StatusNotFound, "product not found")
			return
		}
		abortError(c, http.StatusInternalServerError, internalErrorMessage)
		return
	}
	c.JSON(http.StatusOK, toProductResponse(*product))
}

// Create handles POST /api/admin/products.
func (h *ProductHandler) Create(c *gin.Context) {
	var req dto.ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badJSON(c)
		return
	}

	product, err := h.facade.CreateProduct(c.Request.Context(), productFromRequest(req))
	if err != nil {
		if errors.Is(err, domainErrors.ErrValidation) {
			abortError(c, http.StatusBadRequest, err.Error())
			return
		}
		abortError(c, http.StatusInternalServerError, internalErrorMessage)
		return
	}
	c.JSON(http.StatusCreated, toProductResponse(*product))
}

// Update handles PUT /api/admin/products/:id.
func (h *ProductHandler) Update(c *gin.Context) {
	var req dto.ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badJSON(c)
		return
	}

	product := productFromRequest(req)
	product.ID = c.Param("id")

	updated, err := h.facade.UpdateProduct(c.Request.Context(), product)
	if err != nil {
		switch {
		case errors.Is(err, domainErrors.ErrValidation):
			abortError(c, http.StatusBadRequest, err.Error())
		case errors.Is(err, domainErrors.ErrNotFound):
			abortError(c, http.StatusNotFound, "product not found")
		default:
			abortError(c, http.StatusInternalServerError, internalErrorMessage)
		}
		return
	}
	c.JSON(http.StatusOK, toProductResponse(*updated))
}

// Delete handles DELETE /api/admin/products/:id.
func (h *ProductHandler) Delete(c *gin.Context) {
	if err := h.facade.DeleteProduct(c.Request.Context(), c.Param("id")); err != nil {
		if errors.Is(err, domainErrors.ErrNotFound) {
			abortError(c, http.StatusNotFound, "product not found")
			return
		}
		abortError(c, http.StatusInternalServerError, internalErrorMessage)
		return
	}
	c.Status(http.StatusNoContent)
}

func productFromRequest(req dto.ProductRequest) model.Product {
	return model.Product{
		Name:          req.Name,
		Description:   req.Description,
		Category:      req.Category,
		Price:         req.Price,
		StockQuantity: req.StockQuantity,
		ImageURL:      req.ImageURL,
	}
}

func toProductResponse(product model.Product) dto.ProductResponse {
	return dto.ProductResponse{
		ID:            product.ID,
		Name:          product.Name,
		Description:   product.Description,
		Category:      product.Category,
		Price:         product.Price,
		StockQuantity: product.StockQuantity,
		ImageURL:      product.ImageURL,
		CreatedAt:     product.CreatedAt,
		UpdatedAt:     product.UpdatedAt,
	}
}
