package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/primedecor/backend/internal/domain/errors"
	"github.com/primedecor/backend/internal/domain/model"
	"github.com/primedecor/backend/internal/domain/repository"
	"github.com/primedecor/backend/internal/server/http/dto"
	"github.com/primedecor/backend/internal/usecase"
)

// OrderHandler manages order-related endpoints.
type OrderHandler struct {
	facade OrderFacade
}

// NewOrderHandler constructs OrderHandler.
func NewOrderHandler(facade OrderFacade) *OrderHandler {
	return &OrderHandler{facade: facade}
}

// Create handles POST /api/orders.
func (h *OrderHandler) Create(c *gin.Context) {
	var req dto.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badJSON(c)
		return
	}

	lines := make([]usecase.OrderLine, 0, len(req.Items))
	for _, item := range req.Items {
		lines = append(lines, usecase.OrderLine{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
		})
	}

	order, err := h.facade.PlaceOrder(c.Request.Context(), usecase.PlaceOrderCommand{
		CustomerName:    req.CustomerName,
		CustomerEmail:   req.CustomerEmail,
		CustomerPhone:   req.CustomerPhone,
		ShippingAddress: req.ShippingAddress,
		BillingAddress:  req.BillingAddress,
		PaymentMethod:   req.PaymentMethod,
		Notes:           req.Notes,
		Items:           lines,
	})
	if err != nil {
		switch {
		case errors.Is(err, domainErrors.ErrValidation),
			errors.Is(err, domainErrors.ErrNotFound),
			errors.Is(err, domainErrors.ErrInsufficientStock):
			abortError(c, http.StatusBadRequest, err.Error())
		default:
			abortError(c, http.StatusInternalServerError, internalErrorMessage)
		}
		return
	}

	c.JSON(http.StatusCreated, dto.CreateOrderResponse{
		Success: true,
		Order:   toOrderResponse(*order),
		Message: "Order created successfully",
	})
}

// List handles GET /api/admin/orders.
func (h *OrderHandler) List(c *gin.Context) {
	limit, offset := pageParams(c)
	filter := repository.OrderFilter{
		Status: c.Query("status"),
		Limit:  limit,
		Offset: offset,
	}

	orders, total, err := h.facade.Orders(c.Request.Context(), filter)
	if err != nil {
		abortError(c, http.StatusInternalServerError, internalErrorMessage)
		return
	}

	items := make([]dto.OrderResponse, 0, len(orders))
	for _, o := range orders {
		items = append(items, toOrderResponse(o))
	}
	c.JSON(http.StatusOK, dto.ListResponse[dto.OrderResponse]{
		Items:  items,
		Total:  total,
		Limit:  filter.Limit,
		Offset: filter.Offset,
	})
}

// Get handles GET /api/admin/orders/:id.
func (h *OrderHandler) Get(c *gin.Context) {
	order, err := h.facade.Order(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, domainErrors.ErrNotFound) {
			abortError(c, http.StatusNotFound, "order not found")
			return
		}
		abortError(c, http.StatusInternalServerError, internalErrorMessage)
		return
	}
	c.JSON(http.StatusOK, toOrderResponse(*order))
}

func toOrderResponse(order model.Order) dto.OrderResponse {
	items := make([]dto.OrderItemResponse, 0, len(order.Items))
	for _, item := range order.Items {
		items = append(items, dto.OrderItemResponse{
			ID:         item.ID,
			ProductID:  item.ProductID,
			Quantity:   item.Quantity,
			UnitPrice:  item.UnitPrice,
			TotalPrice: item.TotalPrice,
		})
	}
	return dto.OrderResponse{
		ID:              order.ID,
		OrderNumber:     order.Number,
		CustomerName:    order.CustomerName,
		CustomerEmail:   order.CustomerEmail,
		CustomerPhone:   order.CustomerPhone,
		ShippingAddress: order.ShippingAddress,
		BillingAddress:  order.BillingAddress,
		TotalAmount:     order.TotalAmount,
		PaymentMethod:   order.PaymentMethod,
		Notes:           order.Notes,
		Status:          string(order.Status),
		PaymentStatus:   string(order.PaymentStatus),
		Items:           items,
		CreatedAt:       order.CreatedAt,
	}
}
