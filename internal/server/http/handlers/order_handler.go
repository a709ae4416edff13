package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/Chen-HR/SDD-BreakfastOrderingSystem-Practice/internal/domain/errors"
	"github.com/Chen-HR/SDD-BreakfastOrderingSystem-Practice/internal/domain/model"
	"github.com/Chen-HR/SDD-BreakfastOrderingSystem-Practice/internal/server/http/dto"
)

// OrderHandler manages customer order endpoints.
type OrderHandler struct {
	facade BreakfastFacade
}

// NewOrderHandler constructs OrderHandler.
func NewOrderHandler(facade BreakfastFacade) *OrderHandler {
	return &OrderHandler{facade: facade}
}

// Create handles POST /api/orders. The whole placement is one atomic
// unit of work; any rejected line leaves stock untouched.
func (h *OrderHandler) Create(c *gin.Context) {
	userID := CurrentUserID(c)

	var req dto.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.MessageResponse{Message: "items list is required"})
		return
	}

	if _, err := h.facade.UserByID(c.Request.Context(), userID); err != nil {
		if errors.Is(err, domainErrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, dto.MessageResponse{Message: "user not found"})
			return
		}
		c.Status(http.StatusInternalServerError)
		return
	}

	lines := make([]model.OrderLine, 0, len(req.Items))
	for _, item := range req.Items {
		lines = append(lines, model.OrderLine{MenuItemID: item.ItemID, Quantity: item.Quantity})
	}

	order, err := h.facade.PlaceOrder(c.Request.Context(), userID, req.DeliveryAddress, lines)
	if err != nil {
		switch {
		case errors.Is(err, domainErrors.ErrEmptyOrder),
			errors.Is(err, domainErrors.ErrInvalidQuantity),
			errors.Is(err, domainErrors.ErrInsufficientStock),
			errors.Is(err, domainErrors.ErrNotFound):
			c.JSON(http.StatusBadRequest, dto.MessageResponse{Message: err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, dto.MessageResponse{Message: "could not create order"})
		}
		return
	}

	c.JSON(http.StatusCreated, dto.CreateOrderResponse{
		OrderID:     order.ID,
		OrderNumber: order.Number,
		TotalAmount: order.TotalAmount,
		Status:      string(order.Status),
	})
}

// List handles GET /api/orders.
func (h *OrderHandler) List(c *gin.Context) {
	userID := CurrentUserID(c)
	orders, err := h.facade.OrdersForUser(c.Request.Context(), userID)
	if err != nil {
		c.Status(http.StatusInternalServerError)
		return
	}
	if len(orders) == 0 {
		c.Status(http.StatusNoContent)
		return
	}

	response := make([]dto.OrderResponse, 0, len(orders))
	for _, o := range orders {
		response = append(response, toOrderResponse(o))
	}
	c.JSON(http.StatusOK, response)
}

// Get handles GET /api/orders/:id. Customers only see their own orders.
func (h *OrderHandler) Get(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.MessageResponse{Message: "invalid order id"})
		return
	}

	order, err := h.facade.Order(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, domainErrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, dto.MessageResponse{Message: "order not found"})
			return
		}
		c.Status(http.StatusInternalServerError)
		return
	}

	if CurrentRole(c) != model.RoleAdmin && order.UserID != CurrentUserID(c) {
		c.JSON(http.StatusNotFound, dto.MessageResponse{Message: "order not found"})
		return
	}

	c.JSON(http.StatusOK, toOrderResponse(*order))
}
