package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/Chen-HR/SDD-BreakfastOrderingSystem-Practice/internal/domain/errors"
	"github.com/Chen-HR/SDD-BreakfastOrderingSystem-Practice/internal/domain/model"
	"github.com/Chen-HR/SDD-BreakfastOrderingSystem-Practice/internal/domain/repository"
	"github.com/Chen-HR/SDD-BreakfastOrderingSystem-Practice/internal/server/http/dto"
)

const dateLayout = "2006-01-02"

// AdminHandler serves administrative order review and inventory management.
type AdminHandler struct {
	facade BreakfastFacade
}

// NewAdminHandler constructs AdminHandler.
func NewAdminHandler(facade BreakfastFacade) *AdminHandler {
	return &AdminHandler{facade: facade}
}

// ListOrders handles GET /api/admin/orders with conjunctive filters and
// page-based pagination.
func (h *AdminHandler) ListOrders(c *gin.Context) {
	var filter repository.OrderFilter

	if raw := c.Query("user_id"); raw != "" {
		userID, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, dto.MessageResponse{Message: "invalid user_id"})
			return
		}
		filter.UserID = &userID
	}
	if raw := c.Query("status"); raw != "" {
		status := model.OrderStatus(raw)
		if !status.Valid() {
			c.JSON(http.StatusBadRequest, dto.MessageResponse{Message: "unknown status " + raw})
			return
		}
		filter.Status = &status
	}
	if raw := c.Query("start_date"); raw != "" {
		from, err := time.Parse(dateLayout, raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, dto.MessageResponse{Message: "start_date must be YYYY-MM-DD"})
			return
		}
		filter.CreatedFrom = &from
	}
	if raw := c.Query("end_date"); raw != "" {
		end, err := time.Parse(dateLayout, raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, dto.MessageResponse{Message: "end_date must be YYYY-MM-DD"})
			return
		}
		// Inclusive end date: orders from the whole end day match.
		before := end.AddDate(0, 0, 1)
		filter.CreatedBefore = &before
	}

	page := repository.PageRequest{
		Page:    queryInt(c, "page", 1),
		PerPage: queryInt(c, "per_page", 20),
	}

	orders, total, err := h.facade.ListOrders(c.Request.Context(), filter, page)
	if err != nil {
		c.Status(http.StatusInternalServerError)
		return
	}

	response := dto.OrderListResponse{
		Orders:      make([]dto.OrderResponse, 0, len(orders)),
		TotalItems:  total,
		TotalPages:  totalPages(total, page.PerPage),
		CurrentPage: page.Page,
	}
	for _, o := range orders {
		response.Orders = append(response.Orders, toOrderResponse(o))
	}
	c.JSON(http.StatusOK, response)
}

// UpdateStatus handles PUT /api/admin/orders/:id/status.
func (h *AdminHandler) UpdateStatus(c *gin.Context) {
	orderID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.MessageResponse{Message: "invalid order id"})
		return
	}

	var req dto.StatusUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Status == "" {
		c.JSON(http.StatusBadRequest, dto.MessageResponse{Message: "status is required"})
		return
	}

	order, changed, err := h.facade.TransitionOrder(c.Request.Context(), orderID, model.OrderStatus(req.Status))
	if err != nil {
		switch {
		case errors.Is(err, domainErrors.ErrNotFound):
			c.JSON(http.StatusNotFound, dto.MessageResponse{Message: "order not found"})
		case errors.Is(err, domainErrors.ErrInvalidStatus), errors.Is(err, domainErrors.ErrInvalidTransition):
			c.JSON(http.StatusBadRequest, dto.MessageResponse{Message: err.Error()})
		default:
			c.Status(http.StatusInternalServerError)
		}
		return
	}

	if !changed {
		c.JSON(http.StatusOK, dto.StatusUpdateResponse{
			Message: "order is already " + string(order.Status) + ", no change needed",
			Status:  string(order.Status),
		})
		return
	}

	c.JSON(http.StatusOK, dto.StatusUpdateResponse{
		Message: "order status updated",
		Status:  string(order.Status),
	})
}

// CreateMenuItem handles POST /api/admin/menu.
func (h *AdminHandler) CreateMenuItem(c *gin.Context) {
	var req dto.CreateMenuItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.MessageResponse{Message: "invalid menu item payload"})
		return
	}

	item, err := h.facade.CreateMenuItem(c.Request.Context(), model.MenuItem{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		StockLevel:  req.StockLevel,
		ImageURL:    req.ImageURL,
		Available:   true,
	})
	if err != nil {
		switch {
		case errors.Is(err, domainErrors.ErrInvalidMenuItem):
			c.JSON(http.StatusBadRequest, dto.MessageResponse{Message: err.Error()})
		case errors.Is(err, domainErrors.ErrAlreadyExists):
			c.JSON(http.StatusConflict, dto.MessageResponse{Message: "menu item already exists"})
		default:
			c.Status(http.StatusInternalServerError)
		}
		return
	}

	c.JSON(http.StatusCreated, toMenuItemResponse(*item))
}

// Restock handles PUT /api/admin/menu/:id/restock.
func (h *AdminHandler) Restock(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.MessageResponse{Message: "invalid menu item id"})
		return
	}

	var req dto.RestockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.MessageResponse{Message: "quantity is required"})
		return
	}

	item, err := h.facade.RestockMenuItem(c.Request.Context(), id, req.Quantity)
	if err != nil {
		switch {
		case errors.Is(err, domainErrors.ErrInvalidQuantity):
			c.JSON(http.StatusBadRequest, dto.MessageResponse{Message: err.Error()})
		case errors.Is(err, domainErrors.ErrNotFound):
			c.JSON(http.StatusNotFound, dto.MessageResponse{Message: "menu item not found"})
		default:
			c.Status(http.StatusInternalServerError)
		}
		return
	}

	c.JSON(http.StatusOK, toMenuItemResponse(*item))
}

func queryInt(c *gin.Context, key string, def int) int {
	raw := c.Query(key)
	if raw == "" {
		return def
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 1 {
		return def
	}
	return n
}

func totalPages(total, perPage int) int {
	if perPage <= 0 {
		return 0
	}
	return (total + perPage - 1) / perPage
}
