package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/Chen-HR/SDD-BreakfastOrderingSystem-Practice/internal/domain/model"
	"github.com/Chen-HR/SDD-BreakfastOrderingSystem-Practice/internal/server/http/dto"
	"github.com/Chen-HR/SDD-BreakfastOrderingSystem-Practice/internal/server/http/middleware"
)

// CurrentUserID extracts authenticated user identifier from context.
func CurrentUserID(c *gin.Context) int64 {
	val, ok := c.Get(middleware.UserIDContextKey)
	if !ok {
		return 0
	}
	id, _ := val.(int64)
	return id
}

// CurrentRole extracts authenticated user role from context.
func CurrentRole(c *gin.Context) model.Role {
	val, ok := c.Get(middleware.UserRoleContextKey)
	if !ok {
		return ""
	}
	role, _ := val.(string)
	return model.Role(role)
}

func toOrderResponse(order model.Order) dto.OrderResponse {
	items := make([]dto.OrderItemResponse, 0, len(order.Items))
	for _, item := range order.Items {
		items = append(items, dto.OrderItemResponse{
			MenuItemID: item.MenuItemID,
			Name:       item.ItemName,
			Quantity:   item.Quantity,
			UnitPrice:  item.UnitPrice,
			Subtotal:   item.Subtotal,
		})
	}
	return dto.OrderResponse{
		ID:              order.ID,
		UserID:          order.UserID,
		Number:          order.Number,
		Status:          string(order.Status),
		TotalAmount:     order.TotalAmount,
		DeliveryAddress: order.DeliveryAddress,
		CreatedAt:       order.CreatedAt,
		UpdatedAt:       order.UpdatedAt,
		Items:           items,
	}
}

func toMenuItemResponse(item model.MenuItem) dto.MenuItemResponse {
	return dto.MenuItemResponse{
		ID:          item.ID,
		Name:        item.Name,
		Description: item.Description,
		Price:       item.Price,
		StockLevel:  item.StockLevel,
		ImageURL:    item.ImageURL,
	}
}
