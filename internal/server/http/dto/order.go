package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderLineRequest is one requested (item, quantity) pair.
type OrderLineRequest struct {
	ItemID   int64 `json:"item_id"`
	Quantity int   `json:"quantity"`
}

// CreateOrderRequest describes an order placement payload.
type CreateOrderRequest struct {
	Items           []OrderLineRequest `json:"items"`
	DeliveryAddress string             `json:"delivery_address"`
}

// CreateOrderResponse reports a successfully placed order.
type CreateOrderResponse struct {
	OrderID     int64           `json:"order_id"`
	OrderNumber string          `json:"order_number"`
	TotalAmount decimal.Decimal `json:"total_amount"`
	Status      string          `json:"status"`
}

// OrderItemResponse describes one frozen order line.
type OrderItemResponse struct {
	MenuItemID int64           `json:"menu_item_id"`
	Name       string          `json:"name"`
	Quantity   int             `json:"quantity"`
	UnitPrice  decimal.Decimal `json:"unit_price"`
	Subtotal   decimal.Decimal `json:"subtotal"`
}

// OrderResponse describes an order with its items.
type OrderResponse struct {
	ID              int64               `json:"id"`
	UserID          int64               `json:"user_id"`
	Number          string              `json:"number"`
	Status          string              `json:"status"`
	TotalAmount     decimal.Decimal     `json:"total_amount"`
	DeliveryAddress string              `json:"delivery_address,omitempty"`
	CreatedAt       time.Time           `json:"created_at"`
	UpdatedAt       time.Time           `json:"updated_at"`
	Items           []OrderItemResponse `json:"items"`
}

// StatusUpdateRequest asks for an order status transition.
type StatusUpdateRequest struct {
	Status string `json:"status"`
}

// StatusUpdateResponse reports the transition outcome.
type StatusUpdateResponse struct {
	Message string `json:"message"`
	Status  string `json:"status"`
}

// OrderListResponse is a paginated order listing.
type OrderListResponse struct {
	Orders      []OrderResponse `json:"orders"`
	TotalItems  int             `json:"total_items"`
	TotalPages  int             `json:"total_pages"`
	CurrentPage int             `json:"current_page"`
}
