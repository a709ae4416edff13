package dto

import "github.com/shopspring/decimal"

// MenuItemResponse describes one orderable item.
type MenuItemResponse struct {
	ID          int64           `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description,omitempty"`
	Price       decimal.Decimal `json:"price"`
	StockLevel  int             `json:"stock_level"`
	ImageURL    string          `json:"image_url,omitempty"`
}

// CreateMenuItemRequest describes an administrative item registration.
type CreateMenuItemRequest struct {
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	StockLevel  int             `json:"stock_level"`
	ImageURL    string          `json:"image_url"`
}

// RestockRequest increases an item stock level.
type RestockRequest struct {
	Quantity int `json:"quantity"`
}
