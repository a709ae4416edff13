package model

import "github.com/shopspring/decimal"

// MenuItem represents a sellable breakfast item with its current stock.
type MenuItem struct {
	ID          int64
	Name        string
	Description string
	Price       decimal.Decimal
	StockLevel  int
	ImageURL    string
	Available   bool
}
