package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderStatus describes the order lifecycle.
type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "pending"
	OrderStatusProcessing OrderStatus = "processing"
	OrderStatusCompleted  OrderStatus = "completed"
	OrderStatusCancelled  OrderStatus = "cancelled"
)

// statusTransitions is the authoritative transition table. Terminal
// statuses map to an empty successor set.
var statusTransitions = map[OrderStatus][]OrderStatus{
	OrderStatusPending:    {OrderStatusProcessing, OrderStatusCancelled},
	OrderStatusProcessing: {OrderStatusCompleted, OrderStatusCancelled},
	OrderStatusCompleted:  {},
	OrderStatusCancelled:  {},
}

// Valid reports whether the status belongs to the known vocabulary.
func (s OrderStatus) Valid() bool {
	_, ok := statusTransitions[s]
	return ok
}

// IsTerminal reports whether no further transitions are allowed.
func (s OrderStatus) IsTerminal() bool {
	next, ok := statusTransitions[s]
	return ok && len(next) == 0
}

// CanTransitionTo reports whether moving to next is permitted.
func (s OrderStatus) CanTransitionTo(next OrderStatus) bool {
	for _, candidate := range statusTransitions[s] {
		if candidate == next {
			return true
		}
	}
	return false
}

// NextStatuses returns the allowed successor statuses.
func (s OrderStatus) NextStatuses() []OrderStatus {
	next := statusTransitions[s]
	out := make([]OrderStatus, len(next))
	copy(out, next)
	return out
}

// Order describes a customer order together with its line items. Total
// amount and line prices are frozen at creation time; only the status
// changes afterwards.
type Order struct {
	ID              int64
	UserID          int64
	Number          string
	Status          OrderStatus
	TotalAmount     decimal.Decimal
	DeliveryAddress string
	CreatedAt       time.Time
	UpdatedAt       time.Time
	Items           []OrderItem
}

// OrderItem is one priced line of an order. UnitPrice and Subtotal are
// snapshots; later menu price changes never affect them.
type OrderItem struct {
	ID         int64
	OrderID    int64
	MenuItemID int64
	ItemName   string
	Quantity   int
	UnitPrice  decimal.Decimal
	Subtotal   decimal.Decimal
}

// OrderLine is a requested (menu item, quantity) pair submitted when
// placing an order.
type OrderLine struct {
	MenuItemID int64
	Quantity   int
}
