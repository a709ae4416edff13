package errors

import (
	"errors"
	"fmt"
)

var (
	ErrAlreadyExists      = errors.New("already exists")
	ErrNotFound           = errors.New("not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrEmptyOrder         = errors.New("order must contain at least one item")
	ErrInvalidQuantity    = errors.New("quantity must be at least 1")
	ErrInsufficientStock  = errors.New("insufficient stock")
	ErrInvalidMenuItem    = errors.New("invalid menu item")
	ErrInvalidTransition  = errors.New("invalid status transition")
	ErrInvalidStatus      = errors.New("unknown order status")
)

// StockError carries the detail surfaced to the customer when a
// reservation exceeds available stock. Unwraps to ErrInsufficientStock.
type StockError struct {
	ItemName  string
	Available int
	Requested int
}

func (e *StockError) Error() string {
	return fmt.Sprintf("insufficient stock for %s: available %d, requested %d", e.ItemName, e.Available, e.Requested)
}

func (e *StockError) Unwrap() error {
	return ErrInsufficientStock
}

// TransitionError reports a rejected status transition with its source
// and target. Unwraps to ErrInvalidTransition.
type TransitionError struct {
	From string
	To   string
}

func (e *TransitionError) Error() string {
	return fmt.Sprintf("invalid status transition from %s to %s", e.From, e.To)
}

func (e *TransitionError) Unwrap() error {
	return ErrInvalidTransition
}
