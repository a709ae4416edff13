package usecase

import (
	"context"

	domainErrors "github.com/Chen-HR/SDD-BreakfastOrderingSystem-Practice/internal/domain/errors"
	"github.com/Chen-HR/SDD-BreakfastOrderingSystem-Practice/internal/domain/model"
	"github.com/Chen-HR/SDD-BreakfastOrderingSystem-Practice/internal/domain/repository"
)

// OrderUseCase encapsulates order lifecycle logic.
type OrderUseCase struct {
	orders repository.OrderRepository
}

// NewOrderUseCase constructs OrderUseCase.
func NewOrderUseCase(orders repository.OrderRepository) *OrderUseCase {
	return &OrderUseCase{orders: orders}
}

// Place validates the requested lines and runs the order-creation
// transaction. Stock checks and price freezing happen inside the
// repository's unit of work.
func (u *OrderUseCase) Place(ctx context.Context, userID int64, deliveryAddress string, lines []model.OrderLine) (*model.Order, error) {
	if err := ValidateLines(lines); err != nil {
		return nil, err
	}
	return u.orders.Create(ctx, userID, deliveryAddress, lines)
}

// Get fetches one order with its items.
func (u *OrderUseCase) Get(ctx context.Context, id int64) (*model.Order, error) {
	return u.orders.GetByID(ctx, id)
}

// ListByUser returns the user's orders, newest first.
func (u *OrderUseCase) ListByUser(ctx context.Context, userID int64) ([]model.Order, error) {
	return u.orders.ListByUser(ctx, userID)
}

// List returns filtered orders with the total match count.
func (u *OrderUseCase) List(ctx context.Context, filter repository.OrderFilter, page repository.PageRequest) ([]model.Order, int, error) {
	if page.Page < 1 {
		page.Page = 1
	}
	if page.PerPage < 1 {
		page.PerPage = defaultPerPage
	}
	return u.orders.List(ctx, filter, page)
}

// Transition applies the status state machine to an order. The bool
// reports whether anything changed; asking for the current status is a
// successful no-op.
func (u *OrderUseCase) Transition(ctx context.Context, orderID int64, status model.OrderStatus) (*model.Order, bool, error) {
	if !status.Valid() {
		return nil, false, domainErrors.ErrInvalidStatus
	}
	return u.orders.UpdateStatus(ctx, orderID, status)
}

// ClaimPendingBatch hands pending orders to the kitchen.
func (u *OrderUseCase) ClaimPendingBatch(ctx context.Context, limit int) ([]model.Order, error) {
	return u.orders.ClaimPendingBatch(ctx, limit)
}

const defaultPerPage = 20
