package repository

import (
	"context"
	"time"

	"github.com/Chen-HR/SDD-BreakfastOrderingSystem-Practice/internal/domain/model"
)

// OrderFilter restricts order listings. Nil fields are ignored; set
// fields combine conjunctively. CreatedBefore is exclusive, CreatedFrom
// inclusive.
type OrderFilter struct {
	UserID        *int64
	Status        *model.OrderStatus
	CreatedFrom   *time.Time
	CreatedBefore *time.Time
}

// PageRequest describes page-based pagination.
type PageRequest struct {
	Page    int
	PerPage int
}

// Offset returns the row offset for the page.
func (p PageRequest) Offset() int {
	return (p.Page - 1) * p.PerPage
}

// OrderRepository describes persistence operations with orders. Create
// and UpdateStatus are single atomic units of work.
type OrderRepository interface {
	// Create reserves stock for every line in submission order, freezes
	// unit prices and persists the order with its items in one
	// transaction. Any failure rolls the whole unit of work back.
	Create(ctx context.Context, userID int64, deliveryAddress string, lines []model.OrderLine) (*model.Order, error)
	GetByID(ctx context.Context, id int64) (*model.Order, error)
	ListByUser(ctx context.Context, userID int64) ([]model.Order, error)
	// List returns matching orders sorted by creation time descending
	// along with the total match count.
	List(ctx context.Context, filter OrderFilter, page PageRequest) ([]model.Order, int, error)
	// UpdateStatus applies the state machine. The bool reports whether
	// the status actually changed; requesting the current status is a
	// successful no-op.
	UpdateStatus(ctx context.Context, orderID int64, status model.OrderStatus) (*model.Order, bool, error)
	// ClaimPendingBatch atomically moves up to limit pending orders to
	// processing and returns them.
	ClaimPendingBatch(ctx context.Context, limit int) ([]model.Order, error)
}
