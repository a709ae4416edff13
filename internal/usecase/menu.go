package usecase

import (
	"context"
	"strings"

	"github.com/shopspring/decimal"

	domainErrors "github.com/Chen-HR/SDD-BreakfastOrderingSystem-Practice/internal/domain/errors"
	"github.com/Chen-HR/SDD-BreakfastOrderingSystem-Practice/internal/domain/model"
	"github.com/Chen-HR/SDD-BreakfastOrderingSystem-Practice/internal/domain/repository"
)

// MenuUseCase manages menu browsing and administrative inventory changes.
type MenuUseCase struct {
	menu repository.MenuRepository
}

// NewMenuUseCase constructs MenuUseCase.
func NewMenuUseCase(menu repository.MenuRepository) *MenuUseCase {
	return &MenuUseCase{menu: menu}
}

// ListAvailable returns items customers can currently order.
func (u *MenuUseCase) ListAvailable(ctx context.Context) ([]model.MenuItem, error) {
	return u.menu.ListAvailable(ctx)
}

// Get fetches a single menu item.
func (u *MenuUseCase) Get(ctx context.Context, id int64) (*model.MenuItem, error) {
	return u.menu.GetByID(ctx, id)
}

// Create registers a new menu item.
func (u *MenuUseCase) Create(ctx context.Context, item model.MenuItem) (*model.MenuItem, error) {
	item.Name = strings.TrimSpace(item.Name)
	if item.Name == "" || item.Price.IsNegative() || item.StockLevel < 0 {
		return nil, domainErrors.ErrInvalidMenuItem
	}
	return u.menu.Create(ctx, &item)
}

// SetPrice changes an item price. Existing order lines keep their
// frozen snapshots.
func (u *MenuUseCase) SetPrice(ctx context.Context, id int64, price decimal.Decimal) error {
	if price.IsNegative() {
		return domainErrors.ErrInvalidMenuItem
	}
	return u.menu.UpdatePrice(ctx, id, price)
}

// Restock increases an item stock level by delta.
func (u *MenuUseCase) Restock(ctx context.Context, id int64, delta int) (*model.MenuItem, error) {
	if delta < 1 {
		return nil, domainErrors.ErrInvalidQuantity
	}
	return u.menu.Restock(ctx, id, delta)
}
