package repository

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/Chen-HR/SDD-BreakfastOrderingSystem-Practice/internal/domain/model"
)

// MenuRepository manages menu items and their stock levels. Stock is
// decremented only inside the order-creation transaction; Restock is the
// administrative counterpart.
type MenuRepository interface {
	Create(ctx context.Context, item *model.MenuItem) (*model.MenuItem, error)
	GetByID(ctx context.Context, id int64) (*model.MenuItem, error)
	ListAvailable(ctx context.Context) ([]model.MenuItem, error)
	UpdatePrice(ctx context.Context, id int64, price decimal.Decimal) error
	Restock(ctx context.Context, id int64, delta int) (*model.MenuItem, error)
}
