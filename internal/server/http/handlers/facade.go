package handlers

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/Chen-HR/SDD-BreakfastOrderingSystem-Practice/internal/domain/model"
	"github.com/Chen-HR/SDD-BreakfastOrderingSystem-Practice/internal/domain/repository"
	pkgAuth "github.com/Chen-HR/SDD-BreakfastOrderingSystem-Practice/internal/pkg/auth"
)

// AuthFacade describes authentication capabilities required by handlers.
type AuthFacade interface {
	Register(ctx context.Context, email, password string) (string, error)
	Authenticate(ctx context.Context, email, password string) (string, error)
	ParseToken(token string) (*pkgAuth.Claims, error)
	UserByID(ctx context.Context, id int64) (*model.User, error)
}

// MenuFacade provides menu browsing and administrative inventory management.
type MenuFacade interface {
	Menu(ctx context.Context) ([]model.MenuItem, error)
	CreateMenuItem(ctx context.Context, item model.MenuItem) (*model.MenuItem, error)
	SetMenuItemPrice(ctx context.Context, id int64, price decimal.Decimal) error
	RestockMenuItem(ctx context.Context, id int64, delta int) (*model.MenuItem, error)
}

// OrderFacade encapsulates customer order operations exposed via HTTP.
type OrderFacade interface {
	PlaceOrder(ctx context.Context, userID int64, deliveryAddress string, lines []model.OrderLine) (*model.Order, error)
	Order(ctx context.Context, id int64) (*model.Order, error)
	OrdersForUser(ctx context.Context, userID int64) ([]model.Order, error)
}

// AdminFacade provides administrative order review and status control.
type AdminFacade interface {
	ListOrders(ctx context.Context, filter repository.OrderFilter, page repository.PageRequest) ([]model.Order, int, error)
	TransitionOrder(ctx context.Context, orderID int64, status model.OrderStatus) (*model.Order, bool, error)
}

// BreakfastFacade aggregates the full set of operations used across handlers.
type BreakfastFacade interface {
	AuthFacade
	MenuFacade
	OrderFacade
	AdminFacade
}
