package app

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/Chen-HR/SDD-BreakfastOrderingSystem-Practice/internal/domain/model"
	"github.com/Chen-HR/SDD-BreakfastOrderingSystem-Practice/internal/domain/repository"
	pkgAuth "github.com/Chen-HR/SDD-BreakfastOrderingSystem-Practice/internal/pkg/auth"
	"github.com/Chen-HR/SDD-BreakfastOrderingSystem-Practice/internal/usecase"
)

// BreakfastFacade aggregates the application use cases behind one surface
// consumed by the HTTP layer and the kitchen dispatcher.
type BreakfastFacade struct {
	auth   *usecase.AuthUseCase
	menu   *usecase.MenuUseCase
	orders *usecase.OrderUseCase
}

func NewBreakfastFacade(auth *usecase.AuthUseCase, menu *usecase.MenuUseCase, orders *usecase.OrderUseCase) *BreakfastFacade {
	return &BreakfastFacade{auth: auth, menu: menu, orders: orders}
}

func (f *BreakfastFacade) Register(ctx context.Context, email, password string) (string, error) {
	_, token, err := f.auth.Register(ctx, email, password)
	return token, err
}

func (f *BreakfastFacade) Authenticate(ctx context.Context, email, password string) (string, error) {
	_, token, err := f.auth.Authenticate(ctx, email, password)
	return token, err
}

func (f *BreakfastFacade) ParseToken(token string) (*pkgAuth.Claims, error) {
	return f.auth.ParseToken(token)
}

func (f *BreakfastFacade) UserByID(ctx context.Context, id int64) (*model.User, error) {
	return f.auth.GetByID(ctx, id)
}

func (f *BreakfastFacade) Menu(ctx context.Context) ([]model.MenuItem, error) {
	return f.menu.ListAvailable(ctx)
}

func (f *BreakfastFacade) CreateMenuItem(ctx context.Context, item model.MenuItem) (*model.MenuItem, error) {
	return f.menu.Create(ctx, item)
}

func (f *BreakfastFacade) SetMenuItemPrice(ctx context.Context, id int64, price decimal.Decimal) error {
	return f.menu.SetPrice(ctx, id, price)
}

func (f *BreakfastFacade) RestockMenuItem(ctx context.Context, id int64, delta int) (*model.MenuItem, error) {
	return f.menu.Restock(ctx, id, delta)
}

func (f *BreakfastFacade) PlaceOrder(ctx context.Context, userID int64, deliveryAddress string, lines []model.OrderLine) (*model.Order, error) {
	return f.orders.Place(ctx, userID, deliveryAddress, lines)
}

func (f *BreakfastFacade) Order(ctx context.Context, id int64) (*model.Order, error) {
	return f.orders.Get(ctx, id)
}

func (f *BreakfastFacade) OrdersForUser(ctx context.Context, userID int64) ([]model.Order, error) {
	return f.orders.ListByUser(ctx, userID)
}

func (f *BreakfastFacade) ListOrders(ctx context.Context, filter repository.OrderFilter, page repository.PageRequest) ([]model.Order, int, error) {
	return f.orders.List(ctx, filter, page)
}

func (f *BreakfastFacade) TransitionOrder(ctx context.Context, orderID int64, status model.OrderStatus) (*model.Order, bool, error) {
	return f.orders.Transition(ctx, orderID, status)
}

func (f *BreakfastFacade) ClaimPendingOrders(ctx context.Context, limit int) ([]model.Order, error) {
	return f.orders.ClaimPendingBatch(ctx, limit)
}
