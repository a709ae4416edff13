package test

import (
	"context"
	"sync"

	"github.com/shopspring/decimal"

	domainErrors "github.com/Chen-HR/SDD-BreakfastOrderingSystem-Practice/internal/domain/errors"
	"github.com/Chen-HR/SDD-BreakfastOrderingSystem-Practice/internal/domain/model"
	"github.com/Chen-HR/SDD-BreakfastOrderingSystem-Practice/internal/domain/repository"
	pkgAuth "github.com/Chen-HR/SDD-BreakfastOrderingSystem-Practice/internal/pkg/auth"
)

// FacadeStub implements the full handler facade via overridable function
// fields. Unset fields fall back to not-found style defaults.
type FacadeStub struct {
	RegisterFn         func(context.Context, string, string) (string, error)
	AuthenticateFn     func(context.Context, string, string) (string, error)
	ParseTokenFn       func(string) (*pkgAuth.Claims, error)
	UserByIDFn         func(context.Context, int64) (*model.User, error)
	MenuFn             func(context.Context) ([]model.MenuItem, error)
	CreateMenuItemFn   func(context.Context, model.MenuItem) (*model.MenuItem, error)
	SetMenuItemPriceFn func(context.Context, int64, decimal.Decimal) error
	RestockMenuItemFn  func(context.Context, int64, int) (*model.MenuItem, error)
	PlaceOrderFn       func(context.Context, int64, string, []model.OrderLine) (*model.Order, error)
	OrderFn            func(context.Context, int64) (*model.Order, error)
	OrdersForUserFn    func(context.Context, int64) ([]model.Order, error)
	ListOrdersFn       func(context.Context, repository.OrderFilter, repository.PageRequest) ([]model.Order, int, error)
	TransitionOrderFn  func(context.Context, int64, model.OrderStatus) (*model.Order, bool, error)
}

func (s *FacadeStub) Register(ctx context.Context, email, password string) (string, error) {
	if s.RegisterFn != nil {
		return s.RegisterFn(ctx, email, password)
	}
	return "", domainErrors.ErrAlreadyExists
}

func (s *FacadeStub) Authenticate(ctx context.Context, email, password string) (string, error) {
	if s.AuthenticateFn != nil {
		return s.AuthenticateFn(ctx, email, password)
	}
	return "", domainErrors.ErrInvalidCredentials
}

func (s *FacadeStub) ParseToken(token string) (*pkgAuth.Claims, error) {
	if s.ParseTokenFn != nil {
		return s.ParseTokenFn(token)
	}
	return nil, pkgAuth.ErrInvalidToken
}

func (s *FacadeStub) UserByID(ctx context.Context, id int64) (*model.User, error) {
	if s.UserByIDFn != nil {
		return s.UserByIDFn(ctx, id)
	}
	return nil, domainErrors.ErrNotFound
}

func (s *FacadeStub) Menu(ctx context.Context) ([]model.MenuItem, error) {
	if s.MenuFn != nil {
		return s.MenuFn(ctx)
	}
	return nil, nil
}

func (s *FacadeStub) CreateMenuItem(ctx context.Context, item model.MenuItem) (*model.MenuItem, error) {
	if s.CreateMenuItemFn != nil {
		return s.CreateMenuItemFn(ctx, item)
	}
	return nil, domainErrors.ErrInvalidMenuItem
}

func (s *FacadeStub) SetMenuItemPrice(ctx context.Context, id int64, price decimal.Decimal) error {
	if s.SetMenuItemPriceFn != nil {
		return s.SetMenuItemPriceFn(ctx, id, price)
	}
	return domainErrors.ErrNotFound
}

func (s *FacadeStub) RestockMenuItem(ctx context.Context, id int64, delta int) (*model.MenuItem, error) {
	if s.RestockMenuItemFn != nil {
		return s.RestockMenuItemFn(ctx, id, delta)
	}
	return nil, domainErrors.ErrNotFound
}

func (s *FacadeStub) PlaceOrder(ctx context.Context, userID int64, address string, lines []model.OrderLine) (*model.Order, error) {
	if s.PlaceOrderFn != nil {
		return s.PlaceOrderFn(ctx, userID, address, lines)
	}
	return nil, domainErrors.ErrEmptyOrder
}

func (s *FacadeStub) Order(ctx context.Context, id int64) (*model.Order, error) {
	if s.OrderFn != nil {
		return s.OrderFn(ctx, id)
	}
	return nil, domainErrors.ErrNotFound
}

func (s *FacadeStub) OrdersForUser(ctx context.Context, userID int64) ([]model.Order, error) {
	if s.OrdersForUserFn != nil {
		return s.OrdersForUserFn(ctx, userID)
	}
	return nil, nil
}

func (s *FacadeStub) ListOrders(ctx context.Context, filter repository.OrderFilter, page repository.PageRequest) ([]model.Order, int, error) {
	if s.ListOrdersFn != nil {
		return s.ListOrdersFn(ctx, filter, page)
	}
	return nil, 0, nil
}

func (s *FacadeStub) TransitionOrder(ctx context.Context, orderID int64, status model.OrderStatus) (*model.Order, bool, error) {
	if s.TransitionOrderFn != nil {
		return s.TransitionOrderFn(ctx, orderID, status)
	}
	return nil, false, domainErrors.ErrNotFound
}

// KitchenFacadeStub records claim calls for dispatcher tests.
type KitchenFacadeStub struct {
	mu     sync.Mutex
	ClaimFn func(context.Context, int) ([]model.Order, error)
	calls  int
}

func (s *KitchenFacadeStub) ClaimPendingOrders(ctx context.Context, limit int) ([]model.Order, error) {
	s.mu.Lock()
	s.calls++
	s.mu.Unlock()
	if s.ClaimFn != nil {
		return s.ClaimFn(ctx, limit)
	}
	return nil, nil
}

// Calls reports how many times ClaimPendingOrders ran.
func (s *KitchenFacadeStub) Calls() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls
}
