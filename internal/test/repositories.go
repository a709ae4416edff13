package test

import (
	"context"
	"sync"

	"github.com/shopspring/decimal"

	domainErrors "github.com/Chen-HR/SDD-BreakfastOrderingSystem-Practice/internal/domain/errors"
	"github.com/Chen-HR/SDD-BreakfastOrderingSystem-Practice/internal/domain/model"
	"github.com/Chen-HR/SDD-BreakfastOrderingSystem-Practice/internal/domain/repository"
)

// UserRepositoryStub stores users in-memory for tests.
type UserRepositoryStub struct {
	Users map[string]*model.User
	ByID  map[int64]*model.User
	Next  int64
	Err   error
}

// NewUserRepositoryStub constructs stub repository with initialized maps.
func NewUserRepositoryStub() *UserRepositoryStub {
	return &UserRepositoryStub{
		Users: make(map[string]*model.User),
		ByID:  make(map[int64]*model.User),
		Next:  1,
	}
}

// Create registers user unless already exists or stub has explicit error.
func (s *UserRepositoryStub) Create(ctx context.Context, email, passwordHash string, role model.Role) (*model.User, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if s.Users == nil {
		s.Users = make(map[string]*model.User)
	}
	if s.ByID == nil {
		s.ByID = make(map[int64]*model.User)
	}
	if _, exists := s.Users[email]; exists {
		return nil, domainErrors.ErrAlreadyExists
	}
	if s.Next == 0 {
		s.Next = 1
	}
	user := &model.User{ID: s.Next, Email: email, PasswordHash: passwordHash, Role: role}
	s.Next++
	s.Users[email] = user
	s.ByID[user.ID] = user
	return user, nil
}

// GetByEmail fetches user by email or returns not found.
func (s *UserRepositoryStub) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if user, ok := s.Users[email]; ok {
		return user, nil
	}
	return nil, domainErrors.ErrNotFound
}

// GetByID fetches user by identifier or returns not found.
func (s *UserRepositoryStub) GetByID(ctx context.Context, id int64) (*model.User, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if user, ok := s.ByID[id]; ok {
		return user, nil
	}
	return nil, domainErrors.ErrNotFound
}

// MenuRepositoryStub keeps menu items in-memory with a mutex so
// concurrent order stubs stay race-free.
type MenuRepositoryStub struct {
	mu    sync.Mutex
	Items map[int64]*model.MenuItem
	Next  int64
	Err   error
}

// NewMenuRepositoryStub constructs stub repository with initialized map.
func NewMenuRepositoryStub() *MenuRepositoryStub {
	return &MenuRepositoryStub{Items: make(map[int64]*model.MenuItem), Next: 1}
}

// Add seeds an item and returns its assigned identifier.
func (s *MenuRepositoryStub) Add(item model.MenuItem) int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Items == nil {
		s.Items = make(map[int64]*model.MenuItem)
	}
	if s.Next == 0 {
		s.Next = 1
	}
	item.ID = s.Next
	s.Next++
	s.Items[item.ID] = &item
	return item.ID
}

func (s *MenuRepositoryStub) Create(ctx context.Context, item *model.MenuItem) (*model.MenuItem, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	for _, existing := range s.Items {
		if existing.Name == item.Name {
			return nil, domainErrors.ErrAlreadyExists
		}
	}
	id := s.Add(*item)
	created := *item
	created.ID = id
	return &created, nil
}

func (s *MenuRepositoryStub) GetByID(ctx context.Context, id int64) (*model.MenuItem, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if item, ok := s.Items[id]; ok {
		copied := *item
		return &copied, nil
	}
	return nil, domainErrors.ErrNotFound
}

func (s *MenuRepositoryStub) ListAvailable(ctx context.Context) ([]model.MenuItem, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	var result []model.MenuItem
	for _, item := range s.Items {
		if item.Available && item.StockLevel > 0 {
			result = append(result, *item)
		}
	}
	return result, nil
}

func (s *MenuRepositoryStub) UpdatePrice(ctx context.Context, id int64, price decimal.Decimal) error {
	if s.Err != nil {
		return s.Err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	item, ok := s.Items[id]
	if !ok {
		return domainErrors.ErrNotFound
	}
	item.Price = price
	return nil
}

func (s *MenuRepositoryStub) Restock(ctx context.Context, id int64, delta int) (*model.MenuItem, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	item, ok := s.Items[id]
	if !ok {
		return nil, domainErrors.ErrNotFound
	}
	item.StockLevel += delta
	copied := *item
	return &copied, nil
}

// OrderRepositoryStub delegates to overridable functions so each test
// scripts exactly the behavior it needs.
type OrderRepositoryStub struct {
	CreateFn       func(context.Context, int64, string, []model.OrderLine) (*model.Order, error)
	GetFn          func(context.Context, int64) (*model.Order, error)
	ListByUserFn   func(context.Context, int64) ([]model.Order, error)
	ListFn         func(context.Context, repository.OrderFilter, repository.PageRequest) ([]model.Order, int, error)
	UpdateStatusFn func(context.Context, int64, model.OrderStatus) (*model.Order, bool, error)
	ClaimFn        func(context.Context, int) ([]model.Order, error)
}

func (s *OrderRepositoryStub) Create(ctx context.Context, userID int64, address string, lines []model.OrderLine) (*model.Order, error) {
	if s.CreateFn != nil {
		return s.CreateFn(ctx, userID, address, lines)
	}
	return &model.Order{ID: 1, UserID: userID, Status: model.OrderStatusPending}, nil
}

func (s *OrderRepositoryStub) GetByID(ctx context.Context, id int64) (*model.Order, error) {
	if s.GetFn != nil {
		return s.GetFn(ctx, id)
	}
	return nil, domainErrors.ErrNotFound
}

func (s *OrderRepositoryStub) ListByUser(ctx context.Context, userID int64) ([]model.Order, error) {
	if s.ListByUserFn != nil {
		return s.ListByUserFn(ctx, userID)
	}
	return nil, nil
}

func (s *OrderRepositoryStub) List(ctx context.Context, filter repository.OrderFilter, page repository.PageRequest) ([]model.Order, int, error) {
	if s.ListFn != nil {
		return s.ListFn(ctx, filter, page)
	}
	return nil, 0, nil
}

func (s *OrderRepositoryStub) UpdateStatus(ctx context.Context, orderID int64, status model.OrderStatus) (*model.Order, bool, error) {
	if s.UpdateStatusFn != nil {
		return s.UpdateStatusFn(ctx, orderID, status)
	}
	return nil, false, domainErrors.ErrNotFound
}

func (s *OrderRepositoryStub) ClaimPendingBatch(ctx context.Context, limit int) ([]model.Order, error) {
	if s.ClaimFn != nil {
		return s.ClaimFn(ctx, limit)
	}
	return nil, nil
}

var (
	_ repository.UserRepository  = (*UserRepositoryStub)(nil)
	_ repository.MenuRepository  = (*MenuRepositoryStub)(nil)
	_ repository.OrderRepository = (*OrderRepositoryStub)(nil)
)
