package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"

	domainErrors "github.com/Chen-HR/SDD-BreakfastOrderingSystem-Practice/internal/domain/errors"
	"github.com/Chen-HR/SDD-BreakfastOrderingSystem-Practice/internal/domain/model"
	"github.com/Chen-HR/SDD-BreakfastOrderingSystem-Practice/internal/test"
)

func TestMenuCreate(t *testing.T) {
	menu := test.NewMenuRepositoryStub()
	uc := NewMenuUseCase(menu)

	item, err := uc.Create(context.Background(), model.MenuItem{
		Name:       "  Pancakes  ",
		Price:      decimal.RequireFromString("4.50"),
		StockLevel: 12,
		Available:  true,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if item.Name != "Pancakes" {
		t.Errorf("name not trimmed: %q", item.Name)
	}
	if item.ID == 0 {
		t.Error("expected assigned id")
	}
}

func TestMenuCreateValidation(t *testing.T) {
	uc := NewMenuUseCase(test.NewMenuRepositoryStub())

	tests := []struct {
		name string
		item model.MenuItem
	}{
		{"empty name", model.MenuItem{Name: "   ", Price: decimal.NewFromInt(1)}},
		{"negative price", model.MenuItem{Name: "Toast", Price: decimal.NewFromInt(-1)}},
		{"negative stock", model.MenuItem{Name: "Toast", Price: decimal.NewFromInt(1), StockLevel: -3}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := uc.Create(context.Background(), tt.item); !errors.Is(err, domainErrors.ErrInvalidMenuItem) {
				t.Errorf("got %v, want ErrInvalidMenuItem", err)
			}
		})
	}
}

func TestMenuCreateDuplicateName(t *testing.T) {
	menu := test.NewMenuRepositoryStub()
	uc := NewMenuUseCase(menu)

	if _, err := uc.Create(context.Background(), model.MenuItem{Name: "Omelette", Price: decimal.NewFromInt(6)}); err != nil {
		t.Fatalf("first create: %v", err)
	}
	if _, err := uc.Create(context.Background(), model.MenuItem{Name: "Omelette", Price: decimal.NewFromInt(7)}); !errors.Is(err, domainErrors.ErrAlreadyExists) {
		t.Errorf("got %v, want ErrAlreadyExists", err)
	}
}

func TestMenuListAvailable(t *testing.T) {
	menu := test.NewMenuRepositoryStub()
	menu.Add(model.MenuItem{Name: "Coffee", Price: decimal.RequireFromString("2.50"), StockLevel: 5, Available: true})
	menu.Add(model.MenuItem{Name: "Tea", Price: decimal.RequireFromString("2.00"), StockLevel: 0, Available: true})
	menu.Add(model.MenuItem{Name: "Juice", Price: decimal.RequireFromString("3.00"), StockLevel: 4, Available: false})

	uc := NewMenuUseCase(menu)
	items, err := uc.ListAvailable(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(items) != 1 || items[0].Name != "Coffee" {
		t.Errorf("got %+v, want only Coffee", items)
	}
}

func TestMenuSetPrice(t *testing.T) {
	menu := test.NewMenuRepositoryStub()
	id := menu.Add(model.MenuItem{Name: "Bagel", Price: decimal.NewFromInt(3), StockLevel: 2, Available: true})
	uc := NewMenuUseCase(menu)

	if err := uc.SetPrice(context.Background(), id, decimal.NewFromInt(-1)); !errors.Is(err, domainErrors.ErrInvalidMenuItem) {
		t.Errorf("negative price: got %v, want ErrInvalidMenuItem", err)
	}

	newPrice := decimal.RequireFromString("3.75")
	if err := uc.SetPrice(context.Background(), id, newPrice); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	item, _ := uc.Get(context.Background(), id)
	if !item.Price.Equal(newPrice) {
		t.Errorf("price: got %s, want %s", item.Price, newPrice)
	}
}

func TestMenuRestock(t *testing.T) {
	menu := test.NewMenuRepositoryStub()
	id := menu.Add(model.MenuItem{Name: "Croissant", Price: decimal.NewFromInt(2), StockLevel: 1, Available: true})
	uc := NewMenuUseCase(menu)

	if _, err := uc.Restock(context.Background(), id, 0); !errors.Is(err, domainErrors.ErrInvalidQuantity) {
		t.Errorf("zero delta: got %v, want ErrInvalidQuantity", err)
	}
	if _, err := uc.Restock(context.Background(), 999, 5); !errors.Is(err, domainErrors.ErrNotFound) {
		t.Errorf("missing item: got %v, want ErrNotFound", err)
	}

	item, err := uc.Restock(context.Background(), id, 9)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if item.StockLevel != 10 {
		t.Errorf("stock: got %d, want 10", item.StockLevel)
	}
}
