package di

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"go.uber.org/fx"

	"github.com/Chen-HR/SDD-BreakfastOrderingSystem-Practice/internal/app"
	"github.com/Chen-HR/SDD-BreakfastOrderingSystem-Practice/internal/config"
	"github.com/Chen-HR/SDD-BreakfastOrderingSystem-Practice/internal/domain/repository"
	"github.com/Chen-HR/SDD-BreakfastOrderingSystem-Practice/internal/storage/postgres"
	"github.com/Chen-HR/SDD-BreakfastOrderingSystem-Practice/internal/test"
)

func TestModuleComposesGraphWithReplacements(t *testing.T) {
	cfg := &config.Config{
		RunAddress:          ":0",
		DatabaseURI:         "postgres://stub",
		JWTSecret:           "secret",
		TokenTTL:            time.Hour,
		KitchenPollInterval: time.Millisecond,
		WorkerPoolSize:      1,
		ShutdownTimeout:     time.Millisecond,
		ClaimBatchSize:      1,
	}
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	userRepo := test.NewUserRepositoryStub()
	menuRepo := test.NewMenuRepositoryStub()
	orderRepo := &test.OrderRepositoryStub{}

	var facade *app.BreakfastFacade
	fxApp := fx.New(
		fx.NopLogger,
		fx.Supply(context.Background()),
		Module(
			fx.Replace(cfg),
			fx.Replace(logger),
			fx.Replace(&postgres.Storage{}),
			fx.Replace(repository.UserRepository(userRepo)),
			fx.Replace(repository.MenuRepository(menuRepo)),
			fx.Replace(repository.OrderRepository(orderRepo)),
		),
		fx.Populate(&facade),
	)

	if err := fxApp.Err(); err != nil {
		t.Fatalf("fx app returned error: %v", err)
	}
	t.Cleanup(func() { _ = fxApp.Stop(context.Background()) })
	if facade == nil {
		t.Fatal("expected breakfast facade instance")
	}
}
