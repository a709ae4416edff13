package di

import (
	"github.com/Chen-HR/SDD-BreakfastOrderingSystem-Practice/internal/app"
	"github.com/Chen-HR/SDD-BreakfastOrderingSystem-Practice/internal/config"
	"github.com/Chen-HR/SDD-BreakfastOrderingSystem-Practice/internal/logger"
	"github.com/Chen-HR/SDD-BreakfastOrderingSystem-Practice/internal/pkg/auth"
	"github.com/Chen-HR/SDD-BreakfastOrderingSystem-Practice/internal/server/http/handlers"
	"github.com/Chen-HR/SDD-BreakfastOrderingSystem-Practice/internal/server/http/router"
	"github.com/Chen-HR/SDD-BreakfastOrderingSystem-Practice/internal/storage/postgres"
	"github.com/Chen-HR/SDD-BreakfastOrderingSystem-Practice/internal/usecase"
	"go.uber.org/fx"
)

func Module(opts ...fx.Option) fx.Option {
	modules := []fx.Option{
		config.Module,
		logger.Module,
		auth.Module,
		postgres.Module,
		usecase.Module,
		fx.Provide(func(f *app.BreakfastFacade) handlers.BreakfastFacade { return f }),
		router.Module,
		app.Module,
	}
	modules = append(modules, opts...)
	return fx.Options(modules...)
}
