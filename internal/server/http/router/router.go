package router

import (
	"log/slog"

	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"

	"github.com/Chen-HR/SDD-BreakfastOrderingSystem-Practice/internal/server/http/handlers"
	"github.com/Chen-HR/SDD-BreakfastOrderingSystem-Practice/internal/server/http/middleware"
)

// Setup configures gin router with handlers and middleware.
func Setup(facade handlers.BreakfastFacade, logger *slog.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()

	engine.Use(gin.Recovery())
	engine.Use(middleware.RequestLogger(logger))
	engine.Use(middleware.DecompressRequest())
	engine.Use(gzip.Gzip(gzip.DefaultCompression))

	authHandler := handlers.NewAuthHandler(facade)
	menuHandler := handlers.NewMenuHandler(facade)
	orderHandler := handlers.NewOrderHandler(facade)
	adminHandler := handlers.NewAdminHandler(facade)

	api := engine.Group("/api")
	api.POST("/auth/register", authHandler.Register)
	api.POST("/auth/login", authHandler.Login)
	api.GET("/menu", menuHandler.List)

	authed := api.Group("")
	authed.Use(middleware.AuthRequired(facade))
	authed.POST("/orders", orderHandler.Create)
	authed.GET("/orders", orderHandler.List)
	authed.GET("/orders/:id", orderHandler.Get)

	admin := authed.Group("/admin")
	admin.Use(middleware.AdminRequired())
	admin.GET("/orders", adminHandler.ListOrders)
	admin.PUT("/orders/:id/status", adminHandler.UpdateStatus)
	admin.POST("/menu", adminHandler.CreateMenuItem)
	admin.PUT("/menu/:id/restock", adminHandler.Restock)

	return engine
}
