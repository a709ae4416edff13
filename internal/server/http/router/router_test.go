package router

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/Chen-HR/SDD-BreakfastOrderingSystem-Practice/internal/domain/model"
	pkgAuth "github.com/Chen-HR/SDD-BreakfastOrderingSystem-Practice/internal/pkg/auth"
	"github.com/Chen-HR/SDD-BreakfastOrderingSystem-Practice/internal/server/http/handlers"
	testhelpers "github.com/Chen-HR/SDD-BreakfastOrderingSystem-Practice/internal/test"
)

func TestSetupRoutes(t *testing.T) {
	gin.SetMode(gin.TestMode)
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	facade := &testhelpers.FacadeStub{
		RegisterFn: func(context.Context, string, string) (string, error) {
			return "token", nil
		},
		ParseTokenFn: func(string) (*pkgAuth.Claims, error) {
			return &pkgAuth.Claims{UserID: 7, Role: string(model.RoleCustomer)}, nil
		},
		OrdersForUserFn: func(context.Context, int64) ([]model.Order, error) {
			return []model.Order{{ID: 1, UserID: 7, Status: model.OrderStatusPending}}, nil
		},
	}
	engine := Setup(facade, logger)

	body, _ := json.Marshal(map[string]string{"email": "a@b.c", "password": "secret1"})
	req := httptest.NewRequest(http.MethodPost, "/api/auth/register", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	engine.ServeHTTP(resp, req)
	if resp.Code != http.StatusCreated {
		t.Fatalf("expected status 201 for register, got %d", resp.Code)
	}

	req = httptest.NewRequest(http.MethodGet, "/api/menu", nil)
	resp = httptest.NewRecorder()
	engine.ServeHTTP(resp, req)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200 for menu, got %d", resp.Code)
	}

	req = httptest.NewRequest(http.MethodGet, "/api/orders", nil)
	req.Header.Set("Authorization", "Bearer token")
	resp = httptest.NewRecorder()
	engine.ServeHTTP(resp, req)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200 for orders, got %d", resp.Code)
	}

	req = httptest.NewRequest(http.MethodGet, "/api/orders", nil)
	resp = httptest.NewRecorder()
	engine.ServeHTTP(resp, req)
	if resp.Code != http.StatusUnauthorized {
		t.Fatalf("expected status 401 without token, got %d", resp.Code)
	}

	req = httptest.NewRequest(http.MethodGet, "/api/admin/orders", nil)
	req.Header.Set("Authorization", "Bearer token")
	resp = httptest.NewRecorder()
	engine.ServeHTTP(resp, req)
	if resp.Code != http.StatusForbidden {
		t.Fatalf("expected status 403 for customer on admin route, got %d", resp.Code)
	}
}

func TestSetupRoutesAdmin(t *testing.T) {
	gin.SetMode(gin.TestMode)
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	facade := &testhelpers.FacadeStub{
		ParseTokenFn: func(string) (*pkgAuth.Claims, error) {
			return &pkgAuth.Claims{UserID: 1, Role: string(model.RoleAdmin)}, nil
		},
	}
	engine := Setup(facade, logger)

	req := httptest.NewRequest(http.MethodGet, "/api/admin/orders", nil)
	req.Header.Set("Authorization", "Bearer token")
	resp := httptest.NewRecorder()
	engine.ServeHTTP(resp, req)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200 for admin listing, got %d", resp.Code)
	}
}

var _ handlers.BreakfastFacade = (*testhelpers.FacadeStub)(nil)
