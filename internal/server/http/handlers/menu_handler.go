package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Chen-HR/SDD-BreakfastOrderingSystem-Practice/internal/server/http/dto"
)

// MenuHandler serves the public menu.
type MenuHandler struct {
	facade MenuFacade
}

// NewMenuHandler constructs MenuHandler.
func NewMenuHandler(facade MenuFacade) *MenuHandler {
	return &MenuHandler{facade: facade}
}

// List handles GET /api/menu. Only items with stock are returned.
func (h *MenuHandler) List(c *gin.Context) {
	items, err := h.facade.Menu(c.Request.Context())
	if err != nil {
		c.Status(http.StatusInternalServerError)
		return
	}

	response := make([]dto.MenuItemResponse, 0, len(items))
	for _, item := range items {
		response = append(response, toMenuItemResponse(item))
	}
	c.JSON(http.StatusOK, response)
}
