package usecase

import (
	"fmt"

	domainErrors "github.com/Chen-HR/SDD-BreakfastOrderingSystem-Practice/internal/domain/errors"
	"github.com/Chen-HR/SDD-BreakfastOrderingSystem-Practice/internal/domain/model"
)

// ValidateLines checks submitted order lines before any storage work:
// the order must not be empty and every quantity must be at least 1.
func ValidateLines(lines []model.OrderLine) error {
	if len(lines) == 0 {
		return domainErrors.ErrEmptyOrder
	}
	for _, line := range lines {
		if line.MenuItemID <= 0 {
			return fmt.Errorf("menu item %d: %w", line.MenuItemID, domainErrors.ErrNotFound)
		}
		if line.Quantity < 1 {
			return domainErrors.ErrInvalidQuantity
		}
	}
	return nil
}
