package errors

import (
	"errors"
	"testing"
)

func TestStockError(t *testing.T) {
	err := &StockError{ItemName: "Coffee", Available: 1, Requested: 3}

	want := "insufficient stock for Coffee: available 1, requested 3"
	if err.Error() != want {
		t.Errorf("got %q, want %q", err.Error(), want)
	}
	if !errors.Is(err, ErrInsufficientStock) {
		t.Error("StockError must unwrap to ErrInsufficientStock")
	}

	var stockErr *StockError
	if !errors.As(error(err), &stockErr) {
		t.Fatal("errors.As should extract *StockError")
	}
	if stockErr.Requested != 3 {
		t.Errorf("requested: got %d, want 3", stockErr.Requested)
	}
}

func TestTransitionError(t *testing.T) {
	err := &TransitionError{From: "completed", To: "pending"}

	want := "invalid status transition from completed to pending"
	if err.Error() != want {
		t.Errorf("got %q, want %q", err.Error(), want)
	}
	if !errors.Is(err, ErrInvalidTransition) {
		t.Error("TransitionError must unwrap to ErrInvalidTransition")
	}
}
