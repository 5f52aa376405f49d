// Package storage provides abstractions for persistent data storage.
package storage

import (
	"context"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/tejavath/vaanibill/internal/models"
)

// ErrNotFound is returned when an operation references an item or bill that
// does not exist.
var ErrNotFound = errors.New("not found")

// ValidationError marks malformed or out-of-range input. It is always
// raised before any write, so a ValidationError implies no side effects.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string { return e.Msg }

// Invalidf builds a ValidationError from a format string.
func Invalidf(format string, args ...any) *ValidationError {
	return &ValidationError{Msg: fmt.Sprintf(format, args...)}
}

// IsValidation reports whether err is (or wraps) a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// Store defines the interface for billing storage operations. This
// abstraction allows swapping storage backends (SQLite, PostgreSQL, etc.)
// without changing the API layer.
//
// Error contract: invalid input yields a *ValidationError, references to
// missing rows yield ErrNotFound, and anything else is a persistence
// failure. CreateBill is safely retryable on persistence failures: it only
// inserts new rows under fresh identifiers.
type Store interface {
	// ListItems returns all inventory items sorted by name ascending.
	ListItems(ctx context.Context) ([]models.Item, error)

	// CreateItem adds a priced inventory entry. Name must be non-empty and
	// price non-negative.
	CreateItem(ctx context.Context, name string, price decimal.Decimal) (*models.Item, error)

	// UpdateItem applies the non-nil fields of upd to the item.
	UpdateItem(ctx context.Context, id string, upd models.ItemUpdate) (*models.Item, error)

	// DeleteItem removes an inventory item. Removing an unknown id is a
	// no-op. Historical bill lines keep their snapshots.
	DeleteItem(ctx context.Context, id string) error

	// CreateBill validates the header and every line, then inserts the bill
	// header and all its lines in a single transaction. Readers observe
	// either the complete bill or nothing. The bill's ID, CreatedAt and the
	// line IDs are assigned by the store.
	CreateBill(ctx context.Context, bill *models.Bill, lines []models.BillLineInput) error

	// ListBills returns bills sorted by creation time descending. A
	// non-empty date ("2006-01-02") restricts to bills with that bill date.
	ListBills(ctx context.Context, date string) ([]models.Bill, error)

	// GetBillLines returns a bill's lines in insertion order.
	GetBillLines(ctx context.Context, billID string) ([]models.BillLine, error)

	// DailyTotal sums TotalAmount over bills with the given bill date.
	// Returns zero, not an error, when no bills match.
	DailyTotal(ctx context.Context, date string) (decimal.Decimal, error)

	// Close releases any resources held by the store.
	Close() error
}
