package models

import (
	"time"

	"github.com/shopspring/decimal"
)

func init() {
	// The client speaks plain JSON numbers for prices and quantities.
	decimal.MarshalJSONWithoutQuotes = true
}

// Item is a priced inventory entry. Names are not unique; duplicates are
// allowed. Deleting an item never touches historical bill lines, which carry
// their own name/price snapshots.
type Item struct {
	// ID is the unique identifier for the item (UUID format), store-assigned.
	ID string `json:"id"`

	// Name is the display name, typically in Telugu (e.g. "టమాటా").
	Name string `json:"name"`

	// Price is the current unit price in rupees. Never negative.
	Price decimal.Decimal `json:"price"`
}

// ItemUpdate names exactly the fields a PATCH may change. A nil field is
// left untouched.
type ItemUpdate struct {
	Name  *string          `json:"name,omitempty"`
	Price *decimal.Decimal `json:"price,omitempty"`
}

// Empty reports whether the update would change nothing.
func (u ItemUpdate) Empty() bool {
	return u.Name == nil && u.Price == nil
}

// Bill is an immutable sales record. A bill and its lines are created as one
// atomic unit and never mutated or deleted afterward.
type Bill struct {
	// ID is the unique identifier for the bill (UUID format), store-assigned.
	ID string `json:"id"`

	// BillNumber is the human-facing number shown on the printed bill,
	// "B" + the last six digits of a millisecond timestamp. Not guaranteed
	// unique; the UUID is the real key.
	BillNumber string `json:"billNumber"`

	// TotalAmount is the sum of all line totals on this bill.
	TotalAmount decimal.Decimal `json:"totalAmount"`

	// BillDate is the calendar date ("2006-01-02") used for history
	// filtering and daily totals. Defaults to CreatedAt's date.
	BillDate string `json:"billDate"`

	// CreatedAt is the server-assigned creation time, immutable.
	CreatedAt time.Time `json:"createdAt"`
}

// BillLine is one item-quantity-price snapshot within a bill. Lines exist
// only as part of their bill's creation and share its lifetime.
type BillLine struct {
	ID     string `json:"id"`
	BillID string `json:"billId"`

	// ItemID references the inventory item at time of sale. The referenced
	// item may since have been edited or deleted; ItemName and Price below
	// are the authoritative snapshot.
	ItemID   string          `json:"itemId"`
	ItemName string          `json:"itemName"`
	Quantity decimal.Decimal `json:"quantity"`
	Price    decimal.Decimal `json:"price"`

	// Total is always Quantity * Price, exactly.
	Total decimal.Decimal `json:"total"`
}

// BillLineInput is the shape a caller supplies when creating a bill. IDs are
// assigned by the store.
type BillLineInput struct {
	ItemID   string          `json:"itemId"`
	ItemName string          `json:"itemName"`
	Quantity decimal.Decimal `json:"quantity"`
	Price    decimal.Decimal `json:"price"`
	Total    decimal.Decimal `json:"total"`
}
