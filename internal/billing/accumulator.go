// Package billing holds the client-side bill building logic: the in-memory
// line accumulator and bill-number generation.
package billing

import (
	"github.com/shopspring/decimal"
)

// Line is one accumulated item-quantity-price candidate. Name and price are
// snapshotted at append time, so later inventory edits do not change an
// in-progress bill.
type Line struct {
	ItemID   string
	ItemName string
	Quantity decimal.Decimal
	Price    decimal.Decimal
	Total    decimal.Decimal
}

// Accumulator is the transient working set of lines for one in-progress
// bill. It is session-scoped state owned by a single bill-creation
// workflow: never persisted, never shared between concurrent workflows, and
// simply discarded when the user abandons the bill. It deliberately stays
// intact after a failed commit so the caller can retry without re-entering
// lines.
type Accumulator struct {
	lines []Line
}

// New returns an empty accumulator.
func New() *Accumulator {
	return &Accumulator{}
}

// Append snapshots the item's name and price, computes the line total as
// quantity × price, and adds the line. The computed line is returned.
func (a *Accumulator) Append(itemID, itemName string, price, quantity decimal.Decimal) Line {
	line := Line{
		ItemID:   itemID,
		ItemName: itemName,
		Quantity: quantity,
		Price:    price,
		Total:    quantity.Mul(price),
	}
	a.lines = append(a.lines, line)
	return line
}

// RemoveAt drops the line at index i, preserving the order of the rest.
// Out-of-range indices are ignored and reported as false.
func (a *Accumulator) RemoveAt(i int) bool {
	if i < 0 || i >= len(a.lines) {
		return false
	}
	a.lines = append(a.lines[:i], a.lines[i+1:]...)
	return true
}

// Sum returns the arithmetic sum of all line totals.
func (a *Accumulator) Sum() decimal.Decimal {
	sum := decimal.Zero
	for _, line := range a.lines {
		sum = sum.Add(line.Total)
	}
	return sum
}

// Lines returns a copy of the accumulated lines in insertion order.
func (a *Accumulator) Lines() []Line {
	out := make([]Line, len(a.lines))
	copy(out, a.lines)
	return out
}

// Len returns the number of accumulated lines.
func (a *Accumulator) Len() int {
	return len(a.lines)
}
