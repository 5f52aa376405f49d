package sqlite

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/tejavath/vaanibill/internal/models"
	"github.com/tejavath/vaanibill/internal/storage"
)

// validateBill checks the header and every line before anything is written.
// A failure here implies no side effects.
func validateBill(bill *models.Bill, lines []models.BillLineInput) error {
	if strings.TrimSpace(bill.BillNumber) == "" {
		return storage.Invalidf("bill number must not be empty")
	}
	if bill.TotalAmount.IsNegative() {
		return storage.Invalidf("bill total must not be negative")
	}
	if len(lines) == 0 {
		return storage.Invalidf("bill must have at least one line")
	}

	sum := decimal.Zero
	for i, line := range lines {
		if strings.TrimSpace(line.ItemName) == "" {
			return storage.Invalidf("line %d: item name must not be empty", i+1)
		}
		if !line.Quantity.IsPositive() {
			return storage.Invalidf("line %d: quantity must be positive", i+1)
		}
		if line.Price.IsNegative() {
			return storage.Invalidf("line %d: price must not be negative", i+1)
		}
		if !line.Total.Equal(line.Quantity.Mul(line.Price)) {
			return storage.Invalidf("line %d: total %s does not equal quantity × price", i+1, line.Total)
		}
		sum = sum.Add(line.Total)
	}
	if !bill.TotalAmount.Equal(sum) {
		return storage.Invalidf("bill total %s does not equal sum of line totals %s", bill.TotalAmount, sum)
	}
	return nil
}

// CreateBill inserts the bill header and all its lines in one transaction.
// Either everything commits or nothing is visible to readers. The operation
// only inserts new rows under fresh UUIDs, so a failed call is safe to
// retry as a whole.
func (s *SQLiteStore) CreateBill(ctx context.Context, bill *models.Bill, lines []models.BillLineInput) error {
	if err := validateBill(bill, lines); err != nil {
		return err
	}

	bill.ID = uuid.New().String()
	if bill.CreatedAt.IsZero() {
		bill.CreatedAt = time.Now().UTC()
	}
	if bill.BillDate == "" {
		bill.BillDate = bill.CreatedAt.Format("2006-01-02")
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx,
		"INSERT INTO bills (id, bill_number, total_amount, bill_date, created_at) VALUES (?, ?, ?, ?, ?)",
		bill.ID, bill.BillNumber, bill.TotalAmount.String(), bill.BillDate, bill.CreatedAt.UnixMilli(),
	)
	if err != nil {
		return fmt.Errorf("failed to insert bill: %w", err)
	}

	for i, line := range lines {
		_, err = tx.ExecContext(ctx,
			"INSERT INTO bill_lines (id, bill_id, item_id, item_name, quantity, price, total, seq) VALUES (?, ?, ?, ?, ?, ?, ?, ?)",
			uuid.New().String(), bill.ID, line.ItemID, line.ItemName,
			line.Quantity.String(), line.Price.String(), line.Total.String(), i,
		)
		if err != nil {
			return fmt.Errorf("failed to insert bill line: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// ListBills returns bills newest first, optionally restricted to one date.
func (s *SQLiteStore) ListBills(ctx context.Context, date string) ([]models.Bill, error) {
	query := "SELECT id, bill_number, total_amount, bill_date, created_at FROM bills ORDER BY created_at DESC"
	args := []any{}
	if date != "" {
		query = "SELECT id, bill_number, total_amount, bill_date, created_at FROM bills WHERE bill_date = ? ORDER BY created_at DESC"
		args = append(args, date)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list bills: %w", err)
	}
	defer rows.Close()

	bills := []models.Bill{}
	for rows.Next() {
		var (
			bill      models.Bill
			totalRaw  string
			createdMs int64
		)
		if err := rows.Scan(&bill.ID, &bill.BillNumber, &totalRaw, &bill.BillDate, &createdMs); err != nil {
			return nil, fmt.Errorf("failed to scan bill: %w", err)
		}
		if bill.TotalAmount, err = scanDecimal(totalRaw); err != nil {
			return nil, err
		}
		bill.CreatedAt = time.UnixMilli(createdMs).UTC()
		bills = append(bills, bill)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate bills: %w", err)
	}
	return bills, nil
}

// GetBillLines returns a bill's lines in the order they were added.
func (s *SQLiteStore) GetBillLines(ctx context.Context, billID string) ([]models.BillLine, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT id, bill_id, item_id, item_name, quantity, price, total FROM bill_lines WHERE bill_id = ? ORDER BY seq ASC",
		billID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get bill lines: %w", err)
	}
	defer rows.Close()

	lines := []models.BillLine{}
	for rows.Next() {
		var (
			line                       models.BillLine
			qtyRaw, priceRaw, totalRaw string
		)
		if err := rows.Scan(&line.ID, &line.BillID, &line.ItemID, &line.ItemName, &qtyRaw, &priceRaw, &totalRaw); err != nil {
			return nil, fmt.Errorf("failed to scan bill line: %w", err)
		}
		if line.Quantity, err = scanDecimal(qtyRaw); err != nil {
			return nil, err
		}
		if line.Price, err = scanDecimal(priceRaw); err != nil {
			return nil, err
		}
		if line.Total, err = scanDecimal(totalRaw); err != nil {
			return nil, err
		}
		lines = append(lines, line)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate bill lines: %w", err)
	}
	return lines, nil
}

// DailyTotal sums bill totals for one calendar date. Summing happens in Go
// over the stored decimal strings; SQLite's SUM would coerce them to floats.
func (s *SQLiteStore) DailyTotal(ctx context.Context, date string) (decimal.Decimal, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT total_amount FROM bills WHERE bill_date = ?", date,
	)
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to query daily total: %w", err)
	}
	defer rows.Close()

	total := decimal.Zero
	for rows.Next() {
		var raw string
		if err := rows.Scan(&raw); err != nil {
			return decimal.Zero, fmt.Errorf("failed to scan bill total: %w", err)
		}
		amount, err := scanDecimal(raw)
		if err != nil {
			return decimal.Zero, err
		}
		total = total.Add(amount)
	}
	if err := rows.Err(); err != nil {
		return decimal.Zero, fmt.Errorf("failed to iterate bill totals: %w", err)
	}
	return total, nil
}
