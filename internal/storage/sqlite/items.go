package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/tejavath/vaanibill/internal/models"
	"github.com/tejavath/vaanibill/internal/storage"
)

// ListItems returns all inventory items sorted by name ascending.
func (s *SQLiteStore) ListItems(ctx context.Context) ([]models.Item, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT id, name, price FROM items ORDER BY name ASC",
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list items: %w", err)
	}
	defer rows.Close()

	items := []models.Item{}
	for rows.Next() {
		var (
			item     models.Item
			priceRaw string
		)
		if err := rows.Scan(&item.ID, &item.Name, &priceRaw); err != nil {
			return nil, fmt.Errorf("failed to scan item: %w", err)
		}
		if item.Price, err = scanDecimal(priceRaw); err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate items: %w", err)
	}
	return items, nil
}

// CreateItem adds a new inventory item after validating its fields.
func (s *SQLiteStore) CreateItem(ctx context.Context, name string, price decimal.Decimal) (*models.Item, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, storage.Invalidf("item name must not be empty")
	}
	if price.IsNegative() {
		return nil, storage.Invalidf("item price must not be negative")
	}

	item := &models.Item{
		ID:    uuid.New().String(),
		Name:  name,
		Price: price,
	}
	_, err := s.db.ExecContext(ctx,
		"INSERT INTO items (id, name, price) VALUES (?, ?, ?)",
		item.ID, item.Name, item.Price.String(),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to insert item: %w", err)
	}
	return item, nil
}

// UpdateItem applies the non-nil fields of upd to the stored item.
func (s *SQLiteStore) UpdateItem(ctx context.Context, id string, upd models.ItemUpdate) (*models.Item, error) {
	if upd.Empty() {
		return nil, storage.Invalidf("update must set at least one field")
	}
	if upd.Name != nil && strings.TrimSpace(*upd.Name) == "" {
		return nil, storage.Invalidf("item name must not be empty")
	}
	if upd.Price != nil && upd.Price.IsNegative() {
		return nil, storage.Invalidf("item price must not be negative")
	}

	item := &models.Item{ID: id}
	var priceRaw string
	err := s.db.QueryRowContext(ctx,
		"SELECT name, price FROM items WHERE id = ?", id,
	).Scan(&item.Name, &priceRaw)
	if err == sql.ErrNoRows {
		return nil, storage.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get item: %w", err)
	}
	if item.Price, err = scanDecimal(priceRaw); err != nil {
		return nil, err
	}

	if upd.Name != nil {
		item.Name = strings.TrimSpace(*upd.Name)
	}
	if upd.Price != nil {
		item.Price = *upd.Price
	}

	_, err = s.db.ExecContext(ctx,
		"UPDATE items SET name = ?, price = ? WHERE id = ?",
		item.Name, item.Price.String(), id,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to update item: %w", err)
	}
	return item, nil
}

// DeleteItem removes an inventory item. Deleting an unknown id is a no-op;
// bill lines referencing the item keep their name/price snapshots.
func (s *SQLiteStore) DeleteItem(ctx context.Context, id string) error {
	if _, err := s.db.ExecContext(ctx, "DELETE FROM items WHERE id = ?", id); err != nil {
		return fmt.Errorf("failed to delete item: %w", err)
	}
	return nil
}
