package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/foodlist/service/internal/models"
)

const itemColumns = "id, name, quantity, is_checked, added_by_user_id, shopping_list_id, added_at"

// SaveItem inserts or updates an item.
func (s *SQLiteStore) SaveItem(ctx context.Context, it *models.Item) error {
	if it.ID == 0 {
		it.AddedAt = time.Now().Unix()
		res, err := s.q.ExecContext(ctx,
			"INSERT INTO items (name, quantity, is_checked, added_by_user_id, shopping_list_id, added_at) VALUES (?, ?, ?, ?, ?, ?)",
			it.Name, it.Quantity, it.Checked, nullableID(it.AddedByUserID), nullableID(it.ShoppingListID), it.AddedAt,
		)
		if err != nil {
			return fmt.Errorf("failed to insert item: %w", err)
		}
		id, err := res.LastInsertId()
		if err != nil {
			return fmt.Errorf("failed to read item id: %w", err)
		}
		it.ID = id
		return nil
	}

	_, err := s.q.ExecContext(ctx,
		"UPDATE items SET name = ?, quantity = ?, is_checked = ?, added_by_user_id = ?, shopping_list_id = ? WHERE id = ?",
		it.Name, it.Quantity, it.Checked, nullableID(it.AddedByUserID), nullableID(it.ShoppingListID), it.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update item: %w", err)
	}
	return nil
}

// FindItemByID retrieves an item by identifier. Returns (nil, nil) if absent.
func (s *SQLiteStore) FindItemByID(ctx context.Context, id int64) (*models.Item, error) {
	row := s.q.QueryRowContext(ctx, "SELECT "+itemColumns+" FROM items WHERE id = ?", id)
	it, err := scanItem(row.Scan)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get item: %w", err)
	}
	return it, nil
}

// ItemExists reports whether an item with the identifier exists.
func (s *SQLiteStore) ItemExists(ctx context.Context, id int64) (bool, error) {
	return s.exists(ctx, "items", id)
}

// FindAllItems retrieves all items.
func (s *SQLiteStore) FindAllItems(ctx context.Context) ([]*models.Item, error) {
	return s.queryItems(ctx, "SELECT "+itemColumns+" FROM items ORDER BY id")
}

// FindItemsByShoppingListID retrieves the full items owned by a list.
func (s *SQLiteStore) FindItemsByShoppingListID(ctx context.Context, listID int64) ([]*models.Item, error) {
	return s.queryItems(ctx,
		"SELECT "+itemColumns+" FROM items WHERE shopping_list_id = ? ORDER BY id", listID)
}

// DeleteItemByID removes the item row.
func (s *SQLiteStore) DeleteItemByID(ctx context.Context, id int64) error {
	if _, err := s.q.ExecContext(ctx, "DELETE FROM items WHERE id = ?", id); err != nil {
		return fmt.Errorf("failed to delete item: %w", err)
	}
	return nil
}

// ClearItemAdder nulls the adder reference on every item attributed to the
// user. The items themselves are untouched.
func (s *SQLiteStore) ClearItemAdder(ctx context.Context, userID int64) error {
	_, err := s.q.ExecContext(ctx,
		"UPDATE items SET added_by_user_id = NULL WHERE added_by_user_id = ?", userID,
	)
	if err != nil {
		return fmt.Errorf("failed to clear item adder: %w", err)
	}
	return nil
}

func (s *SQLiteStore) queryItems(ctx context.Context, query string, args ...any) ([]*models.Item, error) {
	rows, err := s.q.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list items: %w", err)
	}
	defer rows.Close()

	var items []*models.Item
	for rows.Next() {
		it, err := scanItem(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("failed to scan item: %w", err)
		}
		items = append(items, it)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate items: %w", err)
	}
	return items, nil
}

func scanItem(scan func(dest ...any) error) (*models.Item, error) {
	it := &models.Item{}
	var addedBy, listID sql.NullInt64
	if err := scan(&it.ID, &it.Name, &it.Quantity, &it.Checked, &addedBy, &listID, &it.AddedAt); err != nil {
		return nil, err
	}
	it.AddedByUserID = idPtr(addedBy)
	it.ShoppingListID = idPtr(listID)
	return it, nil
}
