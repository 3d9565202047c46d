package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/foodlist/service/internal/models"
	"github.com/foodlist/service/internal/storage"
)

// SaveShoppingList inserts or updates a list and synchronizes the owned item
// edge: after the save, exactly the items in l.ItemIDs point back at the
// list. All statements run in one transaction.
func (s *SQLiteStore) SaveShoppingList(ctx context.Context, l *models.ShoppingList) error {
	return s.WithTx(ctx, func(st storage.Store) error {
		tx := st.(*SQLiteStore)

		if l.ID == 0 {
			l.CreatedAt = time.Now().Unix()
			res, err := tx.q.ExecContext(ctx,
				"INSERT INTO shopping_lists (name, is_default, household_id, created_at) VALUES (?, ?, ?, ?)",
				l.Name, l.Default, nullableID(l.HouseholdID), l.CreatedAt,
			)
			if err != nil {
				return fmt.Errorf("failed to insert shopping list: %w", err)
			}
			id, err := res.LastInsertId()
			if err != nil {
				return fmt.Errorf("failed to read shopping list id: %w", err)
			}
			l.ID = id
		} else {
			_, err := tx.q.ExecContext(ctx,
				"UPDATE shopping_lists SET name = ?, is_default = ?, household_id = ? WHERE id = ?",
				l.Name, l.Default, nullableID(l.HouseholdID), l.ID,
			)
			if err != nil {
				return fmt.Errorf("failed to update shopping list: %w", err)
			}
		}

		return tx.syncOwnedColumn(ctx, "items", "shopping_list_id", l.ID, l.ItemIDs)
	})
}

// FindShoppingListByID retrieves a list with its item identifier set.
// Returns (nil, nil) if no list has the identifier.
func (s *SQLiteStore) FindShoppingListByID(ctx context.Context, id int64) (*models.ShoppingList, error) {
	l := &models.ShoppingList{}
	var householdID sql.NullInt64
	err := s.q.QueryRowContext(ctx,
		"SELECT id, name, is_default, household_id, created_at FROM shopping_lists WHERE id = ?", id,
	).Scan(&l.ID, &l.Name, &l.Default, &householdID, &l.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get shopping list: %w", err)
	}
	l.HouseholdID = idPtr(householdID)

	itemIDs, err := s.childIDs(ctx, "items", "shopping_list_id", l.ID)
	if err != nil {
		return nil, err
	}
	l.ItemIDs = itemIDs
	return l, nil
}

// ShoppingListExists reports whether a list with the identifier exists.
func (s *SQLiteStore) ShoppingListExists(ctx context.Context, id int64) (bool, error) {
	return s.exists(ctx, "shopping_lists", id)
}

// FindAllShoppingLists retrieves all lists with their item identifier sets.
func (s *SQLiteStore) FindAllShoppingLists(ctx context.Context) ([]*models.ShoppingList, error) {
	rows, err := s.q.QueryContext(ctx,
		"SELECT id, name, is_default, household_id, created_at FROM shopping_lists ORDER BY id",
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list shopping lists: %w", err)
	}
	defer rows.Close()

	var lists []*models.ShoppingList
	for rows.Next() {
		l := &models.ShoppingList{}
		var householdID sql.NullInt64
		if err := rows.Scan(&l.ID, &l.Name, &l.Default, &householdID, &l.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan shopping list: %w", err)
		}
		l.HouseholdID = idPtr(householdID)
		lists = append(lists, l)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate shopping lists: %w", err)
	}

	for _, l := range lists {
		itemIDs, err := s.childIDs(ctx, "items", "shopping_list_id", l.ID)
		if err != nil {
			return nil, err
		}
		l.ItemIDs = itemIDs
	}
	return lists, nil
}

// DeleteShoppingListByID removes the list row only; owned items are the
// service layer's responsibility.
func (s *SQLiteStore) DeleteShoppingListByID(ctx context.Context, id int64) error {
	if _, err := s.q.ExecContext(ctx, "DELETE FROM shopping_lists WHERE id = ?", id); err != nil {
		return fmt.Errorf("failed to delete shopping list: %w", err)
	}
	return nil
}
