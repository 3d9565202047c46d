package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/foodlist/service/internal/models"
	"github.com/foodlist/service/internal/storage"
)

// SaveHousehold inserts or updates a household and synchronizes the owned
// collection edges: after the save, exactly the users in h.UserIDs and the
// lists in h.ShoppingListIDs point back at the household. All statements run
// in one transaction.
func (s *SQLiteStore) SaveHousehold(ctx context.Context, h *models.Household) error {
	return s.WithTx(ctx, func(st storage.Store) error {
		tx := st.(*SQLiteStore)

		if h.ID == 0 {
			h.CreatedAt = time.Now().Unix()
			res, err := tx.q.ExecContext(ctx,
				"INSERT INTO households (name, created_at) VALUES (?, ?)",
				h.Name, h.CreatedAt,
			)
			if err != nil {
				return fmt.Errorf("failed to insert household: %w", err)
			}
			id, err := res.LastInsertId()
			if err != nil {
				return fmt.Errorf("failed to read household id: %w", err)
			}
			h.ID = id
		} else {
			_, err := tx.q.ExecContext(ctx,
				"UPDATE households SET name = ? WHERE id = ?",
				h.Name, h.ID,
			)
			if err != nil {
				return fmt.Errorf("failed to update household: %w", err)
			}
		}

		if err := tx.syncOwnedColumn(ctx, "users", "household_id", h.ID, h.UserIDs); err != nil {
			return err
		}
		return tx.syncOwnedColumn(ctx, "shopping_lists", "household_id", h.ID, h.ShoppingListIDs)
	})
}

// FindHouseholdByID retrieves a household with its member and list
// identifier sets. Returns (nil, nil) if no household has the identifier.
func (s *SQLiteStore) FindHouseholdByID(ctx context.Context, id int64) (*models.Household, error) {
	h := &models.Household{}
	err := s.q.QueryRowContext(ctx,
		"SELECT id, name, created_at FROM households WHERE id = ?", id,
	).Scan(&h.ID, &h.Name, &h.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get household: %w", err)
	}
	return s.loadHouseholdEdges(ctx, h)
}

// HouseholdExists reports whether a household with the identifier exists.
func (s *SQLiteStore) HouseholdExists(ctx context.Context, id int64) (bool, error) {
	return s.exists(ctx, "households", id)
}

// FindAllHouseholds retrieves all households with their edge sets.
func (s *SQLiteStore) FindAllHouseholds(ctx context.Context) ([]*models.Household, error) {
	rows, err := s.q.QueryContext(ctx,
		"SELECT id, name, created_at FROM households ORDER BY id",
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list households: %w", err)
	}
	defer rows.Close()

	var households []*models.Household
	for rows.Next() {
		h := &models.Household{}
		if err := rows.Scan(&h.ID, &h.Name, &h.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan household: %w", err)
		}
		households = append(households, h)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate households: %w", err)
	}

	for _, h := range households {
		if _, err := s.loadHouseholdEdges(ctx, h); err != nil {
			return nil, err
		}
	}
	return households, nil
}

// DeleteHouseholdByID removes the household row only; owned users and lists
// are the service layer's responsibility.
func (s *SQLiteStore) DeleteHouseholdByID(ctx context.Context, id int64) error {
	if _, err := s.q.ExecContext(ctx, "DELETE FROM households WHERE id = ?", id); err != nil {
		return fmt.Errorf("failed to delete household: %w", err)
	}
	return nil
}

func (s *SQLiteStore) loadHouseholdEdges(ctx context.Context, h *models.Household) (*models.Household, error) {
	userIDs, err := s.childIDs(ctx, "users", "household_id", h.ID)
	if err != nil {
		return nil, err
	}
	listIDs, err := s.childIDs(ctx, "shopping_lists", "household_id", h.ID)
	if err != nil {
		return nil, err
	}
	h.UserIDs = userIDs
	h.ShoppingListIDs = listIDs
	return h, nil
}
