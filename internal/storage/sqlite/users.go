package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/foodlist/service/internal/models"
)

const userColumns = "id, username, password_hash, name, enabled, household_id, created_at"

// SaveUser inserts or updates a user. The household back-reference is a
// single column, so no collection sync is needed here.
func (s *SQLiteStore) SaveUser(ctx context.Context, u *models.User) error {
	if u.ID == 0 {
		u.CreatedAt = time.Now().Unix()
		res, err := s.q.ExecContext(ctx,
			"INSERT INTO users (username, password_hash, name, enabled, household_id, created_at) VALUES (?, ?, ?, ?, ?, ?)",
			u.Username, u.PasswordHash, u.Name, u.Enabled, nullableID(u.HouseholdID), u.CreatedAt,
		)
		if err != nil {
			return fmt.Errorf("failed to insert user: %w", err)
		}
		id, err := res.LastInsertId()
		if err != nil {
			return fmt.Errorf("failed to read user id: %w", err)
		}
		u.ID = id
		return nil
	}

	_, err := s.q.ExecContext(ctx,
		"UPDATE users SET username = ?, password_hash = ?, name = ?, enabled = ?, household_id = ? WHERE id = ?",
		u.Username, u.PasswordHash, u.Name, u.Enabled, nullableID(u.HouseholdID), u.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update user: %w", err)
	}
	return nil
}

// FindUserByID retrieves a user by identifier. Returns (nil, nil) if absent.
func (s *SQLiteStore) FindUserByID(ctx context.Context, id int64) (*models.User, error) {
	row := s.q.QueryRowContext(ctx,
		"SELECT "+userColumns+" FROM users WHERE id = ?", id,
	)
	u, err := scanUser(row.Scan)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return u, nil
}

// UserExists reports whether a user with the identifier exists.
func (s *SQLiteStore) UserExists(ctx context.Context, id int64) (bool, error) {
	return s.exists(ctx, "users", id)
}

// FindAllUsers retrieves all users.
func (s *SQLiteStore) FindAllUsers(ctx context.Context) ([]*models.User, error) {
	rows, err := s.q.QueryContext(ctx, "SELECT "+userColumns+" FROM users ORDER BY id")
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	defer rows.Close()

	var users []*models.User
	for rows.Next() {
		u, err := scanUser(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("failed to scan user: %w", err)
		}
		users = append(users, u)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate users: %w", err)
	}
	return users, nil
}

// DeleteUserByID removes the user row only. Clearing adder references on
// items is the service layer's responsibility (ClearItemAdder).
func (s *SQLiteStore) DeleteUserByID(ctx context.Context, id int64) error {
	if _, err := s.q.ExecContext(ctx, "DELETE FROM users WHERE id = ?", id); err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}
	return nil
}

func scanUser(scan func(dest ...any) error) (*models.User, error) {
	u := &models.User{}
	var householdID sql.NullInt64
	if err := scan(&u.ID, &u.Username, &u.PasswordHash, &u.Name, &u.Enabled, &householdID, &u.CreatedAt); err != nil {
		return nil, err
	}
	u.HouseholdID = idPtr(householdID)
	return u, nil
}
