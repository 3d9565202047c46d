// Package storage provides abstractions for persistent data storage.
package storage

import (
	"context"

	"github.com/foodlist/service/internal/models"
)

// Store defines the identity-store interface for the four entity types.
// This abstraction allows swapping storage backends (SQLite, PostgreSQL, etc.)
// without changing the service layer.
//
// Find*ByID returns (nil, nil) when no entity with that identifier exists;
// translating absence into an error is the caller's job.
//
// Save* inserts when the entity's ID is zero, assigning the identifier and
// the creation timestamp, and updates otherwise. Saving an owner also
// persists its collection edge: the child foreign-key column is rewritten to
// match the owner's identifier list within the same transaction, so a single
// save of a synchronized owner persists all attached and detached children.
//
// Delete*ByID removes only the addressed row. Cascading to owned entities is
// deliberately NOT done here; the aggregate services perform cascades
// explicitly, inside WithTx.
type Store interface {
	SaveHousehold(ctx context.Context, h *models.Household) error
	FindHouseholdByID(ctx context.Context, id int64) (*models.Household, error)
	HouseholdExists(ctx context.Context, id int64) (bool, error)
	FindAllHouseholds(ctx context.Context) ([]*models.Household, error)
	DeleteHouseholdByID(ctx context.Context, id int64) error

	SaveUser(ctx context.Context, u *models.User) error
	FindUserByID(ctx context.Context, id int64) (*models.User, error)
	UserExists(ctx context.Context, id int64) (bool, error)
	FindAllUsers(ctx context.Context) ([]*models.User, error)
	DeleteUserByID(ctx context.Context, id int64) error

	SaveShoppingList(ctx context.Context, l *models.ShoppingList) error
	FindShoppingListByID(ctx context.Context, id int64) (*models.ShoppingList, error)
	ShoppingListExists(ctx context.Context, id int64) (bool, error)
	FindAllShoppingLists(ctx context.Context) ([]*models.ShoppingList, error)
	DeleteShoppingListByID(ctx context.Context, id int64) error

	SaveItem(ctx context.Context, it *models.Item) error
	FindItemByID(ctx context.Context, id int64) (*models.Item, error)
	ItemExists(ctx context.Context, id int64) (bool, error)
	FindAllItems(ctx context.Context) ([]*models.Item, error)
	DeleteItemByID(ctx context.Context, id int64) error

	// FindItemsByShoppingListID loads the full items owned by a list.
	FindItemsByShoppingListID(ctx context.Context, listID int64) ([]*models.Item, error)

	// ClearItemAdder nulls the adder reference on every item attributed to
	// the user. Called by the user service on delete: the adder edge is
	// non-owning, so the items survive.
	ClearItemAdder(ctx context.Context, userID int64) error

	// WithTx runs fn against a transaction-scoped Store. The transaction
	// commits when fn returns nil and rolls back otherwise. Cascade deletes
	// and update+synchronize sequences must run inside WithTx so a partial
	// cascade can never be observed.
	WithTx(ctx context.Context, fn func(Store) error) error

	// Close releases any resources held by the store.
	Close() error
}
