package service

import (
	"context"

	"github.com/foodlist/service/internal/storage"
)

// The recursive delete routines below implement the ownership cascade
// explicitly, instead of leaning on storage-level ON DELETE behavior. They
// must run inside a transaction-scoped store so the cascade is atomic.

// deleteShoppingListCascade deletes a shopping list and all items it owns.
func deleteShoppingListCascade(ctx context.Context, tx storage.Store, listID int64) error {
	l, err := tx.FindShoppingListByID(ctx, listID)
	if err != nil {
		return err
	}
	if l == nil {
		return nil // already gone; deletion is idempotent within a cascade
	}
	for _, itemID := range l.ItemIDs {
		if err := tx.DeleteItemByID(ctx, itemID); err != nil {
			return err
		}
	}
	return tx.DeleteShoppingListByID(ctx, listID)
}

// deleteUserCascade deletes a user. The adder edge on items is non-owning:
// the attributions are nulled and the items survive.
func deleteUserCascade(ctx context.Context, tx storage.Store, userID int64) error {
	if err := tx.ClearItemAdder(ctx, userID); err != nil {
		return err
	}
	return tx.DeleteUserByID(ctx, userID)
}
