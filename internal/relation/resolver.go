// Package relation implements the referential-consistency core: resolving
// flat identifiers into live entities (Resolver) and keeping both sides of a
// bidirectional edge in agreement (the Attach/Detach/Replace functions).
package relation

import (
	"context"

	"github.com/foodlist/service/internal/apperr"
	"github.com/foodlist/service/internal/models"
	"github.com/foodlist/service/internal/storage"
)

// Resolver translates foreign identifiers from incoming records into live
// entities, or fails predictably.
//
// A nil identifier resolves to a nil entity: an optionally-unset relationship
// is not an error. A present identifier that matches nothing fails with
// apperr.ReferenceNotFound. List resolution is fail-fast: any unresolvable
// member fails the whole operation instead of being dropped from the result.
type Resolver struct {
	store storage.Store
}

// NewResolver creates a Resolver over the given store.
func NewResolver(store storage.Store) *Resolver {
	return &Resolver{store: store}
}

// Household resolves an optional household identifier.
func (r *Resolver) Household(ctx context.Context, id *int64) (*models.Household, error) {
	if id == nil {
		return nil, nil
	}
	h, err := r.store.FindHouseholdByID(ctx, *id)
	if err != nil {
		return nil, err
	}
	if h == nil {
		return nil, &apperr.ReferenceNotFound{Entity: "household", ID: *id}
	}
	return h, nil
}

// User resolves an optional user identifier.
func (r *Resolver) User(ctx context.Context, id *int64) (*models.User, error) {
	if id == nil {
		return nil, nil
	}
	u, err := r.store.FindUserByID(ctx, *id)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, &apperr.ReferenceNotFound{Entity: "user", ID: *id}
	}
	return u, nil
}

// ShoppingList resolves an optional shopping list identifier.
func (r *Resolver) ShoppingList(ctx context.Context, id *int64) (*models.ShoppingList, error) {
	if id == nil {
		return nil, nil
	}
	l, err := r.store.FindShoppingListByID(ctx, *id)
	if err != nil {
		return nil, err
	}
	if l == nil {
		return nil, &apperr.ReferenceNotFound{Entity: "shopping list", ID: *id}
	}
	return l, nil
}

// Users resolves a list of user identifiers, failing on the first
// unresolvable member.
func (r *Resolver) Users(ctx context.Context, ids []int64) ([]*models.User, error) {
	users := make([]*models.User, 0, len(ids))
	for _, id := range ids {
		u, err := r.User(ctx, &id)
		if err != nil {
			return nil, err
		}
		users = append(users, u)
	}
	return users, nil
}

// ShoppingLists resolves a list of shopping list identifiers, failing on the
// first unresolvable member.
func (r *Resolver) ShoppingLists(ctx context.Context, ids []int64) ([]*models.ShoppingList, error) {
	lists := make([]*models.ShoppingList, 0, len(ids))
	for _, id := range ids {
		l, err := r.ShoppingList(ctx, &id)
		if err != nil {
			return nil, err
		}
		lists = append(lists, l)
	}
	return lists, nil
}

// Items resolves a list of item identifiers, failing on the first
// unresolvable member.
func (r *Resolver) Items(ctx context.Context, ids []int64) ([]*models.Item, error) {
	items := make([]*models.Item, 0, len(ids))
	for _, id := range ids {
		it, err := r.store.FindItemByID(ctx, id)
		if err != nil {
			return nil, err
		}
		if it == nil {
			return nil, &apperr.ReferenceNotFound{Entity: "item", ID: id}
		}
		items = append(items, it)
	}
	return items, nil
}
