package service

import (
	"context"
	"log/slog"

	"github.com/foodlist/service/internal/apperr"
	"github.com/foodlist/service/internal/relation"
	"github.com/foodlist/service/internal/storage"
	"github.com/foodlist/service/internal/transfer"
)

// ShoppingListService exposes CRUD operations for shopping lists.
type ShoppingListService struct {
	store    storage.Store
	resolver *relation.Resolver
}

// NewShoppingListService creates a ShoppingListService over the given store.
func NewShoppingListService(store storage.Store) *ShoppingListService {
	return &ShoppingListService{store: store, resolver: relation.NewResolver(store)}
}

// Add creates a shopping list from the record. The household identifier and
// any item identifiers must resolve.
func (s *ShoppingListService) Add(ctx context.Context, rec transfer.ShoppingListRecord) (transfer.ShoppingListRecord, error) {
	if rec.Name == "" {
		return transfer.ShoppingListRecord{}, &apperr.Validation{Field: "name", Reason: "must not be empty"}
	}

	if _, err := s.resolver.Household(ctx, rec.HouseholdID); err != nil {
		return transfer.ShoppingListRecord{}, err
	}
	items, err := s.resolver.Items(ctx, rec.ItemIDs)
	if err != nil {
		return transfer.ShoppingListRecord{}, err
	}

	draft := transfer.RecordToShoppingList(rec)
	draft.ID = 0
	draft.ItemIDs = nil

	err = s.store.WithTx(ctx, func(tx storage.Store) error {
		if err := tx.SaveShoppingList(ctx, draft); err != nil {
			return err
		}
		for _, it := range items {
			relation.AttachItem(draft, it)
		}
		return tx.SaveShoppingList(ctx, draft)
	})
	if err != nil {
		return transfer.ShoppingListRecord{}, err
	}

	slog.Info("shopping list created", "shopping_list_id", draft.ID, "items", len(items))
	return transfer.ShoppingListToRecord(draft, items), nil
}

// GetAll returns all shopping lists with their items embedded.
func (s *ShoppingListService) GetAll(ctx context.Context) ([]transfer.ShoppingListRecord, error) {
	lists, err := s.store.FindAllShoppingLists(ctx)
	if err != nil {
		return nil, err
	}
	recs := make([]transfer.ShoppingListRecord, len(lists))
	for i, l := range lists {
		items, err := s.store.FindItemsByShoppingListID(ctx, l.ID)
		if err != nil {
			return nil, err
		}
		recs[i] = transfer.ShoppingListToRecord(l, items)
	}
	return recs, nil
}

// GetByID returns the shopping list with the identifier, items embedded.
func (s *ShoppingListService) GetByID(ctx context.Context, id int64) (transfer.ShoppingListRecord, error) {
	l, err := s.store.FindShoppingListByID(ctx, id)
	if err != nil {
		return transfer.ShoppingListRecord{}, err
	}
	if l == nil {
		return transfer.ShoppingListRecord{}, &apperr.NotFound{Entity: "shopping list", ID: id}
	}
	items, err := s.store.FindItemsByShoppingListID(ctx, id)
	if err != nil {
		return transfer.ShoppingListRecord{}, err
	}
	return transfer.ShoppingListToRecord(l, items), nil
}

// Update copies the record's scalar fields onto the existing list,
// re-points the household reference (nil clears it) and replaces the owned
// item set with replaceAll semantics.
func (s *ShoppingListService) Update(ctx context.Context, rec transfer.ShoppingListRecord) (transfer.ShoppingListRecord, error) {
	existing, err := s.store.FindShoppingListByID(ctx, rec.ID)
	if err != nil {
		return transfer.ShoppingListRecord{}, err
	}
	if existing == nil {
		return transfer.ShoppingListRecord{}, &apperr.NotFound{Entity: "shopping list", ID: rec.ID}
	}
	if rec.Name == "" {
		return transfer.ShoppingListRecord{}, &apperr.Validation{Field: "name", Reason: "must not be empty"}
	}

	household, err := s.resolver.Household(ctx, rec.HouseholdID)
	if err != nil {
		return transfer.ShoppingListRecord{}, err
	}
	current, err := s.resolver.Items(ctx, existing.ItemIDs)
	if err != nil {
		return transfer.ShoppingListRecord{}, err
	}
	next, err := s.resolver.Items(ctx, rec.ItemIDs)
	if err != nil {
		return transfer.ShoppingListRecord{}, err
	}

	existing.Name = rec.Name
	existing.Default = rec.Default
	if household != nil {
		relation.AttachShoppingList(household, existing)
	} else {
		existing.HouseholdID = nil
	}
	relation.ReplaceItems(existing, current, next)

	if err := s.store.SaveShoppingList(ctx, existing); err != nil {
		return transfer.ShoppingListRecord{}, err
	}

	slog.Info("shopping list updated", "shopping_list_id", existing.ID)
	return transfer.ShoppingListToRecord(existing, next), nil
}

// DeleteByID deletes the shopping list and all items it owns, atomically.
func (s *ShoppingListService) DeleteByID(ctx context.Context, id int64) error {
	err := s.store.WithTx(ctx, func(tx storage.Store) error {
		exists, err := tx.ShoppingListExists(ctx, id)
		if err != nil {
			return err
		}
		if !exists {
			return &apperr.NotFound{Entity: "shopping list", ID: id}
		}
		return deleteShoppingListCascade(ctx, tx, id)
	})
	if err != nil {
		return err
	}

	slog.Info("shopping list deleted", "shopping_list_id", id)
	return nil
}
