// Package service implements the aggregate services: one addressable CRUD
// surface per entity type, composing the reference resolver and the
// relationship synchronizer over the identity store.
package service

import (
	"context"
	"log/slog"

	"github.com/foodlist/service/internal/apperr"
	"github.com/foodlist/service/internal/relation"
	"github.com/foodlist/service/internal/storage"
	"github.com/foodlist/service/internal/transfer"
)

// HouseholdService exposes CRUD operations for households.
type HouseholdService struct {
	store    storage.Store
	resolver *relation.Resolver
}

// NewHouseholdService creates a HouseholdService over the given store.
func NewHouseholdService(store storage.Store) *HouseholdService {
	return &HouseholdService{store: store, resolver: relation.NewResolver(store)}
}

// Add creates a household from the record, resolving any supplied member and
// list identifiers. Fails with ReferenceNotFound if one does not resolve.
func (s *HouseholdService) Add(ctx context.Context, rec transfer.HouseholdRecord) (transfer.HouseholdRecord, error) {
	if rec.Name == "" {
		return transfer.HouseholdRecord{}, &apperr.Validation{Field: "name", Reason: "must not be empty"}
	}

	users, err := s.resolver.Users(ctx, rec.UserIDs)
	if err != nil {
		return transfer.HouseholdRecord{}, err
	}
	lists, err := s.resolver.ShoppingLists(ctx, rec.ShoppingListIDs)
	if err != nil {
		return transfer.HouseholdRecord{}, err
	}

	draft := transfer.RecordToHousehold(rec)
	draft.ID = 0
	draft.UserIDs = nil
	draft.ShoppingListIDs = nil

	err = s.store.WithTx(ctx, func(tx storage.Store) error {
		// First save assigns the identifier so back-references have a target.
		if err := tx.SaveHousehold(ctx, draft); err != nil {
			return err
		}
		for _, u := range users {
			relation.AttachUser(draft, u)
		}
		for _, l := range lists {
			relation.AttachShoppingList(draft, l)
		}
		// Second save persists the synchronized edges.
		return tx.SaveHousehold(ctx, draft)
	})
	if err != nil {
		return transfer.HouseholdRecord{}, err
	}

	slog.Info("household created", "household_id", draft.ID, "users", len(users), "shopping_lists", len(lists))
	return transfer.HouseholdToRecord(draft), nil
}

// GetAll returns all households.
func (s *HouseholdService) GetAll(ctx context.Context) ([]transfer.HouseholdRecord, error) {
	households, err := s.store.FindAllHouseholds(ctx)
	if err != nil {
		return nil, err
	}
	recs := make([]transfer.HouseholdRecord, len(households))
	for i, h := range households {
		recs[i] = transfer.HouseholdToRecord(h)
	}
	return recs, nil
}

// GetByID returns the household with the identifier.
func (s *HouseholdService) GetByID(ctx context.Context, id int64) (transfer.HouseholdRecord, error) {
	h, err := s.store.FindHouseholdByID(ctx, id)
	if err != nil {
		return transfer.HouseholdRecord{}, err
	}
	if h == nil {
		return transfer.HouseholdRecord{}, &apperr.NotFound{Entity: "household", ID: id}
	}
	return transfer.HouseholdToRecord(h), nil
}

// Update copies the record's scalar fields onto the existing household and
// replaces both owned collections with replaceAll semantics: removed members
// are detached (back-reference cleared), added members attached, unchanged
// members untouched. An update is never an implicit create.
func (s *HouseholdService) Update(ctx context.Context, rec transfer.HouseholdRecord) (transfer.HouseholdRecord, error) {
	existing, err := s.store.FindHouseholdByID(ctx, rec.ID)
	if err != nil {
		return transfer.HouseholdRecord{}, err
	}
	if existing == nil {
		return transfer.HouseholdRecord{}, &apperr.NotFound{Entity: "household", ID: rec.ID}
	}
	if rec.Name == "" {
		return transfer.HouseholdRecord{}, &apperr.Validation{Field: "name", Reason: "must not be empty"}
	}

	current, err := s.resolver.Users(ctx, existing.UserIDs)
	if err != nil {
		return transfer.HouseholdRecord{}, err
	}
	next, err := s.resolver.Users(ctx, rec.UserIDs)
	if err != nil {
		return transfer.HouseholdRecord{}, err
	}
	currentLists, err := s.resolver.ShoppingLists(ctx, existing.ShoppingListIDs)
	if err != nil {
		return transfer.HouseholdRecord{}, err
	}
	nextLists, err := s.resolver.ShoppingLists(ctx, rec.ShoppingListIDs)
	if err != nil {
		return transfer.HouseholdRecord{}, err
	}

	existing.Name = rec.Name
	relation.ReplaceUsers(existing, current, next)
	relation.ReplaceShoppingLists(existing, currentLists, nextLists)

	// SaveHousehold persists the whole synchronized edge in one transaction.
	if err := s.store.SaveHousehold(ctx, existing); err != nil {
		return transfer.HouseholdRecord{}, err
	}

	slog.Info("household updated", "household_id", existing.ID)
	return transfer.HouseholdToRecord(existing), nil
}

// DeleteByID deletes the household and everything it exclusively owns:
// every owned shopping list with its items, and every member user (whose
// item-adder attributions are nulled, not deleted). The whole cascade runs
// in one transaction; a partial cascade can never be observed.
func (s *HouseholdService) DeleteByID(ctx context.Context, id int64) error {
	err := s.store.WithTx(ctx, func(tx storage.Store) error {
		h, err := tx.FindHouseholdByID(ctx, id)
		if err != nil {
			return err
		}
		if h == nil {
			return &apperr.NotFound{Entity: "household", ID: id}
		}

		for _, listID := range h.ShoppingListIDs {
			if err := deleteShoppingListCascade(ctx, tx, listID); err != nil {
				return err
			}
		}
		for _, userID := range h.UserIDs {
			if err := deleteUserCascade(ctx, tx, userID); err != nil {
				return err
			}
		}
		return tx.DeleteHouseholdByID(ctx, id)
	})
	if err != nil {
		return err
	}

	slog.Info("household deleted", "household_id", id)
	return nil
}
