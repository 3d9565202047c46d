package service

import (
	"context"
	"log/slog"

	"github.com/foodlist/service/internal/apperr"
	"github.com/foodlist/service/internal/models"
	"github.com/foodlist/service/internal/relation"
	"github.com/foodlist/service/internal/storage"
	"github.com/foodlist/service/internal/transfer"
)

// ItemService exposes CRUD operations for items. Read paths return the
// display variant with the adder's username and the list's name
// denormalized.
type ItemService struct {
	store    storage.Store
	resolver *relation.Resolver
}

// NewItemService creates an ItemService over the given store.
func NewItemService(store storage.Store) *ItemService {
	return &ItemService{store: store, resolver: relation.NewResolver(store)}
}

// Add creates an item from the record. The adder and shopping list
// identifiers, if present, must resolve.
func (s *ItemService) Add(ctx context.Context, rec transfer.ItemRecord) (transfer.ItemRecord, error) {
	if rec.Quantity < 0 {
		return transfer.ItemRecord{}, &apperr.Validation{Field: "quantity", Reason: "must not be negative"}
	}

	if _, err := s.resolver.User(ctx, rec.AddedByUserID); err != nil {
		return transfer.ItemRecord{}, err
	}
	list, err := s.resolver.ShoppingList(ctx, rec.ShoppingListID)
	if err != nil {
		return transfer.ItemRecord{}, err
	}

	draft := transfer.RecordToItem(rec)
	draft.ID = 0

	if err := s.store.SaveItem(ctx, draft); err != nil {
		return transfer.ItemRecord{}, err
	}
	if list != nil {
		relation.AttachItem(list, draft)
	}

	slog.Info("item created", "item_id", draft.ID, "name", draft.Name)
	return transfer.ItemToRecord(draft), nil
}

// GetAll returns display records for all items.
func (s *ItemService) GetAll(ctx context.Context) ([]transfer.ItemDisplayRecord, error) {
	items, err := s.store.FindAllItems(ctx)
	if err != nil {
		return nil, err
	}
	recs := make([]transfer.ItemDisplayRecord, len(items))
	for i, it := range items {
		rec, err := s.toDisplay(ctx, it)
		if err != nil {
			return nil, err
		}
		recs[i] = rec
	}
	return recs, nil
}

// GetByID returns the display record for the item with the identifier.
func (s *ItemService) GetByID(ctx context.Context, id int64) (transfer.ItemDisplayRecord, error) {
	it, err := s.store.FindItemByID(ctx, id)
	if err != nil {
		return transfer.ItemDisplayRecord{}, err
	}
	if it == nil {
		return transfer.ItemDisplayRecord{}, &apperr.NotFound{Entity: "item", ID: id}
	}
	return s.toDisplay(ctx, it)
}

// Update copies the record's scalar fields onto the existing item and
// re-points both singular references (nil identifier clears them). The
// added-at timestamp is never touched.
func (s *ItemService) Update(ctx context.Context, rec transfer.ItemRecord) (transfer.ItemRecord, error) {
	existing, err := s.store.FindItemByID(ctx, rec.ID)
	if err != nil {
		return transfer.ItemRecord{}, err
	}
	if existing == nil {
		return transfer.ItemRecord{}, &apperr.NotFound{Entity: "item", ID: rec.ID}
	}
	if rec.Quantity < 0 {
		return transfer.ItemRecord{}, &apperr.Validation{Field: "quantity", Reason: "must not be negative"}
	}

	adder, err := s.resolver.User(ctx, rec.AddedByUserID)
	if err != nil {
		return transfer.ItemRecord{}, err
	}
	list, err := s.resolver.ShoppingList(ctx, rec.ShoppingListID)
	if err != nil {
		return transfer.ItemRecord{}, err
	}

	existing.Name = rec.Name
	existing.Quantity = rec.Quantity
	existing.Checked = rec.Checked
	if adder != nil {
		id := adder.ID
		existing.AddedByUserID = &id
	} else {
		existing.AddedByUserID = nil
	}
	if list != nil {
		relation.AttachItem(list, existing)
	} else {
		existing.ShoppingListID = nil
	}

	if err := s.store.SaveItem(ctx, existing); err != nil {
		return transfer.ItemRecord{}, err
	}

	slog.Info("item updated", "item_id", existing.ID)
	return transfer.ItemToRecord(existing), nil
}

// DeleteByID deletes the item.
func (s *ItemService) DeleteByID(ctx context.Context, id int64) error {
	exists, err := s.store.ItemExists(ctx, id)
	if err != nil {
		return err
	}
	if !exists {
		return &apperr.NotFound{Entity: "item", ID: id}
	}
	if err := s.store.DeleteItemByID(ctx, id); err != nil {
		return err
	}

	slog.Info("item deleted", "item_id", id)
	return nil
}

// toDisplay denormalizes one human-readable field from each referenced
// entity without mutating the item. A reference whose target disappeared
// between loads simply renders empty.
func (s *ItemService) toDisplay(ctx context.Context, it *models.Item) (transfer.ItemDisplayRecord, error) {
	var username, listName string
	if it.AddedByUserID != nil {
		u, err := s.store.FindUserByID(ctx, *it.AddedByUserID)
		if err != nil {
			return transfer.ItemDisplayRecord{}, err
		}
		if u != nil {
			username = u.Username
		}
	}
	if it.ShoppingListID != nil {
		l, err := s.store.FindShoppingListByID(ctx, *it.ShoppingListID)
		if err != nil {
			return transfer.ItemDisplayRecord{}, err
		}
		if l != nil {
			listName = l.Name
		}
	}
	return transfer.ItemToDisplayRecord(it, username, listName), nil
}
