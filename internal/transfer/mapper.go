package transfer

import "github.com/foodlist/service/internal/models"

// HouseholdToRecord converts an entity to its wire form.
func HouseholdToRecord(h *models.Household) HouseholdRecord {
	return HouseholdRecord{
		ID:              h.ID,
		Name:            h.Name,
		CreatedAt:       h.CreatedAt,
		UserIDs:         emptyIfNil(h.UserIDs),
		ShoppingListIDs: emptyIfNil(h.ShoppingListIDs),
	}
}

// RecordToHousehold converts a wire record to a draft entity. Relationship
// identifiers are carried over unresolved; resolution is the service's job.
func RecordToHousehold(rec HouseholdRecord) *models.Household {
	return &models.Household{
		ID:              rec.ID,
		Name:            rec.Name,
		UserIDs:         rec.UserIDs,
		ShoppingListIDs: rec.ShoppingListIDs,
	}
}

// UserToRecord converts an entity to its wire form. The credential hash is
// deliberately not mapped.
func UserToRecord(u *models.User) UserRecord {
	return UserRecord{
		ID:          u.ID,
		Username:    u.Username,
		Name:        u.Name,
		Enabled:     u.Enabled,
		HouseholdID: u.HouseholdID,
		CreatedAt:   u.CreatedAt,
	}
}

// RecordToUser converts a wire record to a draft entity. The plaintext
// password is NOT mapped; hashing it into PasswordHash is the service's job.
func RecordToUser(rec UserRecord) *models.User {
	return &models.User{
		ID:          rec.ID,
		Username:    rec.Username,
		Name:        rec.Name,
		Enabled:     rec.Enabled,
		HouseholdID: rec.HouseholdID,
	}
}

// ShoppingListToRecord converts an entity and its loaded items to the wire
// form used on read paths.
func ShoppingListToRecord(l *models.ShoppingList, items []*models.Item) ShoppingListRecord {
	recs := make([]ItemRecord, len(items))
	for i, it := range items {
		recs[i] = ItemToRecord(it)
	}
	return ShoppingListRecord{
		ID:          l.ID,
		Name:        l.Name,
		Default:     l.Default,
		HouseholdID: l.HouseholdID,
		CreatedAt:   l.CreatedAt,
		Items:       recs,
	}
}

// RecordToShoppingList converts a wire record to a draft entity.
func RecordToShoppingList(rec ShoppingListRecord) *models.ShoppingList {
	return &models.ShoppingList{
		ID:          rec.ID,
		Name:        rec.Name,
		Default:     rec.Default,
		HouseholdID: rec.HouseholdID,
		ItemIDs:     rec.ItemIDs,
	}
}

// ItemToRecord converts an entity to its wire form.
func ItemToRecord(it *models.Item) ItemRecord {
	return ItemRecord{
		ID:             it.ID,
		Name:           it.Name,
		Quantity:       it.Quantity,
		Checked:        it.Checked,
		AddedByUserID:  it.AddedByUserID,
		ShoppingListID: it.ShoppingListID,
		AddedAt:        it.AddedAt,
	}
}

// RecordToItem converts a wire record to a draft entity.
func RecordToItem(rec ItemRecord) *models.Item {
	return &models.Item{
		ID:             rec.ID,
		Name:           rec.Name,
		Quantity:       rec.Quantity,
		Checked:        rec.Checked,
		AddedByUserID:  rec.AddedByUserID,
		ShoppingListID: rec.ShoppingListID,
	}
}

// ItemToDisplayRecord builds the read-path variant, denormalizing the adder's
// username and the owning list's name without touching the entity.
func ItemToDisplayRecord(it *models.Item, addedByUsername, shoppingListName string) ItemDisplayRecord {
	return ItemDisplayRecord{
		ItemRecord:       ItemToRecord(it),
		AddedByUsername:  addedByUsername,
		ShoppingListName: shoppingListName,
	}
}

func emptyIfNil(ids []int64) []int64 {
	if ids == nil {
		return []int64{}
	}
	return ids
}
