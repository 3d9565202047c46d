package models

// ShoppingList is a named list of items, optionally owned by a household.
// It exclusively owns its Items: deleting a list deletes them.
type ShoppingList struct {
	// ID is the server-assigned identifier (0 until first save, never reused).
	ID int64

	// Name is the display name of the list. Must be non-empty.
	Name string

	// Default marks the household's default list.
	Default bool

	// HouseholdID is the identifier of the owning household, nil if unowned.
	HouseholdID *int64

	// ItemIDs are the identifiers of the owned items, unique, order irrelevant.
	ItemIDs []int64

	// CreatedAt is the Unix timestamp assigned at first save.
	CreatedAt int64
}

// HasItem reports whether the item identifier is in the owned set.
func (l *ShoppingList) HasItem(id int64) bool {
	return containsID(l.ItemIDs, id)
}
