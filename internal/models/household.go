package models

// Household groups the users that share shopping lists.
// It exclusively owns its member Users and its ShoppingLists: deleting a
// household deletes both collections.
type Household struct {
	// ID is the server-assigned identifier (0 until first save, never reused).
	ID int64

	// Name is the display name of the household. Must be non-empty.
	Name string

	// UserIDs are the identifiers of the member users, unique, order irrelevant.
	UserIDs []int64

	// ShoppingListIDs are the identifiers of the owned lists, unique, order irrelevant.
	ShoppingListIDs []int64

	// CreatedAt is the Unix timestamp assigned at first save.
	CreatedAt int64
}

// HasUser reports whether the user identifier is in the member set.
func (h *Household) HasUser(id int64) bool {
	return containsID(h.UserIDs, id)
}

// HasShoppingList reports whether the list identifier is in the owned set.
func (h *Household) HasShoppingList(id int64) bool {
	return containsID(h.ShoppingListIDs, id)
}

func containsID(ids []int64, id int64) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}
