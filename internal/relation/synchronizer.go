package relation

import "github.com/foodlist/service/internal/models"

// The attach/detach/replace functions below mutate both sides of a
// bidirectional edge in memory: the owner's identifier set and the child's
// back-reference. They never touch storage; persisting the synchronized
// entities is the caller's job (saving the owner persists the whole edge).
// All operations are idempotent.

// AttachUser adds the user to the household's member set and points the
// user's back-reference at the household.
func AttachUser(h *models.Household, u *models.User) {
	if !h.HasUser(u.ID) {
		h.UserIDs = append(h.UserIDs, u.ID)
	}
	id := h.ID
	u.HouseholdID = &id
}

// DetachUser removes the user from the household's member set and clears the
// user's back-reference.
func DetachUser(h *models.Household, u *models.User) {
	h.UserIDs = removeID(h.UserIDs, u.ID)
	if u.HouseholdID != nil && *u.HouseholdID == h.ID {
		u.HouseholdID = nil
	}
}

// AttachShoppingList adds the list to the household's owned set and points
// the list's back-reference at the household.
func AttachShoppingList(h *models.Household, l *models.ShoppingList) {
	if !h.HasShoppingList(l.ID) {
		h.ShoppingListIDs = append(h.ShoppingListIDs, l.ID)
	}
	id := h.ID
	l.HouseholdID = &id
}

// DetachShoppingList removes the list from the household's owned set and
// clears the list's back-reference.
func DetachShoppingList(h *models.Household, l *models.ShoppingList) {
	h.ShoppingListIDs = removeID(h.ShoppingListIDs, l.ID)
	if l.HouseholdID != nil && *l.HouseholdID == h.ID {
		l.HouseholdID = nil
	}
}

// AttachItem adds the item to the list's owned set and points the item's
// back-reference at the list.
func AttachItem(l *models.ShoppingList, it *models.Item) {
	if !l.HasItem(it.ID) {
		l.ItemIDs = append(l.ItemIDs, it.ID)
	}
	id := l.ID
	it.ShoppingListID = &id
}

// DetachItem removes the item from the list's owned set and clears the
// item's back-reference.
func DetachItem(l *models.ShoppingList, it *models.Item) {
	l.ItemIDs = removeID(l.ItemIDs, it.ID)
	if it.ShoppingListID != nil && *it.ShoppingListID == l.ID {
		it.ShoppingListID = nil
	}
}

// ReplaceUsers makes next the household's exact member set. It computes the
// symmetric difference by identifier against current, detaches removed
// members, attaches added members, and leaves unchanged members untouched.
// Returns the members actually attached and detached so callers can observe
// that an unchanged replacement had no side effects.
func ReplaceUsers(h *models.Household, current, next []*models.User) (attached, detached []*models.User) {
	nextSet := userIDSet(next)
	for _, u := range current {
		if _, keep := nextSet[u.ID]; !keep {
			DetachUser(h, u)
			detached = append(detached, u)
		}
	}
	for _, u := range next {
		if !h.HasUser(u.ID) {
			AttachUser(h, u)
			attached = append(attached, u)
		}
	}
	return attached, detached
}

// ReplaceShoppingLists makes next the household's exact owned-list set, with
// the same semantics as ReplaceUsers.
func ReplaceShoppingLists(h *models.Household, current, next []*models.ShoppingList) (attached, detached []*models.ShoppingList) {
	nextSet := make(map[int64]struct{}, len(next))
	for _, l := range next {
		nextSet[l.ID] = struct{}{}
	}
	for _, l := range current {
		if _, keep := nextSet[l.ID]; !keep {
			DetachShoppingList(h, l)
			detached = append(detached, l)
		}
	}
	for _, l := range next {
		if !h.HasShoppingList(l.ID) {
			AttachShoppingList(h, l)
			attached = append(attached, l)
		}
	}
	return attached, detached
}

// ReplaceItems makes next the list's exact owned-item set, with the same
// semantics as ReplaceUsers.
func ReplaceItems(l *models.ShoppingList, current, next []*models.Item) (attached, detached []*models.Item) {
	nextSet := make(map[int64]struct{}, len(next))
	for _, it := range next {
		nextSet[it.ID] = struct{}{}
	}
	for _, it := range current {
		if _, keep := nextSet[it.ID]; !keep {
			DetachItem(l, it)
			detached = append(detached, it)
		}
	}
	for _, it := range next {
		if !l.HasItem(it.ID) {
			AttachItem(l, it)
			attached = append(attached, it)
		}
	}
	return attached, detached
}

func userIDSet(users []*models.User) map[int64]struct{} {
	set := make(map[int64]struct{}, len(users))
	for _, u := range users {
		set[u.ID] = struct{}{}
	}
	return set
}

func removeID(ids []int64, id int64) []int64 {
	for i, v := range ids {
		if v == id {
			return append(ids[:i], ids[i+1:]...)
		}
	}
	return ids
}
