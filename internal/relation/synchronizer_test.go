package relation

import (
	"testing"

	"github.com/foodlist/service/internal/models"
)

func TestAttachDetachUser(t *testing.T) {
	h := &models.Household{ID: 1, Name: "Hertsch"}
	u := &models.User{ID: 7, Username: "finn"}

	AttachUser(h, u)

	if !h.HasUser(7) {
		t.Error("expected household to list user after attach")
	}
	if u.HouseholdID == nil || *u.HouseholdID != 1 {
		t.Errorf("expected user back-reference to be 1, got %v", u.HouseholdID)
	}

	// Attaching again must not duplicate the member.
	AttachUser(h, u)
	if len(h.UserIDs) != 1 {
		t.Errorf("expected 1 member after repeated attach, got %d", len(h.UserIDs))
	}

	DetachUser(h, u)
	if h.HasUser(7) {
		t.Error("expected household to drop user after detach")
	}
	if u.HouseholdID != nil {
		t.Errorf("expected user back-reference cleared, got %v", *u.HouseholdID)
	}

	// Detaching again is a no-op.
	DetachUser(h, u)
	if len(h.UserIDs) != 0 || u.HouseholdID != nil {
		t.Error("expected repeated detach to change nothing")
	}
}

func TestBothSidesConsistentAfterEveryOperation(t *testing.T) {
	h := &models.Household{ID: 3}
	users := []*models.User{{ID: 1}, {ID: 2}, {ID: 3}}

	check := func(step string) {
		t.Helper()
		for _, u := range users {
			inSet := h.HasUser(u.ID)
			pointsBack := u.HouseholdID != nil && *u.HouseholdID == h.ID
			if inSet != pointsBack {
				t.Errorf("%s: user %d inconsistent: in set %v, points back %v", step, u.ID, inSet, pointsBack)
			}
		}
	}

	AttachUser(h, users[0])
	check("attach u1")
	AttachUser(h, users[1])
	check("attach u2")
	DetachUser(h, users[0])
	check("detach u1")
	AttachUser(h, users[2])
	check("attach u3")
	DetachUser(h, users[2])
	check("detach u3")
	DetachUser(h, users[1])
	check("detach u2")
}

func TestAttachDetachShoppingListAndItem(t *testing.T) {
	h := &models.Household{ID: 2}
	l := &models.ShoppingList{ID: 5, Name: "Lischte"}
	it := &models.Item{ID: 9, Name: "Tomato"}

	AttachShoppingList(h, l)
	if !h.HasShoppingList(5) || l.HouseholdID == nil || *l.HouseholdID != 2 {
		t.Error("expected list attached on both sides")
	}

	AttachItem(l, it)
	if !l.HasItem(9) || it.ShoppingListID == nil || *it.ShoppingListID != 5 {
		t.Error("expected item attached on both sides")
	}

	DetachItem(l, it)
	if l.HasItem(9) || it.ShoppingListID != nil {
		t.Error("expected item detached on both sides")
	}

	DetachShoppingList(h, l)
	if h.HasShoppingList(5) || l.HouseholdID != nil {
		t.Error("expected list detached on both sides")
	}
}

func TestDetachLeavesForeignOwnerAlone(t *testing.T) {
	// Detaching from a household the user does not point at must not clear
	// the reference to the actual owner.
	other := int64(99)
	h := &models.Household{ID: 1}
	u := &models.User{ID: 4, HouseholdID: &other}

	DetachUser(h, u)

	if u.HouseholdID == nil || *u.HouseholdID != 99 {
		t.Errorf("expected foreign back-reference preserved, got %v", u.HouseholdID)
	}
}

func TestReplaceUsers(t *testing.T) {
	h := &models.Household{ID: 1}
	u1 := &models.User{ID: 1}
	u2 := &models.User{ID: 2}
	u3 := &models.User{ID: 3}
	AttachUser(h, u1)
	AttachUser(h, u2)

	attached, detached := ReplaceUsers(h, []*models.User{u1, u2}, []*models.User{u2, u3})

	if len(attached) != 1 || attached[0].ID != 3 {
		t.Errorf("expected only u3 attached, got %v", attached)
	}
	if len(detached) != 1 || detached[0].ID != 1 {
		t.Errorf("expected only u1 detached, got %v", detached)
	}
	if u1.HouseholdID != nil {
		t.Error("expected removed member's back-reference cleared")
	}
	if u2.HouseholdID == nil || *u2.HouseholdID != 1 {
		t.Error("expected unchanged member untouched")
	}
	if u3.HouseholdID == nil || *u3.HouseholdID != 1 {
		t.Error("expected added member to point back")
	}
	if !h.HasUser(2) || !h.HasUser(3) || h.HasUser(1) {
		t.Errorf("expected member set {2, 3}, got %v", h.UserIDs)
	}
}

func TestReplaceUsersUnchangedIsNoOp(t *testing.T) {
	h := &models.Household{ID: 1}
	u1 := &models.User{ID: 1}
	u2 := &models.User{ID: 2}
	AttachUser(h, u1)
	AttachUser(h, u2)

	current := []*models.User{u1, u2}
	attached, detached := ReplaceUsers(h, current, current)

	if len(attached) != 0 || len(detached) != 0 {
		t.Errorf("expected no side effects, got attached=%v detached=%v", attached, detached)
	}
	if len(h.UserIDs) != 2 || !h.HasUser(1) || !h.HasUser(2) {
		t.Errorf("expected member set unchanged, got %v", h.UserIDs)
	}
	for _, u := range current {
		if u.HouseholdID == nil || *u.HouseholdID != 1 {
			t.Errorf("expected user %d back-reference unchanged", u.ID)
		}
	}
}

func TestReplaceItems(t *testing.T) {
	l := &models.ShoppingList{ID: 1}
	i1 := &models.Item{ID: 1}
	i2 := &models.Item{ID: 2}
	AttachItem(l, i1)

	attached, detached := ReplaceItems(l, []*models.Item{i1}, []*models.Item{i2})

	if len(attached) != 1 || len(detached) != 1 {
		t.Fatalf("expected one attach and one detach, got %d/%d", len(attached), len(detached))
	}
	if i1.ShoppingListID != nil {
		t.Error("expected removed item's back-reference cleared")
	}
	if i2.ShoppingListID == nil || *i2.ShoppingListID != 1 {
		t.Error("expected added item to point back")
	}
}
