package sqlite

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/foodlist/service/internal/models"
	"github.com/foodlist/service/internal/storage"
)

func newTestStore(t *testing.T) *SQLiteStore {
	t.Helper()

	store, err := New(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("failed to create store: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestSaveAssignsIdentityAndTimestamp(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	h := &models.Household{Name: "Hertsch"}
	if err := store.SaveHousehold(ctx, h); err != nil {
		t.Fatalf("SaveHousehold failed: %v", err)
	}

	if h.ID == 0 {
		t.Error("expected identifier to be assigned")
	}
	if h.CreatedAt == 0 {
		t.Error("expected CreatedAt to be set")
	}

	// A second save must not reassign identity or timestamp.
	id, created := h.ID, h.CreatedAt
	h.Name = "Hertsch 2"
	if err := store.SaveHousehold(ctx, h); err != nil {
		t.Fatalf("second SaveHousehold failed: %v", err)
	}
	if h.ID != id || h.CreatedAt != created {
		t.Error("expected identity and timestamp to be immutable on update")
	}

	got, err := store.FindHouseholdByID(ctx, id)
	if err != nil {
		t.Fatalf("FindHouseholdByID failed: %v", err)
	}
	if got.Name != "Hertsch 2" {
		t.Errorf("expected updated name, got %s", got.Name)
	}
}

func TestFindReturnsNilWhenAbsent(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	h, err := store.FindHouseholdByID(ctx, 12345)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if h != nil {
		t.Errorf("expected nil for absent household, got %+v", h)
	}

	exists, err := store.HouseholdExists(ctx, 12345)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if exists {
		t.Error("expected absent household to not exist")
	}
}

func TestSaveHouseholdSyncsMemberColumn(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	u1 := &models.User{Username: "finn", PasswordHash: "x", Enabled: true}
	u2 := &models.User{Username: "mara", PasswordHash: "x", Enabled: true}
	for _, u := range []*models.User{u1, u2} {
		if err := store.SaveUser(ctx, u); err != nil {
			t.Fatalf("SaveUser failed: %v", err)
		}
	}

	h := &models.Household{Name: "Hertsch", UserIDs: []int64{u1.ID, u2.ID}}
	if err := store.SaveHousehold(ctx, h); err != nil {
		t.Fatalf("SaveHousehold failed: %v", err)
	}

	// Both users now point back at the household.
	for _, u := range []*models.User{u1, u2} {
		got, err := store.FindUserByID(ctx, u.ID)
		if err != nil {
			t.Fatalf("FindUserByID failed: %v", err)
		}
		if got.HouseholdID == nil || *got.HouseholdID != h.ID {
			t.Errorf("expected user %d to point at household %d, got %v", u.ID, h.ID, got.HouseholdID)
		}
	}

	// Shrinking the member set detaches the removed user.
	h.UserIDs = []int64{u1.ID}
	if err := store.SaveHousehold(ctx, h); err != nil {
		t.Fatalf("SaveHousehold failed: %v", err)
	}
	got, err := store.FindUserByID(ctx, u2.ID)
	if err != nil {
		t.Fatalf("FindUserByID failed: %v", err)
	}
	if got.HouseholdID != nil {
		t.Errorf("expected removed member's column nulled, got %v", *got.HouseholdID)
	}

	reloaded, err := store.FindHouseholdByID(ctx, h.ID)
	if err != nil {
		t.Fatalf("FindHouseholdByID failed: %v", err)
	}
	if len(reloaded.UserIDs) != 1 || reloaded.UserIDs[0] != u1.ID {
		t.Errorf("expected member set [%d], got %v", u1.ID, reloaded.UserIDs)
	}
}

func TestSaveShoppingListSyncsItemColumn(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	it := &models.Item{Name: "Tomato", Quantity: 1}
	if err := store.SaveItem(ctx, it); err != nil {
		t.Fatalf("SaveItem failed: %v", err)
	}

	l := &models.ShoppingList{Name: "Lischte", ItemIDs: []int64{it.ID}}
	if err := store.SaveShoppingList(ctx, l); err != nil {
		t.Fatalf("SaveShoppingList failed: %v", err)
	}

	items, err := store.FindItemsByShoppingListID(ctx, l.ID)
	if err != nil {
		t.Fatalf("FindItemsByShoppingListID failed: %v", err)
	}
	if len(items) != 1 || items[0].Name != "Tomato" {
		t.Errorf("expected the tomato item, got %v", items)
	}
}

func TestClearItemAdder(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	u := &models.User{Username: "finn", PasswordHash: "x", Enabled: true}
	if err := store.SaveUser(ctx, u); err != nil {
		t.Fatalf("SaveUser failed: %v", err)
	}
	it := &models.Item{Name: "Tomato", Quantity: 1, AddedByUserID: &u.ID}
	if err := store.SaveItem(ctx, it); err != nil {
		t.Fatalf("SaveItem failed: %v", err)
	}

	if err := store.ClearItemAdder(ctx, u.ID); err != nil {
		t.Fatalf("ClearItemAdder failed: %v", err)
	}

	got, err := store.FindItemByID(ctx, it.ID)
	if err != nil {
		t.Fatalf("FindItemByID failed: %v", err)
	}
	if got == nil {
		t.Fatal("expected item to survive")
	}
	if got.AddedByUserID != nil {
		t.Errorf("expected adder reference nulled, got %v", *got.AddedByUserID)
	}
}

func TestWithTxRollsBackOnError(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	sentinel := errors.New("boom")
	err := store.WithTx(ctx, func(tx storage.Store) error {
		if err := tx.SaveHousehold(ctx, &models.Household{Name: "doomed"}); err != nil {
			return err
		}
		return sentinel
	})
	if !errors.Is(err, sentinel) {
		t.Fatalf("expected sentinel error, got %v", err)
	}

	households, err := store.FindAllHouseholds(ctx)
	if err != nil {
		t.Fatalf("FindAllHouseholds failed: %v", err)
	}
	if len(households) != 0 {
		t.Errorf("expected rollback to discard the insert, got %d households", len(households))
	}
}

func TestWithTxCommits(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	err := store.WithTx(ctx, func(tx storage.Store) error {
		return tx.SaveHousehold(ctx, &models.Household{Name: "kept"})
	})
	if err != nil {
		t.Fatalf("WithTx failed: %v", err)
	}

	households, err := store.FindAllHouseholds(ctx)
	if err != nil {
		t.Fatalf("FindAllHouseholds failed: %v", err)
	}
	if len(households) != 1 {
		t.Fatalf("expected 1 household, got %d", len(households))
	}
}

func TestIdentifiersNeverReused(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	first := &models.Household{Name: "first"}
	if err := store.SaveHousehold(ctx, first); err != nil {
		t.Fatalf("SaveHousehold failed: %v", err)
	}
	if err := store.DeleteHouseholdByID(ctx, first.ID); err != nil {
		t.Fatalf("DeleteHouseholdByID failed: %v", err)
	}

	second := &models.Household{Name: "second"}
	if err := store.SaveHousehold(ctx, second); err != nil {
		t.Fatalf("SaveHousehold failed: %v", err)
	}
	if second.ID == first.ID {
		t.Errorf("expected a fresh identifier, got reused %d", second.ID)
	}
}
