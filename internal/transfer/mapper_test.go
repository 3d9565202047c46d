package transfer

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/foodlist/service/internal/models"
)

func TestUserRecordNeverCarriesCredential(t *testing.T) {
	u := &models.User{
		ID:           1,
		Username:     "finn",
		PasswordHash: "$2a$10$secret",
		Enabled:      true,
	}

	rec := UserToRecord(u)
	if rec.Password != "" {
		t.Error("expected no credential in the record")
	}

	body, err := json.Marshal(rec)
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}
	if strings.Contains(string(body), "secret") || strings.Contains(string(body), "password") {
		t.Errorf("expected credential absent from JSON, got %s", body)
	}
}

func TestRecordToUserIgnoresPassword(t *testing.T) {
	u := RecordToUser(UserRecord{Username: "finn", Password: "plaintext"})
	if u.PasswordHash != "" {
		t.Errorf("expected mapper to leave hashing to the service, got %q", u.PasswordHash)
	}
}

func TestHouseholdRecordEmitsEmptyCollections(t *testing.T) {
	rec := HouseholdToRecord(&models.Household{ID: 1, Name: "Hertsch"})

	body, err := json.Marshal(rec)
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}
	// nil slices must serialize as [] rather than null.
	if !strings.Contains(string(body), `"userIds":[]`) ||
		!strings.Contains(string(body), `"shoppingListIds":[]`) {
		t.Errorf("expected empty arrays, got %s", body)
	}
}

func TestShoppingListRecordEmbedsItems(t *testing.T) {
	listID := int64(5)
	l := &models.ShoppingList{ID: listID, Name: "Lischte", ItemIDs: []int64{9}}
	items := []*models.Item{{ID: 9, Name: "Tomato", Quantity: 2, ShoppingListID: &listID}}

	rec := ShoppingListToRecord(l, items)
	if len(rec.Items) != 1 || rec.Items[0].Name != "Tomato" {
		t.Fatalf("expected embedded item record, got %v", rec.Items)
	}
	if rec.Items[0].ShoppingListID == nil || *rec.Items[0].ShoppingListID != listID {
		t.Error("expected item to reference its list by identifier")
	}
}

func TestItemDisplayRecord(t *testing.T) {
	adder := int64(3)
	it := &models.Item{ID: 9, Name: "Tomato", AddedByUserID: &adder}

	rec := ItemToDisplayRecord(it, "finn", "Lischte")
	if rec.AddedByUsername != "finn" || rec.ShoppingListName != "Lischte" {
		t.Errorf("expected denormalized names, got %q/%q", rec.AddedByUsername, rec.ShoppingListName)
	}
	if rec.Name != "Tomato" {
		t.Errorf("expected base fields carried over, got %q", rec.Name)
	}
}
