// Package transfer defines the wire records exchanged at the API boundary
// and the mappings between records and entities.
//
// Records are flat: every relationship is an identifier (or identifier
// list), never a nested entity. The one bounded exception is that shopping
// list reads embed their item records one level deep, since items themselves
// carry identifiers only and cannot recurse.
package transfer

// HouseholdRecord is the wire form of a household. Member users and owned
// lists appear as identifier lists; dedicated endpoints serve the full
// child records.
type HouseholdRecord struct {
	ID              int64   `json:"id"`
	Name            string  `json:"name"`
	CreatedAt       int64   `json:"createdAt"`
	UserIDs         []int64 `json:"userIds"`
	ShoppingListIDs []int64 `json:"shoppingListIds"`
}

// UserRecord is the wire form of a user. Password is accepted on creation
// and never emitted; the stored hash has no outward representation at all.
type UserRecord struct {
	ID          int64  `json:"id"`
	Username    string `json:"username"`
	Password    string `json:"password,omitempty"`
	Name        string `json:"name"`
	Enabled     bool   `json:"enabled"`
	HouseholdID *int64 `json:"householdId"`
	CreatedAt   int64  `json:"createdAt"`
}

// ShoppingListRecord is the wire form of a shopping list. Outward, Items
// carries the full item records; inward, ItemIDs re-points item ownership.
type ShoppingListRecord struct {
	ID          int64        `json:"id"`
	Name        string       `json:"name"`
	Default     bool         `json:"default"`
	HouseholdID *int64       `json:"householdId"`
	CreatedAt   int64        `json:"createdAt"`
	ItemIDs     []int64      `json:"itemIds,omitempty"`
	Items       []ItemRecord `json:"items"`
}

// ItemRecord is the wire form of an item.
type ItemRecord struct {
	ID             int64  `json:"id"`
	Name           string `json:"name"`
	Quantity       int    `json:"quantity"`
	Checked        bool   `json:"checked"`
	AddedByUserID  *int64 `json:"addedByUserId"`
	ShoppingListID *int64 `json:"shoppingListId"`
	AddedAt        int64  `json:"addedAt"`
}

// ItemDisplayRecord is the read-path variant of ItemRecord, denormalizing
// one human-readable field from each referenced entity.
type ItemDisplayRecord struct {
	ItemRecord
	AddedByUsername  string `json:"addedByUsername,omitempty"`
	ShoppingListName string `json:"shoppingListName,omitempty"`
}
