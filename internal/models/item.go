package models

// Item is a single entry on a shopping list.
type Item struct {
	// ID is the server-assigned identifier (0 until first save, never reused).
	ID int64

	// Name is the item description (e.g. "Tomato").
	Name string

	// Quantity is the amount to buy. Non-negative.
	Quantity int

	// Checked marks the item as bought.
	Checked bool

	// AddedByUserID references the user who added the item. Nil when unset
	// or when that user was deleted (non-owning edge: the reference is
	// nulled, the item survives).
	AddedByUserID *int64

	// ShoppingListID is the identifier of the owning list, nil if unowned.
	ShoppingListID *int64

	// AddedAt is the Unix timestamp assigned at first save.
	AddedAt int64
}
