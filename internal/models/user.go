package models

// User is a registered household member.
// A user may be unaffiliated (HouseholdID nil). Users do not own items; they
// are only attributed as an item's adder, and deleting a user nulls that
// attribution rather than deleting the item.
type User struct {
	// ID is the server-assigned identifier (0 until first save, never reused).
	ID int64

	// Username identifies the user. Must be non-empty.
	Username string

	// PasswordHash is the bcrypt hash of the user's credential.
	// Opaque; never serialized outward.
	PasswordHash string

	// Name is the display name. May be empty.
	Name string

	// Enabled marks whether the account is active.
	Enabled bool

	// HouseholdID is the identifier of the owning household, nil if unaffiliated.
	HouseholdID *int64

	// CreatedAt is the Unix timestamp assigned at first save.
	CreatedAt int64
}
