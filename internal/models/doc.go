// Package models defines the core domain entities for the foodlist service.
//
// # Entities
//
//   - Household: owns member Users and ShoppingLists
//   - User: household member; may be attributed as an item's adder
//   - ShoppingList: owns Items, optionally belongs to a Household
//   - Item: a line on a shopping list
//
// # Design Principles
//
// 1. **Identifier arena**: relationship fields hold int64 identifiers
// (nullable singular references as *int64, collections as []int64), never
// direct struct pointers. Household/User and ShoppingList/Item are
// bidirectional edges; storing identifiers on both sides keeps the graph
// acyclic in memory and makes consistency checkable.
//
// 2. **Both sides stored**: the owner keeps the child identifier set and the
// child keeps the owner identifier. The relation package is the only code
// that should mutate these pairs, so that both sides always agree.
//
// 3. **Server-assigned identity**: ID and CreatedAt are zero until the first
// successful save; the store assigns both and neither changes afterwards.
package models
