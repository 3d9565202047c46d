package sqlite

import "database/sql"

// migrations contains the SQL statements to set up the database schema.
// These run on startup to ensure tables exist.
//
// Deliberately no ON DELETE CASCADE / SET NULL clauses: cascading deletion
// and adder-reference clearing are performed explicitly by the service layer
// inside a transaction, where they are visible and testable. The plain
// foreign keys remain as a backstop against dangling references.
const schema = `
CREATE TABLE IF NOT EXISTS households (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    name TEXT NOT NULL,
    created_at INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS users (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    username TEXT NOT NULL,
    password_hash TEXT NOT NULL,
    name TEXT NOT NULL DEFAULT '',
    enabled INTEGER NOT NULL DEFAULT 1,
    household_id INTEGER,
    created_at INTEGER NOT NULL,
    FOREIGN KEY (household_id) REFERENCES households(id)
);

CREATE TABLE IF NOT EXISTS shopping_lists (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    name TEXT NOT NULL,
    is_default INTEGER NOT NULL DEFAULT 0,
    household_id INTEGER,
    created_at INTEGER NOT NULL,
    FOREIGN KEY (household_id) REFERENCES households(id)
);

CREATE TABLE IF NOT EXISTS items (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    name TEXT NOT NULL DEFAULT '',
    quantity INTEGER NOT NULL DEFAULT 0,
    is_checked INTEGER NOT NULL DEFAULT 0,
    added_by_user_id INTEGER,
    shopping_list_id INTEGER,
    added_at INTEGER NOT NULL,
    FOREIGN KEY (added_by_user_id) REFERENCES users(id),
    FOREIGN KEY (shopping_list_id) REFERENCES shopping_lists(id)
);

CREATE INDEX IF NOT EXISTS idx_users_household_id ON users(household_id);
CREATE INDEX IF NOT EXISTS idx_shopping_lists_household_id ON shopping_lists(household_id);
CREATE INDEX IF NOT EXISTS idx_items_shopping_list_id ON items(shopping_list_id);
CREATE INDEX IF NOT EXISTS idx_items_added_by_user_id ON items(added_by_user_id);
`

// runMigrations executes the schema setup.
func runMigrations(db *sql.DB) error {
	_, err := db.Exec(schema)
	return err
}
