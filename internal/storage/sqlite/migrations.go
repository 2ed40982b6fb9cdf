package sqlite

import "database/sql"

// schema sets up the ledger tables. It runs on every startup.
const schema = `
CREATE TABLE IF NOT EXISTS settlements (
    id TEXT PRIMARY KEY,
    friend_id TEXT NOT NULL,
    payer TEXT NOT NULL,
    bill_total REAL NOT NULL,
    user_expense REAL NOT NULL,
    delta REAL NOT NULL,
    balance_after REAL NOT NULL,
    created_at INTEGER NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_settlements_friend_id ON settlements(friend_id);
`

// runMigrations executes the schema setup.
func runMigrations(db *sql.DB) error {
	_, err := db.Exec(schema)
	return err
}
