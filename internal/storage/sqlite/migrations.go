package sqlite

import "database/sql"

// schema holds one row per document key. data is the compact JSON snapshot
// and checksum its hex-encoded BLAKE2b-256 digest.
const schema = `
CREATE TABLE IF NOT EXISTS documents (
    key TEXT PRIMARY KEY,
    data TEXT NOT NULL,
    checksum TEXT NOT NULL,
    updated_at INTEGER NOT NULL
);
`

// runMigrations executes the schema setup.
func runMigrations(db *sql.DB) error {
	_, err := db.Exec(schema)
	return err
}
