package repos

import (
	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"
)

func OpenDB(dsn string) (*sqlx.DB, error) {
	db, err := sqlx.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}
	if err = db.Ping(); err != nil {
		return nil, err
	}
	if err := ensureSchema(db); err != nil {
		return nil, err
	}
	return db, nil
}

func ensureSchema(db *sqlx.DB) error {
	// One row per browser session; payload is the full cart as a JSON array of
	// {product, quantity}, rewritten on every mutation.
	schema := `
CREATE TABLE IF NOT EXISTS carts(
  session_id TEXT PRIMARY KEY,
  payload    TEXT NOT NULL DEFAULT '[]',
  updated_at TEXT
);
`
	_, err := db.Exec(schema)
	return err
}
