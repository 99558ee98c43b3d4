package repos

import (
	"database/sql"
	"encoding/json"
	"errors"
	"time"

	"github.com/jmoiron/sqlx"

	"cafestore/internal/domain"
)

// CartStore is the persistence port for a session's cart. Load never fails the
// caller on absent or malformed data; it returns an empty cart instead.
type CartStore interface {
	Load(sessionID string) ([]domain.CartEntry, error)
	Save(sessionID string, entries []domain.CartEntry) error
}

type CartRepo struct{ db *sqlx.DB }

func NewCartRepo(db *sqlx.DB) *CartRepo { return &CartRepo{db: db} }

func (r *CartRepo) Load(sessionID string) ([]domain.CartEntry, error) {
	var payload string
	err := r.db.Get(&payload, `SELECT payload FROM carts WHERE session_id = ?`, sessionID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var entries []domain.CartEntry
	if err := json.Unmarshal([]byte(payload), &entries); err != nil {
		// Malformed persisted cart: start over empty rather than fail the page.
		return nil, nil
	}
	return entries, nil
}

func (r *CartRepo) Save(sessionID string, entries []domain.CartEntry) error {
	if entries == nil {
		entries = []domain.CartEntry{}
	}
	payload, err := json.Marshal(entries)
	if err != nil {
		return err
	}
	_, err = r.db.Exec(`
		INSERT INTO carts(session_id, payload, updated_at) VALUES(?,?,?)
		ON CONFLICT(session_id) DO UPDATE
		SET payload = excluded.payload, updated_at = excluded.updated_at
	`, sessionID, string(payload), time.Now().Format(time.RFC3339))
	return err
}
