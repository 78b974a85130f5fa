// Package store persists the procurement ledger in a local SQLite database.
package store

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"tally/internal/model"

	_ "modernc.org/sqlite" // register sqlite driver
)

// ErrNotFound is returned when an item id has no row in the ledger.
var ErrNotFound = errors.New("line item not found")

// Store provides SQLite-backed ledger persistence.
type Store struct {
	db   *sql.DB
	path string
}

// DefaultDir returns the XDG-compliant data directory.
func DefaultDir() string {
	if xdg := os.Getenv("XDG_DATA_HOME"); xdg != "" {
		return filepath.Join(xdg, "tally")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".local", "share", "tally")
}

// Open opens or creates the ledger database under dir. An empty dir uses
// the default data directory.
func Open(dir string) (*Store, error) {
	if dir == "" {
		dir = DefaultDir()
	}
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, fmt.Errorf("creating data dir: %w", err)
	}

	dbPath := filepath.Join(dir, "ledger.db")
	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(wal)&_pragma=synchronous(normal)&_pragma=foreign_keys(on)")
	if err != nil {
		return nil, fmt.Errorf("opening ledger db: %w", err)
	}

	if _, err := db.Exec(schemaSQL); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}

	return &Store{db: db, path: dbPath}, nil
}

// Close closes the database.
func (s *Store) Close() error {
	return s.db.Close()
}

// Path returns the database file location.
func (s *Store) Path() string {
	return s.path
}

// SaveItems replaces the stored ledger with items, preserving their order.
func (s *Store) SaveItems(items []model.LineItem) error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.Exec("DELETE FROM line_items"); err != nil {
		return err
	}

	now := time.Now().UTC().Format(time.RFC3339)
	for i, it := range items {
		exclude, done := 0, 0
		if it.ExcludeFromSum {
			exclude = 1
		}
		if it.Done {
			done = 1
		}
		_, err := tx.Exec(`INSERT INTO line_items
			(id, position, description, event_phase, item_type, cost, cost_type,
			 status, exclude_from_sum, done, imported_at)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			it.ID, i, it.Description, it.Event, it.Type, it.Cost.String(),
			it.CostType, it.Status, exclude, done, now,
		)
		if err != nil {
			return fmt.Errorf("inserting item %s: %w", it.ID, err)
		}
	}

	return tx.Commit()
}

// LoadItems reads the stored ledger in its original order.
func (s *Store) LoadItems() ([]model.LineItem, error) {
	rows, err := s.db.Query(`SELECT
		id, description, event_phase, item_type, cost, cost_type,
		status, exclude_from_sum, done
		FROM line_items ORDER BY position`)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var items []model.LineItem
	for rows.Next() {
		var it model.LineItem
		var cost string
		var exclude, done int

		err := rows.Scan(&it.ID, &it.Description, &it.Event, &it.Type, &cost,
			&it.CostType, &it.Status, &exclude, &done)
		if err != nil {
			return nil, err
		}

		it.Cost = model.ParseCost(cost)
		it.ExcludeFromSum = exclude != 0
		it.Done = done != 0
		items = append(items, it)
	}
	return items, rows.Err()
}

// SetDone updates one item's done flag without touching anything else.
func (s *Store) SetDone(id string, done bool) error {
	v := 0
	if done {
		v = 1
	}
	res, err := s.db.Exec("UPDATE line_items SET done = ? WHERE id = ?", v, id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

// ToggleDone flips one item's done flag and returns the new value.
func (s *Store) ToggleDone(id string) (bool, error) {
	tx, err := s.db.Begin()
	if err != nil {
		return false, err
	}
	defer func() { _ = tx.Rollback() }()

	var done int
	err = tx.QueryRow("SELECT done FROM line_items WHERE id = ?", id).Scan(&done)
	if errors.Is(err, sql.ErrNoRows) {
		return false, ErrNotFound
	}
	if err != nil {
		return false, err
	}

	newDone := 1 - done
	if _, err := tx.Exec("UPDATE line_items SET done = ? WHERE id = ?", newDone, id); err != nil {
		return false, err
	}
	if err := tx.Commit(); err != nil {
		return false, err
	}
	return newDone != 0, nil
}

// Count returns the number of stored items.
func (s *Store) Count() (int, error) {
	var count int
	err := s.db.QueryRow("SELECT COUNT(*) FROM line_items").Scan(&count)
	return count, err
}

// Clear removes every stored item.
func (s *Store) Clear() error {
	_, err := s.db.Exec("DELETE FROM line_items")
	return err
}

// LastImportedAt returns when the current ledger was stored, or the zero
// time for an empty store.
func (s *Store) LastImportedAt() (time.Time, error) {
	var raw sql.NullString
	err := s.db.QueryRow("SELECT MAX(imported_at) FROM line_items").Scan(&raw)
	if err != nil {
		return time.Time{}, err
	}
	if !raw.Valid || raw.String == "" {
		return time.Time{}, nil
	}
	return time.Parse(time.RFC3339, raw.String)
}
