package sqlitestore

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"

	"github.com/idilsaglam/tada/internal/model"
)

const schema = `CREATE TABLE IF NOT EXISTS items (
	id          INTEGER PRIMARY KEY,
	title       TEXT NOT NULL DEFAULT '',
	description TEXT NOT NULL DEFAULT '',
	date        TEXT NOT NULL,
	priority    TEXT NOT NULL DEFAULT '',
	done        INTEGER
)`

// Store keeps records in a SQLite table, one row per id.
type Store struct {
	path string
	db   *sql.DB
}

// Open opens (creating if needed) the database at path and ensures the
// items table exists.
func Open(path string) (*Store, error) {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o700); err != nil {
			return nil, fmt.Errorf("failed to create data directory: %w", err)
		}
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	// a single connection keeps :memory: databases shared and writes ordered
	db.SetMaxOpenConns(1)
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create items table: %w", err)
	}
	return &Store{path: path, db: db}, nil
}

func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

func scanRecord(sc interface{ Scan(...any) error }) (model.Record, error) {
	var (
		rec  model.Record
		done sql.NullBool
	)
	if err := sc.Scan(&rec.ID, &rec.Title, &rec.Description, &rec.Date, &rec.Priority, &done); err != nil {
		return model.Record{}, err
	}
	if done.Valid {
		v := done.Bool
		rec.Done = &v
	}
	return rec, nil
}

func (s *Store) Get(id int) (model.Record, bool, error) {
	row := s.db.QueryRow(`SELECT id, title, description, date, priority, done FROM items WHERE id = ?`, id)
	rec, err := scanRecord(row)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Record{}, false, nil
	}
	if err != nil {
		return model.Record{}, false, fmt.Errorf("failed to get item: %w", err)
	}
	return rec, true, nil
}

func (s *Store) GetAll() (map[int]model.Record, error) {
	rows, err := s.db.Query(`SELECT id, title, description, date, priority, done FROM items`)
	if err != nil {
		return nil, fmt.Errorf("failed to query items: %w", err)
	}
	defer rows.Close()

	out := make(map[int]model.Record)
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan item: %w", err)
		}
		out[rec.ID] = rec
	}
	return out, rows.Err()
}

func (s *Store) Set(id int, rec model.Record) error {
	var done sql.NullBool
	if rec.Done != nil {
		done = sql.NullBool{Bool: *rec.Done, Valid: true}
	}
	_, err := s.db.Exec(`INSERT INTO items (id, title, description, date, priority, done)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			title = excluded.title,
			description = excluded.description,
			date = excluded.date,
			priority = excluded.priority,
			done = excluded.done`,
		id, rec.Title, rec.Description, rec.Date, rec.Priority, done)
	if err != nil {
		return fmt.Errorf("failed to save item: %w", err)
	}
	return nil
}

func (s *Store) Delete(id int) error {
	if _, err := s.db.Exec(`DELETE FROM items WHERE id = ?`, id); err != nil {
		return fmt.Errorf("failed to delete item: %w", err)
	}
	return nil
}
