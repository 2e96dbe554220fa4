package jsonstore

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/idilsaglam/tada/internal/model"
)

// Store keeps every record in one human-readable JSON object keyed by id.
// The file is re-read on each call and rewritten whole on each change.
type Store struct {
	path string
}

func New(path string) *Store {
	return &Store{path: path}
}

// Path returns the backing file.
func (s *Store) Path() string { return s.path }

func (s *Store) load() (map[int]model.Record, error) {
	b, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return map[int]model.Record{}, nil
		}
		return nil, fmt.Errorf("read file: %w", err)
	}
	var raw map[string]model.Record
	if err := json.Unmarshal(b, &raw); err != nil {
		return nil, fmt.Errorf("json unmarshal: %w", err)
	}
	out := make(map[int]model.Record, len(raw))
	for k, rec := range raw {
		id, err := strconv.Atoi(k)
		if err != nil {
			return nil, fmt.Errorf("bad key %q: %w", k, err)
		}
		out[id] = rec
	}
	return out, nil
}

func (s *Store) save(records map[int]model.Record) error {
	b, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("json marshal: %w", err)
	}
	if dir := filepath.Dir(s.path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("mkdir: %w", err)
		}
	}
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, b, 0o644); err != nil {
		return fmt.Errorf("write file: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("rename: %w", err)
	}
	return nil
}

func (s *Store) Get(id int) (model.Record, bool, error) {
	records, err := s.load()
	if err != nil {
		return model.Record{}, false, err
	}
	rec, ok := records[id]
	return rec, ok, nil
}

func (s *Store) GetAll() (map[int]model.Record, error) {
	return s.load()
}

func (s *Store) Set(id int, rec model.Record) error {
	records, err := s.load()
	if err != nil {
		return err
	}
	records[id] = rec
	return s.save(records)
}

func (s *Store) Delete(id int) error {
	records, err := s.load()
	if err != nil {
		return err
	}
	if _, ok := records[id]; !ok {
		return nil
	}
	delete(records, id)
	return s.save(records)
}
