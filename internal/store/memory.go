package store

import (
	"sync"

	"github.com/idilsaglam/tada/internal/model"
)

// Memory is a Storage held in process memory.
type Memory struct {
	mu      sync.RWMutex
	records map[int]model.Record
}

func NewMemory() *Memory {
	return &Memory{records: make(map[int]model.Record)}
}

func (m *Memory) Get(id int) (model.Record, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	rec, ok := m.records[id]
	return rec, ok, nil
}

func (m *Memory) GetAll() (map[int]model.Record, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make(map[int]model.Record, len(m.records))
	for id, rec := range m.records {
		out[id] = rec
	}
	return out, nil
}

func (m *Memory) Set(id int, rec model.Record) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.records[id] = rec
	return nil
}

func (m *Memory) Delete(id int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.records, id)
	return nil
}
