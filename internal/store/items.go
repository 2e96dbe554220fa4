package store

import (
	"fmt"
	"sort"
	"sync"

	"github.com/idilsaglam/tada/internal/logger"
	"github.com/idilsaglam/tada/internal/model"
)

// Items is the item repository over a Storage.
// Writes through one Items are serialized, so two first saves cannot be
// handed the same id. Separate processes sharing a file are not coordinated.
type Items struct {
	mu sync.Mutex
	s  Storage
}

func NewItems(s Storage) *Items {
	return &Items{s: s}
}

// Save writes the item, assigning 1 + the highest stored id when it has none.
func (r *Items) Save(it *model.Item) (*model.Item, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if !it.HasDate() {
		return nil, model.ErrInvalidDate
	}
	id := it.ID
	if !it.Persisted() {
		next, err := r.nextID()
		if err != nil {
			return nil, err
		}
		id = next
	}
	rec, err := it.Record()
	if err != nil {
		return nil, err
	}
	rec.ID = id
	if err := r.s.Set(id, rec); err != nil {
		return nil, fmt.Errorf("set %d: %w", id, err)
	}
	if it.ID != id {
		logger.Debug("assigned id", "id", id)
	}
	it.ID = id
	logger.Debug("saved item", "id", it.ID, "done", it.IsRead())
	return it, nil
}

func (r *Items) nextID() (int, error) {
	all, err := r.s.GetAll()
	if err != nil {
		return 0, fmt.Errorf("get all: %w", err)
	}
	highest := 0
	for id := range all {
		if id > highest {
			highest = id
		}
	}
	return highest + 1, nil
}

// Destroy removes the item's record. The in-memory item is left as is.
func (r *Items) Destroy(it *model.Item) error {
	if !it.Persisted() {
		return ErrNoID
	}
	return r.DestroyID(it.ID)
}

// DestroyID removes the record stored under id.
func (r *Items) DestroyID(id int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if err := r.s.Delete(id); err != nil {
		return fmt.Errorf("delete %d: %w", id, err)
	}
	logger.Debug("deleted item", "id", id)
	return nil
}

// Find returns the item stored under id; ok is false when there is none.
func (r *Items) Find(id int) (*model.Item, bool, error) {
	rec, ok, err := r.s.Get(id)
	if err != nil {
		return nil, false, fmt.Errorf("get %d: %w", id, err)
	}
	if !ok {
		return nil, false, nil
	}
	it := model.Hydrate(rec)
	it.ID = id
	return it, true, nil
}

// All hydrates every stored record, keyed as in storage. Storage keys win
// over ids found inside the records.
func (r *Items) All() (map[int]*model.Item, error) {
	recs, err := r.s.GetAll()
	if err != nil {
		return nil, fmt.Errorf("get all: %w", err)
	}
	out := make(map[int]*model.Item, len(recs))
	for id, rec := range recs {
		it := model.Hydrate(rec)
		it.ID = id
		out[id] = it
	}
	return out, nil
}

// ToArray returns the items of All in no particular order.
func (r *Items) ToArray() ([]*model.Item, error) {
	all, err := r.All()
	if err != nil {
		return nil, err
	}
	out := make([]*model.Item, 0, len(all))
	for _, it := range all {
		out = append(out, it)
	}
	return out, nil
}

// Sorted is ToArray ordered by id.
func (r *Items) Sorted() ([]*model.Item, error) {
	items, err := r.ToArray()
	if err != nil {
		return nil, err
	}
	sort.Slice(items, func(i, j int) bool { return items[i].ID < items[j].ID })
	return items, nil
}
