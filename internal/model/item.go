package model

import (
	"errors"
	"time"
)

// DateLayout is the on-disk and display form of an item date.
const DateLayout = "2006-01-02"

// ErrInvalidDate is returned when an item without a usable date is serialized.
var ErrInvalidDate = errors.New("item has no valid date")

// Item is the domain model for a todo entry.
// ID 0 means the item was never persisted. A zero Date is the invalid-date
// marker left by construction when no parseable date was supplied.
type Item struct {
	ID          int
	Title       string
	Description string
	Date        time.Time
	Priority    string
	Done        *bool
}

// Blank returns an item built from no input.
func Blank() *Item { return New(nil) }

// New builds an item from a partial record. Input is coerced leniently:
// a bad id is treated as absent and a bad date becomes the zero date.
func New(raw Raw) *Item {
	it := &Item{
		ID:          parseID(raw["id"]),
		Title:       text(raw["title"]),
		Description: text(raw["description"]),
		Date:        ParseDate(raw["date"]),
		Priority:    text(raw["priority"]),
	}
	v, present := raw["done"]
	if !present {
		f := false
		it.Done = &f
	} else {
		it.Done = parseDone(v)
	}
	return it
}

// Hydrate builds an item from a stored record.
func Hydrate(rec Record) *Item { return New(rec.Raw()) }

// Record renders the item in its persisted shape.
func (it *Item) Record() (Record, error) {
	if !it.HasDate() {
		return Record{}, ErrInvalidDate
	}
	return Record{
		ID:          it.ID,
		Title:       it.Title,
		Description: it.Description,
		Date:        it.DateString(),
		Priority:    it.Priority,
		Done:        cloneBool(it.Done),
	}, nil
}

// Persisted reports whether the item has been assigned an id.
func (it *Item) Persisted() bool { return it.ID > 0 }

// HasDate reports whether the item carries a real calendar date.
func (it *Item) HasDate() bool { return !it.Date.IsZero() }

// DateString is the YYYY-MM-DD projection of Date, or "" for the invalid date.
func (it *Item) DateString() string {
	if !it.HasDate() {
		return ""
	}
	return it.Date.Format(DateLayout)
}

// Toggle flips done in memory. Callers persist with a save.
func (it *Item) Toggle() *Item {
	v := !it.IsRead()
	it.Done = &v
	return it
}

// IsRead reports the done state used by the display projection.
func (it *Item) IsRead() bool { return it.Done != nil && *it.Done }

func cloneBool(b *bool) *bool {
	if b == nil {
		return nil
	}
	v := *b
	return &v
}
