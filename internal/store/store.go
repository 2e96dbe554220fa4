// Package store persists items through a key-value Storage capability.
package store

import (
	"errors"

	"github.com/idilsaglam/tada/internal/model"
)

// ErrNoID is returned when an unsaved item is destroyed.
var ErrNoID = errors.New("item has no id")

// Storage is a key-value mapping from item id to record. Deleting a
// missing key is not an error for the adapters in this module.
type Storage interface {
	Get(id int) (model.Record, bool, error)
	GetAll() (map[int]model.Record, error)
	Set(id int, rec model.Record) error
	Delete(id int) error
}
