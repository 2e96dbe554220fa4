package store

import (
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/idilsaglam/tada/internal/model"
)

func newItem(title string) *model.Item {
	return model.New(model.Raw{"title": title, "date": "2024-06-01"})
}

func seed(t *testing.T, m *Memory, ids ...int) {
	t.Helper()
	for _, id := range ids {
		require.NoError(t, m.Set(id, model.Record{ID: id, Date: "2024-01-01"}))
	}
}

func TestSaveAllocatesIDs(t *testing.T) {
	t.Run("first save gets 1", func(t *testing.T) {
		items := NewItems(NewMemory())
		it, err := items.Save(newItem("first"))
		require.NoError(t, err)
		assert.Equal(t, 1, it.ID)
	})

	t.Run("next after max", func(t *testing.T) {
		mem := NewMemory()
		seed(t, mem, 2, 5, 7)
		it, err := NewItems(mem).Save(newItem("next"))
		require.NoError(t, err)
		assert.Equal(t, 8, it.ID)
	})

	t.Run("existing id kept", func(t *testing.T) {
		mem := NewMemory()
		seed(t, mem, 2, 5, 7)
		it := model.New(model.Raw{"id": 5, "title": "edited", "date": "2024-06-01"})
		_, err := NewItems(mem).Save(it)
		require.NoError(t, err)
		assert.Equal(t, 5, it.ID)

		rec, ok, _ := mem.Get(5)
		require.True(t, ok)
		assert.Equal(t, "edited", rec.Title)
	})

	t.Run("invalid date is rejected without consuming an id", func(t *testing.T) {
		mem := NewMemory()
		items := NewItems(mem)
		it := model.New(model.Raw{"title": "no date"})
		_, err := items.Save(it)
		assert.ErrorIs(t, err, model.ErrInvalidDate)
		assert.Equal(t, 0, it.ID)

		all, _ := mem.GetAll()
		assert.Empty(t, all)
	})
}

func TestSaveConcurrentFirstSaves(t *testing.T) {
	items := NewItems(NewMemory())

	const n = 50
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := items.Save(newItem("race"))
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	all, err := items.All()
	require.NoError(t, err)
	assert.Len(t, all, n)
}

func TestToggleThenSavePersists(t *testing.T) {
	items := NewItems(NewMemory())
	it, err := items.Save(newItem("toggle me"))
	require.NoError(t, err)

	it.Toggle()
	got, ok, err := items.Find(it.ID)
	require.NoError(t, err)
	require.True(t, ok)
	assert.False(t, got.IsRead(), "toggle alone must not persist")

	_, err = items.Save(it)
	require.NoError(t, err)
	got, _, _ = items.Find(it.ID)
	assert.True(t, got.IsRead())
}

func TestFindMissing(t *testing.T) {
	it, ok, err := NewItems(NewMemory()).Find(42)
	assert.NoError(t, err)
	assert.False(t, ok)
	assert.Nil(t, it)
}

func TestDestroy(t *testing.T) {
	items := NewItems(NewMemory())
	it, err := items.Save(newItem("gone soon"))
	require.NoError(t, err)

	require.NoError(t, items.Destroy(it))
	_, ok, err := items.Find(it.ID)
	require.NoError(t, err)
	assert.False(t, ok)

	t.Run("by id", func(t *testing.T) {
		other, err := items.Save(newItem("other"))
		require.NoError(t, err)
		require.NoError(t, items.DestroyID(other.ID))
		_, ok, _ := items.Find(other.ID)
		assert.False(t, ok)
	})

	t.Run("missing id is a no-op", func(t *testing.T) {
		assert.NoError(t, items.DestroyID(999))
	})

	t.Run("unsaved item", func(t *testing.T) {
		assert.ErrorIs(t, items.Destroy(newItem("never saved")), ErrNoID)
	})
}

func TestEnumeration(t *testing.T) {
	mem := NewMemory()
	seed(t, mem, 3, 1, 10)
	items := NewItems(mem)

	all, err := items.All()
	require.NoError(t, err)
	keys, _ := mem.GetAll()
	assert.Len(t, all, len(keys))
	for id, it := range all {
		assert.Equal(t, id, it.ID)
	}

	arr, err := items.ToArray()
	require.NoError(t, err)
	assert.Len(t, arr, len(keys))

	sorted, err := items.Sorted()
	require.NoError(t, err)
	var ids []int
	for _, it := range sorted {
		ids = append(ids, it.ID)
	}
	assert.Equal(t, []int{1, 3, 10}, ids)
}

type failingStorage struct{ *Memory }

var errDiskFull = errors.New("disk full")

func (failingStorage) Set(int, model.Record) error { return errDiskFull }

func TestStorageErrorsPropagate(t *testing.T) {
	items := NewItems(failingStorage{NewMemory()})
	it := newItem("x")
	_, err := items.Save(it)
	assert.ErrorIs(t, err, errDiskFull)
	assert.Equal(t, 0, it.ID, "failed save must not leave an id behind")
	assert.False(t, it.Persisted())
}
