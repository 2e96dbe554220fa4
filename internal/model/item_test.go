package model

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func boolPtr(b bool) *bool { return &b }

func TestNew(t *testing.T) {
	t.Run("blank item", func(t *testing.T) {
		it := Blank()
		assert.Equal(t, 0, it.ID)
		assert.False(t, it.Persisted())
		assert.False(t, it.HasDate())
		require.NotNil(t, it.Done)
		assert.False(t, *it.Done)
	})

	t.Run("done absent defaults to false", func(t *testing.T) {
		it := New(Raw{"title": "Buy milk"})
		require.NotNil(t, it.Done)
		assert.False(t, *it.Done)
	})

	t.Run("done null is preserved", func(t *testing.T) {
		it := New(Raw{"done": nil})
		assert.Nil(t, it.Done)
		assert.False(t, it.IsRead())
	})

	t.Run("fields copied unchanged", func(t *testing.T) {
		it := New(Raw{"title": "  spaced  ", "description": "d", "priority": "high"})
		assert.Equal(t, "  spaced  ", it.Title)
		assert.Equal(t, "d", it.Description)
		assert.Equal(t, "high", it.Priority)
	})

	t.Run("numeric priority becomes text", func(t *testing.T) {
		assert.Equal(t, "3", New(Raw{"priority": float64(3)}).Priority)
	})
}

func TestNewID(t *testing.T) {
	tests := []struct {
		name string
		in   any
		want int
	}{
		{"int", 7, 7},
		{"string", "12", 12},
		{"float from json", float64(4), 4},
		{"garbage string", "abc", 0},
		{"fractional", 1.5, 0},
		{"zero", "0", 0},
		{"negative", -3, 0},
		{"missing", nil, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, New(Raw{"id": tt.in}).ID)
		})
	}
}

func TestParseDate(t *testing.T) {
	want := time.Date(2024, time.March, 9, 0, 0, 0, 0, time.UTC)

	assert.Equal(t, want, ParseDate("2024-03-09"))
	assert.Equal(t, want, ParseDate("2024-03-09T17:45:00Z"))
	assert.Equal(t, want, ParseDate("2024-03-09T23:30:00-02:00").AddDate(0, 0, -1))
	assert.Equal(t, want, ParseDate("2024-03-09T08:00"))
	assert.True(t, ParseDate("not a date").IsZero())
	assert.True(t, ParseDate(nil).IsZero())
	assert.True(t, ParseDate(42).IsZero())
}

func TestRecordRoundTrip(t *testing.T) {
	records := []Record{
		{ID: 1, Title: "Buy milk", Description: "2 litres", Date: "2024-01-31", Priority: "high", Done: boolPtr(false)},
		{ID: 9, Title: "", Description: "", Date: "1999-12-31", Priority: "", Done: boolPtr(true)},
		{ID: 3, Title: "null done", Date: "2020-02-29", Done: nil},
	}
	for _, rec := range records {
		got, err := Hydrate(rec).Record()
		require.NoError(t, err)
		assert.Equal(t, rec, got)
	}
}

func TestRecordInvalidDate(t *testing.T) {
	_, err := New(Raw{"title": "no date"}).Record()
	assert.ErrorIs(t, err, ErrInvalidDate)

	// same input, same outcome
	_, err = Hydrate(Record{ID: 2, Date: "31/01/2024"}).Record()
	assert.ErrorIs(t, err, ErrInvalidDate)
}

func TestRecordDoesNotAliasDone(t *testing.T) {
	it := New(Raw{"date": "2024-01-01", "done": true})
	rec, err := it.Record()
	require.NoError(t, err)
	it.Toggle()
	assert.True(t, *rec.Done)
}

func TestToggle(t *testing.T) {
	it := New(Raw{"date": "2024-01-01"})
	assert.False(t, it.IsRead())

	assert.True(t, it.Toggle().IsRead())
	assert.False(t, it.Toggle().IsRead())

	it = New(Raw{"done": nil})
	it.Toggle()
	assert.True(t, it.IsRead())
}

func TestHydrateDecodedRecordWithoutDone(t *testing.T) {
	var rec Record
	require.NoError(t, json.Unmarshal([]byte(`{"id":1,"title":"x","date":"2024-01-01"}`), &rec))
	it := Hydrate(rec)
	require.NotNil(t, it.Done)
	assert.False(t, *it.Done)

	require.NoError(t, json.Unmarshal([]byte(`{"id":1,"date":"2024-01-01","done":null}`), &rec))
	assert.Nil(t, Hydrate(rec).Done)

	require.NoError(t, json.Unmarshal([]byte(`{"id":1,"date":"2024-01-01","done":true}`), &rec))
	assert.True(t, Hydrate(rec).IsRead())
}
