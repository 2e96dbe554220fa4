package model

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

// Record is the flat shape exchanged with storage.
type Record struct {
	ID          int    `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Date        string `json:"date"`
	Priority    string `json:"priority"`
	Done        *bool  `json:"done"`

	// set when decoded JSON had no "done" key, so hydration can default it
	doneMissing bool
}

// UnmarshalJSON decodes a stored record, remembering whether "done" was
// present at all.
func (r *Record) UnmarshalJSON(b []byte) error {
	type plain Record
	var p plain
	if err := json.Unmarshal(b, &p); err != nil {
		return err
	}
	var keys map[string]json.RawMessage
	if err := json.Unmarshal(b, &keys); err != nil {
		return err
	}
	*r = Record(p)
	_, present := keys["done"]
	r.doneMissing = !present
	return nil
}

// Raw is a partial record, as decoded from JSON or assembled from user input.
// A missing key and a key holding nil are different inputs.
type Raw map[string]any

// Raw returns the record as a partial record. "done" is left out when the
// decoded record did not carry it.
func (r Record) Raw() Raw {
	raw := Raw{
		"id":          r.ID,
		"title":       r.Title,
		"description": r.Description,
		"date":        r.Date,
		"priority":    r.Priority,
	}
	if r.doneMissing {
		return raw
	}
	if r.Done == nil {
		raw["done"] = nil
	} else {
		raw["done"] = *r.Done
	}
	return raw
}

// accepted date layouts, tried in order; results are reduced to a UTC date
var dateLayouts = []string{
	DateLayout,
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
}

// ParseDate turns a raw date value into a calendar date at UTC midnight.
// Anything it cannot read yields the zero time.
func ParseDate(v any) time.Time {
	var t time.Time
	switch x := v.(type) {
	case time.Time:
		t = x
	case string:
		s := strings.TrimSpace(x)
		for _, layout := range dateLayouts {
			p, err := time.Parse(layout, s)
			if err == nil {
				t = p
				break
			}
		}
	default:
		return time.Time{}
	}
	if t.IsZero() {
		return t
	}
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func parseID(v any) int {
	var n int64
	switch x := v.(type) {
	case int:
		n = int64(x)
	case int64:
		n = x
	case float64:
		if x != math.Trunc(x) || math.Abs(x) > 1<<53 {
			return 0
		}
		n = int64(x)
	case json.Number:
		p, err := strconv.ParseInt(x.String(), 10, 64)
		if err != nil {
			return 0
		}
		n = p
	case string:
		p, err := strconv.ParseInt(strings.TrimSpace(x), 10, 64)
		if err != nil {
			return 0
		}
		n = p
	default:
		return 0
	}
	if n <= 0 {
		return 0
	}
	return int(n)
}

// parseDone keeps nil and booleans as given; other scalars go by truthiness.
func parseDone(v any) *bool {
	var b bool
	switch x := v.(type) {
	case nil:
		return nil
	case bool:
		b = x
	case *bool:
		return cloneBool(x)
	case string:
		b = x != ""
	case int:
		b = x != 0
	case float64:
		b = x != 0 && !math.IsNaN(x)
	default:
		b = true
	}
	return &b
}

func text(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return x
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64)
	default:
		return fmt.Sprint(x)
	}
}
