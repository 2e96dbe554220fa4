package model

import "strconv"

// Attribute names, in declaration order.
const (
	AttrID          = "id"
	AttrTitle       = "title"
	AttrDescription = "description"
	AttrDate        = "date"
	AttrPriority    = "priority"
	AttrDone        = "done"
)

// Style class tokens emitted by the done formatter.
const (
	ClassRead   = "green"
	ClassUnread = "red"
)

// Done glyphs. Terminal renderers use the glyphs, HTML renderers the entities.
const (
	GlyphCheck = "✔"
	GlyphCross = "✖"
	HTMLCheck  = "&check;"
	HTMLCross  = "&times;"
)

// Column pairs an attribute with its raw text value.
type Column struct {
	Attribute string
	Value     func(*Item) string
}

// Columns lists the displayable attributes in row order.
var Columns = []Column{
	{AttrID, func(it *Item) string {
		if !it.Persisted() {
			return ""
		}
		return strconv.Itoa(it.ID)
	}},
	{AttrTitle, func(it *Item) string { return it.Title }},
	{AttrDescription, func(it *Item) string { return it.Description }},
	{AttrDate, func(it *Item) string { return it.Date.String() }},
	{AttrPriority, func(it *Item) string { return it.Priority }},
	{AttrDone, func(it *Item) string { return strconv.FormatBool(it.IsRead()) }},
}

// Cell describes one rendered attribute. Class is empty when no style applies.
type Cell struct {
	Attribute string
	Text      string
	Class     string
}

// Row is the display projection of one item.
type Row struct {
	ID    int
	Cells []Cell
}

// Formatter turns an item attribute into display text and a style class.
type Formatter interface {
	Format(it *Item) string
	Class(it *Item) string
}

// FormatterFuncs adapts a pair of functions to Formatter. A nil field falls
// back to the registry default for that attribute.
type FormatterFuncs struct {
	FormatFn func(*Item) string
	ClassFn  func(*Item) string
}

// Format returns the display text, or "" when FormatFn is unset.
func (f FormatterFuncs) Format(it *Item) string {
	if f.FormatFn == nil {
		return ""
	}
	return f.FormatFn(it)
}

// Class returns the style class, or "" when ClassFn is unset.
func (f FormatterFuncs) Class(it *Item) string {
	if f.ClassFn == nil {
		return ""
	}
	return f.ClassFn(it)
}

// Registry resolves the formatter for each attribute.
type Registry struct {
	entries map[string]FormatterFuncs
}

// NewRegistry returns a registry with only the default formatter.
func NewRegistry() *Registry {
	return &Registry{entries: make(map[string]FormatterFuncs)}
}

// DefaultRegistry formats date as YYYY-MM-DD and done as a glyph with a
// green or red class.
func DefaultRegistry() *Registry {
	return doneRegistry(GlyphCheck, GlyphCross)
}

// HTMLRegistry is DefaultRegistry with HTML entities for the done cell.
func HTMLRegistry() *Registry {
	return doneRegistry(HTMLCheck, HTMLCross)
}

func doneRegistry(check, cross string) *Registry {
	r := NewRegistry()
	r.Register(AttrDate, FormatterFuncs{FormatFn: (*Item).DateString})
	r.Register(AttrDone, FormatterFuncs{
		FormatFn: func(it *Item) string {
			if it.IsRead() {
				return check
			}
			return cross
		},
		ClassFn: func(it *Item) string {
			if it.IsRead() {
				return ClassRead
			}
			return ClassUnread
		},
	})
	return r
}

// Register sets the formatter for attr, replacing any previous one.
func (r *Registry) Register(attr string, f FormatterFuncs) {
	r.entries[attr] = f
}

// Lookup returns the formatter for attr merged over the default one.
func (r *Registry) Lookup(attr string) Formatter {
	f := r.entries[attr]
	if f.FormatFn == nil {
		f.FormatFn = defaultFormat(attr)
	}
	return f
}

func defaultFormat(attr string) func(*Item) string {
	for _, c := range Columns {
		if c.Attribute == attr {
			return c.Value
		}
	}
	return func(*Item) string { return "" }
}

var defaultRegistry = DefaultRegistry()

// RenderRow projects the item through the default registry.
func (it *Item) RenderRow() Row { return it.RenderRowWith(defaultRegistry) }

// RenderRowWith projects the item through reg, one cell per column.
func (it *Item) RenderRowWith(reg *Registry) Row {
	row := Row{ID: it.ID, Cells: make([]Cell, 0, len(Columns))}
	for _, c := range Columns {
		f := reg.Lookup(c.Attribute)
		row.Cells = append(row.Cells, Cell{
			Attribute: c.Attribute,
			Text:      f.Format(it),
			Class:     f.Class(it),
		})
	}
	return row
}

// Headers returns the attribute names in row order.
func Headers() []string {
	out := make([]string, len(Columns))
	for i, c := range Columns {
		out[i] = c.Attribute
	}
	return out
}
