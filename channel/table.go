// Package channel converts raw per-vertex mesh attributes into a flat,
// ordered table of named scalar channels and back again.
package channel

import "fmt"

// Attribute is one named per-vertex array as supplied by the mesh layer.
// Data is row-major with Rows entries of Width values each. Width 1 is a
// scalar-per-vertex attribute, anything larger a vector-per-vertex attribute.
type Attribute struct {
	Name  string
	Rows  int
	Width int
	Data  []float64
}

// Scalar builds a width-1 attribute from a single column.
func Scalar(name string, values []float64) Attribute {
	return Attribute{Name: name, Rows: len(values), Width: 1, Data: values}
}

// Table is an ordered set of named channels, each a scalar array of the
// same length.
type Table struct {
	names     []string
	columns   map[string][]float64
	clobbered int
}

// NewTable returns an empty table.
func NewTable() *Table {
	return &Table{columns: map[string][]float64{}}
}

// Set stores a column under name, appending to the column order on first
// use. Setting an existing name overwrites its column in place.
func (t *Table) Set(name string, column []float64) {
	if _, ok := t.columns[name]; !ok {
		t.names = append(t.names, name)
	} else {
		t.clobbered++
	}
	t.columns[name] = column
}

// Names returns the channel names in column order.
func (t *Table) Names() []string {
	out := make([]string, len(t.names))
	copy(out, t.names)
	return out
}

// Column returns the channel stored under name.
func (t *Table) Column(name string) ([]float64, bool) {
	col, ok := t.columns[name]
	return col, ok
}

// Len returns the number of channels.
func (t *Table) Len() int {
	return len(t.names)
}

// VertexCount returns the length shared by every column, 0 for an empty
// table.
func (t *Table) VertexCount() int {
	if len(t.names) == 0 {
		return 0
	}
	return len(t.columns[t.names[0]])
}

// Clobbered reports how many times a Set overwrote an existing channel.
// Distinct source attributes can legitimately collide (an attribute named
// "a_C0" next to a vector attribute "a"); the last write wins and the count
// lets callers surface it.
func (t *Table) Clobbered() int {
	return t.clobbered
}

// Select returns a new table holding only the named columns that exist,
// preserving this table's column order.
func (t *Table) Select(names ...string) *Table {
	keep := make(map[string]bool, len(names))
	for _, n := range names {
		keep[n] = true
	}
	out := NewTable()
	for _, n := range t.names {
		if keep[n] {
			out.Set(n, t.columns[n])
		}
	}
	return out
}

// Decode reshapes per-vertex attributes into a channel table for a mesh of
// n vertices. Scalar attributes keep their name; a vector attribute of
// width K is split into K channels named "{name}_C{i}". Attributes whose
// leading dimension is not n, or whose data length disagrees with their
// declared shape, contribute nothing. An input producing zero channels
// yields an empty table, which callers must treat as "no channel data
// available" rather than an error.
func Decode(n int, attrs []Attribute) *Table {
	t := NewTable()
	for _, a := range attrs {
		if a.Rows != n || a.Width < 1 || len(a.Data) != a.Rows*a.Width {
			continue
		}
		if a.Width == 1 {
			t.Set(a.Name, a.Data)
			continue
		}
		for i := 0; i < a.Width; i++ {
			col := make([]float64, a.Rows)
			for row := 0; row < a.Rows; row++ {
				col[row] = a.Data[row*a.Width+i]
			}
			t.Set(fmt.Sprintf("%s_C%d", a.Name, i), col)
		}
	}
	return t
}

// Encode turns a table back into scalar attributes for a mesh of n
// vertices. Every column becomes one width-1 attribute under the column
// name; columns whose length is not n are skipped, mirroring Decode's
// leniency. Channels split from a vector attribute stay split: the "_C{i}"
// names are never recombined.
func Encode(t *Table, n int) []Attribute {
	if t == nil {
		return nil
	}
	attrs := make([]Attribute, 0, t.Len())
	for _, name := range t.names {
		col := t.columns[name]
		if len(col) != n {
			continue
		}
		attrs = append(attrs, Scalar(name, col))
	}
	return attrs
}
