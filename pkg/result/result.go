// Package result holds the per-column statistic produced by a reduction and
// encodes it byte for byte the way Python's json.dumps does.
package result

import (
	"io"
	"maps"
	"slices"
	"strings"
)

// Entry is the statistic for one column.
type Entry struct {
	Column string
	Value  float64
}

// Result maps column names to values, remembering insertion order.
type Result struct {
	entries []Entry
	index   map[string]int
}

// New returns an empty Result.
func New() *Result {
	return &Result{index: make(map[string]int)}
}

// Set stores v for column. Setting an existing column replaces its value in
// place.
func (r *Result) Set(column string, v float64) {
	if i, ok := r.index[column]; ok {
		r.entries[i].Value = v
		return
	}
	r.index[column] = len(r.entries)
	r.entries = append(r.entries, Entry{Column: column, Value: v})
}

// Get returns the value for column.
func (r *Result) Get(column string) (float64, bool) {
	i, ok := r.index[column]
	if !ok {
		return 0, false
	}
	return r.entries[i].Value, true
}

func (r *Result) Len() int {
	return len(r.entries)
}

// Columns returns the column names in insertion order.
func (r *Result) Columns() []string {
	names := make([]string, len(r.entries))
	for i, e := range r.entries {
		names[i] = e.Column
	}
	return names
}

// Entries returns a copy of the entries in insertion order.
func (r *Result) Entries() []Entry {
	return slices.Clone(r.entries)
}

// Map returns the result as an unordered map.
func (r *Result) Map() map[string]float64 {
	m := make(map[string]float64, len(r.entries))
	for _, e := range r.entries {
		m[e.Column] = e.Value
	}
	return m
}

// Equal reports whether both results hold the same columns with the same
// values, ignoring order.
func (r *Result) Equal(other *Result) bool {
	return maps.Equal(r.Map(), other.Map())
}

// Compact encodes r on one line: {"a": 2.0, "b": 20.0}
func (r *Result) Compact() string {
	var sb strings.Builder
	sb.WriteByte('{')
	for i, e := range r.entries {
		if i > 0 {
			sb.WriteString(", ")
		}
		writeEntry(&sb, e)
	}
	sb.WriteByte('}')
	return sb.String()
}

// Indent writes r with one entry per line, indented by four spaces, and a
// trailing newline.
func (r *Result) Indent(w io.Writer) error {
	var sb strings.Builder
	if len(r.entries) == 0 {
		sb.WriteString("{}\n")
	} else {
		sb.WriteString("{\n")
		for i, e := range r.entries {
			sb.WriteString("    ")
			writeEntry(&sb, e)
			if i < len(r.entries)-1 {
				sb.WriteByte(',')
			}
			sb.WriteByte('\n')
		}
		sb.WriteString("}\n")
	}
	_, err := io.WriteString(w, sb.String())
	return err
}

// MarshalJSON implements json.Marshaler using the compact form.
func (r *Result) MarshalJSON() ([]byte, error) {
	return []byte(r.Compact()), nil
}

func writeEntry(sb *strings.Builder, e Entry) {
	writeString(sb, e.Column)
	sb.WriteString(": ")
	sb.WriteString(FormatFloat(e.Value))
}
