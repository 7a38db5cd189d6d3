// Package dataset holds the column dataset consumed by the reducers and
// validates it once at the JSON boundary.
package dataset

import (
	"fmt"
	"maps"
	"slices"
)

// Column is a named sequence of values.
type Column struct {
	Name   string
	Values []float64
}

// Dataset is an ordered set of uniquely named columns. A Dataset is not
// modified after construction.
type Dataset struct {
	columns []Column
	index   map[string]int
}

// New builds a Dataset from columns in the given order.
func New(columns ...Column) (*Dataset, error) {
	d := &Dataset{
		columns: make([]Column, 0, len(columns)),
		index:   make(map[string]int, len(columns)),
	}
	for _, c := range columns {
		if _, ok := d.index[c.Name]; ok {
			return nil, &ParseError{Err: fmt.Errorf("column %q: %w", c.Name, ErrDuplicateColumn)}
		}
		d.add(c.Name, slices.Clone(c.Values))
	}
	return d, nil
}

// FromMap builds a Dataset from an already decoded mapping. Map iteration
// order is random, so columns are ordered by name.
func FromMap(m map[string][]float64) (*Dataset, error) {
	d := &Dataset{
		columns: make([]Column, 0, len(m)),
		index:   make(map[string]int, len(m)),
	}
	var errs columnErrors
	for _, name := range slices.Sorted(maps.Keys(m)) {
		values := m[name]
		if err := checkValues(values); err != nil {
			errs.add(name, err)
			continue
		}
		d.add(name, slices.Clone(values))
	}
	if err := errs.err(); err != nil {
		return nil, err
	}
	return d, nil
}

func (d *Dataset) add(name string, values []float64) {
	if values == nil {
		values = []float64{}
	}
	d.index[name] = len(d.columns)
	d.columns = append(d.columns, Column{Name: name, Values: values})
}

// Len returns the number of columns.
func (d *Dataset) Len() int {
	return len(d.columns)
}

// Columns returns the columns in order. The value slices are shared with
// the Dataset and must not be modified.
func (d *Dataset) Columns() []Column {
	return slices.Clone(d.columns)
}

// Names returns the column names in order.
func (d *Dataset) Names() []string {
	names := make([]string, len(d.columns))
	for i, c := range d.columns {
		names[i] = c.Name
	}
	return names
}

// Column looks up a column by name.
func (d *Dataset) Column(name string) (Column, bool) {
	i, ok := d.index[name]
	if !ok {
		return Column{}, false
	}
	return d.columns[i], true
}

// Append concatenates the values of more onto the same-named columns of
// base and returns the result as a new Dataset. Columns of base that more
// lacks are carried over unchanged. Every column of more must exist in base.
func Append(base, more *Dataset) (*Dataset, error) {
	var errs columnErrors
	for _, c := range more.columns {
		if _, ok := base.index[c.Name]; !ok {
			errs.add(c.Name, ErrUnknownColumn)
		}
	}
	if err := errs.err(); err != nil {
		return nil, err
	}

	merged := &Dataset{
		columns: make([]Column, 0, len(base.columns)),
		index:   make(map[string]int, len(base.columns)),
	}
	for _, c := range base.columns {
		values := slices.Clone(c.Values)
		if extra, ok := more.Column(c.Name); ok {
			values = append(values, extra.Values...)
		}
		merged.add(c.Name, values)
	}
	return merged, nil
}
