package dataset

import (
	"slices"
	"unicode/utf8"

	"github.com/tidwall/gjson"
)

// Schema selects which columns of an input document are reduced. It is read
// from a JSON Schema style document:
//
//	{"properties": {"price": {"type": "array", "items": {"type": "number"}}}}
//
// Only properties declared as arrays of numbers (or integers) are selected.
type Schema struct {
	columns []string
}

// ParseSchema reads the numeric array properties of a schema document, in
// the order they are declared.
func ParseSchema(data []byte) (*Schema, error) {
	if !utf8.Valid(data) || !gjson.ValidBytes(data) {
		return nil, &ParseError{Err: ErrInvalidJSON}
	}
	props := gjson.GetBytes(data, "properties")
	if !props.IsObject() {
		return nil, &ParseError{Err: ErrInvalidSchema}
	}

	s := &Schema{}
	props.ForEach(func(key, value gjson.Result) bool {
		if isNumericArray(value) && !slices.Contains(s.columns, key.String()) {
			s.columns = append(s.columns, key.String())
		}
		return true
	})
	return s, nil
}

// NewSchema returns a schema selecting the named columns.
func NewSchema(columns ...string) *Schema {
	s := &Schema{}
	for _, c := range columns {
		if !slices.Contains(s.columns, c) {
			s.columns = append(s.columns, c)
		}
	}
	return s
}

// Columns returns the selected column names in declaration order.
func (s *Schema) Columns() []string {
	return slices.Clone(s.columns)
}

func isNumericArray(prop gjson.Result) bool {
	if prop.Get("type").String() != "array" {
		return false
	}
	switch prop.Get("items.type").String() {
	case "number", "integer":
		return true
	}
	return false
}
