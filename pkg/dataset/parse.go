package dataset

import (
	"fmt"
	"math"
	"unicode/utf8"

	"github.com/tidwall/gjson"
)

type options struct {
	schema *Schema
}

// Option configures Parse.
type Option func(*options)

// WithSchema restricts parsing to the numeric array columns declared by s.
func WithSchema(s *Schema) Option {
	return func(o *options) {
		o.schema = s
	}
}

// Parse decodes a JSON object of the form {"name": [1, 2, ...], ...} into a
// Dataset, keeping the order the columns appear in the document. All
// malformed columns are reported together in a single *ParseError.
func Parse(data []byte, opts ...Option) (*Dataset, error) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	if !utf8.Valid(data) || !gjson.ValidBytes(data) {
		return nil, &ParseError{Err: ErrInvalidJSON}
	}
	doc := gjson.ParseBytes(data)
	if !doc.IsObject() {
		return nil, &ParseError{Err: ErrNotObject}
	}

	var (
		errs  columnErrors
		names []string
		raw   = make(map[string]gjson.Result)
		dups  = make(map[string]bool)
	)
	doc.ForEach(func(key, value gjson.Result) bool {
		name := key.String()
		if _, ok := raw[name]; ok {
			dups[name] = true
			return true
		}
		raw[name] = value
		names = append(names, name)
		return true
	})

	if o.schema != nil {
		selected := names[:0:0]
		for _, name := range o.schema.Columns() {
			if _, ok := raw[name]; ok {
				selected = append(selected, name)
			}
		}
		names = selected
	}

	d := &Dataset{
		columns: make([]Column, 0, len(names)),
		index:   make(map[string]int, len(names)),
	}
	for _, name := range names {
		// only selected columns are validated
		if dups[name] {
			errs.add(name, ErrDuplicateColumn)
			continue
		}
		values, err := numbers(raw[name])
		if err != nil {
			errs.add(name, err)
			continue
		}
		d.add(name, values)
	}
	if err := errs.err(); err != nil {
		return nil, err
	}
	return d, nil
}

func numbers(value gjson.Result) ([]float64, error) {
	if !value.IsArray() {
		return nil, ErrNotNumericArray
	}
	elems := value.Array()
	values := make([]float64, len(elems))
	for i, el := range elems {
		if el.Type != gjson.Number {
			return nil, fmt.Errorf("index %d: %w", i, ErrNotNumericArray)
		}
		// gjson yields ±Inf for literals such as 1e999
		if math.IsInf(el.Num, 0) || math.IsNaN(el.Num) {
			return nil, fmt.Errorf("index %d: %w", i, ErrNonFiniteValue)
		}
		values[i] = el.Num
	}
	return values, nil
}
