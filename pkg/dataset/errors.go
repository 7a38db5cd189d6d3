package dataset

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/hashicorp/go-multierror"
	"gonum.org/v1/gonum/floats"
)

var (
	// ErrInvalidJSON is returned when the input is not well-formed JSON.
	ErrInvalidJSON = errors.New("invalid JSON")
	// ErrNotObject is returned when the top-level JSON value is not an object.
	ErrNotObject = errors.New("not a JSON object")
	// ErrDuplicateColumn is returned when a column name appears twice.
	ErrDuplicateColumn = errors.New("duplicate column")
	// ErrNotNumericArray is returned when a column value is not an array of numbers.
	ErrNotNumericArray = errors.New("not an array of numbers")
	// ErrNonFiniteValue is returned when a column holds NaN or an infinity.
	ErrNonFiniteValue = errors.New("value is not finite")
	// ErrUnknownColumn is returned when appending a column the base dataset lacks.
	ErrUnknownColumn = errors.New("unknown column")
	// ErrInvalidSchema is returned when a schema document has no properties object.
	ErrInvalidSchema = errors.New("invalid schema")
)

// ParseError reports input that does not have the shape of a column
// dataset. Err may hold several column errors.
type ParseError struct {
	Err error
}

func (e *ParseError) Error() string {
	return "parse dataset: " + e.Err.Error()
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// columnErrors collects per-column problems so every bad column is reported
// at once.
type columnErrors struct {
	merr *multierror.Error
}

func (ce *columnErrors) add(column string, err error) {
	ce.merr = multierror.Append(ce.merr, fmt.Errorf("column %q: %w", column, err))
}

func (ce *columnErrors) err() error {
	if ce.merr == nil {
		return nil
	}
	ce.merr.ErrorFormat = listFormat
	return &ParseError{Err: ce.merr.ErrorOrNil()}
}

func listFormat(errs []error) string {
	if len(errs) == 1 {
		return errs[0].Error()
	}
	msgs := make([]string, len(errs))
	for i, err := range errs {
		msgs[i] = err.Error()
	}
	return fmt.Sprintf("%d errors: %s", len(errs), strings.Join(msgs, "; "))
}

func checkValues(values []float64) error {
	if floats.HasNaN(values) {
		return ErrNonFiniteValue
	}
	if len(values) > 0 && (math.IsInf(floats.Max(values), 1) || math.IsInf(floats.Min(values), -1)) {
		return ErrNonFiniteValue
	}
	return nil
}
