package chart

import (
	"errors"
	"fmt"
)

var (
	// ErrMissingValue is reported when a value needed for a coordinate is
	// undefined or a scale has no data to map from.
	ErrMissingValue = errors.New("missing value")

	// ErrUnknownCategory is reported for a lookup with an unknown key.
	ErrUnknownCategory = errors.New("unknown category")

	// ErrDegenerateDimensions is reported if margins leave no drawing area.
	ErrDegenerateDimensions = errors.New("degenerate dimensions")
)

// MissingValueError describes which scale or record lacked a value.
// Record is -1 if the error is not tied to a single record.
type MissingValueError struct {
	Scale  string
	Record int
}

func (e *MissingValueError) Error() string {
	if e.Record < 0 {
		return fmt.Sprintf("scale %q: %v", e.Scale, ErrMissingValue)
	}
	return fmt.Sprintf("scale %q, record %d: %v", e.Scale, e.Record, ErrMissingValue)
}

func (e *MissingValueError) Is(target error) bool { return target == ErrMissingValue }

// UnknownCategoryError reports a category name without a table entry.
type UnknownCategoryError struct {
	Name string
}

func (e *UnknownCategoryError) Error() string {
	return fmt.Sprintf("%v %q", ErrUnknownCategory, e.Name)
}

func (e *UnknownCategoryError) Is(target error) bool { return target == ErrUnknownCategory }
