package domain

import (
	"errors"
	"fmt"
	"strconv"
)

// Domain errors can be checked with errors.Is.
var (
	// ErrOutOfRange is returned when a value lies below absolute zero for its unit.
	ErrOutOfRange = errors.New("thermo: temperature below absolute zero")

	// ErrInvalidUnit is returned for an unknown unit tag or unit name.
	ErrInvalidUnit = errors.New("thermo: invalid unit")
)

// OutOfRangeError describes a rejected construction.
// It matches ErrOutOfRange with errors.Is.
type OutOfRangeError struct {
	Value float64
	Unit  Unit
	Floor float64
}

func (e *OutOfRangeError) Error() string {
	return fmt.Sprintf("%v: %s %s is below %s %s",
		ErrOutOfRange,
		strconv.FormatFloat(e.Value, 'f', -1, 64), e.Unit.Symbol(),
		strconv.FormatFloat(e.Floor, 'f', -1, 64), e.Unit.Symbol())
}

// Is reports whether target is ErrOutOfRange.
func (e *OutOfRangeError) Is(target error) bool {
	return target == ErrOutOfRange
}
