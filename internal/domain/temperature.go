package domain

import (
	"fmt"
	"strconv"
)

// Temperature is a value expressed in a unit.
// A Temperature returned by New never lies below absolute zero.
type Temperature struct {
	value float64
	unit  Unit
}

// New creates a Temperature holding value in unit.
// The value is kept as given; it is not normalized to another unit.
// Values below unit's floor, and NaN, are rejected with an *OutOfRangeError.
func New(value float64, unit Unit) (Temperature, error) {
	if !unit.Valid() {
		return Temperature{}, fmt.Errorf("%w: %v", ErrInvalidUnit, unit)
	}
	floor := unit.Floor()
	if !(value >= floor) {
		return Temperature{}, &OutOfRangeError{Value: value, Unit: unit, Floor: floor}
	}
	return Temperature{value: value, unit: unit}, nil
}

// AbsoluteZero returns the lowest valid Temperature in unit.
func AbsoluteZero(unit Unit) (Temperature, error) {
	return New(unit.Floor(), unit)
}

// Value returns the stored value in the current unit.
func (t Temperature) Value() float64 {
	return t.value
}

// Units returns the current unit.
func (t Temperature) Units() Unit {
	return t.unit
}

// ChangeUnits re-expresses t in target, updating value and unit together.
// Changing to the current unit leaves the value untouched.
// It panics if target is not a valid Unit.
func (t *Temperature) ChangeUnits(target Unit) {
	*t = t.In(target)
}

// In returns t expressed in target. The receiver is not modified.
// It panics if target is not a valid Unit.
func (t Temperature) In(target Unit) Temperature {
	if !target.Valid() {
		panic(fmt.Sprintf("thermo: change to invalid unit %v", target))
	}
	if target == t.unit {
		return t
	}
	return Temperature{
		value: target.fromCelsius(t.unit.toCelsius(t.value)),
		unit:  target,
	}
}

// Format renders t with the given number of decimals followed by the unit symbol.
// A negative precision uses the fewest digits that represent the value exactly.
func (t Temperature) Format(precision int) string {
	return strconv.FormatFloat(t.value, 'f', precision, 64) + " " + t.unit.Symbol()
}

func (t Temperature) String() string {
	return t.Format(-1)
}
