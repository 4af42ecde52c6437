// Package thermo provides a temperature value with unit conversion and
// absolute-zero validation.
//
// Example usage:
//
//	t, err := thermo.New(200, thermo.Celsius)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	t.ChangeUnits(thermo.Fahrenheit)
//	fmt.Println(t.Value()) // 392
//
// For a service with logging, see github.com/bft-labs/thermo/pkg/thermo.
package thermo

import "github.com/bft-labs/thermo/internal/domain"

// Unit is a temperature scale: Celsius, Fahrenheit or Kelvin.
type Unit = domain.Unit

// Temperature is a value paired with its unit.
// It never holds a value below absolute zero for its unit.
type Temperature = domain.Temperature

// OutOfRangeError is returned by New for values below absolute zero.
type OutOfRangeError = domain.OutOfRangeError

const (
	Celsius    = domain.Celsius
	Fahrenheit = domain.Fahrenheit
	Kelvin     = domain.Kelvin
)

var (
	// ErrOutOfRange matches every OutOfRangeError.
	ErrOutOfRange = domain.ErrOutOfRange

	// ErrInvalidUnit is returned for unknown units.
	ErrInvalidUnit = domain.ErrInvalidUnit
)

// New creates a Temperature of value in unit.
// It fails with an *OutOfRangeError when value is below absolute zero.
func New(value float64, unit Unit) (Temperature, error) {
	return domain.New(value, unit)
}

// ParseUnit parses a unit name such as "kelvin", "F" or "°C".
func ParseUnit(s string) (Unit, error) {
	return domain.ParseUnit(s)
}
