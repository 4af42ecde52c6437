package domain

import (
	"fmt"
	"strconv"
	"strings"
)

// Unit is a temperature scale.
// The zero value is not a valid unit.
type Unit int

const (
	Celsius Unit = iota + 1
	Fahrenheit
	Kelvin
)

// Absolute zero expressed in each unit.
const (
	CelsiusFloor    = -273.15
	FahrenheitFloor = -459.67
	KelvinFloor     = 0.0
)

// Units returns every supported unit in declaration order.
func Units() []Unit {
	return []Unit{Celsius, Fahrenheit, Kelvin}
}

// Valid reports whether u is one of the declared units.
func (u Unit) Valid() bool {
	return u >= Celsius && u <= Kelvin
}

// String returns the lowercase name of the unit.
func (u Unit) String() string {
	switch u {
	case Celsius:
		return "celsius"
	case Fahrenheit:
		return "fahrenheit"
	case Kelvin:
		return "kelvin"
	}
	return "Unit(" + strconv.Itoa(int(u)) + ")"
}

// Symbol returns the printed symbol of the unit, e.g. "°C".
func (u Unit) Symbol() string {
	switch u {
	case Celsius:
		return "°C"
	case Fahrenheit:
		return "°F"
	case Kelvin:
		return "K"
	}
	return "?"
}

// Floor returns absolute zero expressed in u.
func (u Unit) Floor() float64 {
	switch u {
	case Fahrenheit:
		return FahrenheitFloor
	case Kelvin:
		return KelvinFloor
	}
	return CelsiusFloor
}

// toCelsius expresses v, given in u, in Celsius.
func (u Unit) toCelsius(v float64) float64 {
	switch u {
	case Fahrenheit:
		return (v - 32) * 5 / 9
	case Kelvin:
		return v - 273.15
	}
	return v
}

// fromCelsius expresses c, given in Celsius, in u.
func (u Unit) fromCelsius(c float64) float64 {
	switch u {
	case Fahrenheit:
		return c*9/5 + 32
	case Kelvin:
		return c + 273.15
	}
	return c
}

// ParseUnit parses a unit name. Matching is case-insensitive and accepts
// the full name ("kelvin"), the letter ("k") and the symbol ("°C", "degC").
func ParseUnit(s string) (Unit, error) {
	key := strings.ToLower(strings.TrimSpace(s))
	key = strings.TrimPrefix(key, "°")
	key = strings.TrimPrefix(key, "deg")
	switch key {
	case "c", "celsius", "centigrade":
		return Celsius, nil
	case "f", "fahrenheit":
		return Fahrenheit, nil
	case "k", "kelvin":
		return Kelvin, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidUnit, s)
}
