// Package domain contains the core value objects for thermo.
//
// This package is the innermost layer. It has no dependencies on logging,
// configuration or I/O and holds only the conversion arithmetic and the
// absolute-zero rules.
//
// # Value Objects
//
//   - [Unit]: A temperature scale tag (Celsius, Fahrenheit, Kelvin)
//   - [Temperature]: A value paired with its current unit
//
// # Conversion
//
// Every conversion goes through Celsius: the source value is first
// expressed in Celsius and then in the target unit. Each unit therefore
// only needs a "to Celsius" and a "from Celsius" formula.
//
// # Validation
//
// A Temperature can never hold a value below absolute zero for its unit.
// The check happens once, in [New]. Converting a valid Temperature always
// yields a valid Temperature, since the floors of the three scales map
// onto each other exactly.
package domain
