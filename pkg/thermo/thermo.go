package thermo

import (
	"fmt"

	"github.com/bft-labs/thermo/internal/domain"
	"github.com/bft-labs/thermo/pkg/log"
)

// Re-exported domain types.
type (
	Unit            = domain.Unit
	Temperature     = domain.Temperature
	OutOfRangeError = domain.OutOfRangeError
)

const (
	Celsius    = domain.Celsius
	Fahrenheit = domain.Fahrenheit
	Kelvin     = domain.Kelvin
)

var (
	ErrOutOfRange  = domain.ErrOutOfRange
	ErrInvalidUnit = domain.ErrInvalidUnit
)

// Converter validates and converts temperatures.
// It is safe for concurrent use.
type Converter struct {
	logger log.Logger
}

// New creates a Converter.
func New(opts ...Option) *Converter {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &Converter{logger: o.logger}
}

// Convert validates value in from and returns it expressed in to.
func (c *Converter) Convert(value float64, from, to Unit) (Temperature, error) {
	t, err := domain.New(value, from)
	if err != nil {
		c.logger.Warn("temperature rejected",
			log.Float64("value", value),
			log.Stringer("unit", from),
			log.Err(err),
		)
		return Temperature{}, err
	}
	if !to.Valid() {
		return Temperature{}, fmt.Errorf("%w: %v", ErrInvalidUnit, to)
	}

	out := t.In(to)
	c.logger.Debug("temperature converted",
		log.Float64("value", value),
		log.Stringer("from", from),
		log.Stringer("to", to),
		log.Float64("result", out.Value()),
	)
	return out, nil
}

// ConvertString is Convert with unit names, as accepted by ParseUnit.
func (c *Converter) ConvertString(value float64, from, to string) (Temperature, error) {
	fromUnit, err := domain.ParseUnit(from)
	if err != nil {
		return Temperature{}, fmt.Errorf("source unit: %w", err)
	}
	toUnit, err := domain.ParseUnit(to)
	if err != nil {
		return Temperature{}, fmt.Errorf("target unit: %w", err)
	}
	return c.Convert(value, fromUnit, toUnit)
}

// AbsoluteZero returns absolute zero expressed in u.
func (c *Converter) AbsoluteZero(u Unit) (Temperature, error) {
	return domain.AbsoluteZero(u)
}

// ParseUnit parses a unit name such as "celsius", "F" or "°K".
func ParseUnit(s string) (Unit, error) {
	return domain.ParseUnit(s)
}

// Units returns every supported unit.
func Units() []Unit {
	return domain.Units()
}
