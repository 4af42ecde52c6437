// Package thermo provides an embeddable temperature conversion service.
//
// A [Converter] validates readings against absolute zero and converts them
// between Celsius, Fahrenheit and Kelvin. It logs through the [log.Logger]
// interface and stays silent unless a logger is supplied.
//
// # Basic Usage
//
//	conv := thermo.New()
//
//	t, err := conv.Convert(200, thermo.Celsius, thermo.Fahrenheit)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(t.Format(2)) // 392.00 °F
//
// # Errors
//
// Readings below absolute zero fail with an error matching [ErrOutOfRange].
// Unknown unit names fail with an error matching [ErrInvalidUnit].
//
//	if errors.Is(err, thermo.ErrOutOfRange) {
//	    // reject the reading
//	}
package thermo
