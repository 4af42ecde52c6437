// Package log provides the logging abstraction used by thermo.
//
// The Logger interface can be backed by any logging library. A zerolog
// adapter and a no-op logger are included.
//
// # Usage
//
//	logger := log.NewZerologAdapterWithLogger(zerolog.New(os.Stderr))
//	conv := thermo.New(thermo.WithLogger(logger))
//
// Services default to the no-op logger, so embedding thermo produces no
// output unless a logger is supplied.
package log
