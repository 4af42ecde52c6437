package cliconfig

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/rs/zerolog"

	"github.com/bft-labs/thermo/internal/domain"
)

// Log output formats.
const (
	FormatConsole = "console"
	FormatJSON    = "json"
)

// Config holds CLI configuration for thermo.
type Config struct {
	From      string
	To        string
	Precision int

	LogLevel  string
	LogFormat string
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() Config {
	return Config{
		From:      "celsius",
		To:        "fahrenheit",
		Precision: 2,
		LogLevel:  "info",
		LogFormat: FormatConsole,
	}
}

// Validate checks the configuration for errors and normalizes names.
func (c *Config) Validate() error {
	from, err := domain.ParseUnit(c.From)
	if err != nil {
		return fmt.Errorf("from: %w", err)
	}
	to, err := domain.ParseUnit(c.To)
	if err != nil {
		return fmt.Errorf("to: %w", err)
	}
	c.From, c.To = from.String(), to.String()

	if c.Precision < 0 {
		return fmt.Errorf("precision must not be negative")
	}

	c.LogLevel = strings.ToLower(strings.TrimSpace(c.LogLevel))
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
	if _, err := zerolog.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("log level: %w", err)
	}

	c.LogFormat = strings.ToLower(strings.TrimSpace(c.LogFormat))
	switch c.LogFormat {
	case "":
		c.LogFormat = FormatConsole
	case FormatConsole, FormatJSON:
	default:
		return fmt.Errorf("log format must be %q or %q, got %q", FormatConsole, FormatJSON, c.LogFormat)
	}

	return nil
}

// Units returns the parsed source and target units.
// Call Validate first.
func (c *Config) Units() (from, to domain.Unit, err error) {
	if from, err = domain.ParseUnit(c.From); err != nil {
		return 0, 0, err
	}
	if to, err = domain.ParseUnit(c.To); err != nil {
		return 0, 0, err
	}
	return from, to, nil
}

// configSetter applies values while respecting flag precedence.
// It only applies values if the corresponding flag hasn't been explicitly set.
type configSetter struct {
	changed map[string]bool
}

func newConfigSetter(changed map[string]bool) *configSetter {
	return &configSetter{changed: changed}
}

// setString sets a string value if not empty and flag not changed.
func (s *configSetter) setString(flag, value string, dst *string) {
	if value == "" || s.changed[flag] {
		return
	}
	*dst = value
}

// setIntPtr sets an int value from a pointer if not nil and flag not changed.
// A pointer distinguishes an explicit zero from an absent key.
func (s *configSetter) setIntPtr(flag string, value *int, dst *int) {
	if value == nil || s.changed[flag] {
		return
	}
	*dst = *value
}

// setIntFromString parses a string to int and sets the destination if valid.
// Used for environment variables that come as strings.
func (s *configSetter) setIntFromString(flag, value string, dst *int) error {
	if value == "" || s.changed[flag] {
		return nil
	}
	i, err := strconv.Atoi(value)
	if err != nil {
		return fmt.Errorf("parse %s: %w", flag, err)
	}
	*dst = i
	return nil
}
