package cliconfig

import "os"

// ApplyEnvConfig applies configuration from environment variables (THERMO_*).
// It respects flags that have been explicitly set (changed map).
func ApplyEnvConfig(cfg *Config, changed map[string]bool) error {
	s := newConfigSetter(changed)

	s.setString("from", os.Getenv("THERMO_FROM"), &cfg.From)
	s.setString("to", os.Getenv("THERMO_TO"), &cfg.To)
	s.setString("log-level", os.Getenv("THERMO_LOG_LEVEL"), &cfg.LogLevel)
	s.setString("log-format", os.Getenv("THERMO_LOG_FORMAT"), &cfg.LogFormat)

	return s.setIntFromString("precision", os.Getenv("THERMO_PRECISION"), &cfg.Precision)
}
