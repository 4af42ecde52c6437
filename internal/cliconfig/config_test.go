package cliconfig

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/bft-labs/thermo/internal/domain"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.From != "celsius" {
		t.Errorf("From = %v, want celsius", cfg.From)
	}
	if cfg.To != "fahrenheit" {
		t.Errorf("To = %v, want fahrenheit", cfg.To)
	}
	if cfg.Precision != 2 {
		t.Errorf("Precision = %v, want 2", cfg.Precision)
	}
	if cfg.LogFormat != FormatConsole {
		t.Errorf("LogFormat = %v, want %v", cfg.LogFormat, FormatConsole)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should validate: %v", err)
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name       string
		config     Config
		wantErr    bool
		wantFrom   string
		wantTo     string
		wantLevel  string
		wantFormat string
	}{
		{
			name:       "normalizes unit names",
			config:     Config{From: "F", To: "°K", LogLevel: "DEBUG", LogFormat: "JSON"},
			wantFrom:   "fahrenheit",
			wantTo:     "kelvin",
			wantLevel:  "debug",
			wantFormat: FormatJSON,
		},
		{
			name:       "empty log settings default",
			config:     Config{From: "c", To: "k"},
			wantFrom:   "celsius",
			wantTo:     "kelvin",
			wantLevel:  "info",
			wantFormat: FormatConsole,
		},
		{
			name:    "unknown source unit",
			config:  Config{From: "rankine", To: "c"},
			wantErr: true,
		},
		{
			name:    "unknown target unit",
			config:  Config{From: "c", To: "x"},
			wantErr: true,
		},
		{
			name:    "negative precision",
			config:  Config{From: "c", To: "f", Precision: -1},
			wantErr: true,
		},
		{
			name:    "unknown log level",
			config:  Config{From: "c", To: "f", LogLevel: "loud"},
			wantErr: true,
		},
		{
			name:    "unknown log format",
			config:  Config{From: "c", To: "f", LogFormat: "xml"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := tt.config
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				return
			}
			if cfg.From != tt.wantFrom || cfg.To != tt.wantTo {
				t.Errorf("units = %s -> %s, want %s -> %s", cfg.From, cfg.To, tt.wantFrom, tt.wantTo)
			}
			if cfg.LogLevel != tt.wantLevel {
				t.Errorf("LogLevel = %v, want %v", cfg.LogLevel, tt.wantLevel)
			}
			if cfg.LogFormat != tt.wantFormat {
				t.Errorf("LogFormat = %v, want %v", cfg.LogFormat, tt.wantFormat)
			}
		})
	}
}

func TestConfig_ValidateUnitErrorIsInvalidUnit(t *testing.T) {
	cfg := Config{From: "nope", To: "c"}
	if err := cfg.Validate(); !errors.Is(err, domain.ErrInvalidUnit) {
		t.Fatalf("err = %v, want ErrInvalidUnit", err)
	}
}

func TestConfig_Units(t *testing.T) {
	cfg := Config{From: "kelvin", To: "fahrenheit"}
	from, to, err := cfg.Units()
	if err != nil {
		t.Fatalf("Units() returned error: %v", err)
	}
	if from != domain.Kelvin || to != domain.Fahrenheit {
		t.Fatalf("Units() = %v, %v", from, to)
	}
}

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(Config{LogLevel: "warn", LogFormat: FormatJSON}, &buf)

	logger.Info().Msg("hidden")
	if buf.Len() != 0 {
		t.Fatalf("info should be filtered at warn level, got %q", buf.String())
	}

	logger.Warn().Str("unit", "kelvin").Msg("shown")
	var entry map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("expected JSON log line, got %q: %v", buf.String(), err)
	}
	if entry["unit"] != "kelvin" || entry["message"] != "shown" {
		t.Fatalf("unexpected entry: %v", entry)
	}
}

func TestNewLoggerConsole(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(Config{LogLevel: "", LogFormat: FormatConsole}, &buf)

	logger.Debug().Msg("hidden")
	logger.Info().Msg("hello")
	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Fatalf("debug should be filtered at default level: %q", out)
	}
	if !strings.Contains(out, "hello") || strings.HasPrefix(out, "{") {
		t.Fatalf("expected console output, got %q", out)
	}
}
