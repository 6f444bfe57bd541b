package config

import (
	"bytes"
	"errors"
	"os"
	"testing"

	chesserrors "github.com/lgbarn/chessrules-go/internal/errors"
)

// TestOutputConfig_Defaults verifies OutputConfig has sensible defaults
func TestOutputConfig_Defaults(t *testing.T) {
	cfg := NewOutputConfig()

	if cfg.MaxLineLength != 80 {
		t.Errorf("MaxLineLength = %d, want 80", cfg.MaxLineLength)
	}
	if !cfg.KeepMoveNumbers {
		t.Error("KeepMoveNumbers should be true by default")
	}
	if !cfg.KeepResults {
		t.Error("KeepResults should be true by default")
	}
	if !cfg.KeepChecks {
		t.Error("KeepChecks should be true by default")
	}
	if cfg.TagFormat != AllTags {
		t.Errorf("TagFormat = %v, want AllTags", cfg.TagFormat)
	}
}

func TestNewConfig_Defaults(t *testing.T) {
	cfg := NewConfig()

	if cfg.StartFEN != "" {
		t.Errorf("StartFEN = %q, want empty", cfg.StartFEN)
	}
	if cfg.Verbosity != Summary {
		t.Errorf("Verbosity = %d, want %d", cfg.Verbosity, Summary)
	}
	if cfg.LogFile != os.Stderr {
		t.Error("LogFile should default to os.Stderr")
	}
	if cfg.Output == nil || cfg.Tags == nil {
		t.Fatal("Output and Tags should be initialised")
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config does not validate: %v", err)
	}
}

func TestConfig_SetLogFile(t *testing.T) {
	cfg := NewConfig()
	buf := &bytes.Buffer{}

	cfg.SetLogFile(buf)

	if cfg.LogFile != buf {
		t.Error("SetLogFile did not set LogFile")
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		modify  func(*Config)
		wantErr bool
	}{
		{"defaults", func(c *Config) {}, false},
		{"silent", func(c *Config) { c.Verbosity = Silent }, false},
		{"commentary", func(c *Config) { c.Verbosity = Commentary }, false},
		{"negative verbosity", func(c *Config) { c.Verbosity = -1 }, true},
		{"verbosity too high", func(c *Config) { c.Verbosity = 3 }, true},
		{"placement only", func(c *Config) { c.StartFEN = "4k3/8/8/8/8/8/8/4K3" }, false},
		{"full FEN", func(c *Config) { c.StartFEN = "4k3/8/8/8/8/8/8/4K3 w - - 0 1" }, false},
		{"start position is parsed later", func(c *Config) { c.StartFEN = "4k3/8/8/8/8/8/8/4K3 w - - 0 1 x" }, false},
		{"no output settings", func(c *Config) { c.Output = nil }, true},
		{"no log writer", func(c *Config) { c.LogFile = nil }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := NewConfig()
			tt.modify(cfg)
			err := cfg.Validate()
			if tt.wantErr {
				if !errors.Is(err, chesserrors.ErrInvalidConfig) {
					t.Errorf("Validate() error = %v, want ErrInvalidConfig", err)
				}
			} else if err != nil {
				t.Errorf("Validate() unexpected error: %v", err)
			}
		})
	}
}

// TestConfigBuilder verifies the builder pattern works correctly
func TestConfigBuilder(t *testing.T) {
	buf := &bytes.Buffer{}
	cfg := NewConfigBuilder().
		WithStartFEN("4k3/8/8/8/8/8/8/4K3 w - - 0 1").
		WithVerbosity(Commentary).
		WithLogFile(buf).
		WithTag("Event", "Club match").
		WithMaxLineLength(120).
		WithTagFormat(SevenTagRoster).
		KeepMoveNumbers(false).
		KeepChecks(false).
		KeepResults(false).
		Build()

	if cfg.StartFEN != "4k3/8/8/8/8/8/8/4K3 w - - 0 1" {
		t.Errorf("StartFEN = %q", cfg.StartFEN)
	}
	if cfg.Verbosity != Commentary {
		t.Errorf("Verbosity = %d, want %d", cfg.Verbosity, Commentary)
	}
	if cfg.LogFile != buf {
		t.Error("WithLogFile did not set LogFile")
	}
	if cfg.Tags["Event"] != "Club match" {
		t.Errorf("Tags[Event] = %q", cfg.Tags["Event"])
	}
	if cfg.Output.MaxLineLength != 120 {
		t.Errorf("MaxLineLength = %d, want 120", cfg.Output.MaxLineLength)
	}
	if cfg.Output.TagFormat != SevenTagRoster {
		t.Errorf("TagFormat = %v, want SevenTagRoster", cfg.Output.TagFormat)
	}
	if cfg.Output.KeepMoveNumbers || cfg.Output.KeepChecks || cfg.Output.KeepResults {
		t.Errorf("Keep flags not cleared: %+v", cfg.Output)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("built config does not validate: %v", err)
	}
}
