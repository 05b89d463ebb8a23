package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/charmbracelet/log"
)

// isolate points HOME and the working directory at empty temp dirs so only
// the embedded defaults are found.
func isolate(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Chdir(t.TempDir())
	return home
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
}

func TestEmbeddedMatchesDefault(t *testing.T) {
	isolate(t)

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg != Default() {
		t.Errorf("embedded config = %+v, expected %+v", cfg, Default())
	}
}

func TestLoadCustomPathPartial(t *testing.T) {
	isolate(t)
	path := filepath.Join(t.TempDir(), "custom.yaml")
	writeFile(t, path, "tick_rate: 30\ntheme: tropical\nterminal:\n  key_hold_ticks: 4\n")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.TickRate != 30 || cfg.Theme != "tropical" || cfg.Terminal.KeyHoldTicks != 4 {
		t.Errorf("overrides not applied: %+v", cfg)
	}
	if cfg.Server.Address != Default().Server.Address {
		t.Errorf("unset keys should keep defaults, server.address = %q", cfg.Server.Address)
	}
}

func TestLoadCustomPathErrors(t *testing.T) {
	isolate(t)
	dir := t.TempDir()
	broken := filepath.Join(dir, "broken.yaml")
	writeFile(t, broken, "tick_rate: [1, 2\n")
	invalid := filepath.Join(dir, "invalid.yaml")
	writeFile(t, invalid, "tick_rate: 0\n")

	tests := []struct {
		name        string
		path        string
		wantInvalid bool
	}{
		{"missing", filepath.Join(dir, "nope.yaml"), false},
		{"unparsable", broken, false},
		{"fails validation", invalid, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(tt.path)
			if err == nil {
				t.Fatal("Load() expected error")
			}
			if got := errors.Is(err, ErrInvalidConfig); got != tt.wantInvalid {
				t.Errorf("errors.Is(err, ErrInvalidConfig) = %v, expected %v (err: %v)", got, tt.wantInvalid, err)
			}
		})
	}
}

func TestLoadSearchOrder(t *testing.T) {
	home := isolate(t)

	writeFile(t, filepath.Join("configs", FileName), "tick_rate: 50\n")
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.TickRate != 50 {
		t.Errorf("local config: tick_rate = %d, expected 50", cfg.TickRate)
	}

	writeFile(t, filepath.Join(home, ".arcade", "configs", FileName), "tick_rate: 40\n")
	cfg, err = Load("")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.TickRate != 40 {
		t.Errorf("user config should win over local: tick_rate = %d, expected 40", cfg.TickRate)
	}
}

func TestLoadSkipsBrokenUserConfig(t *testing.T) {
	home := isolate(t)
	writeFile(t, filepath.Join(home, ".arcade", "configs", FileName), "::: not yaml\n\t- [")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.TickRate != Default().TickRate {
		t.Errorf("tick_rate = %d, expected default %d", cfg.TickRate, Default().TickRate)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		valid  bool
	}{
		{"default", func(*Config) {}, true},
		{"tick rate zero", func(c *Config) { c.TickRate = 0 }, false},
		{"tick rate too high", func(c *Config) { c.TickRate = 1000 }, false},
		{"empty theme", func(c *Config) { c.Theme = "" }, false},
		{"bad log level", func(c *Config) { c.Log.Level = "loud" }, false},
		{"debug log level", func(c *Config) { c.Log.Level = "debug" }, true},
		{"no key hold", func(c *Config) { c.Terminal.KeyHoldTicks = 0 }, false},
		{"zero scale", func(c *Config) { c.Window.Scale = 0 }, false},
		{"huge scale", func(c *Config) { c.Window.Scale = 10 }, false},
		{"double scale", func(c *Config) { c.Window.Scale = 2 }, true},
		{"empty address", func(c *Config) { c.Server.Address = "" }, false},
		{"negative idle", func(c *Config) { c.Server.IdleTimeoutMinutes = -1 }, false},
		{"idle disabled", func(c *Config) { c.Server.IdleTimeoutMinutes = 0 }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.valid && err != nil {
				t.Errorf("Validate() = %v, expected nil", err)
			}
			if !tt.valid && !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("Validate() = %v, expected ErrInvalidConfig", err)
			}
		})
	}
}

func TestDerivedValues(t *testing.T) {
	cfg := Default()

	if got := cfg.TickInterval(); got != time.Second/60 {
		t.Errorf("TickInterval() = %v, expected %v", got, time.Second/60)
	}
	if got := cfg.IdleTimeout(); got != 10*time.Minute {
		t.Errorf("IdleTimeout() = %v, expected 10m", got)
	}
	if got := cfg.LogLevel(); got != log.InfoLevel {
		t.Errorf("LogLevel() = %v, expected info", got)
	}

	cfg.Log.Level = "bogus"
	if got := cfg.LogLevel(); got != log.InfoLevel {
		t.Errorf("LogLevel() with bad level = %v, expected info fallback", got)
	}
}
