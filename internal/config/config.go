// Package config provides YAML-based host configuration for the shooter:
// frame rate, default theme, logging, and per-host settings.
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
)

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("invalid config")

// Config contains all host configuration.
type Config struct {
	TickRate int            `yaml:"tick_rate"`
	Theme    string         `yaml:"theme"`
	Seed     int64          `yaml:"seed"` // 0 = seed from the clock
	Log      LogConfig      `yaml:"log"`
	Terminal TerminalConfig `yaml:"terminal"`
	Window   WindowConfig   `yaml:"window"`
	Server   ServerConfig   `yaml:"server"`
}

// LogConfig defines logger settings.
type LogConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error
	File  string `yaml:"file"`  // Empty discards logs in terminal play
}

// TerminalConfig defines the terminal host settings.
type TerminalConfig struct {
	KeyHoldTicks int `yaml:"key_hold_ticks"` // Ticks a press counts as held
}

// WindowConfig defines the desktop window host settings.
type WindowConfig struct {
	Title string  `yaml:"title"`
	Scale float64 `yaml:"scale"`
}

// ServerConfig defines the SSH server settings.
type ServerConfig struct {
	Address            string `yaml:"address"`
	HostKey            string `yaml:"host_key"`
	IdleTimeoutMinutes int    `yaml:"idle_timeout_minutes"`
}

// Limits
const (
	MinTickRate     = 1
	MaxTickRate     = 240
	MaxKeyHoldTicks = 120
	MaxWindowScale  = 4.0
)

// Validate checks every field and returns the first problem found.
func (c Config) Validate() error {
	if c.TickRate < MinTickRate || c.TickRate > MaxTickRate {
		return fmt.Errorf("%w: tick_rate must be in [%d, %d], got %d",
			ErrInvalidConfig, MinTickRate, MaxTickRate, c.TickRate)
	}
	if c.Theme == "" {
		return fmt.Errorf("%w: theme must not be empty", ErrInvalidConfig)
	}
	if _, err := log.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("%w: log.level: %w", ErrInvalidConfig, err)
	}
	if c.Terminal.KeyHoldTicks < 1 || c.Terminal.KeyHoldTicks > MaxKeyHoldTicks {
		return fmt.Errorf("%w: terminal.key_hold_ticks must be in [1, %d], got %d",
			ErrInvalidConfig, MaxKeyHoldTicks, c.Terminal.KeyHoldTicks)
	}
	if c.Window.Scale <= 0 || c.Window.Scale > MaxWindowScale {
		return fmt.Errorf("%w: window.scale must be in (0, %g], got %g",
			ErrInvalidConfig, MaxWindowScale, c.Window.Scale)
	}
	if c.Server.Address == "" {
		return fmt.Errorf("%w: server.address must not be empty", ErrInvalidConfig)
	}
	if c.Server.IdleTimeoutMinutes < 0 {
		return fmt.Errorf("%w: server.idle_timeout_minutes must not be negative, got %d",
			ErrInvalidConfig, c.Server.IdleTimeoutMinutes)
	}
	return nil
}

// LogLevel returns the parsed log level, falling back to info.
func (c Config) LogLevel() log.Level {
	lvl, err := log.ParseLevel(c.Log.Level)
	if err != nil {
		return log.InfoLevel
	}
	return lvl
}

// IdleTimeout returns the SSH idle timeout; zero disables it.
func (c Config) IdleTimeout() time.Duration {
	return time.Duration(c.Server.IdleTimeoutMinutes) * time.Minute
}

// TickInterval returns the duration of one simulation frame.
func (c Config) TickInterval() time.Duration {
	if c.TickRate <= 0 {
		return time.Second / 60
	}
	return time.Second / time.Duration(c.TickRate)
}
