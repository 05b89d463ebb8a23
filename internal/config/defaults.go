package config

import (
	_ "embed"
)

//go:embed defaults/shooter.yaml
var defaultShooterYAML []byte

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		TickRate: 60,
		Theme:    "space",
		Seed:     0,
		Log: LogConfig{
			Level: "info",
		},
		Terminal: TerminalConfig{
			KeyHoldTicks: 8,
		},
		Window: WindowConfig{
			Title: "Star Shooter",
			Scale: 1.0,
		},
		Server: ServerConfig{
			Address:            "0.0.0.0:2222",
			HostKey:            ".ssh/shooter_ed25519",
			IdleTimeoutMinutes: 10,
		},
	}
}
