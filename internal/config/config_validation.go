package config

import (
	"errors"
	"strings"
	"time"
)

// Defaults applied by validate when a value was provided by no source.
const (
	DefaultAddress        = "localhost:8080"
	DefaultVaultDir       = "."
	DefaultSettingsPath   = "character-creator/data.json"
	DefaultRequestTimeout = 30 * time.Second
)

var (
	// ErrBadAddress is returned when the server address is not host:port.
	ErrBadAddress = errors.New("server address must be in host:port form")

	// ErrBadTimeout is returned when the request timeout is negative.
	ErrBadTimeout = errors.New("request timeout must not be negative")
)

// validate fills defaults for unset fields and rejects values no source
// may provide.
func (c *Config) validate() error {
	if c.Server.Address == "" {
		c.Server.Address = DefaultAddress
	}
	if c.Server.RequestTimeout == 0 {
		c.Server.RequestTimeout = DefaultRequestTimeout
	}
	if c.Vault.Dir == "" {
		c.Vault.Dir = DefaultVaultDir
	}
	if c.Vault.SettingsPath == "" {
		c.Vault.SettingsPath = DefaultSettingsPath
	}

	if c.Server.RequestTimeout < 0 {
		return ErrBadTimeout
	}
	if !strings.Contains(c.Server.Address, ":") {
		return ErrBadAddress
	}

	return nil
}
