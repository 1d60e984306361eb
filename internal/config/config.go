package config

import (
	"time"
)

// Config is the top-level process configuration for the character-vault
// server. It is populated by merging environment variables, command-line
// flags and an optional JSON file.
//
// Struct tags:
//   - envPrefix — prefix applied to nested env lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
type Config struct {
	// Server holds the inbound HTTP transport settings.
	Server Server `envPrefix:"SERVER_"`

	// Vault holds the host vault location and the settings blob path.
	Vault Vault `envPrefix:"VAULT_"`

	// JSONFilePath is an optional path to a JSON configuration file,
	// merged on top of env and flag values when non-empty.
	// Populated via the CONFIG variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG" json:"-"`
}

// Server holds network and timeout settings for the HTTP API.
type Server struct {
	// Address is the TCP address the server listens on, "host:port".
	// Env: SERVER_ADDRESS
	Address string `env:"ADDRESS" json:"address"`

	// RequestTimeout bounds a single inbound request (e.g. "30s").
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT" json:"request_timeout"`
}

// Vault holds the location of the host vault on disk and the
// vault-relative path of the plugin settings blob.
type Vault struct {
	// Dir is the vault root directory.
	// Env: VAULT_DIR
	Dir string `env:"DIR" json:"dir"`

	// SettingsPath is the vault-relative path of the settings blob,
	// the equivalent of the plugin's data.json.
	// Env: VAULT_SETTINGS_PATH
	SettingsPath string `env:"SETTINGS_PATH" json:"settings_path"`
}

// GetConfig loads, merges and validates the configuration from all sources
// in priority order (earlier sources win for non-zero fields):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//
// Missing values fall back to defaults during validation.
func GetConfig() (*Config, error) {
	return newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		build()
}
