package config

import (
	"flag"
	"time"
)

// ParseFlags parses all configuration flags.
//
// Flags:
//
//	-a server address in format [host]:[port]
//	-vault vault root directory
//	-settings vault-relative settings blob path
//	-request-timeout request timeout (e.g., "30s", "1m")
//	-c/-config json file path with configs
func ParseFlags() *Config {
	var serverAddress string
	var vaultDir string
	var settingsPath string
	var requestTimeout time.Duration
	var jsonConfigPath string

	flag.StringVar(&serverAddress, "a", "", "Net address host:port")
	flag.StringVar(&vaultDir, "vault", "", "Vault root directory")
	flag.StringVar(&settingsPath, "settings", "", "Vault-relative settings blob path")
	flag.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	flag.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	flag.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")

	flag.Parse()

	return &Config{
		Server: Server{
			Address:        serverAddress,
			RequestTimeout: requestTimeout,
		},
		Vault: Vault{
			Dir:          vaultDir,
			SettingsPath: settingsPath,
		},
		JSONFilePath: jsonConfigPath,
	}
}
