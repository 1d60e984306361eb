package config

import (
	"encoding/json"
	"fmt"
	"os"
)

// parseJSON reads a JSON configuration file into a [Config]. Field names
// follow the `json` tags declared on the config structs.
func parseJSON(path string) (*Config, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading json config %s: %w", path, err)
	}

	cfg := &Config{}
	if err := json.Unmarshal(content, cfg); err != nil {
		return nil, fmt.Errorf("error parsing json config %s: %w", path, err)
	}

	return cfg, nil
}
