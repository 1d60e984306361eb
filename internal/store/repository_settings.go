package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"dario.cat/mergo"
	"github.com/ekazakova/character-vault/models"
)

type settingsRepository struct {
	vault VaultAdapter
	path  string

	mu      sync.RWMutex
	current models.Settings
}

// NewSettingsRepository constructs the settings store backed by a single
// JSON blob at path. Until Load succeeds the provider serves the defaults.
func NewSettingsRepository(vault VaultAdapter, path string) SettingsRepository {
	return &settingsRepository{
		vault:   vault,
		path:    path,
		current: models.DefaultSettings(),
	}
}

// Settings returns the most recently loaded or saved settings.
func (r *settingsRepository) Settings() models.Settings {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.current
}

func (r *settingsRepository) Load(ctx context.Context) (models.Settings, error) {
	content, err := r.vault.Read(ctx, r.path)
	if errors.Is(err, ErrNotFound) {
		return r.Settings(), nil
	}
	if err != nil {
		return models.Settings{}, fmt.Errorf("error reading settings: %w", err)
	}

	var saved models.Settings
	if err := json.Unmarshal([]byte(content), &saved); err != nil {
		return models.Settings{}, fmt.Errorf("%w: settings blob is not valid JSON: %v", ErrCorruptData, err)
	}

	// saved values win; defaults fill whatever the blob left empty
	if err := mergo.Merge(&saved, models.DefaultSettings()); err != nil {
		return models.Settings{}, fmt.Errorf("error merging settings defaults: %w", err)
	}

	r.mu.Lock()
	r.current = saved
	r.mu.Unlock()
	return saved, nil
}

func (r *settingsRepository) Save(ctx context.Context, settings models.Settings) error {
	blob, err := json.MarshalIndent(settings, "", "  ")
	if err != nil {
		return fmt.Errorf("error serializing settings: %w", err)
	}
	if err := r.vault.Write(ctx, r.path, string(blob)); err != nil {
		return fmt.Errorf("error writing settings: %w", err)
	}

	r.mu.Lock()
	r.current = settings
	r.mu.Unlock()
	return nil
}
