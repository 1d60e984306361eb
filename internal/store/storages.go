package store

import (
	"github.com/ekazakova/character-vault/internal/logger"
)

type Storages struct {
	Vault    VaultAdapter
	Pages    PageRepository
	Settings SettingsRepository

	// IDs is shared by every component that mints timestamp-derived
	// identifiers, so page, character and image-file ids can never collide
	// within one process.
	IDs *IDGenerator
}

// NewStorages wires the vault adapter and repositories together.
// settingsPath is the vault-relative location of the settings blob.
func NewStorages(vault VaultAdapter, settingsPath string, logger *logger.Logger) *Storages {
	ids := NewIDGenerator()
	settings := NewSettingsRepository(vault, settingsPath)
	return &Storages{
		Vault:    vault,
		Pages:    NewPageRepository(vault, settings, ids, logger),
		Settings: settings,
		IDs:      ids,
	}
}
