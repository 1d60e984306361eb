package store

import (
	"context"

	"github.com/ekazakova/character-vault/models"
)

// VaultAdapter is the host-provided file capability the plugin core depends
// on. All paths are vault-relative. Implementations must make CreateFolder
// idempotent (creating an existing folder is not an error) and must report
// a missing file from Read and Remove with an error matching [ErrNotFound].
type VaultAdapter interface {
	CreateFolder(ctx context.Context, path string) error
	Read(ctx context.Context, path string) (string, error)
	Write(ctx context.Context, path, content string) error
	WriteBinary(ctx context.Context, path string, data []byte) error
	Remove(ctx context.Context, path string) error

	// ResourcePath resolves a vault path into a URL the UI can load.
	ResourcePath(path string) string
}

// SettingsProvider exposes the current plugin settings to components that
// need folder paths. Passed in explicitly so nothing reaches into a global
// plugin registry for its own configuration.
type SettingsProvider interface {
	Settings() models.Settings
}

// PageRepository persists pages as one JSON document each plus an index
// document listing live page ids.
type PageRepository interface {
	// Load reads the index and every referenced page document. A missing
	// index means "no data yet" and bootstraps a single default page with
	// seeded example characters. A malformed index or page document, or a
	// missing indexed document, is surfaced as [ErrCorruptData] and never
	// silently recreated.
	Load(ctx context.Context) ([]*models.Page, error)

	// Save overwrites the page's document unconditionally.
	Save(ctx context.Context, page *models.Page) error

	// SaveIndex overwrites the index with the given page ids. Callers must
	// invoke it after every mutation that adds or removes a page so the
	// index always equals the live page set.
	SaveIndex(ctx context.Context, ids []int64) error

	// DeleteDoc removes a page's document, tolerating a file that is
	// already gone.
	DeleteDoc(ctx context.Context, id int64) error
}

// SettingsRepository loads and saves the plugin settings blob and serves as
// the [SettingsProvider] for the rest of the core.
type SettingsRepository interface {
	SettingsProvider

	// Load reads the persisted blob and overlays it on the defaults.
	// A missing blob yields the defaults.
	Load(ctx context.Context) (models.Settings, error)

	// Save persists the blob and updates the value served by Settings.
	Save(ctx context.Context, settings models.Settings) error
}
