package service

import (
	"context"

	"github.com/ekazakova/character-vault/models"
)

// PageService owns the in-memory page collection and the notion of the
// active page. All other services mutate pages through it.
type PageService interface {
	// Load reads all persisted pages, bootstrapping default data on first
	// run. Must be called once before any other operation.
	Load(ctx context.Context) error

	// Pages lists lightweight summaries in display order.
	Pages() []models.PageSummary

	// Page returns the page with the given id.
	Page(id int64) (*models.Page, error)

	// Active returns the currently active page.
	Active() (*models.Page, error)

	// Switch makes the page with the given id active.
	Switch(id int64) error

	CreatePage(ctx context.Context, name string) (*models.Page, error)
	DeletePage(ctx context.Context, id int64) error
	RenamePage(ctx context.Context, id int64, name string) error
	UpdateTemplate(ctx context.Context, id int64, fields []models.Field) error

	// Save persists one page's document. Exposed for the character and
	// image services, which mutate records in place.
	Save(ctx context.Context, page *models.Page) error
}

// CharacterService manages the record lifecycle within a page. Form values
// arrive as raw strings keyed by field name and are coerced through the
// page's template.
type CharacterService interface {
	AddCharacter(ctx context.Context, pageID int64, name string, form map[string]string) (*models.Character, error)
	UpdateCharacter(ctx context.Context, pageID, charID int64, name string, form map[string]string) (*models.Character, error)
	DeleteCharacter(ctx context.Context, pageID, charID int64) error

	// Search filters a page's characters by case-insensitive substring
	// match over the name and every current template field's value.
	// An empty query returns all characters.
	Search(pageID int64, query string) ([]*models.Character, error)
}

// ImageService manages a character's uploaded images and the shared
// markdown image index.
type ImageService interface {
	AddImages(ctx context.Context, pageID, charID int64, uploads []models.ImageUpload) (models.UploadReport, error)
	RemoveImage(ctx context.Context, pageID, charID int64, index int) error
	ReorderImages(ctx context.Context, pageID, charID int64, from, to int) error

	// GroupImages partitions image paths into display groups derived from
	// their folder structure.
	GroupImages(paths []string) []models.ImageGroup

	// ReleaseImages best-effort deletes a character's image files and its
	// per-character folder. Used by the character delete cascade.
	ReleaseImages(ctx context.Context, char *models.Character)
}

// SettingsService exposes the plugin settings to the dispatch layer.
type SettingsService interface {
	Settings() models.Settings
	Load(ctx context.Context) (models.Settings, error)
	Update(ctx context.Context, settings models.Settings) error
}
