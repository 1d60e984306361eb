// Package adapter provides a transport client for the character-vault HTTP
// API.
//
// The primary abstraction is [ServerAdapter], which decouples callers (CLI
// tooling, integration tests) from the wire protocol. The package ships an
// HTTP/REST implementation ([NewHTTPServerAdapter]).
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic
// error handling (e.g. [ErrConflict] for 409, [ErrNotFound] for 404).
package adapter

import (
	"context"

	"github.com/ekazakova/character-vault/models"
)

// ServerAdapter defines transport-agnostic communication with the
// character-vault server. Implementations are responsible for serialisation
// and for mapping transport-level errors to the sentinel values defined in
// this package.
type ServerAdapter interface {
	// Pages lists lightweight page summaries in display order.
	Pages(ctx context.Context) ([]models.PageSummary, error)

	// Page fetches one page document, characters and template included.
	Page(ctx context.Context, pageID int64) (*models.Page, error)

	CreatePage(ctx context.Context, name string) (*models.Page, error)
	DeletePage(ctx context.Context, pageID int64) error
	RenamePage(ctx context.Context, pageID int64, name string) error
	UpdateTemplate(ctx context.Context, pageID int64, fields []models.Field) error
	ActivatePage(ctx context.Context, pageID int64) error

	// Characters lists a page's characters, filtered by query when non-empty.
	Characters(ctx context.Context, pageID int64, query string) ([]*models.Character, error)

	AddCharacter(ctx context.Context, pageID int64, name string, values map[string]string) (*models.Character, error)
	UpdateCharacter(ctx context.Context, pageID, charID int64, name string, values map[string]string) (*models.Character, error)
	DeleteCharacter(ctx context.Context, pageID, charID int64) error

	// UploadImages sends the given files as one multipart request and returns
	// the per-file outcome report.
	UploadImages(ctx context.Context, pageID, charID int64, uploads []models.ImageUpload) (models.UploadReport, error)

	RemoveImage(ctx context.Context, pageID, charID int64, index int) error
	ReorderImages(ctx context.Context, pageID, charID int64, from, to int) error
	ImageGroups(ctx context.Context, pageID, charID int64) ([]models.ImageGroup, error)

	Settings(ctx context.Context) (models.Settings, error)
	UpdateSettings(ctx context.Context, settings models.Settings) error
}
