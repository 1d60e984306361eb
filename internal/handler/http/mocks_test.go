package http

import (
	"context"
	"testing"

	"github.com/ekazakova/character-vault/internal/logger"
	"github.com/ekazakova/character-vault/internal/service"
	"github.com/ekazakova/character-vault/models"
	"github.com/go-chi/chi/v5"
)

// Hand-written service doubles. Behaviour is injected per test through the
// func fields; calling an endpoint whose func is nil panics the test, which
// doubles as a "nothing else was called" check.

type mockPageService struct {
	LoadFunc           func(ctx context.Context) error
	PagesFunc          func() []models.PageSummary
	PageFunc           func(id int64) (*models.Page, error)
	ActiveFunc         func() (*models.Page, error)
	SwitchFunc         func(id int64) error
	CreatePageFunc     func(ctx context.Context, name string) (*models.Page, error)
	DeletePageFunc     func(ctx context.Context, id int64) error
	RenamePageFunc     func(ctx context.Context, id int64, name string) error
	UpdateTemplateFunc func(ctx context.Context, id int64, fields []models.Field) error
	SaveFunc           func(ctx context.Context, page *models.Page) error
}

func (m *mockPageService) Load(ctx context.Context) error      { return m.LoadFunc(ctx) }
func (m *mockPageService) Pages() []models.PageSummary         { return m.PagesFunc() }
func (m *mockPageService) Page(id int64) (*models.Page, error) { return m.PageFunc(id) }
func (m *mockPageService) Active() (*models.Page, error)       { return m.ActiveFunc() }
func (m *mockPageService) Switch(id int64) error               { return m.SwitchFunc(id) }
func (m *mockPageService) CreatePage(ctx context.Context, name string) (*models.Page, error) {
	return m.CreatePageFunc(ctx, name)
}
func (m *mockPageService) DeletePage(ctx context.Context, id int64) error {
	return m.DeletePageFunc(ctx, id)
}
func (m *mockPageService) RenamePage(ctx context.Context, id int64, name string) error {
	return m.RenamePageFunc(ctx, id, name)
}
func (m *mockPageService) UpdateTemplate(ctx context.Context, id int64, fields []models.Field) error {
	return m.UpdateTemplateFunc(ctx, id, fields)
}
func (m *mockPageService) Save(ctx context.Context, page *models.Page) error {
	return m.SaveFunc(ctx, page)
}

type mockCharacterService struct {
	AddCharacterFunc    func(ctx context.Context, pageID int64, name string, form map[string]string) (*models.Character, error)
	UpdateCharacterFunc func(ctx context.Context, pageID, charID int64, name string, form map[string]string) (*models.Character, error)
	DeleteCharacterFunc func(ctx context.Context, pageID, charID int64) error
	SearchFunc          func(pageID int64, query string) ([]*models.Character, error)
}

func (m *mockCharacterService) AddCharacter(ctx context.Context, pageID int64, name string, form map[string]string) (*models.Character, error) {
	return m.AddCharacterFunc(ctx, pageID, name, form)
}
func (m *mockCharacterService) UpdateCharacter(ctx context.Context, pageID, charID int64, name string, form map[string]string) (*models.Character, error) {
	return m.UpdateCharacterFunc(ctx, pageID, charID, name, form)
}
func (m *mockCharacterService) DeleteCharacter(ctx context.Context, pageID, charID int64) error {
	return m.DeleteCharacterFunc(ctx, pageID, charID)
}
func (m *mockCharacterService) Search(pageID int64, query string) ([]*models.Character, error) {
	return m.SearchFunc(pageID, query)
}

type mockImageService struct {
	AddImagesFunc     func(ctx context.Context, pageID, charID int64, uploads []models.ImageUpload) (models.UploadReport, error)
	RemoveImageFunc   func(ctx context.Context, pageID, charID int64, index int) error
	ReorderImagesFunc func(ctx context.Context, pageID, charID int64, from, to int) error
	GroupImagesFunc   func(paths []string) []models.ImageGroup
	ReleaseImagesFunc func(ctx context.Context, char *models.Character)
}

func (m *mockImageService) AddImages(ctx context.Context, pageID, charID int64, uploads []models.ImageUpload) (models.UploadReport, error) {
	return m.AddImagesFunc(ctx, pageID, charID, uploads)
}
func (m *mockImageService) RemoveImage(ctx context.Context, pageID, charID int64, index int) error {
	return m.RemoveImageFunc(ctx, pageID, charID, index)
}
func (m *mockImageService) ReorderImages(ctx context.Context, pageID, charID int64, from, to int) error {
	return m.ReorderImagesFunc(ctx, pageID, charID, from, to)
}
func (m *mockImageService) GroupImages(paths []string) []models.ImageGroup {
	return m.GroupImagesFunc(paths)
}
func (m *mockImageService) ReleaseImages(ctx context.Context, char *models.Character) {
	m.ReleaseImagesFunc(ctx, char)
}

type mockSettingsService struct {
	SettingsFunc func() models.Settings
	LoadFunc     func(ctx context.Context) (models.Settings, error)
	UpdateFunc   func(ctx context.Context, settings models.Settings) error
}

func (m *mockSettingsService) Settings() models.Settings { return m.SettingsFunc() }
func (m *mockSettingsService) Load(ctx context.Context) (models.Settings, error) {
	return m.LoadFunc(ctx)
}
func (m *mockSettingsService) Update(ctx context.Context, settings models.Settings) error {
	return m.UpdateFunc(ctx, settings)
}

type testServices struct {
	pages      *mockPageService
	characters *mockCharacterService
	images     *mockImageService
	settings   *mockSettingsService
}

func newTestRouter(t *testing.T) (*chi.Mux, *testServices) {
	t.Helper()

	mocks := &testServices{
		pages:      &mockPageService{},
		characters: &mockCharacterService{},
		images:     &mockImageService{},
		settings:   &mockSettingsService{},
	}
	services := &service.Services{
		PageService:      mocks.pages,
		CharacterService: mocks.characters,
		ImageService:     mocks.images,
		SettingsService:  mocks.settings,
	}

	h := NewHandler(services, "", logger.Nop())
	return h.Init(), mocks
}
