package service

import (
	"context"
	"fmt"
	"testing"

	"github.com/ekazakova/character-vault/internal/logger"
	"github.com/ekazakova/character-vault/internal/store"
	"github.com/ekazakova/character-vault/models"
	"github.com/stretchr/testify/require"
)

// mockPageRepo is a hand-written store.PageRepository double. Behaviour is
// injected per test through the func fields; nil funcs succeed silently.
type mockPageRepo struct {
	LoadFunc      func(ctx context.Context) ([]*models.Page, error)
	SaveFunc      func(ctx context.Context, page *models.Page) error
	SaveIndexFunc func(ctx context.Context, ids []int64) error
	DeleteDocFunc func(ctx context.Context, id int64) error

	saveCalls      int
	saveIndexCalls int
	deleteDocCalls int
	savedIndexes   [][]int64
}

func (m *mockPageRepo) Load(ctx context.Context) ([]*models.Page, error) {
	if m.LoadFunc != nil {
		return m.LoadFunc(ctx)
	}
	return nil, nil
}

func (m *mockPageRepo) Save(ctx context.Context, page *models.Page) error {
	m.saveCalls++
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, page)
	}
	return nil
}

func (m *mockPageRepo) SaveIndex(ctx context.Context, ids []int64) error {
	m.saveIndexCalls++
	m.savedIndexes = append(m.savedIndexes, ids)
	if m.SaveIndexFunc != nil {
		return m.SaveIndexFunc(ctx, ids)
	}
	return nil
}

func (m *mockPageRepo) DeleteDoc(ctx context.Context, id int64) error {
	m.deleteDocCalls++
	if m.DeleteDocFunc != nil {
		return m.DeleteDocFunc(ctx, id)
	}
	return nil
}

// memVault is an in-memory store.VaultAdapter for exercising the image
// pipeline without touching disk.
type memVault struct {
	files   map[string][]byte
	folders map[string]struct{}
	removed []string

	// WriteBinaryErr, when set, fails writes for which it returns non-nil.
	WriteBinaryErr func(path string) error

	// RemoveErr, when set, fails removals for which it returns non-nil.
	RemoveErr func(path string) error
}

func newMemVault() *memVault {
	return &memVault{
		files:   make(map[string][]byte),
		folders: make(map[string]struct{}),
	}
}

func (v *memVault) CreateFolder(_ context.Context, path string) error {
	v.folders[path] = struct{}{}
	return nil
}

func (v *memVault) Read(_ context.Context, path string) (string, error) {
	data, ok := v.files[path]
	if !ok {
		return "", fmt.Errorf("%s: %w", path, store.ErrNotFound)
	}
	return string(data), nil
}

func (v *memVault) Write(ctx context.Context, path, content string) error {
	return v.WriteBinary(ctx, path, []byte(content))
}

func (v *memVault) WriteBinary(_ context.Context, path string, data []byte) error {
	if v.WriteBinaryErr != nil {
		if err := v.WriteBinaryErr(path); err != nil {
			return err
		}
	}
	v.files[path] = data
	return nil
}

func (v *memVault) Remove(_ context.Context, path string) error {
	if v.RemoveErr != nil {
		if err := v.RemoveErr(path); err != nil {
			return err
		}
	}
	v.removed = append(v.removed, path)
	if _, ok := v.files[path]; !ok {
		if _, folder := v.folders[path]; !folder {
			return fmt.Errorf("%s: %w", path, store.ErrNotFound)
		}
		delete(v.folders, path)
		return nil
	}
	delete(v.files, path)
	return nil
}

func (v *memVault) ResourcePath(path string) string {
	return "/files/" + path
}

// mockImageService records cascade calls made by the character service.
type mockImageService struct {
	ImageService

	released []*models.Character
}

func (m *mockImageService) ReleaseImages(_ context.Context, char *models.Character) {
	m.released = append(m.released, char)
}

type fixedSettings struct {
	settings models.Settings
}

func (f fixedSettings) Settings() models.Settings { return f.settings }

// newLoadedPageService builds a page service preloaded with the given pages
// through the mock repository.
func newLoadedPageService(t *testing.T, repo *mockPageRepo, pages ...*models.Page) PageService {
	t.Helper()

	repo.LoadFunc = func(ctx context.Context) ([]*models.Page, error) {
		return pages, nil
	}
	svc := NewPageService(repo, store.NewIDGenerator(), logger.Nop())
	require.NoError(t, svc.Load(context.Background()))
	return svc
}

func testPage(id int64, name string, characters ...*models.Character) *models.Page {
	if characters == nil {
		characters = []*models.Character{}
	}
	return &models.Page{
		ID:         id,
		Name:       name,
		Characters: characters,
		Template:   models.DefaultTemplate(),
	}
}
