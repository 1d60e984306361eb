package store

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/ekazakova/character-vault/internal/logger"
	"github.com/ekazakova/character-vault/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixedSettings struct {
	settings models.Settings
}

func (f fixedSettings) Settings() models.Settings { return f.settings }

func newTestPageRepo(t *testing.T) (PageRepository, VaultAdapter) {
	t.Helper()
	vault, _ := newTestVault(t)
	settings := fixedSettings{settings: models.DefaultSettings()}
	repo := NewPageRepository(vault, settings, NewIDGenerator(), logger.Nop())
	return repo, vault
}

// ── Load ─────────────────────────────────────────────────────────────────────

func TestPageRepository_Load_BootstrapsOnFirstRun(t *testing.T) {
	repo, vault := newTestPageRepo(t)
	ctx := context.Background()

	pages, err := repo.Load(ctx)
	require.NoError(t, err)
	require.Len(t, pages, 1)

	page := pages[0]
	assert.Equal(t, "Default Page", page.Name)
	require.Len(t, page.Characters, 2)
	assert.Equal(t, "Aliya", page.Characters[0].Name)
	assert.Equal(t, "Rex", page.Characters[1].Name)
	assert.Equal(t, models.IntValue(25), page.Characters[0].Attributes["age"])

	// the bootstrap must have been persisted, not just returned
	index, err := vault.Read(ctx, "character-creator/pages-index.json")
	require.NoError(t, err)

	var ids []int64
	require.NoError(t, json.Unmarshal([]byte(index), &ids))
	assert.Equal(t, []int64{page.ID}, ids)
}

func TestPageRepository_Load_EmptyIndexBootstraps(t *testing.T) {
	repo, vault := newTestPageRepo(t)
	ctx := context.Background()

	require.NoError(t, vault.Write(ctx, "character-creator/pages-index.json", "[]"))

	pages, err := repo.Load(ctx)
	require.NoError(t, err)
	require.Len(t, pages, 1)
	assert.Equal(t, "Default Page", pages[0].Name)
}

func TestPageRepository_Load_RoundTripsSavedPages(t *testing.T) {
	repo, _ := newTestPageRepo(t)
	ctx := context.Background()

	page := &models.Page{
		ID:       42,
		Name:     "Campaign",
		Template: models.DefaultTemplate(),
		Characters: []*models.Character{
			{
				ID:     7,
				Name:   "Bob",
				Image:  "👨‍⚔️",
				Images: []string{},
				Attributes: map[string]models.FieldValue{
					"age":  models.IntValue(29),
					"tags": models.ListValue([]string{"brave", "bold"}),
				},
			},
		},
	}
	require.NoError(t, repo.Save(ctx, page))
	require.NoError(t, repo.SaveIndex(ctx, []int64{42}))

	pages, err := repo.Load(ctx)
	require.NoError(t, err)
	require.Len(t, pages, 1)

	loaded := pages[0]
	assert.Equal(t, "Campaign", loaded.Name)
	require.Len(t, loaded.Characters, 1)
	assert.Equal(t, models.IntValue(29), loaded.Characters[0].Attributes["age"])
	assert.Equal(t, models.ListValue([]string{"brave", "bold"}), loaded.Characters[0].Attributes["tags"])
}

func TestPageRepository_Load_MalformedIndexIsCorruptData(t *testing.T) {
	repo, vault := newTestPageRepo(t)
	ctx := context.Background()

	require.NoError(t, vault.Write(ctx, "character-creator/pages-index.json", "{not json"))

	_, err := repo.Load(ctx)
	assert.ErrorIs(t, err, ErrCorruptData)

	// corrupt data must never be silently overwritten
	content, readErr := vault.Read(ctx, "character-creator/pages-index.json")
	require.NoError(t, readErr)
	assert.Equal(t, "{not json", content)
}

func TestPageRepository_Load_MissingIndexedDocumentIsCorruptData(t *testing.T) {
	repo, vault := newTestPageRepo(t)
	ctx := context.Background()

	require.NoError(t, vault.Write(ctx, "character-creator/pages-index.json", "[123]"))

	_, err := repo.Load(ctx)
	assert.ErrorIs(t, err, ErrCorruptData)
}

func TestPageRepository_Load_MalformedPageDocumentIsCorruptData(t *testing.T) {
	repo, vault := newTestPageRepo(t)
	ctx := context.Background()

	require.NoError(t, vault.Write(ctx, "character-creator/pages-index.json", "[123]"))
	require.NoError(t, vault.Write(ctx, "character-creator/page-123.json", "broken"))

	_, err := repo.Load(ctx)
	assert.ErrorIs(t, err, ErrCorruptData)
}

// ── Save / SaveIndex / DeleteDoc ─────────────────────────────────────────────

func TestPageRepository_Save_WritesIndentedDocument(t *testing.T) {
	repo, vault := newTestPageRepo(t)
	ctx := context.Background()

	page := &models.Page{ID: 5, Name: "P", Characters: []*models.Character{}}
	require.NoError(t, repo.Save(ctx, page))

	doc, err := vault.Read(ctx, "character-creator/page-5.json")
	require.NoError(t, err)
	assert.Contains(t, doc, "\n  \"name\": \"P\"", "documents stay human-readable in the vault")
}

func TestPageRepository_SaveIndex_NilBecomesEmptyList(t *testing.T) {
	repo, vault := newTestPageRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.SaveIndex(ctx, nil))

	index, err := vault.Read(ctx, "character-creator/pages-index.json")
	require.NoError(t, err)
	assert.JSONEq(t, "[]", index)
}

func TestPageRepository_DeleteDoc_ToleratesMissingFile(t *testing.T) {
	repo, _ := newTestPageRepo(t)

	assert.NoError(t, repo.DeleteDoc(context.Background(), 9999))
}
