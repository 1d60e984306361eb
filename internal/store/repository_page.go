package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/ekazakova/character-vault/internal/logger"
	"github.com/ekazakova/character-vault/models"
)

type pageRepository struct {
	vault    VaultAdapter
	settings SettingsProvider
	ids      *IDGenerator

	logger *logger.Logger
}

// NewPageRepository constructs the JSON-document page store. Folder paths
// are resolved through the settings provider on every operation, so a path
// change in the settings takes effect without restarting.
func NewPageRepository(vault VaultAdapter, settings SettingsProvider, ids *IDGenerator, logger *logger.Logger) PageRepository {
	return &pageRepository{
		vault:    vault,
		settings: settings,
		ids:      ids,
		logger:   logger,
	}
}

func (r *pageRepository) indexPath() string {
	return r.settings.Settings().DataFolder + "/pages-index.json"
}

func (r *pageRepository) docPath(id int64) string {
	return fmt.Sprintf("%s/page-%d.json", r.settings.Settings().DataFolder, id)
}

func (r *pageRepository) Load(ctx context.Context) ([]*models.Page, error) {
	if err := r.vault.CreateFolder(ctx, r.settings.Settings().DataFolder); err != nil {
		return nil, err
	}

	content, err := r.vault.Read(ctx, r.indexPath())
	if errors.Is(err, ErrNotFound) {
		// first run, nothing persisted yet
		return r.bootstrap(ctx)
	}
	if err != nil {
		return nil, fmt.Errorf("error reading pages index: %w", err)
	}

	var ids []int64
	if err := json.Unmarshal([]byte(content), &ids); err != nil {
		return nil, fmt.Errorf("%w: pages index is not a valid id list: %v", ErrCorruptData, err)
	}
	if len(ids) == 0 {
		return r.bootstrap(ctx)
	}

	pages := make([]*models.Page, 0, len(ids))
	for _, id := range ids {
		doc, err := r.vault.Read(ctx, r.docPath(id))
		if errors.Is(err, ErrNotFound) {
			return nil, fmt.Errorf("%w: index references missing page document %d", ErrCorruptData, id)
		}
		if err != nil {
			return nil, fmt.Errorf("error reading page document %d: %w", id, err)
		}

		page := &models.Page{}
		if err := json.Unmarshal([]byte(doc), page); err != nil {
			return nil, fmt.Errorf("%w: page document %d is not valid JSON: %v", ErrCorruptData, id, err)
		}
		pages = append(pages, page)
	}

	return pages, nil
}

func (r *pageRepository) Save(ctx context.Context, page *models.Page) error {
	doc, err := json.MarshalIndent(page, "", "  ")
	if err != nil {
		return fmt.Errorf("error serializing page %d: %w", page.ID, err)
	}
	if err := r.vault.Write(ctx, r.docPath(page.ID), string(doc)); err != nil {
		return fmt.Errorf("error writing page document %d: %w", page.ID, err)
	}
	return nil
}

func (r *pageRepository) SaveIndex(ctx context.Context, ids []int64) error {
	if ids == nil {
		ids = []int64{}
	}
	doc, err := json.MarshalIndent(ids, "", "  ")
	if err != nil {
		return fmt.Errorf("error serializing pages index: %w", err)
	}
	if err := r.vault.Write(ctx, r.indexPath(), string(doc)); err != nil {
		return fmt.Errorf("error writing pages index: %w", err)
	}
	return nil
}

func (r *pageRepository) DeleteDoc(ctx context.Context, id int64) error {
	err := r.vault.Remove(ctx, r.docPath(id))
	if errors.Is(err, ErrNotFound) {
		// already gone, which is the goal
		return nil
	}
	return err
}

// bootstrap creates and persists the single default page shown on first
// run, seeded with two example characters.
func (r *pageRepository) bootstrap(ctx context.Context) ([]*models.Page, error) {
	page := r.defaultPage()

	if err := r.Save(ctx, page); err != nil {
		return nil, err
	}
	if err := r.SaveIndex(ctx, []int64{page.ID}); err != nil {
		return nil, err
	}

	r.logger.Info().Int64("page_id", page.ID).Msg("bootstrapped default page")
	return []*models.Page{page}, nil
}

func (r *pageRepository) defaultPage() *models.Page {
	now := time.Now()
	return &models.Page{
		ID:       r.ids.Next(),
		Name:     "Default Page",
		Template: models.DefaultTemplate(),
		Characters: []*models.Character{
			{
				ID:     1,
				Name:   "Aliya",
				Image:  "👸",
				Images: []string{},
				Attributes: map[string]models.FieldValue{
					"age":         models.IntValue(25),
					"race":        models.TextValue("Human"),
					"class":       models.TextValue("Warrior"),
					"tags":        models.ListValue([]string{"brave", "just", "swordplay"}),
					"description": models.TextValue("A brave warrior maiden, skilled with blade and magic."),
				},
				CreatedAt: now,
			},
			{
				ID:     2,
				Name:   "Rex",
				Image:  "🧙‍♂️",
				Images: []string{},
				Attributes: map[string]models.FieldValue{
					"age":         models.IntValue(35),
					"race":        models.TextValue("Elf"),
					"class":       models.TextValue("Mage"),
					"tags":        models.ListValue([]string{"mysterious", "wise", "magic"}),
					"description": models.TextValue("A mysterious mage versed in ancient magical lore."),
				},
				CreatedAt: now,
			},
		},
	}
}
