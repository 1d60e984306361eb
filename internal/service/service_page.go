package service

import (
	"context"
	"strings"
	"sync"

	"github.com/ekazakova/character-vault/internal/logger"
	"github.com/ekazakova/character-vault/internal/store"
	"github.com/ekazakova/character-vault/models"
)

type pageService struct {
	repo store.PageRepository
	ids  *store.IDGenerator

	mu     sync.Mutex
	pages  []*models.Page
	active int64
	loaded bool

	logger *logger.Logger
}

func NewPageService(repo store.PageRepository, ids *store.IDGenerator, logger *logger.Logger) PageService {
	return &pageService{
		repo:   repo,
		ids:    ids,
		logger: logger,
	}
}

func (s *pageService) Load(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	pages, err := s.repo.Load(ctx)
	if err != nil {
		return err
	}

	s.pages = pages
	s.active = pages[0].ID
	s.loaded = true
	s.logger.Info().Int("pages", len(pages)).Msg("pages loaded")
	return nil
}

func (s *pageService) Pages() []models.PageSummary {
	s.mu.Lock()
	defer s.mu.Unlock()

	summaries := make([]models.PageSummary, 0, len(s.pages))
	for _, page := range s.pages {
		summaries = append(summaries, models.PageSummary{
			ID:             page.ID,
			Name:           page.Name,
			CharacterCount: len(page.Characters),
			Active:         page.ID == s.active,
		})
	}
	return summaries
}

func (s *pageService) Page(id int64) (*models.Page, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.find(id)
}

func (s *pageService) Active() (*models.Page, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.loaded {
		return nil, ErrNotLoaded
	}
	return s.find(s.active)
}

func (s *pageService) Switch(id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := s.find(id); err != nil {
		return err
	}
	s.active = id
	return nil
}

func (s *pageService) CreatePage(ctx context.Context, name string) (*models.Page, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.loaded {
		return nil, ErrNotLoaded
	}

	page := &models.Page{
		ID:         s.ids.Next(),
		Name:       name,
		Characters: []*models.Character{},
		Template:   models.DefaultTemplate(),
	}

	s.pages = append(s.pages, page)
	s.active = page.ID

	if err := s.repo.Save(ctx, page); err != nil {
		return nil, err
	}
	if err := s.repo.SaveIndex(ctx, s.pageIDs()); err != nil {
		return nil, err
	}

	s.logger.Info().Int64("page_id", page.ID).Str("name", name).Msg("page created")
	return page, nil
}

func (s *pageService) DeletePage(ctx context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.pages) <= 1 {
		return ErrLastPage
	}
	if _, err := s.find(id); err != nil {
		return err
	}

	if err := s.repo.DeleteDoc(ctx, id); err != nil {
		// the record removal must still go through; the orphaned document
		// is harmless once the index no longer references it
		s.logger.Warn().Err(err).Int64("page_id", id).Msg("failed to remove page document")
	}

	remaining := s.pages[:0]
	for _, page := range s.pages {
		if page.ID != id {
			remaining = append(remaining, page)
		}
	}
	s.pages = remaining

	if s.active == id {
		s.active = s.pages[0].ID
	}

	if err := s.repo.SaveIndex(ctx, s.pageIDs()); err != nil {
		return err
	}

	s.logger.Info().Int64("page_id", id).Msg("page deleted")
	return nil
}

func (s *pageService) RenamePage(ctx context.Context, id int64, name string) error {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return ErrEmptyName
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	page, err := s.find(id)
	if err != nil {
		return err
	}

	page.Name = trimmed
	return s.repo.Save(ctx, page)
}

func (s *pageService) UpdateTemplate(ctx context.Context, id int64, fields []models.Field) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	page, err := s.find(id)
	if err != nil {
		return err
	}

	// wholesale replace; existing character attributes are not migrated
	page.Template = &models.Template{Fields: fields}
	return s.repo.Save(ctx, page)
}

func (s *pageService) Save(ctx context.Context, page *models.Page) error {
	return s.repo.Save(ctx, page)
}

// find must be called with the mutex held.
func (s *pageService) find(id int64) (*models.Page, error) {
	for _, page := range s.pages {
		if page.ID == id {
			return page, nil
		}
	}
	return nil, ErrPageNotFound
}

// pageIDs must be called with the mutex held.
func (s *pageService) pageIDs() []int64 {
	ids := make([]int64, 0, len(s.pages))
	for _, page := range s.pages {
		ids = append(ids, page.ID)
	}
	return ids
}
