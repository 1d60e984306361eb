package service

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/ekazakova/character-vault/internal/logger"
	"github.com/ekazakova/character-vault/internal/store"
	"github.com/ekazakova/character-vault/models"
)

type characterService struct {
	pages  PageService
	images ImageService
	ids    *store.IDGenerator

	mu sync.Mutex

	logger *logger.Logger
}

func NewCharacterService(pages PageService, images ImageService, ids *store.IDGenerator, logger *logger.Logger) CharacterService {
	return &characterService{
		pages:  pages,
		images: images,
		ids:    ids,
		logger: logger,
	}
}

func (s *characterService) AddCharacter(ctx context.Context, pageID int64, name string, form map[string]string) (*models.Character, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	page, err := s.pages.Page(pageID)
	if err != nil {
		return nil, err
	}

	char := &models.Character{
		ID:         s.ids.Next(),
		Name:       name,
		Image:      models.RandomEmoji(),
		Images:     []string{},
		Attributes: make(map[string]models.FieldValue),
		CreatedAt:  time.Now(),
	}
	for _, field := range page.Schema().Fields {
		char.Attributes[field.Name] = models.ParseFieldValue(field, form[field.Name])
	}

	// newest first
	page.Characters = append([]*models.Character{char}, page.Characters...)

	if err := s.pages.Save(ctx, page); err != nil {
		return nil, err
	}

	s.logger.Info().Int64("page_id", pageID).Int64("character_id", char.ID).Msg("character added")
	return char, nil
}

func (s *characterService) UpdateCharacter(ctx context.Context, pageID, charID int64, name string, form map[string]string) (*models.Character, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	page, err := s.pages.Page(pageID)
	if err != nil {
		return nil, err
	}
	char := page.FindCharacter(charID)
	if char == nil {
		return nil, ErrCharacterNotFound
	}

	// position, images, emoji and createdAt survive an edit
	char.Name = name
	if char.Attributes == nil {
		char.Attributes = make(map[string]models.FieldValue)
	}
	for _, field := range page.Schema().Fields {
		char.Attributes[field.Name] = models.ParseFieldValue(field, form[field.Name])
	}
	now := time.Now()
	char.UpdatedAt = &now

	if err := s.pages.Save(ctx, page); err != nil {
		return nil, err
	}
	return char, nil
}

func (s *characterService) DeleteCharacter(ctx context.Context, pageID, charID int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	page, err := s.pages.Page(pageID)
	if err != nil {
		return err
	}
	char := page.FindCharacter(charID)
	if char == nil {
		return ErrCharacterNotFound
	}

	remaining := page.Characters[:0]
	for _, c := range page.Characters {
		if c.ID != charID {
			remaining = append(remaining, c)
		}
	}
	page.Characters = remaining

	if err := s.pages.Save(ctx, page); err != nil {
		return err
	}

	// cascade: release the character's uploaded images, best effort
	s.images.ReleaseImages(ctx, char)

	s.logger.Info().Int64("page_id", pageID).Int64("character_id", charID).Msg("character deleted")
	return nil
}

func (s *characterService) Search(pageID int64, query string) ([]*models.Character, error) {
	page, err := s.pages.Page(pageID)
	if err != nil {
		return nil, err
	}

	needle := strings.ToLower(strings.TrimSpace(query))
	if needle == "" {
		return page.Characters, nil
	}

	matched := make([]*models.Character, 0, len(page.Characters))
	for _, char := range page.Characters {
		if strings.Contains(s.haystack(page, char), needle) {
			matched = append(matched, char)
		}
	}
	return matched, nil
}

// haystack concatenates the searchable text of one record: the name plus
// every current template field's value, so a renamed or added field is
// searchable without code changes.
func (s *characterService) haystack(page *models.Page, char *models.Character) string {
	parts := make([]string, 0, len(page.Schema().Fields)+1)
	parts = append(parts, char.Name)
	for _, field := range page.Schema().Fields {
		parts = append(parts, char.AttributeOrDefault(field).String())
	}
	return strings.ToLower(strings.Join(parts, " "))
}
