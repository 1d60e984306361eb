package service

import (
	"context"

	"github.com/ekazakova/character-vault/internal/logger"
	"github.com/ekazakova/character-vault/internal/store"
	"github.com/ekazakova/character-vault/models"
)

type settingsService struct {
	repo store.SettingsRepository

	logger *logger.Logger
}

func NewSettingsService(repo store.SettingsRepository, logger *logger.Logger) SettingsService {
	return &settingsService{
		repo:   repo,
		logger: logger,
	}
}

func (s *settingsService) Settings() models.Settings {
	return s.repo.Settings()
}

func (s *settingsService) Load(ctx context.Context) (models.Settings, error) {
	return s.repo.Load(ctx)
}

func (s *settingsService) Update(ctx context.Context, settings models.Settings) error {
	if err := s.repo.Save(ctx, settings); err != nil {
		return err
	}
	s.logger.Info().Str("data_folder", settings.DataFolder).Str("image_folder", settings.ImageFolder).Msg("settings updated")
	return nil
}
