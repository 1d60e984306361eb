package service

import (
	"github.com/ekazakova/character-vault/internal/logger"
	"github.com/ekazakova/character-vault/internal/store"
)

type Services struct {
	PageService      PageService
	CharacterService CharacterService
	ImageService     ImageService
	SettingsService  SettingsService
}

func NewServices(storages *store.Storages, logger *logger.Logger) *Services {
	pages := NewPageService(storages.Pages, storages.IDs, logger)
	images := NewImageService(storages.Vault, storages.Settings, pages, storages.IDs, logger)

	return &Services{
		PageService:      pages,
		CharacterService: NewCharacterService(pages, images, storages.IDs, logger),
		ImageService:     images,
		SettingsService:  NewSettingsService(storages.Settings, logger),
	}
}
