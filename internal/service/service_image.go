package service

import (
	"context"
	"fmt"
	"path"
	"strings"
	"sync"
	"time"

	"github.com/ekazakova/character-vault/internal/logger"
	"github.com/ekazakova/character-vault/internal/store"
	"github.com/ekazakova/character-vault/models"
)

// imageIndexFile is the shared markdown log of every upload, kept under the
// image root. New entries are inserted directly below imageIndexMarker; the
// header is written once when the file is first created.
const (
	imageIndexFile   = "image-index.md"
	imageIndexMarker = "## 图片列表"
)

const imageIndexHeader = `# 角色图片索引

此文件用于记录角色设定器中使用的所有图片文件。

## 图片列表

`

type imageService struct {
	vault    store.VaultAdapter
	settings store.SettingsProvider
	pages    PageService
	ids      *store.IDGenerator

	// serializes uploads so the shared markdown index is never rewritten
	// concurrently
	mu sync.Mutex

	logger *logger.Logger
}

func NewImageService(vault store.VaultAdapter, settings store.SettingsProvider, pages PageService, ids *store.IDGenerator, logger *logger.Logger) ImageService {
	return &imageService{
		vault:    vault,
		settings: settings,
		pages:    pages,
		ids:      ids,
		logger:   logger,
	}
}

func (s *imageService) AddImages(ctx context.Context, pageID, charID int64, uploads []models.ImageUpload) (models.UploadReport, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	page, err := s.pages.Page(pageID)
	if err != nil {
		return models.UploadReport{}, err
	}
	char := page.FindCharacter(charID)
	if char == nil {
		return models.UploadReport{}, ErrCharacterNotFound
	}

	// files are attempted independently and strictly one at a time;
	// successes stay even when later files fail
	report := models.UploadReport{Paths: []string{}}
	for _, upload := range uploads {
		stored, err := s.saveImage(ctx, charID, upload)
		if err != nil {
			s.logger.Error().Err(err).Str("file", upload.FileName).Msg("failed to save image")
			report.Failed++
			continue
		}
		char.Images = append(char.Images, stored)
		report.Succeeded++
		report.Paths = append(report.Paths, stored)
	}

	// one page write for the whole batch, regardless of partial failure
	if err := s.pages.Save(ctx, page); err != nil {
		return report, err
	}

	s.logger.Info().Int64("character_id", charID).Str("result", report.String()).Msg("image batch finished")
	return report, nil
}

func (s *imageService) RemoveImage(ctx context.Context, pageID, charID int64, index int) error {
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

	if index < 0 || index >= len(char.Images) {
		return nil
	}

	removed := char.Images[index]
	char.Images = append(char.Images[:index], char.Images[index+1:]...)

	// the record update must go through even when the file is stuck
	if err := s.vault.Remove(ctx, removed); err != nil {
		s.logger.Warn().Err(err).Str("path", removed).Msg("failed to remove image file")
	}

	return s.pages.Save(ctx, page)
}

func (s *imageService) ReorderImages(ctx context.Context, pageID, charID int64, from, to int) error {
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

	if from == to || from < 0 || to < 0 || from >= len(char.Images) || to >= len(char.Images) {
		return nil
	}

	moved := char.Images[from]
	char.Images = append(char.Images[:from], char.Images[from+1:]...)
	char.Images = append(char.Images[:to], append([]string{moved}, char.Images[to:]...)...)

	return s.pages.Save(ctx, page)
}

// GroupImages partitions paths by folder convention: a parent folder named
// by a character id marks an image package; everything else lands in one
// loose group. Membership is re-derived from the paths on every call.
func (s *imageService) GroupImages(paths []string) []models.ImageGroup {
	groups := make([]models.ImageGroup, 0)
	byName := make(map[string]int)

	for _, p := range paths {
		name := ""
		parent := path.Base(path.Dir(p))
		if isCharacterFolder(parent) {
			name = parent
		}

		idx, ok := byName[name]
		if !ok {
			idx = len(groups)
			byName[name] = idx
			groups = append(groups, models.ImageGroup{Name: name, Package: name != "", Paths: []string{}})
		}
		groups[idx].Paths = append(groups[idx].Paths, p)
	}

	return groups
}

func (s *imageService) ReleaseImages(ctx context.Context, char *models.Character) {
	for _, p := range char.Images {
		if err := s.vault.Remove(ctx, p); err != nil {
			s.logger.Warn().Err(err).Str("path", p).Msg("failed to remove image file")
		}
	}

	folder := fmt.Sprintf("%s/%d", s.settings.Settings().ImageFolder, char.ID)
	if err := s.vault.Remove(ctx, folder); err != nil {
		s.logger.Warn().Err(err).Str("path", folder).Msg("failed to remove image folder")
	}
}

func (s *imageService) saveImage(ctx context.Context, charID int64, upload models.ImageUpload) (string, error) {
	folder := fmt.Sprintf("%s/%d", s.settings.Settings().ImageFolder, charID)
	if err := s.vault.CreateFolder(ctx, folder); err != nil {
		return "", err
	}

	stored := fmt.Sprintf("%s/character-image-%d.%s", folder, s.ids.Next(), fileExtension(upload.FileName))
	if err := s.vault.WriteBinary(ctx, stored, upload.Data); err != nil {
		return "", err
	}

	s.updateImageIndex(ctx, stored, upload.FileName)
	return stored, nil
}

// updateImageIndex appends an entry to the shared markdown log. The index is
// informational; a failure here never fails the upload.
func (s *imageService) updateImageIndex(ctx context.Context, storedPath, originalName string) {
	root := s.settings.Settings().ImageFolder
	indexPath := root + "/" + imageIndexFile

	content, err := s.vault.Read(ctx, indexPath)
	if err != nil {
		// missing or unreadable, start over with the fixed header
		content = imageIndexHeader
	}

	entry := fmt.Sprintf("- **%s** → [[%s]] (添加时间: %s)", originalName, storedPath, time.Now().Format(time.RFC3339))

	lines := strings.Split(content, "\n")
	inserted := false
	for i, line := range lines {
		if strings.Contains(line, imageIndexMarker) {
			at := min(i+2, len(lines))
			lines = append(lines[:at], append([]string{entry}, lines[at:]...)...)
			inserted = true
			break
		}
	}
	if !inserted {
		lines = append(lines, entry)
	}

	if err := s.vault.Write(ctx, indexPath, strings.Join(lines, "\n")); err != nil {
		s.logger.Warn().Err(err).Msg("failed to update image index")
	}
}

// fileExtension lowercases everything after the final dot; a name without a
// dot degrades to the whole lowercased name, matching the legacy renaming.
func fileExtension(name string) string {
	ext := strings.TrimPrefix(path.Ext(name), ".")
	if ext == "" {
		ext = name
	}
	ext = strings.ToLower(ext)
	if ext == "" {
		ext = "bin"
	}
	return ext
}

// isCharacterFolder reports whether a folder name is a bare character id.
func isCharacterFolder(name string) bool {
	if name == "" {
		return false
	}
	for _, r := range name {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
