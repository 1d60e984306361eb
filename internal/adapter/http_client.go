package adapter

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/ekazakova/character-vault/models"
	"github.com/go-resty/resty/v2"
)

type HTTPClientConfig struct {
	BaseURL string
	Timeout time.Duration
}

type httpServerAdapter struct {
	client *resty.Client
}

// NewHTTPServerAdapter constructs an HTTP/REST implementation of
// [ServerAdapter]. An empty base URL falls back to the default local server
// address.
func NewHTTPServerAdapter(cfg HTTPClientConfig) ServerAdapter {
	if cfg.BaseURL == "" {
		cfg.BaseURL = "http://localhost:8080"
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 15 * time.Second
	}

	cli := resty.New().
		SetBaseURL(strings.TrimRight(cfg.BaseURL, "/")).
		SetTimeout(cfg.Timeout)

	return &httpServerAdapter{client: cli}
}

type characterPayload struct {
	Name   string            `json:"name"`
	Values map[string]string `json:"values"`
}

func (h *httpServerAdapter) Pages(ctx context.Context) ([]models.PageSummary, error) {
	resp, err := h.client.R().SetContext(ctx).Get("/api/pages")
	if err != nil {
		return nil, fmt.Errorf("list pages request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var summaries []models.PageSummary
	if err = json.Unmarshal(resp.Body(), &summaries); err != nil {
		return nil, fmt.Errorf("decode pages response: %w", err)
	}
	return summaries, nil
}

func (h *httpServerAdapter) Page(ctx context.Context, pageID int64) (*models.Page, error) {
	resp, err := h.client.R().SetContext(ctx).Get(h.pagePath(pageID))
	if err != nil {
		return nil, fmt.Errorf("get page request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var page models.Page
	if err = json.Unmarshal(resp.Body(), &page); err != nil {
		return nil, fmt.Errorf("decode page response: %w", err)
	}
	return &page, nil
}

func (h *httpServerAdapter) CreatePage(ctx context.Context, name string) (*models.Page, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(map[string]string{"name": name}).
		Post("/api/pages")
	if err != nil {
		return nil, fmt.Errorf("create page request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var page models.Page
	if err = json.Unmarshal(resp.Body(), &page); err != nil {
		return nil, fmt.Errorf("decode created page: %w", err)
	}
	return &page, nil
}

func (h *httpServerAdapter) DeletePage(ctx context.Context, pageID int64) error {
	resp, err := h.client.R().SetContext(ctx).Delete(h.pagePath(pageID))
	if err != nil {
		return fmt.Errorf("delete page request: %w", err)
	}
	return mapHTTPError(resp)
}

func (h *httpServerAdapter) RenamePage(ctx context.Context, pageID int64, name string) error {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(map[string]string{"name": name}).
		Put(h.pagePath(pageID) + "/name")
	if err != nil {
		return fmt.Errorf("rename page request: %w", err)
	}
	return mapHTTPError(resp)
}

func (h *httpServerAdapter) UpdateTemplate(ctx context.Context, pageID int64, fields []models.Field) error {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(map[string]any{"fields": fields}).
		Put(h.pagePath(pageID) + "/template")
	if err != nil {
		return fmt.Errorf("update template request: %w", err)
	}
	return mapHTTPError(resp)
}

func (h *httpServerAdapter) ActivatePage(ctx context.Context, pageID int64) error {
	resp, err := h.client.R().SetContext(ctx).Post(h.pagePath(pageID) + "/activate")
	if err != nil {
		return fmt.Errorf("activate page request: %w", err)
	}
	return mapHTTPError(resp)
}

func (h *httpServerAdapter) Characters(ctx context.Context, pageID int64, query string) ([]*models.Character, error) {
	req := h.client.R().SetContext(ctx)
	if query != "" {
		req.SetQueryParam("q", query)
	}

	resp, err := req.Get(h.pagePath(pageID) + "/characters")
	if err != nil {
		return nil, fmt.Errorf("list characters request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var characters []*models.Character
	if err = json.Unmarshal(resp.Body(), &characters); err != nil {
		return nil, fmt.Errorf("decode characters response: %w", err)
	}
	return characters, nil
}

func (h *httpServerAdapter) AddCharacter(ctx context.Context, pageID int64, name string, values map[string]string) (*models.Character, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(characterPayload{Name: name, Values: values}).
		Post(h.pagePath(pageID) + "/characters")
	if err != nil {
		return nil, fmt.Errorf("add character request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var char models.Character
	if err = json.Unmarshal(resp.Body(), &char); err != nil {
		return nil, fmt.Errorf("decode created character: %w", err)
	}
	return &char, nil
}

func (h *httpServerAdapter) UpdateCharacter(ctx context.Context, pageID, charID int64, name string, values map[string]string) (*models.Character, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(characterPayload{Name: name, Values: values}).
		Put(h.characterPath(pageID, charID))
	if err != nil {
		return nil, fmt.Errorf("update character request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var char models.Character
	if err = json.Unmarshal(resp.Body(), &char); err != nil {
		return nil, fmt.Errorf("decode updated character: %w", err)
	}
	return &char, nil
}

func (h *httpServerAdapter) DeleteCharacter(ctx context.Context, pageID, charID int64) error {
	resp, err := h.client.R().SetContext(ctx).Delete(h.characterPath(pageID, charID))
	if err != nil {
		return fmt.Errorf("delete character request: %w", err)
	}
	return mapHTTPError(resp)
}

func (h *httpServerAdapter) UploadImages(ctx context.Context, pageID, charID int64, uploads []models.ImageUpload) (models.UploadReport, error) {
	req := h.client.R().SetContext(ctx)
	for _, upload := range uploads {
		req.SetFileReader("images", upload.FileName, bytes.NewReader(upload.Data))
	}

	resp, err := req.Post(h.characterPath(pageID, charID) + "/images")
	if err != nil {
		return models.UploadReport{}, fmt.Errorf("upload images request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.UploadReport{}, err
	}

	var report models.UploadReport
	if err = json.Unmarshal(resp.Body(), &report); err != nil {
		return models.UploadReport{}, fmt.Errorf("decode upload report: %w", err)
	}
	return report, nil
}

func (h *httpServerAdapter) RemoveImage(ctx context.Context, pageID, charID int64, index int) error {
	resp, err := h.client.R().
		SetContext(ctx).
		Delete(h.characterPath(pageID, charID) + "/images/" + strconv.Itoa(index))
	if err != nil {
		return fmt.Errorf("remove image request: %w", err)
	}
	return mapHTTPError(resp)
}

func (h *httpServerAdapter) ReorderImages(ctx context.Context, pageID, charID int64, from, to int) error {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(map[string]int{"from": from, "to": to}).
		Post(h.characterPath(pageID, charID) + "/images/reorder")
	if err != nil {
		return fmt.Errorf("reorder images request: %w", err)
	}
	return mapHTTPError(resp)
}

func (h *httpServerAdapter) ImageGroups(ctx context.Context, pageID, charID int64) ([]models.ImageGroup, error) {
	resp, err := h.client.R().SetContext(ctx).Get(h.characterPath(pageID, charID) + "/images/groups")
	if err != nil {
		return nil, fmt.Errorf("image groups request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var groups []models.ImageGroup
	if err = json.Unmarshal(resp.Body(), &groups); err != nil {
		return nil, fmt.Errorf("decode image groups: %w", err)
	}
	return groups, nil
}

func (h *httpServerAdapter) Settings(ctx context.Context) (models.Settings, error) {
	resp, err := h.client.R().SetContext(ctx).Get("/api/settings")
	if err != nil {
		return models.Settings{}, fmt.Errorf("get settings request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Settings{}, err
	}

	var settings models.Settings
	if err = json.Unmarshal(resp.Body(), &settings); err != nil {
		return models.Settings{}, fmt.Errorf("decode settings: %w", err)
	}
	return settings, nil
}

func (h *httpServerAdapter) UpdateSettings(ctx context.Context, settings models.Settings) error {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(settings).
		Put("/api/settings")
	if err != nil {
		return fmt.Errorf("update settings request: %w", err)
	}
	return mapHTTPError(resp)
}

func (h *httpServerAdapter) pagePath(pageID int64) string {
	return "/api/pages/" + strconv.FormatInt(pageID, 10)
}

func (h *httpServerAdapter) characterPath(pageID, charID int64) string {
	return h.pagePath(pageID) + "/characters/" + strconv.FormatInt(charID, 10)
}
