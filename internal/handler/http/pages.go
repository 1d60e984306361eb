package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/ekazakova/character-vault/internal/logger"
	"github.com/ekazakova/character-vault/models"
	"github.com/go-chi/chi/v5"
)

type pageRequest struct {
	Name string `json:"name"`
}

type templateRequest struct {
	Fields []models.Field `json:"fields"`
}

func pageID(r *http.Request) (int64, error) {
	return strconv.ParseInt(chi.URLParam(r, "pageID"), 10, 64)
}

func (h *Handler) listPages(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.services.PageService.Pages())
}

func (h *Handler) createPage(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var req pageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		http.Error(w, "invalid JSON was passed", http.StatusBadRequest)
		return
	}

	page, err := h.services.PageService.CreatePage(r.Context(), req.Name)
	if err != nil {
		respondError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, page)
}

func (h *Handler) getPage(w http.ResponseWriter, r *http.Request) {
	id, err := pageID(r)
	if err != nil {
		http.Error(w, "invalid page id", http.StatusBadRequest)
		return
	}

	page, err := h.services.PageService.Page(id)
	if err != nil {
		respondError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, page)
}

func (h *Handler) deletePage(w http.ResponseWriter, r *http.Request) {
	id, err := pageID(r)
	if err != nil {
		http.Error(w, "invalid page id", http.StatusBadRequest)
		return
	}

	if err := h.services.PageService.DeletePage(r.Context(), id); err != nil {
		respondError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) renamePage(w http.ResponseWriter, r *http.Request) {
	id, err := pageID(r)
	if err != nil {
		http.Error(w, "invalid page id", http.StatusBadRequest)
		return
	}

	var req pageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid JSON was passed", http.StatusBadRequest)
		return
	}

	if err := h.services.PageService.RenamePage(r.Context(), id, req.Name); err != nil {
		respondError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) updateTemplate(w http.ResponseWriter, r *http.Request) {
	id, err := pageID(r)
	if err != nil {
		http.Error(w, "invalid page id", http.StatusBadRequest)
		return
	}

	var req templateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid JSON was passed", http.StatusBadRequest)
		return
	}

	if err := h.services.PageService.UpdateTemplate(r.Context(), id, req.Fields); err != nil {
		respondError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) activatePage(w http.ResponseWriter, r *http.Request) {
	id, err := pageID(r)
	if err != nil {
		http.Error(w, "invalid page id", http.StatusBadRequest)
		return
	}

	if err := h.services.PageService.Switch(id); err != nil {
		respondError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
