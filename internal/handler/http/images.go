package http

import (
	"encoding/json"
	"io"
	"net/http"
	"strconv"

	"github.com/ekazakova/character-vault/internal/logger"
	"github.com/ekazakova/character-vault/models"
	"github.com/go-chi/chi/v5"
)

// maxUploadMemory bounds the in-memory part of a multipart upload parse.
const maxUploadMemory = 32 << 20

type reorderRequest struct {
	From int `json:"from"`
	To   int `json:"to"`
}

func (h *Handler) uploadImages(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	pid, err := pageID(r)
	if err != nil {
		http.Error(w, "invalid page id", http.StatusBadRequest)
		return
	}
	cid, err := characterID(r)
	if err != nil {
		http.Error(w, "invalid character id", http.StatusBadRequest)
		return
	}

	if err := r.ParseMultipartForm(maxUploadMemory); err != nil {
		http.Error(w, "invalid multipart form", http.StatusBadRequest)
		return
	}

	uploads := make([]models.ImageUpload, 0)
	for _, header := range r.MultipartForm.File["images"] {
		file, err := header.Open()
		if err != nil {
			log.Err(err).Str("file", header.Filename).Msg("failed to open uploaded file")
			continue
		}
		data, err := io.ReadAll(file)
		_ = file.Close()
		if err != nil {
			log.Err(err).Str("file", header.Filename).Msg("failed to read uploaded file")
			continue
		}
		uploads = append(uploads, models.ImageUpload{FileName: header.Filename, Data: data})
	}

	report, err := h.services.ImageService.AddImages(r.Context(), pid, cid, uploads)
	if err != nil {
		respondError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, report)
}

func (h *Handler) removeImage(w http.ResponseWriter, r *http.Request) {
	pid, err := pageID(r)
	if err != nil {
		http.Error(w, "invalid page id", http.StatusBadRequest)
		return
	}
	cid, err := characterID(r)
	if err != nil {
		http.Error(w, "invalid character id", http.StatusBadRequest)
		return
	}
	index, err := strconv.Atoi(chi.URLParam(r, "index"))
	if err != nil {
		http.Error(w, "invalid image index", http.StatusBadRequest)
		return
	}

	if err := h.services.ImageService.RemoveImage(r.Context(), pid, cid, index); err != nil {
		respondError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) reorderImages(w http.ResponseWriter, r *http.Request) {
	pid, err := pageID(r)
	if err != nil {
		http.Error(w, "invalid page id", http.StatusBadRequest)
		return
	}
	cid, err := characterID(r)
	if err != nil {
		http.Error(w, "invalid character id", http.StatusBadRequest)
		return
	}

	var req reorderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid JSON was passed", http.StatusBadRequest)
		return
	}

	if err := h.services.ImageService.ReorderImages(r.Context(), pid, cid, req.From, req.To); err != nil {
		respondError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) imageGroups(w http.ResponseWriter, r *http.Request) {
	pid, err := pageID(r)
	if err != nil {
		http.Error(w, "invalid page id", http.StatusBadRequest)
		return
	}
	cid, err := characterID(r)
	if err != nil {
		http.Error(w, "invalid character id", http.StatusBadRequest)
		return
	}

	page, err := h.services.PageService.Page(pid)
	if err != nil {
		respondError(w, r, err)
		return
	}
	char := page.FindCharacter(cid)
	if char == nil {
		http.Error(w, "character was not found", http.StatusNotFound)
		return
	}

	writeJSON(w, http.StatusOK, h.services.ImageService.GroupImages(char.Images))
}
