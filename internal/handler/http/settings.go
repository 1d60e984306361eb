package http

import (
	"encoding/json"
	"net/http"

	"github.com/ekazakova/character-vault/models"
)

func (h *Handler) getSettings(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.services.SettingsService.Settings())
}

func (h *Handler) updateSettings(w http.ResponseWriter, r *http.Request) {
	var settings models.Settings
	if err := json.NewDecoder(r.Body).Decode(&settings); err != nil {
		http.Error(w, "invalid JSON was passed", http.StatusBadRequest)
		return
	}

	if err := h.services.SettingsService.Update(r.Context(), settings); err != nil {
		respondError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, settings)
}
