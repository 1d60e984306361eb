package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
)

type characterRequest struct {
	Name string `json:"name"`

	// Values carries raw form input keyed by template field name; the
	// core coerces each entry according to the field's type.
	Values map[string]string `json:"values"`
}

func characterID(r *http.Request) (int64, error) {
	return strconv.ParseInt(chi.URLParam(r, "characterID"), 10, 64)
}

func (h *Handler) listCharacters(w http.ResponseWriter, r *http.Request) {
	id, err := pageID(r)
	if err != nil {
		http.Error(w, "invalid page id", http.StatusBadRequest)
		return
	}

	characters, err := h.services.CharacterService.Search(id, r.URL.Query().Get("q"))
	if err != nil {
		respondError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, characters)
}

func (h *Handler) addCharacter(w http.ResponseWriter, r *http.Request) {
	id, err := pageID(r)
	if err != nil {
		http.Error(w, "invalid page id", http.StatusBadRequest)
		return
	}

	var req characterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid JSON was passed", http.StatusBadRequest)
		return
	}

	char, err := h.services.CharacterService.AddCharacter(r.Context(), id, req.Name, req.Values)
	if err != nil {
		respondError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, char)
}

func (h *Handler) updateCharacter(w http.ResponseWriter, r *http.Request) {
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

	var req characterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid JSON was passed", http.StatusBadRequest)
		return
	}

	char, err := h.services.CharacterService.UpdateCharacter(r.Context(), pid, cid, req.Name, req.Values)
	if err != nil {
		respondError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, char)
}

func (h *Handler) deleteCharacter(w http.ResponseWriter, r *http.Request) {
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

	if err := h.services.CharacterService.DeleteCharacter(r.Context(), pid, cid); err != nil {
		respondError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
