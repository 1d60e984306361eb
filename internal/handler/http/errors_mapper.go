package http

import (
	"errors"
	"net/http"

	"github.com/ekazakova/character-vault/internal/logger"
	"github.com/ekazakova/character-vault/internal/service"
	"github.com/ekazakova/character-vault/internal/store"
)

// respondError maps a core error onto an HTTP status and a user-facing
// notice. Business-rule refusals come back as notices the UI shows
// verbatim; everything else degrades to an actionable retry message.
func respondError(w http.ResponseWriter, r *http.Request, err error) {
	log := logger.FromRequest(r)

	switch {
	case errors.Is(err, service.ErrPageNotFound),
		errors.Is(err, service.ErrCharacterNotFound):
		http.Error(w, err.Error(), http.StatusNotFound)
	case errors.Is(err, service.ErrLastPage):
		http.Error(w, "at least one page must remain", http.StatusConflict)
	case errors.Is(err, service.ErrEmptyName):
		http.Error(w, "name must not be empty", http.StatusBadRequest)
	case errors.Is(err, store.ErrCorruptData):
		log.Err(err).Msg("stored data is corrupt")
		http.Error(w, "stored data is corrupt; fix or remove the affected file and retry", http.StatusInternalServerError)
	default:
		log.Err(err).Msg("operation failed")
		http.Error(w, "operation failed, please retry", http.StatusInternalServerError)
	}
}
