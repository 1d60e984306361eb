package http

import (
	"encoding/json"
	"net/http"

	"github.com/ekazakova/character-vault/internal/logger"
	"github.com/ekazakova/character-vault/internal/service"
)

type Handler struct {
	services *service.Services

	// vaultRoot, when non-empty, is served under /files/ so the UI can
	// load resolved resource URLs.
	vaultRoot string

	logger *logger.Logger
}

func NewHandler(services *service.Services, vaultRoot string, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:  services,
		vaultRoot: vaultRoot,
		logger:    logger,
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
