package main

import (
	"context"
	"fmt"

	"github.com/ekazakova/character-vault/internal/config"
	handlerhttp "github.com/ekazakova/character-vault/internal/handler/http"
	"github.com/ekazakova/character-vault/internal/logger"
	"github.com/ekazakova/character-vault/internal/server"
	"github.com/ekazakova/character-vault/internal/service"
	"github.com/ekazakova/character-vault/internal/store"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("character-vault-server")
	cfg, err := config.GetConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().Any("config", cfg).Msg("received configs")

	vault, err := store.NewFSVault(cfg.Vault.Dir)
	if err != nil {
		log.Fatal().Err(err).Msg("error opening vault directory")
	}

	storages := store.NewStorages(vault, cfg.Vault.SettingsPath, log)
	services := service.NewServices(storages, log)

	ctx := context.Background()

	// settings come first: page and image paths are derived from them
	if _, err := services.SettingsService.Load(ctx); err != nil {
		log.Fatal().Err(err).Msg("error loading settings")
	}
	if err := services.PageService.Load(ctx); err != nil {
		log.Fatal().Err(err).Msg("error loading pages")
	}

	vaultRoot, _ := store.Root(vault)
	handlers := handlerhttp.NewHandler(services, vaultRoot, log)

	srv, err := server.NewServer(handlers.Init(), cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}

	if buildDate == "" {
		buildDate = "N/A"
	}

	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
