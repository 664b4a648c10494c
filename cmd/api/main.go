package main

import (
	"context"

	"placemap-api/internal/config"
	"placemap-api/internal/handler"
	"placemap-api/internal/logging"
	"placemap-api/internal/registry"
	"placemap-api/internal/repository"
	"placemap-api/internal/service"

	"github.com/rs/zerolog/log"
)

//	@title			Placemap API
//	@version		1.0
//	@description	Points of interest grouped by category, with filtering, legend, popups and lightbox.
//	@BasePath		/

func main() {
	config, err := config.LoadConfig("./configs")
	if err != nil {
		log.Fatal().Err(err).Msg("cannot load config")
	}

	logger := logging.Setup(config.LogLevel, config.LogPretty)

	// Initialize layers
	repo := repository.NewDatasetRepository(config.DatasetSource, config.FetchTimeout)
	session := service.NewMapSession(repo, registry.NewSorter(config.CollationLocale), config.Map, logger)

	// Init logs its own failure. A failed load is final for this process:
	// the API stays up and answers 503.
	_, _ = session.Init(context.Background())

	r := handler.NewRouter(session, handler.RequestLogger(logger))

	if err := r.Run(config.ServerAddress); err != nil {
		logger.Fatal().Err(err).Msg("server stopped")
	}
}
