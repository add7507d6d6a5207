package main

import (
	"os"
	"shoppinglist/config"
	"shoppinglist/di"
	"shoppinglist/helper"
	"shoppinglist/shared/logger"
	"shoppinglist/shared/timezone"

	"github.com/rs/zerolog/log"
)

// @title Shopping List API
// @version 1.0
// @description CRUD over the shopping_list table.
// @BasePath /
func main() {
	cfg := config.Get()

	logger.InitLogger()
	logger.SetOutput(cfg, os.Stdout)
	logger.SetLogLevel(cfg)

	timezone.Init(cfg)

	if cfg.DB.Postgres.AutoMigrate {
		if err := helper.Up(cfg); err != nil {
			log.Fatal().Err(err).Msg("Failed to run database migrations")
		}
	}

	http, cleanup, err := di.InitializeService()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize service")
	}
	defer cleanup()

	http.Serve()
}
