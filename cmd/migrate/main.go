package main

import (
	"os"
	"shoppinglist/config"
	"shoppinglist/helper"
	"shoppinglist/shared/logger"

	"github.com/rs/zerolog/log"
)

const (
	argLength = 2
)

func main() {
	logger.InitLogger()

	if len(os.Args) < argLength {
		log.Fatal().Msg("Migration direction (up/down) is required")
	}

	cfg := config.Get()

	switch os.Args[1] {
	case helper.ActionUp:
		if err := helper.Up(cfg); err != nil {
			log.Fatal().Err(err).Msg("Failed to migrate up")
		}
	case helper.ActionDown:
		if err := helper.Down(cfg); err != nil {
			log.Fatal().Err(err).Msg("Failed to migrate down")
		}
	case helper.ActionDrop:
		if err := helper.Drop(cfg); err != nil {
			log.Fatal().Err(err).Msg("Failed to drop migrations")
		}
	case helper.ActionStepUp:
		if err := helper.StepUp(cfg); err != nil {
			log.Fatal().Err(err).Msg("Failed to migrate one step up")
		}
	default:
		log.Fatal().Msg("Invalid direction. Use 'up', 'down', 'drop' or 'step-up'")
	}
}
