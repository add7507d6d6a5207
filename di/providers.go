package di

import (
	"shoppinglist/config"
	"shoppinglist/infras/postgres"

	"github.com/rs/zerolog/log"
)

func provideConnection(cfg *config.Config) (*postgres.Connection, func(), error) {
	conn, err := postgres.New(cfg)
	if err != nil {
		return nil, nil, err //nolint:wrapcheck
	}

	cleanup := func() {
		if err := conn.Close(); err != nil {
			log.Error().Err(err).Msg("Failed to close database connections")
		}
	}

	return conn, cleanup, nil
}
