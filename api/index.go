package handler

import (
	"net/http"
	"os"
	"shoppinglist/config"
	"shoppinglist/di"
	"shoppinglist/shared/logger"
	"shoppinglist/shared/timezone"
	"sync"

	"github.com/rs/zerolog/log"
)

var (
	once   sync.Once
	server http.Handler
	err    error
)

// Handler is the serverless entrypoint. The dependency graph is built on the first request
// and reused while the instance stays warm.
func Handler(w http.ResponseWriter, r *http.Request) {
	r.RequestURI = r.URL.String()

	once.Do(func() {
		cfg := config.Get()

		logger.InitLogger()
		logger.SetOutput(cfg, os.Stdout)
		logger.SetLogLevel(cfg)

		timezone.Init(cfg)

		server, _, err = di.InitializeService()
	})

	if err != nil {
		log.Error().Err(err).Msg("Failed to initialize service")
		http.Error(w, http.StatusText(http.StatusServiceUnavailable), http.StatusServiceUnavailable)

		return
	}

	server.ServeHTTP(w, r)
}
