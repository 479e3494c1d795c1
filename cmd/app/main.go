package main

import (
	"timevault/config"
	"timevault/di"
	"timevault/shared/logger"

	"github.com/rs/zerolog/log"
)

// @title TimeVault API
// @version 1.0
// @description Converts times between IANA, Windows and Rails time zones and between locations.
// @BasePath /
func main() {
	cfg := config.Get()

	logger.InitLogger()

	logger.SetLogLevel(cfg)

	http, err := di.InitializeService()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize service")
	}

	http.Serve()
}
