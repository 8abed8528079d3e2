package main

import (
	"os"

	"github.com/gmps/schooladmin/internal/pkg/logger"
	"github.com/gmps/schooladmin/internal/server"
)

// @title School Administration API
// @version 1.0
// @description REST backend for the school administration platform

// @host localhost:8080
// @BasePath /
// @schemes http

func main() {
	srv, err := server.NewServer()
	if err != nil {
		logger.Error().Err(err).Msg("Failed to initialize server")
		os.Exit(1)
	}

	if err := srv.Run(); err != nil {
		logger.Error().Err(err).Msg("Server execution failed or shutdown encountered errors")
		os.Exit(1)
	}

	logger.Info().Msg("Application finished gracefully.")
}
