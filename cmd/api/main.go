package main

import (
	"os"

	"github.com/cy-rus404/sms-backend/internal/pkg/logger" // Still needed for initial error logging
	"github.com/cy-rus404/sms-backend/internal/server"
)

// @title School Management API
// @version 1.0
// @description API for managing school users, courses, enrollments, attendance and timetables
// @termsOfService http://swagger.io/terms/

// @contact.name API Support
// @contact.email support@sms.local

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /api/v1
// @schemes http https

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description JWT token for authorization

func main() {
	// NewServer orchestrates config loading, database setup, dependency
	// wiring and router construction
	srv, err := server.NewServer()
	if err != nil {
		logger.Error().Err(err).Msg("Failed to initialize server")
		os.Exit(1)
	}

	// Run the server (this blocks until shutdown signal)
	if err := srv.Run(); err != nil {
		logger.Error().Err(err).Msg("Server execution failed or shutdown encountered errors")
		os.Exit(1)
	}

	logger.Info().Msg("Application finished gracefully.")
	os.Exit(0)
}
