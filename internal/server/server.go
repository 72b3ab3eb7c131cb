/*
Package server implements the application's network transport layer.
It initializes the HTTP server, configures timeouts, and manages
core service dependencies like the database and router.
*/
package server

import (
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"herbwise/internal/config"
	"herbwise/internal/database"
)

// Server defines the configuration and dependencies for the HTTP service.
type Server struct {
	// cfg holds the loaded application configuration.
	cfg *config.Config

	// db provides access to the database service and connection pool.
	db database.Service

	// Echo is the underlying web framework instance.
	*echo.Echo
}

// NewServer initializes a new Server instance and returns a configured *http.Server.
// Handler packages must be initialized (Init*Package) before the returned
// server starts accepting requests.
func NewServer(cfg *config.Config, db database.Service) *http.Server {
	newApp := &Server{
		cfg: cfg,
		db:  db,
	}

	// Image generation can take tens of seconds per request, and the
	// catalog batch far longer, so the write timeout is generous.
	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      newApp.RegisterRoutes(), // Injected from routes.go
		IdleTimeout:  time.Minute,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Minute,
	}

	return server
}
