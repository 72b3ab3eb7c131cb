package main

import (
	"context"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"

	"herbwise/internal/admin"
	"herbwise/internal/analyze"
	"herbwise/internal/config"
	"herbwise/internal/database"
	"herbwise/internal/imagegen"
	"herbwise/internal/medication"
	"herbwise/internal/openai"
	"herbwise/internal/prescription"
	"herbwise/internal/remedy"
	"herbwise/internal/server"
	"herbwise/internal/storage"
)

func gracefulShutdown(apiServer *http.Server, done chan bool) {
	// Create context that listens for the interrupt signal from the OS.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Listen for the interrupt signal.
	<-ctx.Done()

	log.Info().Msg("shutting down gracefully, press Ctrl+C again to force")
	stop() // Allow Ctrl+C to force shutdown

	// The context is used to inform the server it has 5 seconds to finish
	// the request it is currently handling
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := apiServer.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Server exiting")

	// Notify the main goroutine that the shutdown is complete
	done <- true
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("Invalid configuration")
	}

	ctx := context.Background()

	dbService, err := database.NewService(ctx, cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("Could not connect to database")
	}
	defer dbService.Close()

	objectStore, err := storage.New(ctx, &cfg.S3)
	if err != nil {
		log.Fatal().Err(err).Msg("Could not initialize object storage")
	}

	aiClient, err := openai.New(cfg.OpenAI)
	if err != nil {
		log.Fatal().Err(err).Msg("Could not initialize OpenAI client")
	}

	pool := dbService.Pool()

	remedy.InitRemedyPackage(pool)
	medication.InitMedicationPackage(pool)

	analysisService, err := analyze.NewService(aiClient, cfg.AnalysisCacheSize)
	if err != nil {
		log.Fatal().Err(err).Msg("Could not initialize symptom analysis")
	}
	analyze.InitAnalyzePackage(analysisService)
	prescription.InitPrescriptionPackage(prescription.NewService(aiClient))

	genService := imagegen.NewService(aiClient, objectStore, remedy.CatalogStore())
	imagegen.InitImageGenPackage(genService)

	orchestrator := imagegen.NewOrchestrator(genService, cfg.BatchDelay)
	admin.InitAdminPackage(dbService, remedy.CatalogStore(), orchestrator)

	apiServer := server.NewServer(cfg, dbService)

	// Create a done channel to signal when the shutdown is complete
	done := make(chan bool, 1)

	// Run graceful shutdown in a separate goroutine
	go gracefulShutdown(apiServer, done)

	log.Info().Int("port", cfg.Port).Msg("Starting API server")
	err = apiServer.ListenAndServe()
	if err != nil && err != http.ErrServerClosed {
		panic(fmt.Sprintf("http server error: %s", err))
	}

	// Wait for the graceful shutdown to complete
	<-done
	log.Info().Msg("Graceful shutdown complete.")
}
