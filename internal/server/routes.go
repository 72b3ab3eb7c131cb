package server

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog/log"

	"herbwise/internal/admin"
	"herbwise/internal/analyze"
	"herbwise/internal/imagegen"
	"herbwise/internal/medication"
	"herbwise/internal/prescription"
	"herbwise/internal/remedy"
	"herbwise/internal/utility"
)

func (s *Server) RegisterRoutes() http.Handler {
	e := echo.New()
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())

	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     []string{"https://*", "http://*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS", "PATCH"},
		AllowHeaders:     []string{"Accept", "Authorization", "Content-Type", "X-User-ID"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	e.Use(LoggerMiddleware)

	e.GET("/health", s.healthHandler)

	// Remedy catalog routes
	e.GET("/remedies", remedy.ListRemediesHandler)
	e.GET("/remedies/:remedy_id", remedy.GetRemedyHandler)
	e.POST("/remedies/seed", remedy.SeedRemediesHandler)

	// AI-backed routes, rate limited per IP
	ai := e.Group("")
	ai.Use(aiRateLimitMiddleware)
	ai.POST("/remedies/generate-image", imagegen.GenerateImageHandler)
	ai.POST("/analyze-symptoms", analyze.AnalyzeSymptomsHandler)
	ai.POST("/scan-prescription", prescription.ScanPrescriptionHandler)

	// Medication tracking routes
	e.POST("/medications", medication.CreateMedicationHandler)
	e.GET("/medications", medication.ListMedicationsHandler)
	e.PUT("/medications/:id", medication.UpdateMedicationHandler)
	e.DELETE("/medications/:id", medication.DeleteMedicationHandler)
	e.POST("/medications/:id/log", medication.LogIntakeHandler)
	e.GET("/medications/log", medication.ListIntakeLogsHandler)

	// Admin routes
	e.POST("/admin/remedies/generate-images", admin.GenerateCatalogImagesHandler)
	e.GET("/admin/ws", admin.AdminWebSocketHandler)
	e.GET("/admin/status", admin.GetServerStatusHandler)

	return e
}

func (s *Server) healthHandler(c echo.Context) error {
	return c.JSON(http.StatusOK, s.db.Health())
}

func LoggerMiddleware(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		requestID := c.Request().Header.Get("X-Request-ID")
		if requestID == "" {
			requestID = uuid.New().String()
		}
		c.Set("request_id", requestID)
		c.Response().Header().Set("X-Request-ID", requestID)

		logger := log.With().Str("request_id", requestID).Logger()

		c.Set("logger", &logger)

		return next(c)
	}
}

func aiRateLimitMiddleware(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		ip := utility.GetRealIP(c)
		if err := utility.CheckIPRateLimit(ip); err != nil {
			log.Info().Str("ip", ip).Msg("AI endpoint rate limit hit")
			return c.JSON(http.StatusTooManyRequests, map[string]string{"error": "Too many requests, please try again later"})
		}
		return next(c)
	}
}
