package imagegen

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"

	"herbwise/internal/imageprompt"
	"herbwise/internal/openai"
)

var service *Service

// InitImageGenPackage wires the generation service used by the HTTP
// handlers and by the admin batch.
func InitImageGenPackage(svc *Service) {
	service = svc
	log.Info().Msg("Image generation package initialized.")
}

// GenerationService exposes the wired service for the admin orchestrator.
func GenerationService() *Service {
	return service
}

// GenerateImageRequest is the POST /remedies/generate-image body.
type GenerateImageRequest struct {
	Remedy   imageprompt.Descriptor `json:"remedy"`
	RemedyID string                 `json:"remedyId"`
}

// GenerateImageHandler handles POST /remedies/generate-image. With a
// remedyId the image is persisted and its URL returned; without one the
// image comes back inline as a data URL.
func GenerateImageHandler(c echo.Context) error {
	ctx := c.Request().Context()

	var req GenerateImageRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request"})
	}

	if req.Remedy.Name == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Remedy data is required"})
	}

	result, err := service.Generate(ctx, req.Remedy, req.RemedyID)
	if err != nil {
		var apiErr *openai.APIError
		if errors.As(err, &apiErr) {
			log.Error().Int("status", apiErr.Status).Str("remedy", req.Remedy.Name).Msg("Upstream image API error")
			return c.JSON(http.StatusInternalServerError, map[string]interface{}{
				"error":   "Failed to generate image",
				"details": apiErr.Body,
			})
		}
		log.Error().Err(err).Str("remedy", req.Remedy.Name).Msg("Image generation failed")
		return c.JSON(http.StatusInternalServerError, map[string]interface{}{
			"error":   "Failed to generate image",
			"details": err.Error(),
		})
	}

	switch r := result.(type) {
	case PersistedImage:
		return c.JSON(http.StatusOK, map[string]interface{}{
			"success":  true,
			"imageUrl": r.URL,
			"message":  fmt.Sprintf("Image generated and uploaded for %s", req.Remedy.Name),
		})
	case InlineImage:
		return c.JSON(http.StatusOK, map[string]interface{}{
			"success": true,
			"image":   r.DataURL,
			"message": fmt.Sprintf("Image generated for %s", req.Remedy.Name),
		})
	default:
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Internal server error"})
	}
}
