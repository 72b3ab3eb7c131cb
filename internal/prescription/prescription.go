// Package prescription extracts medication details from uploaded
// prescription or medicine-strip photos via the upstream vision model.
package prescription

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"

	"herbwise/internal/openai"
)

const visionModel = "gpt-4o"

const systemPrompt = `You are a pharmaceutical AI assistant that analyzes prescription images and medicine strips.
Extract and analyze the medication information from the image.

For each medication found, provide:
1. Medicine name
2. Dosage
3. Frequency (how often to take)
4. Purpose/what it treats
5. Common side effects (2-3 main ones)
6. Important warnings or interactions
7. Natural alternatives or complementary remedies (if applicable)

Respond in JSON format:
{
  "medications": [
    {
      "name": "Medicine name",
      "dosage": "Dosage amount",
      "frequency": "How often to take",
      "purpose": "What it treats",
      "sideEffects": ["Side effect 1", "Side effect 2"],
      "warnings": "Important warnings",
      "naturalAlternatives": ["Alternative 1", "Alternative 2"]
    }
  ],
  "generalAdvice": "General advice about the prescription",
  "disclaimer": "Reminder this is informational only"
}

If you cannot read the prescription clearly, indicate what parts are unclear.
Always emphasize this is educational information and to follow doctor's instructions.`

// Request is the POST /scan-prescription body. ImageBase64 may be raw
// base64 or a full data URL; both are accepted.
type Request struct {
	ImageBase64 string `json:"imageBase64"`
}

// Medication is one extracted medication entry.
type Medication struct {
	Name                string   `json:"name"`
	Dosage              string   `json:"dosage"`
	Frequency           string   `json:"frequency"`
	Purpose             string   `json:"purpose"`
	SideEffects         []string `json:"sideEffects"`
	Warnings            string   `json:"warnings"`
	NaturalAlternatives []string `json:"naturalAlternatives"`
}

// ScanResult is the structured response for a scanned prescription.
type ScanResult struct {
	Medications   []Medication `json:"medications"`
	GeneralAdvice string       `json:"generalAdvice"`
	Disclaimer    string       `json:"disclaimer"`
}

// Chatter is the upstream JSON-mode chat call. *openai.Client satisfies it.
type Chatter interface {
	ChatJSON(ctx context.Context, model string, messages []openai.Message, maxTokens int, out any) error
}

type Service struct {
	ai Chatter
}

func NewService(ai Chatter) *Service {
	return &Service{ai: ai}
}

// NormalizeImageDataURL accepts raw base64 or a data URL and returns a
// data URL suitable for the vision API.
func NormalizeImageDataURL(imageBase64 string) string {
	if strings.HasPrefix(imageBase64, "data:") {
		return imageBase64
	}
	return "data:image/jpeg;base64," + imageBase64
}

// Scan analyzes one prescription image.
func (s *Service) Scan(ctx context.Context, req Request) (ScanResult, error) {
	if req.ImageBase64 == "" {
		return ScanResult{}, fmt.Errorf("no image provided")
	}

	log.Info().Msg("Scanning prescription image...")

	var result ScanResult
	err := s.ai.ChatJSON(ctx, visionModel, []openai.Message{
		{Role: "system", Content: systemPrompt},
		{Role: "user", Content: []openai.ContentPart{
			{Type: "text", Text: "Please analyze this prescription or medicine image and provide detailed information about the medications."},
			{Type: "image_url", ImageURL: &openai.ImageURL{URL: NormalizeImageDataURL(req.ImageBase64)}},
		}},
	}, 2000, &result)
	if err != nil {
		return ScanResult{}, fmt.Errorf("prescription scan failed: %w", err)
	}

	return result, nil
}

/* =================================================================================
                                HTTP HANDLER
=================================================================================*/

var service *Service

func InitPrescriptionPackage(svc *Service) {
	service = svc
	log.Info().Msg("Prescription scan package initialized.")
}

// ScanPrescriptionHandler handles POST /scan-prescription.
func ScanPrescriptionHandler(c echo.Context) error {
	ctx := c.Request().Context()

	var req Request
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request"})
	}
	if req.ImageBase64 == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "No image provided"})
	}

	result, err := service.Scan(ctx, req)
	if err != nil {
		log.Error().Err(err).Msg("Error in scan-prescription")
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}

	return c.JSON(http.StatusOK, result)
}
