// Package analyze turns user-described symptoms into an educational
// analysis: a potential condition, severity, natural remedies, and warning
// signs. Results are cached by the combined symptom text since upstream
// calls are billable and identical queries are common.
package analyze

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"

	"herbwise/internal/openai"
)

const chatModel = "gpt-4o-mini"

const systemPrompt = `You are a knowledgeable healthcare AI assistant specializing in natural remedies and wellness.
Analyze the user's symptoms and provide:
1. A potential condition name (be clear this is NOT a diagnosis)
2. A severity level: "low", "moderate", or "high"
3. A brief explanation of what might be causing these symptoms
4. 3 natural remedies with:
   - title
   - why it helps
   - how to use it
5. 3 warning signs that should prompt a doctor visit

Always emphasize this is educational information, not medical advice.

Respond in JSON format:
{
  "condition": "Potential condition name",
  "severity": "low|moderate|high",
  "explanation": "Brief explanation",
  "remedies": [
    {"title": "Remedy name", "why": "Why it helps", "how": "How to use"}
  ],
  "warningsSigns": ["Sign 1", "Sign 2", "Sign 3"],
  "disclaimer": "A brief reminder this is not medical advice"
}`

// Request is the POST /analyze-symptoms body. Free text and picked
// symptoms are combined; at least one must yield non-empty text.
type Request struct {
	Symptoms         string   `json:"symptoms"`
	SelectedSymptoms []string `json:"selectedSymptoms"`
}

// RemedySuggestion is one of the three suggested remedies.
type RemedySuggestion struct {
	Title string `json:"title"`
	Why   string `json:"why"`
	How   string `json:"how"`
}

// Analysis is the structured model output returned to the client.
type Analysis struct {
	Condition     string             `json:"condition"`
	Severity      string             `json:"severity"`
	Explanation   string             `json:"explanation"`
	Remedies      []RemedySuggestion `json:"remedies"`
	WarningsSigns []string           `json:"warningsSigns"`
	Disclaimer    string             `json:"disclaimer"`
}

// Chatter is the upstream JSON-mode chat call. *openai.Client satisfies it.
type Chatter interface {
	ChatJSON(ctx context.Context, model string, messages []openai.Message, maxTokens int, out any) error
}

// Service analyzes symptom descriptions with a bounded response cache.
type Service struct {
	ai    Chatter
	cache *lru.Cache[string, Analysis]
}

func NewService(ai Chatter, cacheSize int) (*Service, error) {
	if cacheSize <= 0 {
		cacheSize = 128
	}
	cache, err := lru.New[string, Analysis](cacheSize)
	if err != nil {
		return nil, fmt.Errorf("failed to create analysis cache: %w", err)
	}
	return &Service{ai: ai, cache: cache}, nil
}

// CombineSymptoms joins free text and selected symptoms into the single
// string sent to the model (and used as the cache key).
func CombineSymptoms(req Request) string {
	parts := make([]string, 0, len(req.SelectedSymptoms)+1)
	if strings.TrimSpace(req.Symptoms) != "" {
		parts = append(parts, strings.TrimSpace(req.Symptoms))
	}
	for _, s := range req.SelectedSymptoms {
		if strings.TrimSpace(s) != "" {
			parts = append(parts, strings.TrimSpace(s))
		}
	}
	return strings.Join(parts, ", ")
}

// Analyze runs one symptom analysis, serving repeats from cache.
func (s *Service) Analyze(ctx context.Context, req Request) (Analysis, error) {
	allSymptoms := CombineSymptoms(req)
	if allSymptoms == "" {
		return Analysis{}, fmt.Errorf("no symptoms provided")
	}

	if cached, ok := s.cache.Get(allSymptoms); ok {
		log.Info().Str("symptoms", allSymptoms).Msg("Serving symptom analysis from cache")
		return cached, nil
	}

	log.Info().Str("symptoms", allSymptoms).Msg("Analyzing symptoms")

	var analysis Analysis
	err := s.ai.ChatJSON(ctx, chatModel, []openai.Message{
		{Role: "system", Content: systemPrompt},
		{Role: "user", Content: fmt.Sprintf("My symptoms are: %s", allSymptoms)},
	}, 1000, &analysis)
	if err != nil {
		return Analysis{}, fmt.Errorf("symptom analysis failed: %w", err)
	}

	s.cache.Add(allSymptoms, analysis)
	return analysis, nil
}

/* =================================================================================
                                HTTP HANDLER
=================================================================================*/

var service *Service

func InitAnalyzePackage(svc *Service) {
	service = svc
	log.Info().Msg("Symptom analysis package initialized.")
}

// AnalyzeSymptomsHandler handles POST /analyze-symptoms.
func AnalyzeSymptomsHandler(c echo.Context) error {
	ctx := c.Request().Context()

	var req Request
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request"})
	}
	if CombineSymptoms(req) == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "No symptoms provided"})
	}

	analysis, err := service.Analyze(ctx, req)
	if err != nil {
		log.Error().Err(err).Msg("Error in analyze-symptoms")
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}

	return c.JSON(http.StatusOK, analysis)
}
