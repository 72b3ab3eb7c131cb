/*
Package openai is a thin REST client for the OpenAI chat-completions and
image-generations endpoints. It only covers what the application needs:
JSON-mode chat (text and vision) and single-image generation.
*/
package openai

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/rs/zerolog/log"

	"herbwise/internal/config"
)

const (
	defaultBaseURL = "https://api.openai.com/v1"

	imageModel   = "gpt-image-1"
	imageSize    = "1024x1024"
	imageQuality = "medium"
)

// ErrMissingAPIKey signals a fatal configuration problem, distinct from a
// runtime upstream failure. It is surfaced at construction, never per call.
var ErrMissingAPIKey = fmt.Errorf("OpenAI API key is not configured")

// APIError is a non-success response from the upstream API, carrying the
// upstream status and body so callers can report details.
type APIError struct {
	Status int
	Body   string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("OpenAI API returned status %d: %s", e.Status, e.Body)
}

// Client issues requests against the OpenAI REST API.
type Client struct {
	apiKey  string
	baseURL string
	http    *http.Client
}

// New builds a client from the application config. A missing key is
// rejected here so misconfiguration is caught at startup.
func New(cfg config.OpenAIConfig) (*Client, error) {
	if cfg.APIKey == "" {
		return nil, ErrMissingAPIKey
	}
	timeout := cfg.RequestTimeout
	if timeout == 0 {
		timeout = 120 * time.Second
	}
	return &Client{
		apiKey:  cfg.APIKey,
		baseURL: defaultBaseURL,
		http:    &http.Client{Timeout: timeout},
	}, nil
}

// NewWithBaseURL points the client at an alternative endpoint. Used by tests.
func NewWithBaseURL(cfg config.OpenAIConfig, baseURL string) (*Client, error) {
	c, err := New(cfg)
	if err != nil {
		return nil, err
	}
	c.baseURL = baseURL
	return c, nil
}

/* =================================================================================
                                CHAT COMPLETIONS
=================================================================================*/

// Message is one chat turn. Content is either a plain string or a slice of
// ContentPart for vision requests.
type Message struct {
	Role    string `json:"role"`
	Content any    `json:"content"`
}

// ContentPart is one element of a multimodal user message.
type ContentPart struct {
	Type     string    `json:"type"`
	Text     string    `json:"text,omitempty"`
	ImageURL *ImageURL `json:"image_url,omitempty"`
}

type ImageURL struct {
	URL string `json:"url"`
}

type chatRequest struct {
	Model          string          `json:"model"`
	Messages       []Message       `json:"messages"`
	ResponseFormat *responseFormat `json:"response_format,omitempty"`
	MaxTokens      int             `json:"max_tokens,omitempty"`
}

type responseFormat struct {
	Type string `json:"type"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// ChatJSON sends a JSON-mode chat request and unmarshals the model's JSON
// reply into out.
func (c *Client) ChatJSON(ctx context.Context, model string, messages []Message, maxTokens int, out any) error {
	payload := chatRequest{
		Model:          model,
		Messages:       messages,
		ResponseFormat: &responseFormat{Type: "json_object"},
		MaxTokens:      maxTokens,
	}

	body, err := c.post(ctx, "/chat/completions", payload)
	if err != nil {
		return err
	}

	var resp chatResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return fmt.Errorf("failed to decode chat response: %w", err)
	}
	if len(resp.Choices) == 0 {
		return fmt.Errorf("no content found in chat response")
	}

	if err := json.Unmarshal([]byte(resp.Choices[0].Message.Content), out); err != nil {
		return fmt.Errorf("model returned malformed JSON: %w", err)
	}
	return nil
}

/* =================================================================================
                                IMAGE GENERATION
=================================================================================*/

type imageRequest struct {
	Model   string `json:"model"`
	Prompt  string `json:"prompt"`
	N       int    `json:"n"`
	Size    string `json:"size"`
	Quality string `json:"quality"`
}

type imageResponse struct {
	Data []struct {
		B64JSON string `json:"b64_json"`
	} `json:"data"`
}

// GenerateImage requests exactly one image at the fixed resolution and
// returns the decoded PNG bytes. Upstream failures are not retried; retry
// policy belongs to the caller.
func (c *Client) GenerateImage(ctx context.Context, prompt string) ([]byte, error) {
	payload := imageRequest{
		Model:   imageModel,
		Prompt:  prompt,
		N:       1,
		Size:    imageSize,
		Quality: imageQuality,
	}

	log.Info().Msg("Calling OpenAI image generation API...")

	body, err := c.post(ctx, "/images/generations", payload)
	if err != nil {
		return nil, err
	}

	var resp imageResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("failed to decode image response: %w", err)
	}
	if len(resp.Data) == 0 || resp.Data[0].B64JSON == "" {
		return nil, fmt.Errorf("no image found in response")
	}

	raw, err := base64.StdEncoding.DecodeString(resp.Data[0].B64JSON)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image payload: %w", err)
	}
	return raw, nil
}

func (c *Client) post(ctx context.Context, path string, payload any) ([]byte, error) {
	payloadBytes, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, "POST", c.baseURL+path, bytes.NewBuffer(payloadBytes))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, &APIError{Status: resp.StatusCode, Body: string(body)}
	}
	return body, nil
}
