package prescription

import (
	"context"
	"encoding/json"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"herbwise/internal/openai"
)

type stubChatter struct {
	response ScanResult
	err      error
	lastURL  string
}

func (s *stubChatter) ChatJSON(ctx context.Context, model string, messages []openai.Message, maxTokens int, out any) error {
	for _, m := range messages {
		parts, ok := m.Content.([]openai.ContentPart)
		if !ok {
			continue
		}
		for _, p := range parts {
			if p.ImageURL != nil {
				s.lastURL = p.ImageURL.URL
			}
		}
	}
	if s.err != nil {
		return s.err
	}
	raw, _ := json.Marshal(s.response)
	return json.Unmarshal(raw, out)
}

func TestNormalizeImageDataURL(t *testing.T) {
	assert.Equal(t, "data:image/jpeg;base64,abc123", NormalizeImageDataURL("abc123"))
	assert.Equal(t, "data:image/png;base64,abc123", NormalizeImageDataURL("data:image/png;base64,abc123"))
}

func TestScanRejectsEmptyImage(t *testing.T) {
	svc := NewService(&stubChatter{})

	_, err := svc.Scan(context.Background(), Request{})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "no image provided")
}

func TestScanWrapsRawBase64(t *testing.T) {
	chatter := &stubChatter{response: ScanResult{
		Medications: []Medication{{Name: "Ibuprofen", Dosage: "400mg", Frequency: "Twice daily"}},
	}}
	svc := NewService(chatter)

	result, err := svc.Scan(context.Background(), Request{ImageBase64: "abc123"})
	require.NoError(t, err)

	assert.Equal(t, "data:image/jpeg;base64,abc123", chatter.lastURL)
	require.Len(t, result.Medications, 1)
	assert.Equal(t, "Ibuprofen", result.Medications[0].Name)
}

func TestScanPassesDataURLThrough(t *testing.T) {
	chatter := &stubChatter{response: ScanResult{GeneralAdvice: "Take with food"}}
	svc := NewService(chatter)

	_, err := svc.Scan(context.Background(), Request{ImageBase64: "data:image/png;base64,abc123"})
	require.NoError(t, err)

	assert.Equal(t, "data:image/png;base64,abc123", chatter.lastURL)
}

func TestScanUpstreamFailure(t *testing.T) {
	svc := NewService(&stubChatter{err: fmt.Errorf("model overloaded")})

	_, err := svc.Scan(context.Background(), Request{ImageBase64: "abc123"})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "prescription scan failed")
}
