package imagegen

import (
	"context"
	"encoding/base64"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"herbwise/internal/imageprompt"
)

type stubGenerator struct {
	image []byte
	err   error
	calls int
}

func (g *stubGenerator) GenerateImage(ctx context.Context, prompt string) ([]byte, error) {
	g.calls++
	if g.err != nil {
		return nil, g.err
	}
	return g.image, nil
}

type stubObjectStore struct {
	uploadedKeys []string
	uploadedData [][]byte
	err          error
}

func (s *stubObjectStore) Upload(ctx context.Context, key string, data []byte, contentType string) error {
	if s.err != nil {
		return s.err
	}
	s.uploadedKeys = append(s.uploadedKeys, key)
	s.uploadedData = append(s.uploadedData, data)
	return nil
}

func (s *stubObjectStore) PublicURL(key string) string {
	return "https://cdn.example.com/remedy-images/" + key
}

type stubRecordStore struct {
	updatedID  string
	updatedURL string
	err        error
}

func (s *stubRecordStore) UpdateImageURL(ctx context.Context, id, imageURL string) error {
	if s.err != nil {
		return s.err
	}
	s.updatedID = id
	s.updatedURL = imageURL
	return nil
}

func testDescriptor() imageprompt.Descriptor {
	return imageprompt.Descriptor{
		Name:        "Ginger Turmeric Tea",
		Ingredients: []string{"ginger", "turmeric powder", "honey"},
		Category:    "Anti-inflammatory",
	}
}

func newTestService(gen Generator, objects *stubObjectStore, records *stubRecordStore) *Service {
	svc := NewService(gen, objects, records)
	svc.now = func() time.Time { return time.UnixMilli(1700000000000) }
	return svc
}

func TestGeneratePersistsAndUpdatesRecord(t *testing.T) {
	gen := &stubGenerator{image: []byte("png-bytes")}
	objects := &stubObjectStore{}
	records := &stubRecordStore{}
	svc := newTestService(gen, objects, records)

	result, err := svc.Generate(context.Background(), testDescriptor(), "ginger-turmeric-tea")
	require.NoError(t, err)

	persisted, ok := result.(PersistedImage)
	require.True(t, ok, "expected a PersistedImage result")

	require.Len(t, objects.uploadedKeys, 1)
	assert.Equal(t, "remedy-ginger-turmeric-tea-1700000000000.png", objects.uploadedKeys[0])
	assert.Equal(t, []byte("png-bytes"), objects.uploadedData[0])

	assert.Equal(t, objects.PublicURL(objects.uploadedKeys[0]), persisted.URL)
	assert.Equal(t, "ginger-turmeric-tea", records.updatedID)
	assert.Equal(t, persisted.URL, records.updatedURL)
}

func TestGenerateInlineWithoutRemedyID(t *testing.T) {
	gen := &stubGenerator{image: []byte("png-bytes")}
	objects := &stubObjectStore{}
	records := &stubRecordStore{}
	svc := newTestService(gen, objects, records)

	result, err := svc.Generate(context.Background(), testDescriptor(), "")
	require.NoError(t, err)

	inline, ok := result.(InlineImage)
	require.True(t, ok, "expected an InlineImage result")

	assert.True(t, strings.HasPrefix(inline.DataURL, "data:image/png;base64,"))
	encoded := strings.TrimPrefix(inline.DataURL, "data:image/png;base64,")
	assert.Equal(t, base64.StdEncoding.EncodeToString([]byte("png-bytes")), encoded)

	// Nothing stored, nothing mutated.
	assert.Empty(t, objects.uploadedKeys)
	assert.Empty(t, records.updatedID)
}

func TestGenerateToleratesRecordUpdateFailure(t *testing.T) {
	gen := &stubGenerator{image: []byte("png-bytes")}
	objects := &stubObjectStore{}
	records := &stubRecordStore{err: fmt.Errorf("row locked")}
	svc := newTestService(gen, objects, records)

	result, err := svc.Generate(context.Background(), testDescriptor(), "ginger-turmeric-tea")

	// The image is stored and reachable; the stale pointer is a
	// diagnostics concern, not a failure.
	require.NoError(t, err)
	persisted, ok := result.(PersistedImage)
	require.True(t, ok)
	assert.NotEmpty(t, persisted.URL)
}

func TestGenerateUploadFailureDiscardsImage(t *testing.T) {
	gen := &stubGenerator{image: []byte("png-bytes")}
	objects := &stubObjectStore{err: fmt.Errorf("bucket unavailable")}
	records := &stubRecordStore{}
	svc := newTestService(gen, objects, records)

	result, err := svc.Generate(context.Background(), testDescriptor(), "ginger-turmeric-tea")

	require.Error(t, err)
	assert.Nil(t, result)
	assert.Contains(t, err.Error(), "failed to store image")
	// No pointer update after a failed upload.
	assert.Empty(t, records.updatedID)
}

func TestGenerateUpstreamFailure(t *testing.T) {
	gen := &stubGenerator{err: fmt.Errorf("rate limited")}
	svc := newTestService(gen, &stubObjectStore{}, &stubRecordStore{})

	_, err := svc.Generate(context.Background(), testDescriptor(), "ginger-turmeric-tea")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "Ginger Turmeric Tea")
	assert.Equal(t, 1, gen.calls, "upstream failures must not be retried here")
}

func TestGenerateRequiresName(t *testing.T) {
	gen := &stubGenerator{image: []byte("png-bytes")}
	svc := newTestService(gen, &stubObjectStore{}, &stubRecordStore{})

	_, err := svc.Generate(context.Background(), imageprompt.Descriptor{}, "")

	require.Error(t, err)
	assert.Zero(t, gen.calls)
}

func TestGenerateKeysNeverCollideAcrossRegenerations(t *testing.T) {
	gen := &stubGenerator{image: []byte("png-bytes")}
	objects := &stubObjectStore{}
	records := &stubRecordStore{}
	svc := NewService(gen, objects, records)

	ms := int64(1700000000000)
	svc.now = func() time.Time { ms++; return time.UnixMilli(ms) }

	for i := 0; i < 3; i++ {
		_, err := svc.Generate(context.Background(), testDescriptor(), "ginger-turmeric-tea")
		require.NoError(t, err)
	}

	require.Len(t, objects.uploadedKeys, 3)
	seen := make(map[string]bool)
	for _, key := range objects.uploadedKeys {
		assert.False(t, seen[key], "object key %s reused", key)
		seen[key] = true
	}
}
