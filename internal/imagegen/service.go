/*
Package imagegen produces AI-generated photography for catalog remedies:
prompt synthesis, the upstream image call, and optional persistence of the
result to object storage plus a catalog pointer update.
*/
package imagegen

import (
	"context"
	"encoding/base64"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"herbwise/internal/imageprompt"
	"herbwise/internal/storage"
)

// Generator is the upstream text-to-image call. *openai.Client satisfies it.
type Generator interface {
	GenerateImage(ctx context.Context, prompt string) ([]byte, error)
}

// RecordStore moves a catalog record's image pointer. *remedy.Store
// satisfies it.
type RecordStore interface {
	UpdateImageURL(ctx context.Context, id, imageURL string) error
}

// Result is one of two variants: PersistedImage when the caller supplied a
// remedy ID, InlineImage otherwise.
type Result interface {
	resultVariant()
}

// PersistedImage reports a durably stored image reachable at URL.
type PersistedImage struct {
	URL string
}

// InlineImage carries the generated image as a base64 data URL; nothing
// was stored.
type InlineImage struct {
	DataURL string
}

func (PersistedImage) resultVariant() {}
func (InlineImage) resultVariant()    {}

// Service generates one image per call. It holds no per-call state.
type Service struct {
	gen     Generator
	objects storage.ObjectStore
	records RecordStore

	// now is swappable so tests can pin object key timestamps.
	now func() time.Time
}

func NewService(gen Generator, objects storage.ObjectStore, records RecordStore) *Service {
	return &Service{
		gen:     gen,
		objects: objects,
		records: records,
		now:     time.Now,
	}
}

// Generate produces one image for the remedy described by d.
//
// With a remedyID the decoded image is uploaded under a key embedding the
// ID and a millisecond timestamp (repeated regenerations never collide or
// overwrite), the catalog pointer is moved, and the public URL is
// returned. Without one the image is returned inline and nothing is
// stored.
//
// A failed catalog pointer update after a successful upload does NOT fail
// the call: the image exists and is publicly reachable. The failure is
// logged only.
func (s *Service) Generate(ctx context.Context, d imageprompt.Descriptor, remedyID string) (Result, error) {
	if d.Name == "" {
		return nil, fmt.Errorf("remedy name is required")
	}

	prompt := imageprompt.BuildPrompt(d)
	log.Info().Str("remedy", d.Name).Msg("Generating remedy image")

	raw, err := s.gen.GenerateImage(ctx, prompt)
	if err != nil {
		return nil, fmt.Errorf("image generation failed for %s: %w", d.Name, err)
	}

	if remedyID == "" {
		return InlineImage{
			DataURL: "data:image/png;base64," + base64.StdEncoding.EncodeToString(raw),
		}, nil
	}

	key := fmt.Sprintf("remedy-%s-%d.png", remedyID, s.now().UnixMilli())

	if err := s.objects.Upload(ctx, key, raw, "image/png"); err != nil {
		// The generated bytes are discarded; no pointer update is attempted.
		return nil, fmt.Errorf("failed to store image for %s: %w", d.Name, err)
	}

	url := s.objects.PublicURL(key)

	if err := s.records.UpdateImageURL(ctx, remedyID, url); err != nil {
		log.Error().Err(err).Str("remedy_id", remedyID).Str("url", url).
			Msg("Image stored but catalog pointer update failed")
	}

	log.Info().Str("remedy", d.Name).Str("url", url).Msg("Image generated and uploaded")
	return PersistedImage{URL: url}, nil
}
