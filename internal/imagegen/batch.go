package imagegen

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"

	"herbwise/internal/imageprompt"
)

// BatchItem is one remedy in a batch run: its prompt descriptor plus the
// catalog key targeted by the persistence path.
type BatchItem struct {
	ID         string
	Descriptor imageprompt.Descriptor
}

// ItemOutcome is one row of the batch report. Outcomes are appended in
// input order; the Nth outcome always corresponds to the Nth item.
type ItemOutcome struct {
	Name    string `json:"name"`
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
}

// ProgressFunc receives the 1-based index, the total count, and the name
// of the item about to be processed.
type ProgressFunc func(current, total int, name string)

// itemGenerator is satisfied by *Service; tests substitute a stub.
type itemGenerator interface {
	Generate(ctx context.Context, d imageprompt.Descriptor, remedyID string) (Result, error)
}

// Orchestrator drives image generation across a whole remedy collection.
// It is strictly sequential: the upstream API is rate-limited, so at most
// one generation is in flight at any time, with a fixed pause between
// items.
type Orchestrator struct {
	svc   itemGenerator
	delay time.Duration
}

func NewOrchestrator(svc *Service, delay time.Duration) *Orchestrator {
	return &Orchestrator{svc: svc, delay: delay}
}

// GenerateAll attempts every item exactly once and returns one outcome per
// item, in input order. A failed item is recorded and the batch moves on;
// one bad remedy never aborts the rest. The inter-item delay is applied
// after each attempt except the last.
//
// Cancelling ctx stops the run between items (never mid-call); remaining
// items are reported as failed with the context error so the report still
// accounts for every input.
func (o *Orchestrator) GenerateAll(ctx context.Context, items []BatchItem, onProgress ProgressFunc) []ItemOutcome {
	outcomes := make([]ItemOutcome, 0, len(items))

	for i, item := range items {
		if err := ctx.Err(); err != nil {
			for _, rest := range items[i:] {
				outcomes = append(outcomes, ItemOutcome{Name: rest.Descriptor.Name, Success: false, Error: err.Error()})
			}
			log.Warn().Err(err).Int("remaining", len(items)-i).Msg("Image batch cancelled between items")
			return outcomes
		}

		if onProgress != nil {
			onProgress(i+1, len(items), item.Descriptor.Name)
		}

		if _, err := o.svc.Generate(ctx, item.Descriptor, item.ID); err != nil {
			log.Error().Err(err).Str("remedy", item.Descriptor.Name).Msg("Batch item failed")
			outcomes = append(outcomes, ItemOutcome{Name: item.Descriptor.Name, Success: false, Error: err.Error()})
		} else {
			outcomes = append(outcomes, ItemOutcome{Name: item.Descriptor.Name, Success: true})
		}

		// Pacing for upstream rate limits. No pause after the final item.
		if i < len(items)-1 {
			select {
			case <-time.After(o.delay):
			case <-ctx.Done():
			}
		}
	}

	return outcomes
}
