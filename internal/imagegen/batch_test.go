package imagegen

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"herbwise/internal/imageprompt"
)

// scriptedService fails the items whose 1-based position is listed in
// failAt and succeeds otherwise.
type scriptedService struct {
	failAt map[int]error
	calls  int
}

func (s *scriptedService) Generate(ctx context.Context, d imageprompt.Descriptor, remedyID string) (Result, error) {
	s.calls++
	if err, ok := s.failAt[s.calls]; ok {
		return nil, err
	}
	return PersistedImage{URL: "https://cdn.example.com/" + remedyID + ".png"}, nil
}

func batchItems(names ...string) []BatchItem {
	items := make([]BatchItem, 0, len(names))
	for _, name := range names {
		items = append(items, BatchItem{
			ID:         name,
			Descriptor: imageprompt.Descriptor{Name: name, Ingredients: []string{"water"}},
		})
	}
	return items
}

func TestGenerateAllIsolatesFailures(t *testing.T) {
	svc := &scriptedService{failAt: map[int]error{2: fmt.Errorf("upstream timeout")}}
	o := &Orchestrator{svc: svc, delay: time.Millisecond}

	var progress []string
	items := batchItems("Ginger Turmeric Tea", "Tulsi Steam Inhalation", "Triphala Powder")

	outcomes := o.GenerateAll(context.Background(), items, func(current, total int, name string) {
		progress = append(progress, fmt.Sprintf("%d/%d %s", current, total, name))
	})

	require.Len(t, outcomes, 3)
	assert.Equal(t, ItemOutcome{Name: "Ginger Turmeric Tea", Success: true}, outcomes[0])
	assert.Equal(t, "Tulsi Steam Inhalation", outcomes[1].Name)
	assert.False(t, outcomes[1].Success)
	assert.Contains(t, outcomes[1].Error, "upstream timeout")
	assert.Equal(t, ItemOutcome{Name: "Triphala Powder", Success: true}, outcomes[2])

	assert.Equal(t, []string{
		"1/3 Ginger Turmeric Tea",
		"2/3 Tulsi Steam Inhalation",
		"3/3 Triphala Powder",
	}, progress)
}

func TestGenerateAllEveryItemFails(t *testing.T) {
	svc := &scriptedService{failAt: map[int]error{
		1: fmt.Errorf("boom 1"),
		2: fmt.Errorf("boom 2"),
	}}
	o := &Orchestrator{svc: svc, delay: 0}

	outcomes := o.GenerateAll(context.Background(), batchItems("A", "B"), nil)

	require.Len(t, outcomes, 2)
	for i, outcome := range outcomes {
		assert.False(t, outcome.Success)
		assert.Contains(t, outcome.Error, fmt.Sprintf("boom %d", i+1))
	}
	assert.Equal(t, 2, svc.calls, "every item attempted exactly once")
}

func TestGenerateAllPacing(t *testing.T) {
	const delay = 30 * time.Millisecond
	svc := &scriptedService{}
	o := &Orchestrator{svc: svc, delay: delay}

	start := time.Now()
	outcomes := o.GenerateAll(context.Background(), batchItems("A", "B", "C"), nil)
	elapsed := time.Since(start)

	require.Len(t, outcomes, 3)
	// Two pauses for three items; none after the last.
	assert.GreaterOrEqual(t, elapsed, 2*delay)
	assert.Less(t, elapsed, 4*delay)
}

func TestGenerateAllEmptyInput(t *testing.T) {
	o := &Orchestrator{svc: &scriptedService{}, delay: time.Second}

	outcomes := o.GenerateAll(context.Background(), nil, nil)

	assert.Empty(t, outcomes)
}

func TestGenerateAllCancelledBetweenItems(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	svc := &scriptedService{}
	o := &Orchestrator{svc: svc, delay: time.Millisecond}

	items := batchItems("A", "B", "C")
	outcomes := o.GenerateAll(ctx, items, func(current, total int, name string) {
		if current == 1 {
			cancel()
		}
	})

	// The report still accounts for every input, in order.
	require.Len(t, outcomes, 3)
	assert.True(t, outcomes[0].Success)
	assert.False(t, outcomes[1].Success)
	assert.False(t, outcomes[2].Success)
	assert.Equal(t, 1, svc.calls)
}
