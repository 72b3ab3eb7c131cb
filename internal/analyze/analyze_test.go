package analyze

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
	response Analysis
	err      error
	calls    int
	lastUser string
}

func (s *stubChatter) ChatJSON(ctx context.Context, model string, messages []openai.Message, maxTokens int, out any) error {
	s.calls++
	for _, m := range messages {
		if m.Role == "user" {
			s.lastUser, _ = m.Content.(string)
		}
	}
	if s.err != nil {
		return s.err
	}
	raw, _ := json.Marshal(s.response)
	return json.Unmarshal(raw, out)
}

func TestCombineSymptoms(t *testing.T) {
	cases := []struct {
		req  Request
		want string
	}{
		{Request{Symptoms: "headache"}, "headache"},
		{Request{SelectedSymptoms: []string{"Fever", "Chills"}}, "Fever, Chills"},
		{Request{Symptoms: "  sore throat ", SelectedSymptoms: []string{"Cough", ""}}, "sore throat, Cough"},
		{Request{}, ""},
		{Request{Symptoms: "  ", SelectedSymptoms: []string{" "}}, ""},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, CombineSymptoms(tc.req))
	}
}

func TestAnalyzeRejectsEmptyInput(t *testing.T) {
	chatter := &stubChatter{}
	svc, err := NewService(chatter, 8)
	require.NoError(t, err)

	_, err = svc.Analyze(context.Background(), Request{})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "no symptoms provided")
	assert.Zero(t, chatter.calls)
}

func TestAnalyzeCombinesFreeTextAndSelections(t *testing.T) {
	chatter := &stubChatter{response: Analysis{Condition: "Common Cold", Severity: "low"}}
	svc, err := NewService(chatter, 8)
	require.NoError(t, err)

	analysis, err := svc.Analyze(context.Background(), Request{
		Symptoms:         "runny nose",
		SelectedSymptoms: []string{"Sneezing", "Mild fever"},
	})
	require.NoError(t, err)

	assert.Equal(t, "Common Cold", analysis.Condition)
	assert.Equal(t, "My symptoms are: runny nose, Sneezing, Mild fever", chatter.lastUser)
}

func TestAnalyzeServesRepeatsFromCache(t *testing.T) {
	chatter := &stubChatter{response: Analysis{Condition: "Tension Headache", Severity: "low"}}
	svc, err := NewService(chatter, 8)
	require.NoError(t, err)

	req := Request{Symptoms: "headache behind the eyes"}

	first, err := svc.Analyze(context.Background(), req)
	require.NoError(t, err)
	second, err := svc.Analyze(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, 1, chatter.calls, "second identical query must not reach upstream")
}

func TestAnalyzeUpstreamFailureNotCached(t *testing.T) {
	chatter := &stubChatter{err: fmt.Errorf("service unavailable")}
	svc, err := NewService(chatter, 8)
	require.NoError(t, err)

	req := Request{Symptoms: "dizziness"}

	_, err = svc.Analyze(context.Background(), req)
	require.Error(t, err)

	chatter.err = nil
	chatter.response = Analysis{Condition: "Vertigo"}

	analysis, err := svc.Analyze(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, "Vertigo", analysis.Condition)
	assert.Equal(t, 2, chatter.calls)
}
