package summarize_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xhad/zummary/internal/models"
	"github.com/xhad/zummary/pkg/summarize"
)

const validSummary = "**Title**: Test Summary\n\nThis is a generated summary long enough to pass the minimum length validation gate."

// mockLLM scripts completions per call and records every prompt it saw.
type mockLLM struct {
	responses []string
	errs      []error
	prompts   []string
}

func (m *mockLLM) Complete(_ context.Context, prompt string) (string, error) {
	call := len(m.prompts)
	m.prompts = append(m.prompts, prompt)

	if call < len(m.errs) && m.errs[call] != nil {
		return "", m.errs[call]
	}
	if call < len(m.responses) {
		return m.responses[call], nil
	}
	return validSummary, nil
}

func shortDocs() []models.Document {
	return []models.Document{{
		Content: "A short article about gardening with roughly thirty words of content, covering watering schedules, soil preparation, and seasonal pruning in a compact and easily summarized form for testing.",
	}}
}

func longDocs() []models.Document {
	sentence := "The committee reviewed the quarterly findings and agreed on the revised schedule for the coming period. "
	return []models.Document{{Content: strings.Repeat(sentence, 700)}}
}

func TestSummarizeEmptyInput(t *testing.T) {
	llm := &mockLLM{}

	_, err := summarize.Summarize(context.Background(), nil, llm, 3)
	assert.ErrorIs(t, err, summarize.ErrNoDocuments)

	_, err = summarize.Summarize(context.Background(), []models.Document{{Content: "   \n\t"}}, llm, 3)
	assert.ErrorIs(t, err, summarize.ErrNoDocuments)

	assert.Empty(t, llm.prompts, "input errors must not reach the LLM")
}

func TestSummarizeSinglePass(t *testing.T) {
	llm := &mockLLM{}

	result, err := summarize.Summarize(context.Background(), shortDocs(), llm, 3)
	require.NoError(t, err)

	assert.Equal(t, validSummary, result)
	require.Len(t, llm.prompts, 1, "short input takes exactly one LLM call")
	assert.Contains(t, llm.prompts[0], "gardening")
}

func TestSummarizeMapReduce(t *testing.T) {
	llm := &mockLLM{}

	result, err := summarize.Summarize(context.Background(), longDocs(), llm, 3)
	require.NoError(t, err)
	assert.Equal(t, validSummary, result)

	require.Greater(t, len(llm.prompts), 2, "expected one call per chunk plus a combine call")

	for _, prompt := range llm.prompts[:len(llm.prompts)-1] {
		assert.Contains(t, prompt, "content section", "map calls use the map template")
	}
	assert.Contains(t, llm.prompts[len(llm.prompts)-1], "section summaries", "final call uses the combine template")
}

func TestSummarizeRetriesTransientFailures(t *testing.T) {
	boom := errors.New("rate limited")
	llm := &mockLLM{errs: []error{boom, boom}}

	result, err := summarize.Summarize(context.Background(), shortDocs(), llm, 3)
	require.NoError(t, err)

	assert.Equal(t, validSummary, result)
	assert.Len(t, llm.prompts, 3, "two failures then one success")
}

func TestSummarizeRetriesShortOutput(t *testing.T) {
	llm := &mockLLM{responses: []string{"too short", validSummary}}

	result, err := summarize.Summarize(context.Background(), shortDocs(), llm, 3)
	require.NoError(t, err)

	assert.Equal(t, validSummary, result)
	assert.Len(t, llm.prompts, 2)
}

func TestSummarizeExhaustsRetries(t *testing.T) {
	boom := errors.New("model unavailable")
	llm := &mockLLM{errs: []error{boom, boom, boom, boom, boom}}

	_, err := summarize.Summarize(context.Background(), shortDocs(), llm, 3)

	assert.ErrorIs(t, err, summarize.ErrRetriesExhausted)
	assert.Contains(t, err.Error(), "3 attempts")
	assert.Contains(t, err.Error(), "model unavailable")
	assert.Len(t, llm.prompts, 3, "retry budget is exactly maxRetries attempts")
}

func TestSummarizeDefaultRetryBudget(t *testing.T) {
	boom := errors.New("down")
	llm := &mockLLM{errs: []error{boom, boom, boom, boom, boom}}

	_, err := summarize.Summarize(context.Background(), shortDocs(), llm, 0)

	assert.ErrorIs(t, err, summarize.ErrRetriesExhausted)
	assert.Len(t, llm.prompts, summarize.DefaultMaxRetries)
}

func TestGenerateQuiz(t *testing.T) {
	quiz := "1. What does the text cover? A) ... B) ... C) ... D) ... Correct answer: A"
	llm := &mockLLM{responses: []string{quiz}}

	result, err := summarize.GenerateQuiz(context.Background(), shortDocs(), llm)
	require.NoError(t, err)

	assert.Equal(t, quiz, result)
	require.Len(t, llm.prompts, 1)
	assert.Contains(t, llm.prompts[0], "multiple-choice")
	assert.Contains(t, llm.prompts[0], "gardening")
}

func TestGenerateQuizEmptyInput(t *testing.T) {
	_, err := summarize.GenerateQuiz(context.Background(), nil, &mockLLM{})
	assert.ErrorIs(t, err, summarize.ErrNoDocuments)
}
