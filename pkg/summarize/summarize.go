package summarize

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/xhad/zummary/internal/models"
	"github.com/xhad/zummary/internal/types"
)

const DefaultMaxRetries = 3

// Summaries shorter than this are treated as degenerate LLM output and
// retried rather than returned to the caller.
const minSummaryLength = 50

var (
	// ErrNoDocuments is returned when the input set is empty or every
	// document is blank. Input errors are never retried.
	ErrNoDocuments = errors.New("no documents provided for summarization")

	// ErrRetriesExhausted is returned once the retry budget is spent.
	// It is always wrapped together with the last attempt's failure.
	ErrRetriesExhausted = errors.New("retries exhausted")
)

// Summarize produces a structured summary of the document set through the
// supplied LLM handle. The strategy adapts to the input: short content is
// summarized in a single pass, long content is chunked and map-reduced.
// Transient failures (LLM errors, degenerate output) are retried up to
// maxRetries attempts; pass 0 for the default budget.
func Summarize(ctx context.Context, docs []models.Document, llm types.LLM, maxRetries int) (string, error) {
	if maxRetries <= 0 {
		maxRetries = DefaultMaxRetries
	}

	docs = dropBlank(docs)
	if len(docs) == 0 {
		return "", ErrNoDocuments
	}

	contentType := DetectContentType(docs)
	log.Printf("Detected content type: %s", contentType)

	totalText := joinContents(docs)
	totalTokens := EstimateTokens(totalText)
	log.Printf("Estimated tokens: %d", totalTokens)

	ps := BuildPrompts(contentType)

	var lastErr error
	for attempt := 1; attempt <= maxRetries; attempt++ {
		var result string
		var err error

		if totalTokens < MaxTokens {
			result, err = runStuff(ctx, llm, ps, totalText)
		} else {
			result, err = runMapReduce(ctx, llm, ps, docs, contentType)
		}

		if err == nil {
			result = strings.TrimSpace(result)
			if len(result) >= minSummaryLength {
				return result, nil
			}
			err = fmt.Errorf("generated summary is too short (%d characters)", len(result))
		}

		log.Printf("Attempt %d failed: %v", attempt, err)
		lastErr = err
	}

	return "", fmt.Errorf("%w: failed to generate summary after %d attempts: %v", ErrRetriesExhausted, maxRetries, lastErr)
}

// GenerateQuiz produces a multiple-choice practice quiz over the full
// document set in a single pass.
func GenerateQuiz(ctx context.Context, docs []models.Document, llm types.LLM) (string, error) {
	docs = dropBlank(docs)
	if len(docs) == 0 {
		return "", ErrNoDocuments
	}

	prompt, err := QuizPrompt().Format(map[string]any{"text": joinContents(docs)})
	if err != nil {
		return "", fmt.Errorf("failed to format quiz prompt: %w", err)
	}

	result, err := llm.Complete(ctx, prompt)
	if err != nil {
		return "", fmt.Errorf("quiz generation failed: %w", err)
	}

	return strings.TrimSpace(result), nil
}

// runStuff issues a single summarization call over the full text.
func runStuff(ctx context.Context, llm types.LLM, ps PromptSet, text string) (string, error) {
	log.Printf("Using single-pass strategy")

	prompt, err := ps.Stuff.Format(map[string]any{"text": text})
	if err != nil {
		return "", fmt.Errorf("failed to format prompt: %w", err)
	}

	return llm.Complete(ctx, prompt)
}

// runMapReduce chunks the documents, summarizes each chunk, then merges
// the chunk summaries with one combine call. Calls proceed strictly in
// sequence; a single request never issues concurrent LLM calls.
func runMapReduce(ctx context.Context, llm types.LLM, ps PromptSet, docs []models.Document, contentType ContentType) (string, error) {
	log.Printf("Using map-reduce strategy")

	chunks := ChunkDocuments(docs, contentType)
	if len(chunks) == 0 {
		chunks = docs
	}

	partials := make([]string, 0, len(chunks))
	for _, chunk := range chunks {
		prompt, err := ps.Map.Format(map[string]any{"text": chunk.Content})
		if err != nil {
			return "", fmt.Errorf("failed to format map prompt: %w", err)
		}

		partial, err := llm.Complete(ctx, prompt)
		if err != nil {
			return "", fmt.Errorf("map call failed: %w", err)
		}
		partials = append(partials, strings.TrimSpace(partial))
	}

	prompt, err := ps.Combine.Format(map[string]any{"text": strings.Join(partials, "\n\n")})
	if err != nil {
		return "", fmt.Errorf("failed to format combine prompt: %w", err)
	}

	result, err := llm.Complete(ctx, prompt)
	if err != nil {
		return "", fmt.Errorf("combine call failed: %w", err)
	}

	return result, nil
}

func dropBlank(docs []models.Document) []models.Document {
	kept := make([]models.Document, 0, len(docs))
	for _, doc := range docs {
		if strings.TrimSpace(doc.Content) != "" {
			kept = append(kept, doc)
		}
	}
	return kept
}

func joinContents(docs []models.Document) string {
	parts := make([]string, 0, len(docs))
	for _, doc := range docs {
		parts = append(parts, doc.Content)
	}
	return strings.Join(parts, " ")
}
