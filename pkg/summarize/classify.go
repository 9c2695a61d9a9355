package summarize

import (
	"strings"

	"github.com/xhad/zummary/internal/models"
)

// ContentType drives prompt wording and chunking parameters.
type ContentType string

const (
	ContentTechnical ContentType = "technical"
	ContentNarrative ContentType = "narrative"
	ContentGeneral   ContentType = "general"
)

// Only the first few documents are sampled for classification; scanning
// an entire book-length input buys nothing here.
const classifySampleSize = 3

var technicalIndicators = []string{
	"algorithm", "function", "method", "class", "variable", "data structure",
	"implementation", "code", "programming", "software", "api", "database",
	"framework", "library", "python", "javascript", "java", "c++", "sql",
}

var narrativeIndicators = []string{
	"story", "character", "plot", "narrative", "chapter", "scene",
	"dialogue", "protagonist", "antagonist", "setting", "theme",
}

// DetectContentType classifies a document set as technical, narrative,
// or general from fixed keyword tables. Each indicator scores at most one
// point regardless of how often it appears, so the result is deterministic
// and cheap. Empty input classifies as general.
func DetectContentType(docs []models.Document) ContentType {
	if len(docs) == 0 {
		return ContentGeneral
	}

	sample := docs
	if len(sample) > classifySampleSize {
		sample = sample[:classifySampleSize]
	}

	var sb strings.Builder
	for i, doc := range sample {
		if i > 0 {
			sb.WriteString(" ")
		}
		sb.WriteString(doc.Content)
	}
	text := strings.ToLower(sb.String())

	technicalScore := scoreIndicators(text, technicalIndicators)
	narrativeScore := scoreIndicators(text, narrativeIndicators)

	switch {
	case technicalScore > narrativeScore && technicalScore > 3:
		return ContentTechnical
	case narrativeScore > technicalScore && narrativeScore > 2:
		return ContentNarrative
	default:
		return ContentGeneral
	}
}

func scoreIndicators(text string, indicators []string) int {
	score := 0
	for _, indicator := range indicators {
		if strings.Contains(text, indicator) {
			score++
		}
	}
	return score
}
