package loader

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/xhad/zummary/internal/models"
)

// FromText wraps pasted text in a Document so it can flow through the
// same pipeline as fetched sources.
func FromText(text string) ([]models.Document, error) {
	if strings.TrimSpace(text) == "" {
		return nil, fmt.Errorf("no text provided")
	}

	return []models.Document{{
		ID:      uuid.NewString(),
		Title:   "Pasted Text",
		Content: text,
		Metadata: map[string]string{
			"source": "text",
		},
	}}, nil
}
