package summarize

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/xhad/zummary/internal/models"
)

func TestChunkingConfigFor(t *testing.T) {
	tests := []struct {
		contentType ContentType
		size        int
		overlap     int
	}{
		{ContentTechnical, 500, 200},
		{ContentNarrative, 2000, 300},
		{ContentGeneral, 1200, 250},
	}

	for _, tt := range tests {
		t.Run(string(tt.contentType), func(t *testing.T) {
			config := ChunkingConfigFor(tt.contentType)
			assert.Equal(t, tt.size, config.ChunkSize)
			assert.Equal(t, tt.overlap, config.ChunkOverlap)
		})
	}
}

func TestChunkDocuments(t *testing.T) {
	paragraph := "The system collects measurements from the field units and aggregates them once per hour. " +
		"Aggregated values are checked against the configured thresholds before being forwarded."
	content := strings.Repeat(paragraph+"\n\n", 30)

	docs := []models.Document{{ID: "doc-1", URL: "https://example.com", Content: content}}

	chunks := ChunkDocuments(docs, ContentGeneral)

	assert.Greater(t, len(chunks), 1)
	for _, chunk := range chunks {
		assert.Greater(t, len(strings.TrimSpace(chunk.Content)), 50)
		assert.LessOrEqual(t, len(chunk.Content), 1200+250)
		// Source metadata survives splitting.
		assert.Equal(t, "doc-1", chunk.ID)
		assert.Equal(t, "https://example.com", chunk.URL)
	}
}

func TestChunkDocumentsDropsNoise(t *testing.T) {
	docs := []models.Document{
		{Content: "tiny"},
		{Content: strings.Repeat("a meaningful sentence about the topic under discussion. ", 20)},
	}

	chunks := ChunkDocuments(docs, ContentTechnical)

	assert.NotEmpty(t, chunks)
	for _, chunk := range chunks {
		assert.Greater(t, len(strings.TrimSpace(chunk.Content)), 50)
	}
}

type failingSplitter struct{}

func (failingSplitter) SplitText(string) ([]string, error) {
	return nil, errors.New("splitter exploded")
}

func TestChunkFallbackReturnsOriginals(t *testing.T) {
	docs := []models.Document{
		{ID: "a", Content: "first document"},
		{ID: "b", Content: "second document"},
	}

	chunks := chunkWith(docs, failingSplitter{})

	assert.Equal(t, docs, chunks)
}
