package summarize

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/xhad/zummary/internal/models"
)

func docsFrom(contents ...string) []models.Document {
	docs := make([]models.Document, 0, len(contents))
	for _, c := range contents {
		docs = append(docs, models.Document{Content: c})
	}
	return docs
}

func TestDetectContentType(t *testing.T) {
	tests := []struct {
		name string
		docs []models.Document
		want ContentType
	}{
		{
			name: "dense technical vocabulary",
			docs: docsFrom("The algorithm implements a class-based function for the database API."),
			want: ContentTechnical,
		},
		{
			name: "narrative vocabulary",
			docs: docsFrom("The story follows a character whose plot unfolds chapter by chapter, scene after scene."),
			want: ContentNarrative,
		},
		{
			name: "plain prose",
			docs: docsFrom("The weather today was pleasant and many people went outside for a walk."),
			want: ContentGeneral,
		},
		{
			name: "too few technical hits stays general",
			docs: docsFrom("This code uses one function."), // only 2 indicators
			want: ContentGeneral,
		},
		{
			name: "empty input",
			docs: nil,
			want: ContentGeneral,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DetectContentType(tt.docs))
		})
	}
}

func TestDetectContentTypeDeterministic(t *testing.T) {
	docs := docsFrom(
		"An algorithm and a function walk into a database.",
		"The api exposes the framework through a library of classes.",
	)

	first := DetectContentType(docs)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, DetectContentType(docs))
	}
}

func TestDetectContentTypeSamplesFirstThreeDocs(t *testing.T) {
	// Technical vocabulary past the sample window must not influence the
	// result.
	docs := docsFrom(
		"Plain text one.",
		"Plain text two.",
		"Plain text three.",
		"algorithm function class api database framework library code sql",
	)

	assert.Equal(t, ContentGeneral, DetectContentType(docs))
}
