package summarize

import (
	"log"
	"strings"

	"github.com/tmc/langchaingo/textsplitter"
	"github.com/xhad/zummary/internal/models"
)

// ChunkingConfig selects the window geometry for recursive splitting.
type ChunkingConfig struct {
	ChunkSize    int
	ChunkOverlap int
}

// Chunks whose trimmed content is at or below this length carry no
// summarizable signal and are dropped after splitting.
const minChunkLength = 50

// chunkSeparators are tried largest-first so chunks break on paragraph
// boundaries before sentences, and on sentences before raw whitespace.
var chunkSeparators = []string{"\n\n", "\n", ". ", "! ", "? ", " ", ""}

// ChunkingConfigFor returns the chunk geometry tuned for a content type.
// Technical text packs more meaning per character and gets smaller
// windows; narrative text needs longer runs to keep story context intact.
func ChunkingConfigFor(contentType ContentType) ChunkingConfig {
	switch contentType {
	case ContentTechnical:
		return ChunkingConfig{ChunkSize: 500, ChunkOverlap: 200}
	case ContentNarrative:
		return ChunkingConfig{ChunkSize: 2000, ChunkOverlap: 300}
	default:
		return ChunkingConfig{ChunkSize: 1200, ChunkOverlap: 250}
	}
}

// textSplitter matches the splitting capability of langchaingo's
// textsplitter package.
type textSplitter interface {
	SplitText(text string) ([]string, error)
}

// ChunkDocuments splits documents into bounded overlapping segments sized
// for the content type. Chunking is a best-effort optimization: if the
// splitter fails the original documents are returned unchanged rather
// than failing the request.
func ChunkDocuments(docs []models.Document, contentType ContentType) []models.Document {
	config := ChunkingConfigFor(contentType)

	splitter := textsplitter.NewRecursiveCharacter(
		textsplitter.WithChunkSize(config.ChunkSize),
		textsplitter.WithChunkOverlap(config.ChunkOverlap),
		textsplitter.WithSeparators(chunkSeparators),
	)

	return chunkWith(docs, splitter)
}

func chunkWith(docs []models.Document, splitter textSplitter) []models.Document {
	var chunked []models.Document
	for _, doc := range docs {
		pieces, err := splitter.SplitText(doc.Content)
		if err != nil {
			log.Printf("Chunking failed, falling back to unchunked documents: %v", err)
			return docs
		}

		for _, piece := range pieces {
			if len(strings.TrimSpace(piece)) <= minChunkLength {
				continue
			}
			chunked = append(chunked, models.Document{
				ID:       doc.ID,
				URL:      doc.URL,
				Title:    doc.Title,
				Content:  piece,
				Metadata: doc.Metadata,
			})
		}
	}

	log.Printf("Created %d chunks from %d documents", len(chunked), len(docs))
	return chunked
}
