package models

// Document is a unit of extracted text plus its source metadata.
// Loaders produce Documents; the summarization pipeline consumes them
// without mutating them.
type Document struct {
	ID       string
	URL      string
	Title    string
	Content  string
	Metadata map[string]string
}
