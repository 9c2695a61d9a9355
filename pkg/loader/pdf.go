package loader

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/ledongthuc/pdf"
	"github.com/xhad/zummary/internal/models"
)

// LoadPDF extracts the plain text of a PDF file into a Document.
func LoadPDF(path string) ([]models.Document, error) {
	f, reader, err := pdf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open PDF %s: %w", path, err)
	}
	defer f.Close()

	plain, err := reader.GetPlainText()
	if err != nil {
		return nil, fmt.Errorf("failed to extract text from PDF %s: %w", path, err)
	}

	var buf bytes.Buffer
	if _, err := buf.ReadFrom(plain); err != nil {
		return nil, fmt.Errorf("failed to read PDF text: %w", err)
	}

	content := strings.TrimSpace(buf.String())
	if content == "" {
		return nil, fmt.Errorf("PDF %s contains no extractable text", path)
	}

	return []models.Document{{
		ID:      uuid.NewString(),
		Title:   filepath.Base(path),
		Content: content,
		Metadata: map[string]string{
			"source": path,
			"pages":  fmt.Sprintf("%d", reader.NumPage()),
		},
	}}, nil
}

// LoadPDFBytes extracts text from uploaded PDF bytes. The upload is
// staged in a temp file for the extractor and removed on every exit path.
func LoadPDFBytes(name string, data []byte) ([]models.Document, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("empty PDF upload")
	}

	tmp, err := os.CreateTemp("", "upload-*.pdf")
	if err != nil {
		return nil, fmt.Errorf("failed to create temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return nil, fmt.Errorf("failed to stage PDF upload: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return nil, err
	}

	docs, err := LoadPDF(tmp.Name())
	if err != nil {
		return nil, err
	}

	for i := range docs {
		docs[i].Title = name
		docs[i].Metadata["source"] = name
	}
	return docs, nil
}
