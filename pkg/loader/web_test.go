package loader

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewWebLoaderDefaults(t *testing.T) {
	w := NewWebLoader(WebLoaderConfig{})

	assert.Equal(t, 30*time.Second, w.config.Timeout)
	assert.Equal(t, 2.0, w.config.RateLimit)
}

func TestWebLoaderLoad(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		w.Write([]byte(`
			<html>
				<head><title>Test Article</title></head>
				<body>
					<nav>Site navigation</nav>
					<main>
						<h1>Test Content</h1>
						<p>This is the article body that should be extracted.</p>
					</main>
				</body>
			</html>
		`))
	}))
	defer server.Close()

	var progressed []string
	loader := NewWebLoader(WebLoaderConfig{
		RateLimit: 100,
		OnProgress: func(url string) {
			progressed = append(progressed, url)
		},
	})

	docs, err := loader.Load(context.Background(), server.URL)
	require.NoError(t, err)
	require.Len(t, docs, 1)

	doc := docs[0]
	assert.Equal(t, "Test Article", doc.Title)
	assert.Equal(t, server.URL, doc.URL)
	assert.Contains(t, doc.Content, "article body that should be extracted")
	assert.NotContains(t, doc.Content, "Site navigation")
	assert.NotEmpty(t, doc.ID)
	assert.Equal(t, server.URL, doc.Metadata["source"])
	assert.Equal(t, []string{server.URL}, progressed)
}

func TestWebLoaderLoadErrors(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer server.Close()

	loader := NewWebLoader(WebLoaderConfig{RateLimit: 100})

	_, err := loader.Load(context.Background(), server.URL+"/missing")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "404")

	_, err = loader.Load(context.Background(), "not-a-url")
	assert.Error(t, err)
}

func TestWebLoaderLoadAll(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		w.Write([]byte(`<html><head><title>Page</title></head><body><article>Some readable article text.</article></body></html>`))
	}))
	defer server.Close()

	loader := NewWebLoader(WebLoaderConfig{RateLimit: 100})

	docs, err := loader.LoadAll(context.Background(), []string{server.URL + "/a", server.URL + "/b"})
	require.NoError(t, err)
	assert.Len(t, docs, 2)
}

func TestFromText(t *testing.T) {
	docs, err := FromText("Some pasted content to summarize.")
	require.NoError(t, err)
	require.Len(t, docs, 1)
	assert.Equal(t, "Some pasted content to summarize.", docs[0].Content)
	assert.Equal(t, "text", docs[0].Metadata["source"])
	assert.NotEmpty(t, docs[0].ID)

	_, err = FromText("   ")
	assert.Error(t, err)
}
