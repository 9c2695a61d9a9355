package loader

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/google/uuid"
	"github.com/xhad/zummary/internal/models"
	"golang.org/x/time/rate"
)

type WebLoaderConfig struct {
	RateLimit  float64 // requests per second
	Timeout    time.Duration
	OnProgress func(url string)
}

// WebLoader fetches articles and extracts their main text content.
type WebLoader struct {
	config  WebLoaderConfig
	client  *http.Client
	limiter *rate.Limiter
}

func NewWebLoader(config WebLoaderConfig) *WebLoader {
	if config.Timeout == 0 {
		config.Timeout = 30 * time.Second
	}
	if config.RateLimit == 0 {
		config.RateLimit = 2 // 2 requests per second by default
	}

	return &WebLoader{
		config: config,
		client: &http.Client{
			Timeout: config.Timeout,
		},
		limiter: rate.NewLimiter(rate.Limit(config.RateLimit), 1),
	}
}

// Load fetches a single article URL and returns it as a Document.
func (w *WebLoader) Load(ctx context.Context, rawURL string) ([]models.Document, error) {
	if _, err := url.ParseRequestURI(rawURL); err != nil {
		return nil, fmt.Errorf("invalid URL %q: %w", rawURL, err)
	}

	if w.config.OnProgress != nil {
		w.config.OnProgress(rawURL)
	}

	if err := w.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, err
	}

	resp, err := w.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch %s: %w", rawURL, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("received status code %d for URL: %s", resp.StatusCode, rawURL)
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return nil, err
	}

	content := w.extractMainContent(doc)
	if strings.TrimSpace(content) == "" {
		return nil, fmt.Errorf("no readable content found at %s", rawURL)
	}

	return []models.Document{{
		ID:      uuid.NewString(),
		URL:     rawURL,
		Title:   doc.Find("title").Text(),
		Content: content,
		Metadata: map[string]string{
			"source":       rawURL,
			"contentType":  resp.Header.Get("Content-Type"),
			"lastModified": resp.Header.Get("Last-Modified"),
		},
	}}, nil
}

// LoadAll fetches several URLs in order, rate limited between requests.
// One unreadable URL fails the whole batch so the caller never summarizes
// a silently incomplete document set.
func (w *WebLoader) LoadAll(ctx context.Context, urls []string) ([]models.Document, error) {
	var documents []models.Document
	for _, u := range urls {
		docs, err := w.Load(ctx, u)
		if err != nil {
			return nil, err
		}
		documents = append(documents, docs...)
	}
	return documents, nil
}

func (w *WebLoader) extractMainContent(doc *goquery.Document) string {
	// Try to find main content area
	selectors := []string{
		"main",
		"article",
		".content",
		"#content",
		".post",
		"#article-body",
	}

	var content string
	for _, selector := range selectors {
		if selected := doc.Find(selector); selected.Length() > 0 {
			content = selected.Text()
			break
		}
	}

	// Fallback to body if no main content found
	if content == "" {
		content = doc.Find("body").Text()
	}

	return w.cleanContent(content)
}

func (w *WebLoader) cleanContent(content string) string {
	// Remove extra whitespace
	content = strings.Join(strings.Fields(content), " ")

	// Remove common noise
	noisePatterns := []string{
		"Cookie Policy",
		"Accept Cookies",
		"Privacy Policy",
		"Terms of Service",
	}

	for _, pattern := range noisePatterns {
		content = strings.ReplaceAll(content, pattern, "")
	}

	return strings.TrimSpace(content)
}
