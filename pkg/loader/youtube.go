package loader

import (
	"context"
	"encoding/xml"
	"fmt"
	"html"
	"io"
	"net/http"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/xhad/zummary/internal/models"
)

type YouTubeLoaderConfig struct {
	Timeout time.Duration
	BaseURL string // YouTube endpoint override, used by tests
}

// YouTubeLoader fetches video transcripts and returns them as Documents.
type YouTubeLoader struct {
	config YouTubeLoaderConfig
	client *http.Client
}

var (
	videoIDPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?:youtube\.com/watch\?v=|youtu\.be/|youtube\.com/embed/|youtube\.com/v/|youtube\.com/live/)([^&\n?#]+)`),
		regexp.MustCompile(`youtube\.com/watch\?.*v=([^&\n?#]+)`),
	}
	videoIDTrailer  = regexp.MustCompile(`[&?].*`)
	videoIDFormat   = regexp.MustCompile(`^[a-zA-Z0-9_-]{11}$`)
	youtubeDomains  = regexp.MustCompile(`(?i)(?:youtube\.com|youtu\.be)`)
	captionTrackURL = regexp.MustCompile(`"captionTracks":\[\{"baseUrl":"(.*?)"`)

	bracketedNoise     = regexp.MustCompile(`\[.*?\]`)
	parenthesizedNoise = regexp.MustCompile(`\(.*?\)`)
	spaceBeforePunct   = regexp.MustCompile(`(\w)\s+([.,!?])`)
	missingSpaceAfter  = regexp.MustCompile(`([.!?])\s*([a-z])`)
)

func NewYouTubeLoader(config YouTubeLoaderConfig) *YouTubeLoader {
	if config.Timeout == 0 {
		config.Timeout = 30 * time.Second
	}
	if config.BaseURL == "" {
		config.BaseURL = "https://www.youtube.com"
	}

	return &YouTubeLoader{
		config: config,
		client: &http.Client{
			Timeout: config.Timeout,
		},
	}
}

// ExtractVideoID pulls the 11-character video ID out of the common
// YouTube URL shapes (watch, short links, embeds, live). Returns an empty
// string when no ID can be found.
func ExtractVideoID(rawURL string) string {
	rawURL = strings.TrimSpace(rawURL)

	for _, pattern := range videoIDPatterns {
		if match := pattern.FindStringSubmatch(rawURL); match != nil {
			return videoIDTrailer.ReplaceAllString(match[1], "")
		}
	}

	return ""
}

// ValidateURL reports whether the URL is a usable YouTube video link,
// with a human-readable reason when it is not.
func ValidateURL(rawURL string) (bool, string) {
	rawURL = strings.TrimSpace(rawURL)
	if rawURL == "" {
		return false, "URL is required"
	}

	if !youtubeDomains.MatchString(rawURL) {
		return false, "URL must be from a YouTube domain"
	}

	videoID := ExtractVideoID(rawURL)
	if videoID == "" {
		return false, "Could not extract video ID from URL"
	}

	if !videoIDFormat.MatchString(videoID) {
		return false, "Invalid video ID format"
	}

	return true, "Valid YouTube URL"
}

// Load fetches the transcript for a YouTube video URL. The watch page is
// scraped for its first caption track, whose timed-text XML is then
// flattened and cleaned into one transcript Document.
func (y *YouTubeLoader) Load(ctx context.Context, rawURL string) ([]models.Document, error) {
	valid, reason := ValidateURL(rawURL)
	if !valid {
		return nil, fmt.Errorf("invalid YouTube URL: %s", reason)
	}

	videoID := ExtractVideoID(rawURL)

	trackURL, err := y.findCaptionTrack(ctx, videoID)
	if err != nil {
		return nil, err
	}

	transcript, err := y.fetchTranscript(ctx, trackURL)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch transcript for video %s: %w", videoID, err)
	}

	transcript = CleanTranscriptText(transcript)
	if len(strings.TrimSpace(transcript)) < 50 {
		return nil, fmt.Errorf("transcript is too short or empty; the video might not have sufficient spoken content")
	}

	return []models.Document{{
		ID:      uuid.NewString(),
		URL:     rawURL,
		Title:   "YouTube Video Transcript",
		Content: transcript,
		Metadata: map[string]string{
			"source":  rawURL,
			"videoId": videoID,
		},
	}}, nil
}

func (y *YouTubeLoader) findCaptionTrack(ctx context.Context, videoID string) (string, error) {
	watchURL := y.config.BaseURL + "/watch?v=" + videoID

	body, err := y.get(ctx, watchURL)
	if err != nil {
		return "", fmt.Errorf("failed to fetch watch page for video %s: %w", videoID, err)
	}

	match := captionTrackURL.FindStringSubmatch(body)
	if match == nil {
		return "", fmt.Errorf("no transcript available for this video (ID: %s); it may have no captions, be private, or have been removed", videoID)
	}

	// The track URL sits inside the player-response JSON, which escapes
	// every ampersand between its query parameters as &.
	return strings.ReplaceAll(match[1], `&`, "&"), nil
}

func (y *YouTubeLoader) fetchTranscript(ctx context.Context, trackURL string) (string, error) {
	body, err := y.get(ctx, trackURL)
	if err != nil {
		return "", err
	}

	var timedText struct {
		Texts []struct {
			Value string `xml:",chardata"`
		} `xml:"text"`
	}
	if err := xml.Unmarshal([]byte(body), &timedText); err != nil {
		return "", fmt.Errorf("failed to parse timed text: %w", err)
	}

	lines := make([]string, 0, len(timedText.Texts))
	for _, t := range timedText.Texts {
		lines = append(lines, html.UnescapeString(t.Value))
	}

	return strings.Join(lines, "\n"), nil
}

func (y *YouTubeLoader) get(ctx context.Context, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", err
	}

	resp, err := y.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusTooManyRequests {
		return "", fmt.Errorf("YouTube is rate-limiting requests; try again in a few minutes")
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("received status code %d for URL: %s", resp.StatusCode, url)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}

	return string(body), nil
}

// CleanTranscriptText normalizes raw caption text: collapses whitespace,
// drops bracketed stage directions like [Music], and repairs spacing
// around punctuation left by line-by-line captions.
func CleanTranscriptText(text string) string {
	if text == "" {
		return ""
	}

	text = strings.Join(strings.Fields(text), " ")
	text = bracketedNoise.ReplaceAllString(text, "")
	text = parenthesizedNoise.ReplaceAllString(text, "")
	text = spaceBeforePunct.ReplaceAllString(text, "$1$2")
	text = missingSpaceAfter.ReplaceAllString(text, "$1 $2")

	// Removing noise can leave doubled spaces behind.
	return strings.Join(strings.Fields(text), " ")
}
