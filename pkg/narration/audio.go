package narration

import (
	"encoding/base64"
	"fmt"
	"os"
	"strings"

	"github.com/xhad/zummary/internal/types"
)

// GenerateAudio renders a summary into audio bytes plus their base64
// encoding. Synthesis itself is stubbed: the cleaned narration text is
// round-tripped through a scoped temp file exactly as a real TTS engine
// would be driven, so swapping in a provider only touches synthesize.
// The temp file is removed on every exit path.
func GenerateAudio(summary string, config types.NarrationConfig) ([]byte, string, error) {
	if strings.TrimSpace(summary) == "" {
		return nil, "", fmt.Errorf("no text provided for audio generation")
	}

	cleaned := Sanitize(summary)

	tmp, err := os.CreateTemp("", "narration-*.mp3")
	if err != nil {
		return nil, "", fmt.Errorf("failed to create temp file: %w", err)
	}
	defer os.Remove(tmp.Name())
	defer tmp.Close()

	if err := synthesize(tmp.Name(), cleaned, config); err != nil {
		return nil, "", fmt.Errorf("audio synthesis failed: %w", err)
	}

	audio, err := os.ReadFile(tmp.Name())
	if err != nil {
		return nil, "", fmt.Errorf("failed to read audio file: %w", err)
	}
	if len(audio) == 0 {
		return nil, "", fmt.Errorf("failed to generate audio data")
	}

	return audio, base64.StdEncoding.EncodeToString(audio), nil
}

// synthesize writes synthesized speech for text to path. Stub: emits the
// narration text itself so callers can exercise the full pipeline without
// a speech back end.
func synthesize(path, text string, config types.NarrationConfig) error {
	lang := config.Language
	if lang == "" {
		lang = "en"
	}

	payload := fmt.Sprintf("[%s] %s", lang, text)
	return os.WriteFile(path, []byte(payload), 0644)
}
