package narration

import (
	"encoding/base64"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xhad/zummary/internal/types"
)

func TestGenerateAudio(t *testing.T) {
	audio, b64, err := GenerateAudio("A summary worth narrating.", types.NarrationConfig{Language: "en"})
	require.NoError(t, err)

	assert.NotEmpty(t, audio)

	decoded, err := base64.StdEncoding.DecodeString(b64)
	require.NoError(t, err)
	assert.Equal(t, audio, decoded)
}

func TestGenerateAudioEmptyInput(t *testing.T) {
	_, _, err := GenerateAudio("   ", types.NarrationConfig{})
	assert.Error(t, err)
}

func TestGenerateAudioDefaultsLanguage(t *testing.T) {
	audio, _, err := GenerateAudio("Text with no language configured.", types.NarrationConfig{})
	require.NoError(t, err)
	assert.Contains(t, string(audio), "[en]")
}
