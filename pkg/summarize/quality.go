package summarize

import "strings"

// Structural markers a well-formed summary is expected to carry somewhere
// in its text. The prompt templates all ask for titled, sectioned output.
var structureMarkers = []string{"title", "introduction", "conclusion", "key", "main"}

// ValidateQuality checks a generated summary against coarse quality
// gates: overall length bounds, a minimum word count, and the presence of
// at least one structural marker. It returns false plus a reason when the
// summary should not be shown to the user as-is.
func ValidateQuality(summary string) (bool, string) {
	summary = strings.TrimSpace(summary)

	if summary == "" {
		return false, "Summary is empty or invalid"
	}

	if len(summary) < 100 {
		return false, "Summary is too short"
	}

	if len(summary) > 10000 {
		return false, "Summary is too long"
	}

	lower := strings.ToLower(summary)
	hasStructure := false
	for _, marker := range structureMarkers {
		if strings.Contains(lower, marker) {
			hasStructure = true
			break
		}
	}
	if !hasStructure {
		return false, "Summary lacks proper structure"
	}

	if len(strings.Fields(summary)) < 50 {
		return false, "Summary has too few words"
	}

	return true, "Summary quality is acceptable"
}
