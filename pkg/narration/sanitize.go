// Package narration prepares summary text for a speech back end. The
// pipeline here only cleans and bounds the text; actual synthesis sits
// behind a stub until a real TTS provider is wired in.
package narration

import (
	"regexp"
	"strings"
)

const (
	// maxNarrationChars is the hard input ceiling of the downstream
	// speech capability.
	maxNarrationChars = 5000

	// truncateAt leaves room for the continuation notice below the
	// ceiling.
	truncateAt = 4800

	continuationNotice = "... Summary continues in text format."
)

var (
	boldPattern    = regexp.MustCompile(`\*\*(.*?)\*\*`)
	italicPattern  = regexp.MustCompile(`\*(.*?)\*`)
	headerPattern  = regexp.MustCompile(`#{1,6}\s*(.*)`)
	codePattern    = regexp.MustCompile("`(.*?)`")
	linkPattern    = regexp.MustCompile(`\[(.*?)\]\(.*?\)`)
	strayPattern   = regexp.MustCompile("[#*_>`\\-•]")
	numListPattern = regexp.MustCompile(`(?m)^\s*[\d]+\.\s*`)
	bulletPattern  = regexp.MustCompile(`(?m)^\s*[•\-]\s*`)
	midLinePattern = regexp.MustCompile(`([^.!?])\n`)
	newlinePattern = regexp.MustCompile(`\n+`)
	spacesPattern  = regexp.MustCompile(`\s{2,}`)
)

// Spelled-out replacements for terms speech engines mangle. Expansion is
// ordered so the output is stable run to run.
var abbreviations = []struct {
	pattern     *regexp.Regexp
	replacement string
}{
	{regexp.MustCompile(`(?i)\bAPI\b`), "A P I"},
	{regexp.MustCompile(`(?i)\bURL\b`), "U R L"},
	{regexp.MustCompile(`(?i)\bHTML\b`), "H T M L"},
	{regexp.MustCompile(`(?i)\bCSS\b`), "C S S"},
	{regexp.MustCompile(`(?i)\bJS\b`), "JavaScript"},
	{regexp.MustCompile(`(?i)\bAI\b`), "A I"},
	{regexp.MustCompile(`(?i)\bML\b`), "Machine Learning"},
	{regexp.MustCompile(`(?i)\bNLP\b`), "Natural Language Processing"},
	{regexp.MustCompile(`(?i)\bPDF\b`), "P D F"},
	{regexp.MustCompile(`(?i)\bCEO\b`), "C E O"},
	{regexp.MustCompile(`(?i)\bCTO\b`), "C T O"},
	{regexp.MustCompile(`(?i)\bUSA\b`), "United States"},
	{regexp.MustCompile(`(?i)\bUK\b`), "United Kingdom"},
}

// Sanitize rewrites summary text into a plain narratable string. Markup
// is stripped keeping inner text, list prefixes removed, line breaks
// folded into sentences, whitespace collapsed, and abbreviations spelled
// out for pronunciation. The rules build on each other, so their order is
// fixed. Sanitize never fails; output longer than the ceiling is
// truncated with a continuation notice.
func Sanitize(text string) string {
	if text == "" {
		return ""
	}

	// Markdown formatting, keeping the inner text.
	text = boldPattern.ReplaceAllString(text, "$1")
	text = italicPattern.ReplaceAllString(text, "$1")
	text = headerPattern.ReplaceAllString(text, "$1")
	text = codePattern.ReplaceAllString(text, "$1")
	text = linkPattern.ReplaceAllString(text, "$1")

	// Stray markup characters and list prefixes.
	text = strayPattern.ReplaceAllString(text, "")
	text = numListPattern.ReplaceAllString(text, "")
	text = bulletPattern.ReplaceAllString(text, "")

	// Turn line breaks into sentence boundaries, then flatten.
	text = midLinePattern.ReplaceAllString(text, "$1. ")
	text = newlinePattern.ReplaceAllString(text, " ")
	text = spacesPattern.ReplaceAllString(text, " ")

	for _, abbr := range abbreviations {
		text = abbr.pattern.ReplaceAllString(text, abbr.replacement)
	}

	text = strings.TrimSpace(text)

	if runes := []rune(text); len(runes) > maxNarrationChars {
		text = string(runes[:truncateAt]) + continuationNotice
	}

	return text
}
