package summarize

import "strings"

// MaxTokens is the estimated-token budget above which a document set no
// longer fits a single LLM call and gets the map-reduce treatment.
const MaxTokens = 6000

// EstimateTokens approximates the token count of raw text without
// consulting a tokenizer. It averages a word-based estimate (1.3 tokens
// per word) with a character-based one (3.5 characters per token), which
// tracks both prose and denser technical text reasonably well.
func EstimateTokens(text string) int {
	if text == "" {
		return 0
	}

	words := len(strings.Fields(text))
	chars := len(text)

	wordBased := float64(words) * 1.3
	charBased := float64(chars) / 3.5

	return int((wordBased + charBased) / 2)
}
