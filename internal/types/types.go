package types

import "context"

// LLM is the single capability the pipeline needs from a language model:
// a fully-formatted prompt in, a completion out. Implementations must be
// safe to reuse across requests.
type LLM interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

// NarrationConfig selects voice options for audio generation.
type NarrationConfig struct {
	Language string
	Slow     bool
}
