package generation

import "context"

// Prompt is the composed, provider-agnostic generation instruction.
type Prompt struct {
	System string
	User   string
}

// Provider executes one composed prompt against an LLM and returns the raw
// text payload. One request/response call; no streaming, no multi-turn state,
// no internal retries.
type Provider interface {
	Complete(ctx context.Context, prompt Prompt) (string, error)
}
