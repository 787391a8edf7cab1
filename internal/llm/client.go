package llm

import (
	"context"
)

// LLMClient is the single capability the analysis pipeline needs from
// a language model provider. Concrete clients wrap OpenAI, Claude and
// Gemini; Ollama is served through the OpenAI-compatible client. The
// caller owns construction and lifecycle.
type LLMClient interface {
	Generate(ctx context.Context, prompt string) (string, error)
}
