package ai

import "context"

// TextGenerator produces a completion from a system instruction and a
// user prompt. The concierge treats the provider as an opaque remote.
type TextGenerator interface {
	GenerateText(ctx context.Context, systemPrompt, userPrompt string) (string, error)
}
