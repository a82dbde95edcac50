// Package ai drives the generative translation tier. Two hosted model
// backends sit behind a common Provider interface; the Manager picks one
// per the configured order, falls back on failure, and trips a circuit
// breaker when both go unhealthy.
package ai

import "context"

// GenerateOptions tunes a single completion call.
type GenerateOptions struct {
	// JSONMode asks the backend for a bare JSON document. Responses are
	// still routed through ExtractJSON because models do not always comply.
	JSONMode  bool
	MaxTokens int
}

// Provider is one hosted model backend.
type Provider interface {
	Name() string
	Generate(ctx context.Context, prompt string, opts GenerateOptions) (string, error)
	Ping(ctx context.Context) bool
}
