package service

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/anusha761/shopassist/internal/model"
)

// Sentinel errors surfaced at turn or matching-run boundaries.
var (
	// ErrFlaggedInput marks user text rejected by the moderation policy.
	ErrFlaggedInput = errors.New("input flagged by moderation")

	// ErrExtraction marks a structured extraction whose output did not
	// conform to the six-key schema. Never papered over with defaults.
	ErrExtraction = errors.New("structured extraction failed")

	// ErrSessionNotFound is returned for unknown conversation session IDs.
	ErrSessionNotFound = errors.New("session not found")

	// ErrSessionDone is returned when a turn is sent to a finished session.
	ErrSessionDone = errors.New("session already completed")
)

// FreeTextCompleter produces a natural-language completion for a conversation.
// Used for dialogue turns and feature classification.
type FreeTextCompleter interface {
	Complete(ctx context.Context, messages []model.ChatMessage) (string, error)
}

// StructuredCompleter produces a schema-constrained completion via function
// calling and returns the raw function-call arguments.
type StructuredCompleter interface {
	CompleteFunctionCall(ctx context.Context, messages []model.ChatMessage, fns []FunctionDefinition) (json.RawMessage, error)
}

// Moderator checks raw user text against the content-safety policy.
type Moderator interface {
	Moderate(ctx context.Context, text string) (flagged bool, err error)
}

// Embedder generates embeddings for texts.
type Embedder interface {
	CreateEmbeddings(ctx context.Context, texts []string) ([][]float32, error)
}

// FunctionDefinition describes a callable function schema sent to the model.
type FunctionDefinition struct {
	Name        string          `json:"name"`
	Description string          `json:"description,omitempty"`
	Parameters  json.RawMessage `json:"parameters"`
}

// Ensure OpenAIClient implements all capability seams
var (
	_ FreeTextCompleter   = (*OpenAIClient)(nil)
	_ StructuredCompleter = (*OpenAIClient)(nil)
	_ Moderator           = (*OpenAIClient)(nil)
	_ Embedder            = (*OpenAIClient)(nil)
)
