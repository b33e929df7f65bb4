package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/anusha761/shopassist/internal/model"
)

// FeatureClassifier turns one free-text laptop description into a short
// canonical feature string, one model call per item. The string is later
// re-parsed by the profile extractor to obtain an enum record; the two-hop
// design keeps the classification prompt and the extraction schema reusable
// independently.
type FeatureClassifier struct {
	completer FreeTextCompleter
}

// NewFeatureClassifier creates a new feature classifier
func NewFeatureClassifier(completer FreeTextCompleter) *FeatureClassifier {
	return &FeatureClassifier{completer: completer}
}

// Classify maps a laptop description to the fixed feature-string template,
// e.g. "Laptop with medium GPU intensity, medium Display quality, ...".
func (c *FeatureClassifier) Classify(ctx context.Context, description string) (string, error) {
	description = strings.TrimSpace(description)
	if description == "" {
		return "", fmt.Errorf("empty laptop description")
	}

	messages := []model.ChatMessage{
		{Role: model.RoleSystem, Content: classifierSystemPrompt(description)},
		{Role: model.RoleUser, Content: classifierUserPrompt(description)},
	}

	featureString, err := c.completer.Complete(ctx, messages)
	if err != nil {
		return "", fmt.Errorf("feature classification failed: %w", err)
	}
	return strings.TrimSpace(featureString), nil
}
