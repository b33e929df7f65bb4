package service

import (
	"context"
	"fmt"
)

// SafetyGate checks raw user text against the moderation policy before it
// enters the conversation. The check fails closed: an unreachable moderation
// service rejects the turn rather than letting unchecked input through.
type SafetyGate struct {
	moderator Moderator
}

// NewSafetyGate creates a new safety gate
func NewSafetyGate(moderator Moderator) *SafetyGate {
	return &SafetyGate{moderator: moderator}
}

// Check returns ErrFlaggedInput when the text violates the moderation policy
// and a wrapped transport error when the policy could not be consulted.
func (g *SafetyGate) Check(ctx context.Context, text string) error {
	flagged, err := g.moderator.Moderate(ctx, text)
	if err != nil {
		return fmt.Errorf("moderation check failed: %w", err)
	}
	if flagged {
		return ErrFlaggedInput
	}
	return nil
}
