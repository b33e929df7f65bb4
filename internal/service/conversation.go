package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/anusha761/shopassist/internal/model"

	"github.com/google/uuid"
)

// SessionStore holds conversation sessions in memory. Turn history is
// append-only; readers get defensive copies.
type SessionStore struct {
	mu       sync.RWMutex
	sessions map[string]*model.Session
}

// NewSessionStore creates an empty session store
func NewSessionStore() *SessionStore {
	return &SessionStore{sessions: make(map[string]*model.Session)}
}

// Put stores a new session
func (s *SessionStore) Put(session *model.Session) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[session.ID] = session
}

// Get returns a copy of the session so callers can iterate without the lock
func (s *SessionStore) Get(id string) (*model.Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	session, ok := s.sessions[id]
	if !ok {
		return nil, ErrSessionNotFound
	}

	copied := *session
	copied.Turns = make([]model.ChatMessage, len(session.Turns))
	copy(copied.Turns, session.Turns)
	return &copied, nil
}

// Append adds turns to a session's history
func (s *SessionStore) Append(id string, turns ...model.ChatMessage) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, ok := s.sessions[id]
	if !ok {
		return ErrSessionNotFound
	}
	session.Turns = append(session.Turns, turns...)
	session.LastUsed = time.Now()
	return nil
}

// Finish marks a session done and records its canonical profile sentence
func (s *SessionStore) Finish(id, profileSentence string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, ok := s.sessions[id]
	if !ok {
		return ErrSessionNotFound
	}
	session.Done = true
	session.ProfileSentence = profileSentence
	session.LastUsed = time.Now()
	return nil
}

// TurnResult is the engine's outcome for one user turn. When Done is true,
// ProfileSentence carries the canonical requirement sentence.
type TurnResult struct {
	Message         string
	Done            bool
	ProfileSentence string
}

// ConversationEngine drives the multi-turn requirement gathering dialogue.
// Fill-state tracking is delegated to the instructed model; the engine only
// tests each assistant turn against the deterministic validator to decide
// whether the terminal canonical sentence has been reached.
type ConversationEngine struct {
	completer FreeTextCompleter
	gate      *SafetyGate
	validator *ProfileValidator
	sessions  *SessionStore
}

// NewConversationEngine creates a new conversation engine
func NewConversationEngine(completer FreeTextCompleter, gate *SafetyGate, validator *ProfileValidator) *ConversationEngine {
	return &ConversationEngine{
		completer: completer,
		gate:      gate,
		validator: validator,
		sessions:  NewSessionStore(),
	}
}

// Start opens a new session: the fixed system instruction plus a
// model-generated welcome turn.
func (e *ConversationEngine) Start(ctx context.Context) (*model.Session, error) {
	turns := []model.ChatMessage{
		{Role: model.RoleSystem, Content: conversationSystemPrompt},
	}

	welcome, err := e.completer.Complete(ctx, turns)
	if err != nil {
		return nil, fmt.Errorf("failed to open conversation: %w", err)
	}

	session := &model.Session{
		ID:        uuid.NewString(),
		Turns:     append(turns, model.ChatMessage{Role: model.RoleAssistant, Content: welcome}),
		CreatedAt: time.Now(),
		LastUsed:  time.Now(),
	}
	e.sessions.Put(session)
	return session, nil
}

// Get returns a copy of a session
func (e *ConversationEngine) Get(id string) (*model.Session, error) {
	return e.sessions.Get(id)
}

// Advance processes one user turn: safety gate, one completion call, then a
// terminal check on the assistant's reply. The transcript is committed only
// after the external call succeeds, so a failed turn leaves no partial state.
func (e *ConversationEngine) Advance(ctx context.Context, sessionID, userText string) (*TurnResult, error) {
	session, err := e.sessions.Get(sessionID)
	if err != nil {
		return nil, err
	}
	if session.Done {
		return nil, ErrSessionDone
	}

	if err := e.gate.Check(ctx, userText); err != nil {
		return nil, err
	}

	userTurn := model.ChatMessage{Role: model.RoleUser, Content: userText}
	reply, err := e.completer.Complete(ctx, append(session.Turns, userTurn))
	if err != nil {
		return nil, fmt.Errorf("conversation turn failed: %w", err)
	}

	assistantTurn := model.ChatMessage{Role: model.RoleAssistant, Content: reply}
	if err := e.sessions.Append(sessionID, userTurn, assistantTurn); err != nil {
		return nil, err
	}

	// Terminal when the assistant's output passes the hard validation rules
	if result := e.validator.Validate(reply); !result.Accepted {
		return &TurnResult{Message: reply}, nil
	}

	sentence, err := e.restate(ctx, reply)
	if err != nil {
		return nil, err
	}

	if err := e.sessions.Finish(sessionID, sentence); err != nil {
		return nil, err
	}
	return &TurnResult{Message: reply, Done: true, ProfileSentence: sentence}, nil
}

// restate squeezes the canonical profile sentence out of the assistant's
// closing summary and re-validates it before handing it downstream.
func (e *ConversationEngine) restate(ctx context.Context, assistantText string) (string, error) {
	messages := []model.ChatMessage{
		{Role: model.RoleSystem, Content: restaterSystemPrompt},
		{Role: model.RoleUser, Content: fmt.Sprintf("Here is the input: %s", assistantText)},
	}

	sentence, err := e.completer.Complete(ctx, messages)
	if err != nil {
		return "", fmt.Errorf("failed to restate profile sentence: %w", err)
	}

	if result := e.validator.Validate(sentence); !result.Accepted {
		return "", fmt.Errorf("%w: restated sentence invalid: %s", ErrExtraction, result.Reason)
	}
	return sentence, nil
}
