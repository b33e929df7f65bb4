package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/anusha761/shopassist/internal/model"
)

const terminalReply = "Great, to summarize: I need a laptop with high GPU Intensity, medium Display Quality, high Portability, high Multitasking, high Processing Speed and a Budget of 150000."

const canonicalSentence = "I need a laptop with high GPU Intensity, medium Display Quality, high Portability, high Multitasking, high Processing Speed and a Budget of 150000."

// scriptedCompleter returns its replies in order, one per Complete call
type scriptedCompleter struct {
	replies []string
	errs    []error
	calls   int
	// last conversation seen, for transcript assertions
	lastMessages []model.ChatMessage
}

func (s *scriptedCompleter) Complete(ctx context.Context, messages []model.ChatMessage) (string, error) {
	s.lastMessages = messages
	i := s.calls
	s.calls++
	if i < len(s.errs) && s.errs[i] != nil {
		return "", s.errs[i]
	}
	if i >= len(s.replies) {
		return "", errors.New("no scripted reply left")
	}
	return s.replies[i], nil
}

type stubModerator struct {
	flagged bool
	err     error
}

func (s *stubModerator) Moderate(ctx context.Context, text string) (bool, error) {
	return s.flagged, s.err
}

func newTestEngine(completer FreeTextCompleter, moderator Moderator) *ConversationEngine {
	return NewConversationEngine(
		completer,
		NewSafetyGate(moderator),
		NewProfileValidator(model.BudgetFloor),
	)
}

func TestConversationEngine_Start(t *testing.T) {
	completer := &scriptedCompleter{replies: []string{"Hello! What will you mainly use the laptop for?"}}
	engine := newTestEngine(completer, &stubModerator{})

	session, err := engine.Start(context.Background())
	if err != nil {
		t.Fatalf("Start() error = %v", err)
	}
	if session.ID == "" {
		t.Error("Start() should assign a session ID")
	}
	if len(session.Turns) != 2 {
		t.Fatalf("Start() session has %d turns, want system + welcome", len(session.Turns))
	}
	if session.Turns[0].Role != model.RoleSystem {
		t.Errorf("First turn role = %s, want system", session.Turns[0].Role)
	}
	if session.Turns[1].Role != model.RoleAssistant || session.Turns[1].Content == "" {
		t.Errorf("Second turn should be the assistant welcome, got %+v", session.Turns[1])
	}
	if session.Done {
		t.Error("New session must not be done")
	}
}

func TestConversationEngine_NonTerminalTurn(t *testing.T) {
	completer := &scriptedCompleter{replies: []string{
		"Welcome!",
		"Got it. How important is portability for you?",
	}}
	engine := newTestEngine(completer, &stubModerator{})

	session, err := engine.Start(context.Background())
	if err != nil {
		t.Fatalf("Start() error = %v", err)
	}

	result, err := engine.Advance(context.Background(), session.ID, "I mostly do video editing")
	if err != nil {
		t.Fatalf("Advance() error = %v", err)
	}
	if result.Done {
		t.Error("Probing reply must not end the conversation")
	}
	if result.ProfileSentence != "" {
		t.Errorf("Non-terminal turn carries no profile sentence, got %q", result.ProfileSentence)
	}
	if !strings.Contains(result.Message, "portability") {
		t.Errorf("Advance() message = %q, want the assistant reply", result.Message)
	}

	stored, err := engine.Get(session.ID)
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if len(stored.Turns) != 4 {
		t.Errorf("Session has %d turns after one exchange, want 4", len(stored.Turns))
	}
	if stored.Done {
		t.Error("Session must stay open after a non-terminal turn")
	}
}

func TestConversationEngine_TerminalTurn(t *testing.T) {
	completer := &scriptedCompleter{replies: []string{
		"Welcome!",
		terminalReply,
		canonicalSentence,
	}}
	engine := newTestEngine(completer, &stubModerator{})

	session, err := engine.Start(context.Background())
	if err != nil {
		t.Fatalf("Start() error = %v", err)
	}

	result, err := engine.Advance(context.Background(), session.ID, "150000 is my budget")
	if err != nil {
		t.Fatalf("Advance() error = %v", err)
	}
	if !result.Done {
		t.Fatal("Reply passing validation must end the conversation")
	}
	if result.ProfileSentence != canonicalSentence {
		t.Errorf("ProfileSentence = %q, want the restated canonical sentence", result.ProfileSentence)
	}

	stored, err := engine.Get(session.ID)
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if !stored.Done || stored.ProfileSentence != canonicalSentence {
		t.Errorf("Session not finished correctly: done=%v sentence=%q", stored.Done, stored.ProfileSentence)
	}

	// A finished session rejects further turns
	if _, err := engine.Advance(context.Background(), session.ID, "one more thing"); !errors.Is(err, ErrSessionDone) {
		t.Errorf("Advance() on a done session = %v, want ErrSessionDone", err)
	}
}

func TestConversationEngine_InvalidRestatement(t *testing.T) {
	completer := &scriptedCompleter{replies: []string{
		"Welcome!",
		terminalReply,
		"Sure! Your requirements sound reasonable.",
	}}
	engine := newTestEngine(completer, &stubModerator{})

	session, err := engine.Start(context.Background())
	if err != nil {
		t.Fatalf("Start() error = %v", err)
	}

	if _, err := engine.Advance(context.Background(), session.ID, "150000 is my budget"); !errors.Is(err, ErrExtraction) {
		t.Errorf("Advance() with a bad restatement = %v, want ErrExtraction", err)
	}
}

func TestConversationEngine_FlaggedInput(t *testing.T) {
	moderator := &stubModerator{}
	completer := &scriptedCompleter{replies: []string{"Welcome!"}}
	engine := newTestEngine(completer, moderator)

	session, err := engine.Start(context.Background())
	if err != nil {
		t.Fatalf("Start() error = %v", err)
	}

	moderator.flagged = true
	if _, err := engine.Advance(context.Background(), session.ID, "something hostile"); !errors.Is(err, ErrFlaggedInput) {
		t.Fatalf("Advance() with flagged input = %v, want ErrFlaggedInput", err)
	}

	// Rejected input never enters the transcript
	stored, err := engine.Get(session.ID)
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if len(stored.Turns) != 2 {
		t.Errorf("Transcript grew to %d turns after a rejected input, want 2", len(stored.Turns))
	}
}

func TestConversationEngine_ModerationOutageFailsClosed(t *testing.T) {
	moderator := &stubModerator{err: errors.New("connection reset")}
	completer := &scriptedCompleter{replies: []string{"Welcome!"}}
	engine := newTestEngine(completer, moderator)

	session, err := engine.Start(context.Background())
	if err != nil {
		t.Fatalf("Start() error = %v", err)
	}

	_, err = engine.Advance(context.Background(), session.ID, "hello")
	if err == nil {
		t.Fatal("Advance() must reject turns when moderation is unreachable")
	}
	if errors.Is(err, ErrFlaggedInput) {
		t.Error("Moderation outage is not the same as flagged input")
	}
}

func TestConversationEngine_CompletionFailureLeavesTranscript(t *testing.T) {
	completer := &scriptedCompleter{
		replies: []string{"Welcome!", ""},
		errs:    []error{nil, errors.New("upstream 500")},
	}
	engine := newTestEngine(completer, &stubModerator{})

	session, err := engine.Start(context.Background())
	if err != nil {
		t.Fatalf("Start() error = %v", err)
	}

	if _, err := engine.Advance(context.Background(), session.ID, "hello"); err == nil {
		t.Fatal("Advance() should surface the completion error")
	}

	stored, err := engine.Get(session.ID)
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if len(stored.Turns) != 2 {
		t.Errorf("Failed turn left %d turns, want the original 2", len(stored.Turns))
	}
}

func TestConversationEngine_UnknownSession(t *testing.T) {
	engine := newTestEngine(&scriptedCompleter{}, &stubModerator{})

	if _, err := engine.Advance(context.Background(), "missing", "hello"); !errors.Is(err, ErrSessionNotFound) {
		t.Errorf("Advance() on unknown session = %v, want ErrSessionNotFound", err)
	}
	if _, err := engine.Get("missing"); !errors.Is(err, ErrSessionNotFound) {
		t.Errorf("Get() on unknown session = %v, want ErrSessionNotFound", err)
	}
}
