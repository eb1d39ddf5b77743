package gagiteck

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// Session holds the conversation state for a multi-turn agent. An Agent is
// stateless; continuing a conversation means passing the same Session to
// RunSession repeatedly.
type Session struct {
	ID        string
	Messages  []Message
	Metadata  SessionMeta
	CreatedAt time.Time
	UpdatedAt time.Time
}

// SessionMeta contains summary statistics for a session.
type SessionMeta struct {
	Model       string
	TotalCost   decimal.Decimal
	TotalTokens Usage
	NumTurns    int
}

// NewSession creates a new empty session.
func NewSession() *Session {
	now := time.Now()
	return &Session{
		ID:        GenerateID(PrefixSession),
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// Clone returns a copy of the session with a fresh ID and copied history.
func (s *Session) Clone() *Session {
	msgs := make([]Message, len(s.Messages))
	copy(msgs, s.Messages)

	now := time.Now()
	return &Session{
		ID:        GenerateID(PrefixSession),
		Messages:  msgs,
		Metadata:  s.Metadata,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// Clear drops the conversation history but keeps the session identity.
func (s *Session) Clear() {
	s.Messages = nil
	s.Metadata = SessionMeta{}
	s.UpdatedAt = time.Now()
}

// SessionStore defines the interface for session persistence backends.
type SessionStore interface {
	Save(ctx context.Context, session *Session) error
	Load(ctx context.Context, id string) (*Session, error)
	Delete(ctx context.Context, id string) error
}

// SessionLister is implemented by stores that can enumerate sessions.
type SessionLister interface {
	List(ctx context.Context) ([]*Session, error)
}
