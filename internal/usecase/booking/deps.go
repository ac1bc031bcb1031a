package booking

import (
	"context"

	"github.com/ayush27prasad/avatar-voice-agent-backend/internal/audit"
	"github.com/ayush27prasad/avatar-voice-agent-backend/internal/session"
)

// SessionStore is the per-call conversation state backend.
// Satisfied by *session.Store.
type SessionStore interface {
	Get(ctx context.Context, sessionID string) (*session.State, error)
	Save(ctx context.Context, sessionID string, state *session.State) error
	Clear(ctx context.Context, sessionID string) error
}

// AuditTrail records tool invocation outcomes.
// Satisfied by *audit.Dispatcher.
type AuditTrail interface {
	Dispatch(ev audit.Event)
}
