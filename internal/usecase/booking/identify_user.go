package booking

import (
	"context"
	"strings"

	"github.com/ayush27prasad/avatar-voice-agent-backend/internal/audit"
	domain "github.com/ayush27prasad/avatar-voice-agent-backend/internal/domain/booking"
	"github.com/ayush27prasad/avatar-voice-agent-backend/internal/session"
	"github.com/ayush27prasad/avatar-voice-agent-backend/internal/validators"
)

// ======================================================
// INPUT
// ======================================================

type IdentifyUserInput struct {
	SessionID     string
	ContactNumber string
	Name          string
}

// ======================================================
// USE CASE
// ======================================================

type IdentifyUser struct {
	repo     domain.Repository
	sessions SessionStore
	audit    AuditTrail
}

func NewIdentifyUser(
	repo domain.Repository,
	sessions SessionStore,
	audit AuditTrail,
) *IdentifyUser {
	return &IdentifyUser{
		repo:     repo,
		sessions: sessions,
		audit:    audit,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *IdentifyUser) Execute(
	ctx context.Context,
	in IdentifyUserInput,
) (*session.State, error) {

	normalized, err := validators.NormalizePhone(in.ContactNumber)
	if err != nil {
		return nil, err
	}

	state, err := uc.sessions.Get(ctx, in.SessionID)
	if err != nil {
		return nil, err
	}

	state.ContactNumber = normalized
	if name := strings.TrimSpace(in.Name); name != "" {
		state.Name = name
	}

	ensureUser(ctx, uc.repo, normalized, state.Name)

	if err := uc.sessions.Save(ctx, in.SessionID, state); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		SessionID:     in.SessionID,
		Tool:          "identify_user",
		Status:        "identified",
		ContactNumber: normalized,
		Payload:       map[string]any{"name": state.Name},
	})

	return state, nil
}
