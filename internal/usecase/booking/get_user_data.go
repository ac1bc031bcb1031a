package booking

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/ayush27prasad/avatar-voice-agent-backend/internal/audit"
	domain "github.com/ayush27prasad/avatar-voice-agent-backend/internal/domain/booking"
	"github.com/ayush27prasad/avatar-voice-agent-backend/internal/httperr"
	"github.com/ayush27prasad/avatar-voice-agent-backend/internal/session"
	"github.com/ayush27prasad/avatar-voice-agent-backend/internal/validators"
)

type GetUserDataInput struct {
	SessionID     string
	ContactNumber string
}

type GetUserData struct {
	repo     domain.Repository
	sessions SessionStore
	audit    AuditTrail
}

func NewGetUserData(
	repo domain.Repository,
	sessions SessionStore,
	audit AuditTrail,
) *GetUserData {
	return &GetUserData{
		repo:     repo,
		sessions: sessions,
		audit:    audit,
	}
}

// Execute resolves who the caller is: session state first, then a
// database lookup for an explicitly provided number. Mirrors the
// fallback order the voice agent relies on mid-call.
func (uc *GetUserData) Execute(
	ctx context.Context,
	in GetUserDataInput,
) (*session.State, error) {

	state, err := uc.sessions.Get(ctx, in.SessionID)
	if err != nil {
		return nil, err
	}

	if state.ContactNumber != "" || state.Name != "" {
		return state, nil
	}

	if in.ContactNumber != "" {
		normalized, err := validators.NormalizePhone(in.ContactNumber)
		if err != nil {
			return nil, err
		}

		user, err := uc.repo.GetUserByContact(ctx, normalized)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, httperr.ErrBusiness("user_not_found")
			}
			return nil, err
		}

		state.ContactNumber = user.ContactNumber
		state.Name = user.Name
		if err := uc.sessions.Save(ctx, in.SessionID, state); err != nil {
			return nil, err
		}

		uc.audit.Dispatch(audit.Event{
			SessionID:     in.SessionID,
			Tool:          "get_user_data",
			Status:        "found",
			ContactNumber: user.ContactNumber,
			Payload:       map[string]any{"name": user.Name},
		})

		return state, nil
	}

	uc.audit.Dispatch(audit.Event{
		SessionID: in.SessionID,
		Tool:      "get_user_data",
		Status:    "missing",
	})

	return nil, httperr.ErrBusiness("missing_contact")
}
