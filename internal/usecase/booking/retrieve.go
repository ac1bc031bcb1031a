package booking

import (
	"context"

	"github.com/ayush27prasad/avatar-voice-agent-backend/internal/audit"
	domain "github.com/ayush27prasad/avatar-voice-agent-backend/internal/domain/booking"
	"github.com/ayush27prasad/avatar-voice-agent-backend/internal/models"
)

type RetrieveAppointmentsInput struct {
	SessionID     string
	ContactNumber string
}

type RetrieveAppointments struct {
	repo     domain.Repository
	sessions SessionStore
	audit    AuditTrail
}

func NewRetrieveAppointments(
	repo domain.Repository,
	sessions SessionStore,
	audit AuditTrail,
) *RetrieveAppointments {
	return &RetrieveAppointments{
		repo:     repo,
		sessions: sessions,
		audit:    audit,
	}
}

func (uc *RetrieveAppointments) Execute(
	ctx context.Context,
	in RetrieveAppointmentsInput,
) ([]models.Appointment, error) {

	state, err := uc.sessions.Get(ctx, in.SessionID)
	if err != nil {
		return nil, err
	}

	contact, err := ensureContact(state, in.ContactNumber)
	if err != nil {
		return nil, err
	}

	aps, err := uc.repo.ListAppointmentsByContact(ctx, contact)
	if err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		SessionID:     in.SessionID,
		Tool:          "retrieve_appointments",
		Status:        "retrieved",
		ContactNumber: contact,
		Payload:       map[string]any{"count": len(aps)},
	})

	return aps, nil
}
