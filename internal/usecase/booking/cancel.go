package booking

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/ayush27prasad/avatar-voice-agent-backend/internal/audit"
	domain "github.com/ayush27prasad/avatar-voice-agent-backend/internal/domain/booking"
	"github.com/ayush27prasad/avatar-voice-agent-backend/internal/httperr"
	"github.com/ayush27prasad/avatar-voice-agent-backend/internal/models"
	"github.com/ayush27prasad/avatar-voice-agent-backend/internal/validators"
)

type CancelAppointmentInput struct {
	SessionID string

	Date string
	Time string

	ContactNumber string
	Reason        string
}

type CancelAppointment struct {
	repo     domain.Repository
	sessions SessionStore
	audit    AuditTrail
}

func NewCancelAppointment(
	repo domain.Repository,
	sessions SessionStore,
	audit AuditTrail,
) *CancelAppointment {
	return &CancelAppointment{
		repo:     repo,
		sessions: sessions,
		audit:    audit,
	}
}

func (uc *CancelAppointment) Execute(
	ctx context.Context,
	in CancelAppointmentInput,
) (*models.Appointment, error) {

	state, err := uc.sessions.Get(ctx, in.SessionID)
	if err != nil {
		return nil, err
	}

	contact, err := ensureContact(state, in.ContactNumber)
	if err != nil {
		return nil, err
	}

	slotDate, err := validators.NormalizeDate(in.Date)
	if err != nil {
		return nil, err
	}
	slotTime, err := validators.NormalizeTime(in.Time)
	if err != nil {
		return nil, err
	}

	ap, err := uc.repo.FindAppointment(ctx, contact, domain.ParseDate(slotDate), slotTime)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			uc.audit.Dispatch(audit.Event{
				SessionID:     in.SessionID,
				Tool:          "cancel_appointment",
				Status:        "not_found",
				ContactNumber: contact,
				Payload:       map[string]any{"slot_date": slotDate, "slot_time": slotTime},
			})
			return nil, httperr.ErrBusiness("appointment_not_found")
		}
		return nil, err
	}

	if err := domain.CanCancel(domain.Status(ap.Status)); err != nil {
		return nil, err
	}

	ap.Status = string(domain.StatusCancelled)
	if in.Reason != "" {
		ap.Notes = in.Reason
	}

	if err := uc.repo.UpdateAppointment(ctx, ap); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		SessionID:     in.SessionID,
		Tool:          "cancel_appointment",
		Status:        "cancelled",
		ContactNumber: contact,
		Payload: map[string]any{
			"appointment_id": ap.ID,
			"slot_date":      slotDate,
			"slot_time":      slotTime,
			"reason":         in.Reason,
		},
	})

	return ap, nil
}
