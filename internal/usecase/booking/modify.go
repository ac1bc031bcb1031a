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

type ModifyAppointmentInput struct {
	SessionID string

	OriginalDate string
	OriginalTime string
	NewDate      string
	NewTime      string

	ContactNumber string
}

type ModifyAppointment struct {
	repo     domain.Repository
	sessions SessionStore
	audit    AuditTrail
}

func NewModifyAppointment(
	repo domain.Repository,
	sessions SessionStore,
	audit AuditTrail,
) *ModifyAppointment {
	return &ModifyAppointment{
		repo:     repo,
		sessions: sessions,
		audit:    audit,
	}
}

func (uc *ModifyAppointment) Execute(
	ctx context.Context,
	in ModifyAppointmentInput,
) (*models.Appointment, error) {

	state, err := uc.sessions.Get(ctx, in.SessionID)
	if err != nil {
		return nil, err
	}

	contact, err := ensureContact(state, in.ContactNumber)
	if err != nil {
		return nil, err
	}

	oldDate, err := validators.NormalizeDate(in.OriginalDate)
	if err != nil {
		return nil, err
	}
	oldTime, err := validators.NormalizeTime(in.OriginalTime)
	if err != nil {
		return nil, err
	}
	newDate, err := validators.NormalizeDate(in.NewDate)
	if err != nil {
		return nil, err
	}
	newTime, err := validators.NormalizeTime(in.NewTime)
	if err != nil {
		return nil, err
	}

	ap, err := uc.repo.FindAppointment(ctx, contact, domain.ParseDate(oldDate), oldTime)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			uc.audit.Dispatch(audit.Event{
				SessionID:     in.SessionID,
				Tool:          "modify_appointment",
				Status:        "not_found",
				ContactNumber: contact,
				Payload:       map[string]any{"slot_date": oldDate, "slot_time": oldTime},
			})
			return nil, httperr.ErrBusiness("appointment_not_found")
		}
		return nil, err
	}

	// asking for the slot it already has is a no-op, not an error
	if newDate == oldDate && newTime == oldTime {
		return ap, nil
	}

	if err := domain.CanModify(domain.Status(ap.Status)); err != nil {
		return nil, err
	}

	taken, err := uc.repo.SlotTaken(ctx, domain.ParseDate(newDate), newTime, ap.ID)
	if err != nil {
		return nil, err
	}
	if taken {
		uc.audit.Dispatch(audit.Event{
			SessionID:     in.SessionID,
			Tool:          "modify_appointment",
			Status:        "conflict",
			ContactNumber: contact,
			Payload:       map[string]any{"slot_date": newDate, "slot_time": newTime},
		})
		return nil, httperr.ErrBusiness("slot_conflict")
	}

	ap.SlotDate = domain.ParseDate(newDate)
	ap.SlotTime = newTime
	ap.Status = string(domain.StatusBooked)

	if err := uc.repo.UpdateAppointment(ctx, ap); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		SessionID:     in.SessionID,
		Tool:          "modify_appointment",
		Status:        "modified",
		ContactNumber: contact,
		Payload: map[string]any{
			"appointment_id": ap.ID,
			"old_date":       oldDate,
			"old_time":       oldTime,
			"new_date":       newDate,
			"new_time":       newTime,
		},
	})

	return ap, nil
}
