package booking

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/ayush27prasad/avatar-voice-agent-backend/internal/audit"
	domain "github.com/ayush27prasad/avatar-voice-agent-backend/internal/domain/booking"
	"github.com/ayush27prasad/avatar-voice-agent-backend/internal/httperr"
	"github.com/ayush27prasad/avatar-voice-agent-backend/internal/models"
	"github.com/ayush27prasad/avatar-voice-agent-backend/internal/validators"
)

// ======================================================
// INPUT
// ======================================================

type BookAppointmentInput struct {
	SessionID string

	Date string
	Time string

	ContactNumber string
	Name          string
	Notes         string
}

// ======================================================
// USE CASE
// ======================================================

type BookAppointment struct {
	repo     domain.Repository
	sessions SessionStore
	audit    AuditTrail
}

func NewBookAppointment(
	repo domain.Repository,
	sessions SessionStore,
	audit AuditTrail,
) *BookAppointment {
	return &BookAppointment{
		repo:     repo,
		sessions: sessions,
		audit:    audit,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *BookAppointment) Execute(
	ctx context.Context,
	in BookAppointmentInput,
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

	if name := strings.TrimSpace(in.Name); name != "" {
		state.Name = name
	}

	ensureUser(ctx, uc.repo, contact, state.Name)

	taken, err := uc.repo.SlotTaken(ctx, domain.ParseDate(slotDate), slotTime, uuid.Nil)
	if err != nil {
		return nil, err
	}
	if taken {
		uc.audit.Dispatch(audit.Event{
			SessionID:     in.SessionID,
			Tool:          "book_appointment",
			Status:        "conflict",
			ContactNumber: contact,
			Payload:       map[string]any{"slot_date": slotDate, "slot_time": slotTime},
		})
		return nil, httperr.ErrBusiness("slot_conflict")
	}

	ap := &models.Appointment{
		ContactNumber: contact,
		Name:          state.Name,
		SlotDate:      domain.ParseDate(slotDate),
		SlotTime:      slotTime,
		Status:        string(domain.InitialStatus()),
		Notes:         in.Notes,
	}

	if err := uc.repo.CreateAppointment(ctx, ap); err != nil {
		return nil, err
	}

	state.ContactNumber = contact
	state.AddBookedSlot(slotDate, slotTime)
	state.AddPreference(in.Notes)
	if err := uc.sessions.Save(ctx, in.SessionID, state); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		SessionID:     in.SessionID,
		Tool:          "book_appointment",
		Status:        "booked",
		ContactNumber: contact,
		Payload: map[string]any{
			"appointment_id": ap.ID,
			"slot_date":      slotDate,
			"slot_time":      slotTime,
		},
	})

	return ap, nil
}
