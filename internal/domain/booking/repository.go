package booking

import (
	"context"
	"time"

	"github.com/ayush27prasad/avatar-voice-agent-backend/internal/models"
	"github.com/google/uuid"
)

type Repository interface {
	// -------- Users --------
	GetUserByContact(
		ctx context.Context,
		contactNumber string,
	) (*models.User, error)

	CreateUser(
		ctx context.Context,
		user *models.User,
	) error

	UpdateUserName(
		ctx context.Context,
		contactNumber string,
		name string,
	) error

	// -------- Appointments --------
	CreateAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error

	UpdateAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error

	FindAppointment(
		ctx context.Context,
		contactNumber string,
		slotDate time.Time,
		slotTime string,
	) (*models.Appointment, error)

	// SlotTaken reports whether a non-cancelled appointment occupies the
	// slot. excludeID (when non-nil uuid) is skipped, so an appointment
	// being moved never conflicts with itself.
	SlotTaken(
		ctx context.Context,
		slotDate time.Time,
		slotTime string,
		excludeID uuid.UUID,
	) (bool, error)

	ListAppointmentsByContact(
		ctx context.Context,
		contactNumber string,
	) ([]models.Appointment, error)

	ListBookedSlots(
		ctx context.Context,
		from time.Time,
		to time.Time,
	) ([]models.BookedSlot, error)

	// -------- Conversation summaries --------
	CreateSummary(
		ctx context.Context,
		summary *models.ConversationSummary,
	) error

	ListSummariesByContact(
		ctx context.Context,
		contactNumber string,
		limit int,
	) ([]models.ConversationSummary, error)
}
