package dto

import (
	"time"

	"github.com/ayush27prasad/avatar-voice-agent-backend/internal/models"
	"github.com/ayush27prasad/avatar-voice-agent-backend/internal/validators"
	"github.com/google/uuid"
)

type AppointmentDTO struct {
	ID            uuid.UUID `json:"id"`
	ContactNumber string    `json:"contact_number"`
	Name          string    `json:"name"`
	SlotDate      string    `json:"slot_date"`
	SlotTime      string    `json:"slot_time"`
	Status        string    `json:"status"`
	Notes         string    `json:"notes"`
	CreatedAt     time.Time `json:"created_at"`
}

func FromAppointment(ap *models.Appointment) AppointmentDTO {
	return AppointmentDTO{
		ID:            ap.ID,
		ContactNumber: ap.ContactNumber,
		Name:          ap.Name,
		SlotDate:      ap.SlotDate.Format(validators.DateLayout),
		SlotTime:      ap.SlotTime,
		Status:        ap.Status,
		Notes:         ap.Notes,
		CreatedAt:     ap.CreatedAt,
	}
}

func FromAppointments(aps []models.Appointment) []AppointmentDTO {
	out := make([]AppointmentDTO, 0, len(aps))
	for i := range aps {
		out = append(out, FromAppointment(&aps[i]))
	}
	return out
}
