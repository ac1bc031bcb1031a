package models

import (
	"time"

	"github.com/google/uuid"
)

type Appointment struct {
	ID uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`

	// Correlates with users.contact_number by value. No foreign key on
	// purpose: appointments survive even if the user row never existed.
	ContactNumber string `gorm:"type:text;index:idx_appointments_contact_number;not null" json:"contact_number"`
	Name          string `gorm:"type:text" json:"name"`

	SlotDate time.Time `gorm:"type:date;index:idx_appointments_slot,priority:1;not null" json:"slot_date"`
	SlotTime string    `gorm:"type:text;index:idx_appointments_slot,priority:2;not null" json:"slot_time"`

	Status string `gorm:"type:text;not null;default:'booked'" json:"status"`
	Notes  string `gorm:"type:text" json:"notes"`

	CreatedAt time.Time `json:"created_at"`
}
