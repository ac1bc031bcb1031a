package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type ConversationSummary struct {
	ID uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`

	ContactNumber string `gorm:"type:text;index:idx_conversation_summaries_contact_number;not null" json:"contact_number"`
	Summary       string `gorm:"type:text;not null" json:"summary"`

	Preferences datatypes.JSONSlice[string]     `gorm:"type:jsonb;default:'[]'" json:"preferences"`
	BookedSlots datatypes.JSONSlice[BookedSlot] `gorm:"type:jsonb;default:'[]'" json:"booked_slots"`

	CreatedAt time.Time `json:"created_at"`
}
