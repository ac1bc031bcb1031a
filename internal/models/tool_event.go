package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// ToolEvent is the durable trail of agent tool calls, one row per
// tool invocation outcome (booked, conflict, not_found, ...).
type ToolEvent struct {
	ID uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`

	SessionID     string         `gorm:"type:text;index;not null" json:"session_id"`
	Tool          string         `gorm:"type:text;not null" json:"tool"`
	Status        string         `gorm:"type:text;not null" json:"status"`
	ContactNumber string         `gorm:"type:text" json:"contact_number"`
	Payload       datatypes.JSON `gorm:"type:jsonb;default:'{}'" json:"payload"`

	CreatedAt time.Time `json:"created_at"`
}
