package models

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`

	ContactNumber string `gorm:"type:text;uniqueIndex:idx_users_contact_number;not null" json:"contact_number"`
	Name          string `gorm:"type:text" json:"name"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
