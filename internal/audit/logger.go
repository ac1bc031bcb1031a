package audit

import (
	"encoding/json"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/ayush27prasad/avatar-voice-agent-backend/internal/models"
)

type Logger struct {
	db *gorm.DB
}

func New(db *gorm.DB) *Logger {
	return &Logger{db: db}
}

func (l *Logger) Log(
	sessionID string,
	tool string,
	status string,
	contactNumber string,
	payload any,
) error {

	payloadJSON := datatypes.JSON([]byte("{}"))
	if payload != nil {
		if b, err := json.Marshal(payload); err == nil {
			payloadJSON = datatypes.JSON(b)
		}
	}

	event := models.ToolEvent{
		SessionID:     sessionID,
		Tool:          tool,
		Status:        status,
		ContactNumber: contactNumber,
		Payload:       payloadJSON,
	}

	return l.db.Create(&event).Error
}
