package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/ayush27prasad/avatar-voice-agent-backend/internal/httperr"
)

// Business error messages double as instructions for the voice agent:
// it reads them back to steer the caller.
var businessMessages = map[string]string{
	"invalid_phone":         "Ask the user for a valid phone number with country code.",
	"invalid_date":          "Ask the user for a date in YYYY-MM-DD format.",
	"invalid_time":          "Ask the user for a time like 14:00 or 2:00 PM.",
	"missing_contact":       "Ask the user for their phone number to continue.",
	"missing_summary":       "A conversation summary is required to end the call.",
	"user_not_found":        "No user found for that phone number.",
	"appointment_not_found": "I could not find that appointment.",
	"slot_conflict":         "That slot is already booked. Please choose another time.",
	"invalid_state":         "That appointment is no longer active.",
}

// writeBusiness translates a business error into an HTTP response and
// reports whether it handled the error.
func writeBusiness(c *gin.Context, err error) bool {
	code, ok := httperr.BusinessCode(err)
	if !ok {
		return false
	}

	message := businessMessages[code]
	if message == "" {
		message = code
	}

	switch code {
	case "user_not_found", "appointment_not_found":
		httperr.NotFound(c, code, message)
	case "slot_conflict":
		httperr.Conflict(c, code, message)
	default:
		httperr.BadRequest(c, code, message)
	}
	return true
}
