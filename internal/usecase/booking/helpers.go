package booking

import (
	"context"
	"errors"
	"log"

	"gorm.io/gorm"

	domain "github.com/ayush27prasad/avatar-voice-agent-backend/internal/domain/booking"
	"github.com/ayush27prasad/avatar-voice-agent-backend/internal/httperr"
	"github.com/ayush27prasad/avatar-voice-agent-backend/internal/models"
	"github.com/ayush27prasad/avatar-voice-agent-backend/internal/session"
	"github.com/ayush27prasad/avatar-voice-agent-backend/internal/validators"
)

// ensureContact resolves the contact number for the current call:
// an explicitly provided number wins, otherwise the session state.
func ensureContact(state *session.State, provided string) (string, error) {
	if provided != "" {
		return validators.NormalizePhone(provided)
	}
	if state.ContactNumber != "" {
		return state.ContactNumber, nil
	}
	return "", httperr.ErrBusiness("missing_contact")
}

// ensureUser creates the users row on first contact, or refreshes the
// name on later calls. Best effort: a failure here never blocks booking.
func ensureUser(ctx context.Context, repo domain.Repository, contactNumber, name string) {
	existing, err := repo.GetUserByContact(ctx, contactNumber)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			log.Println("ensure user lookup failed:", err)
			return
		}

		user := &models.User{
			ContactNumber: contactNumber,
			Name:          name,
		}
		if err := repo.CreateUser(ctx, user); err != nil {
			log.Println("ensure user create failed:", err)
		}
		return
	}

	if name != "" && existing.Name != name {
		if err := repo.UpdateUserName(ctx, contactNumber, name); err != nil {
			log.Println("ensure user name update failed:", err)
		}
	}
}
