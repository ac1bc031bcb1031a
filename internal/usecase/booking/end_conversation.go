package booking

import (
	"context"
	"log"

	"gorm.io/datatypes"

	"github.com/ayush27prasad/avatar-voice-agent-backend/internal/audit"
	domain "github.com/ayush27prasad/avatar-voice-agent-backend/internal/domain/booking"
	"github.com/ayush27prasad/avatar-voice-agent-backend/internal/httperr"
	"github.com/ayush27prasad/avatar-voice-agent-backend/internal/models"
)

// UnknownContact marks summaries saved for calls where the caller never
// shared a phone number. Ending a call must never fail on identity.
const UnknownContact = "unknown"

// Archiver ships a finished summary to long-term storage.
type Archiver interface {
	ArchiveSummary(ctx context.Context, summary *models.ConversationSummary) error
}

// ======================================================
// INPUT
// ======================================================

type EndConversationInput struct {
	SessionID string

	Summary       string
	Preferences   []string
	BookedSlots   []models.BookedSlot
	ContactNumber string
}

// ======================================================
// USE CASE
// ======================================================

type EndConversation struct {
	repo     domain.Repository
	sessions SessionStore
	audit    AuditTrail
	archive  Archiver
}

// NewEndConversation accepts a nil archiver when no archive bucket is
// configured.
func NewEndConversation(
	repo domain.Repository,
	sessions SessionStore,
	audit AuditTrail,
	archive Archiver,
) *EndConversation {
	return &EndConversation{
		repo:     repo,
		sessions: sessions,
		audit:    audit,
		archive:  archive,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *EndConversation) Execute(
	ctx context.Context,
	in EndConversationInput,
) (*models.ConversationSummary, error) {

	if in.Summary == "" {
		return nil, httperr.ErrBusiness("missing_summary")
	}

	state, err := uc.sessions.Get(ctx, in.SessionID)
	if err != nil {
		return nil, err
	}

	contact, err := ensureContact(state, in.ContactNumber)
	if err != nil {
		contact = UnknownContact
	}

	preferences := in.Preferences
	if len(preferences) == 0 {
		preferences = state.Preferences
	}
	if preferences == nil {
		preferences = []string{}
	}

	slots := in.BookedSlots
	if len(slots) == 0 {
		slots = state.BookedSlots
	}
	if slots == nil {
		slots = []models.BookedSlot{}
	}

	summary := &models.ConversationSummary{
		ContactNumber: contact,
		Summary:       in.Summary,
		Preferences:   datatypes.NewJSONSlice(preferences),
		BookedSlots:   datatypes.NewJSONSlice(slots),
	}

	if err := uc.repo.CreateSummary(ctx, summary); err != nil {
		return nil, err
	}

	if uc.archive != nil {
		if err := uc.archive.ArchiveSummary(ctx, summary); err != nil {
			log.Println("summary archive failed:", err)
		}
	}

	if err := uc.sessions.Clear(ctx, in.SessionID); err != nil {
		log.Println("session clear failed:", err)
	}

	uc.audit.Dispatch(audit.Event{
		SessionID:     in.SessionID,
		Tool:          "end_conversation",
		Status:        "summary_saved",
		ContactNumber: contact,
		Payload: map[string]any{
			"summary_id":   summary.ID,
			"booked_slots": len(slots),
			"preferences":  len(preferences),
		},
	})

	return summary, nil
}
