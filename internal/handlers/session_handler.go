package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/ayush27prasad/avatar-voice-agent-backend/internal/httperr"
	"github.com/ayush27prasad/avatar-voice-agent-backend/internal/httpresp"
	"github.com/ayush27prasad/avatar-voice-agent-backend/internal/models"
	ucBooking "github.com/ayush27prasad/avatar-voice-agent-backend/internal/usecase/booking"
)

// ======================================================
// HANDLER
// ======================================================

type SessionHandler struct {
	identifyUC *ucBooking.IdentifyUser
	userDataUC *ucBooking.GetUserData
	endUC      *ucBooking.EndConversation
}

func NewSessionHandler(
	identifyUC *ucBooking.IdentifyUser,
	userDataUC *ucBooking.GetUserData,
	endUC *ucBooking.EndConversation,
) *SessionHandler {
	return &SessionHandler{
		identifyUC: identifyUC,
		userDataUC: userDataUC,
		endUC:      endUC,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type IdentifyRequest struct {
	ContactNumber string `json:"contact_number" binding:"required"`
	Name          string `json:"name"`
}

type EndConversationRequest struct {
	Summary       string              `json:"summary" binding:"required"`
	Preferences   []string            `json:"preferences"`
	BookedSlots   []models.BookedSlot `json:"booked_slots"`
	ContactNumber string              `json:"contact_number"`
}

// ======================================================
// IDENTIFY
// ======================================================

func (h *SessionHandler) Identify(c *gin.Context) {
	sessionID := c.Param("sid")

	var req IdentifyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid request body.")
		return
	}

	state, err := h.identifyUC.Execute(c.Request.Context(), ucBooking.IdentifyUserInput{
		SessionID:     sessionID,
		ContactNumber: req.ContactNumber,
		Name:          req.Name,
	})
	if err != nil {
		if writeBusiness(c, err) {
			return
		}
		httperr.Internal(c, "failed_to_identify_user", "Could not identify the user.")
		return
	}

	httpresp.OK(c, state)
}

// ======================================================
// GET USER
// ======================================================

func (h *SessionHandler) GetUser(c *gin.Context) {
	sessionID := c.Param("sid")
	contact := c.Query("contact_number")

	state, err := h.userDataUC.Execute(c.Request.Context(), ucBooking.GetUserDataInput{
		SessionID:     sessionID,
		ContactNumber: contact,
	})
	if err != nil {
		if writeBusiness(c, err) {
			return
		}
		httperr.Internal(c, "failed_to_get_user", "Could not load user data.")
		return
	}

	httpresp.OK(c, state)
}

// ======================================================
// END CONVERSATION
// ======================================================

func (h *SessionHandler) End(c *gin.Context) {
	sessionID := c.Param("sid")

	var req EndConversationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid request body.")
		return
	}

	summary, err := h.endUC.Execute(c.Request.Context(), ucBooking.EndConversationInput{
		SessionID:     sessionID,
		Summary:       req.Summary,
		Preferences:   req.Preferences,
		BookedSlots:   req.BookedSlots,
		ContactNumber: req.ContactNumber,
	})
	if err != nil {
		if writeBusiness(c, err) {
			return
		}
		httperr.Internal(c, "failed_to_save_summary", "Could not save the conversation summary.")
		return
	}

	httpresp.Created(c, summary)
}
